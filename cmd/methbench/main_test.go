package main

import (
	"os"
	"os/exec"
	"testing"
)

// TestMain_HappyPath reruns the test binary with TEST_RUN_MAIN=1 so main()
// itself executes `methbench --help`, which must exit zero.
func TestMain_HappyPath(t *testing.T) {
	if os.Getenv("TEST_RUN_MAIN") == "1" {
		os.Args = []string{"methbench", "--help"}
		main()
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestMain_HappyPath")
	cmd.Env = append(os.Environ(), "TEST_RUN_MAIN=1")
	if err := cmd.Run(); err != nil {
		t.Fatalf("process ran with error: %v", err)
	}
}
