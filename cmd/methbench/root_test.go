package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fastEnv shrinks the benchmark knobs so command tests stay quick while
// still exercising the real interpreter path.
func fastEnv(t *testing.T) {
	t.Helper()
	viper.Reset()
	bindFlags()
	t.Cleanup(viper.Reset)
	t.Setenv("OBJECT_COUNT", "5")
	t.Setenv("LOAD_ITERATIONS", "2")
	t.Setenv("INVOCATION_CYCLES", "2")
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestLoadCommand(t *testing.T) {
	fastEnv(t)

	out, err := runCommand(t, "load")
	require.NoError(t, err)
	assert.Contains(t, out, "Load benchmark")
	assert.Contains(t, out, "shorthand-method")
	assert.Contains(t, out, "closure-property")
	assert.Contains(t, out, "compile")
	assert.Contains(t, out, "instantiate")
	assert.Contains(t, out, "total")
}

func TestLoadCommandJSON(t *testing.T) {
	fastEnv(t)

	out, err := runCommand(t, "load", "--json")
	require.NoError(t, err)

	var payload reportPayload
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	require.Len(t, payload.Load, 2)
	assert.Equal(t, "shorthand-method", payload.Load[0].Label)
	assert.Equal(t, 2, payload.Load[0].Compile.SampleCount)
	assert.Empty(t, payload.Invocation)

	// Reset the persistent flag for later tests.
	require.NoError(t, rootCmd.PersistentFlags().Set("json", "false"))
}

func TestInvokeCommand(t *testing.T) {
	fastEnv(t)

	out, err := runCommand(t, "invoke")
	require.NoError(t, err)
	assert.Contains(t, out, "Invocation benchmark")
	assert.Contains(t, out, "shorthand-method")
	assert.Contains(t, out, "closure-property")
	assert.Contains(t, out, "SAMPLES")
}

func TestConfigErrorSurfacesBeforeMeasurement(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("OBJECT_COUNT", "many")

	_, err := runCommand(t, "load")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OBJECT_COUNT")
}

func TestExecutePanicRecovery(t *testing.T) {
	panicCmd := &cobra.Command{
		Use: "panic-test",
		Run: func(cmd *cobra.Command, args []string) {
			panic("simulated panic")
		},
	}
	rootCmd.AddCommand(panicCmd)
	defer rootCmd.RemoveCommand(panicCmd)

	oldExit := exit
	exitCode := -1
	exit = func(code int) { exitCode = code }
	defer func() { exit = oldExit }()

	rootCmd.SetArgs([]string{"panic-test"})
	defer rootCmd.SetArgs(nil)

	Execute()
	assert.Equal(t, 1, exitCode)
}
