package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"methbench/internal/config"
	"methbench/internal/invokebench"
	"methbench/internal/report"
	"methbench/internal/timing"
)

var invokeCmd = &cobra.Command{
	Use:   "invoke",
	Short: "Run only the invocation benchmark",
	Long: `Builds one object pool per variant, then repeatedly invokes every
entry's callable across many cycles. Each measured run must reproduce the
precomputed checksum exactly or the run fails.`,
	RunE: runInvokeBench,
}

func init() {
	rootCmd.AddCommand(invokeCmd)
}

func runInvokeBench(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	runner, err := invokebench.NewRunner(cfg.ObjectCount, cfg.InvocationCycles)
	if err != nil {
		return err
	}

	results, err := runner.Measure(cmd.Context(), timing.New())
	if err != nil {
		return err
	}

	if viper.GetBool("json") {
		return report.WriteJSON(cmd.OutOrStdout(), reportPayload{Invocation: results})
	}
	report.WriteInvocation(cmd.OutOrStdout(), results)
	return nil
}
