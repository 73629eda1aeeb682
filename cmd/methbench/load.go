package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"methbench/internal/config"
	"methbench/internal/loadbench"
	"methbench/internal/report"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Run only the load benchmark",
	Long: `Measures the one-time cost of compiling and instantiating a batch of
objects from freshly generated source text. Each trial runs in a fresh,
isolated execution context so every compile is a cold one.`,
	RunE: runLoadBench,
}

func init() {
	rootCmd.AddCommand(loadCmd)
}

func runLoadBench(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	reports, err := loadbench.Measure(cmd.Context(), cfg.ObjectCount, cfg.LoadIterations)
	if err != nil {
		return err
	}

	if viper.GetBool("json") {
		return report.WriteJSON(cmd.OutOrStdout(), reportPayload{Load: reports})
	}
	report.WriteLoad(cmd.OutOrStdout(), reports)
	return nil
}
