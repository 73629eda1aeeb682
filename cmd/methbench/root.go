package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"methbench/internal/config"
	"methbench/internal/invokebench"
	"methbench/internal/loadbench"
	"methbench/internal/report"
	"methbench/internal/timing"
)

var exit = os.Exit

// rootCmd represents the base command when called without any subcommands.
// The default run executes both experiments back to back.
var rootCmd = &cobra.Command{
	Use:   "methbench",
	Short: "Compare shorthand-method and closure-property callable definitions",
	Long: `methbench is a micro-benchmark harness comparing two strategies for
defining a callable member on a data object: a method reading the object's
own value at call time versus a function field capturing the value at
definition time.

It measures the cold compile+instantiate cost of freshly generated source in
isolated execution contexts, and the steady-state invocation cost across a
large object pool, and reports distribution statistics for both.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runAll,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n=== CRITICAL ERROR: Command Execution Panic ===\n")
			fmt.Fprintf(os.Stderr, "Error: %v\n", r)
			exit(1)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
	}
}

func init() {
	cobra.OnInitialize(initLogging)

	rootCmd.PersistentFlags().Int("objects", config.DefaultObjectCount, "objects per generated pool (env OBJECT_COUNT)")
	rootCmd.PersistentFlags().Int("trials", config.DefaultLoadIterations, "trials per variant in the load benchmark (env LOAD_ITERATIONS)")
	rootCmd.PersistentFlags().Int("cycles", config.DefaultInvocationCycles, "invocation cycles per measured run (env INVOCATION_CYCLES)")
	rootCmd.PersistentFlags().Bool("json", false, "emit the report as JSON instead of tables")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")

	bindFlags()
}

// bindFlags wires the persistent flags into viper. Split out of init so
// tests can rebind after a viper.Reset.
func bindFlags() {
	viper.BindPFlag("object_count", rootCmd.PersistentFlags().Lookup("objects"))
	viper.BindPFlag("load_iterations", rootCmd.PersistentFlags().Lookup("trials"))
	viper.BindPFlag("invocation_cycles", rootCmd.PersistentFlags().Lookup("cycles"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initLogging configures the process-wide slog logger.
func initLogging() {
	level := slog.LevelInfo
	if viper.GetBool("verbose") {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// reportPayload is the JSON shape of a full run.
type reportPayload struct {
	Load       []loadbench.VariantReport   `json:"load,omitempty"`
	Invocation []invokebench.VariantResult `json:"invocation,omitempty"`
}

func runAll(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	loadReports, err := loadbench.Measure(cmd.Context(), cfg.ObjectCount, cfg.LoadIterations)
	if err != nil {
		return err
	}

	runner, err := invokebench.NewRunner(cfg.ObjectCount, cfg.InvocationCycles)
	if err != nil {
		return err
	}
	invokeResults, err := runner.Measure(cmd.Context(), timing.New())
	if err != nil {
		return err
	}

	if viper.GetBool("json") {
		return report.WriteJSON(cmd.OutOrStdout(), reportPayload{
			Load:       loadReports,
			Invocation: invokeResults,
		})
	}

	report.WriteLoad(cmd.OutOrStdout(), loadReports)
	fmt.Fprintln(cmd.OutOrStdout())
	report.WriteInvocation(cmd.OutOrStdout(), invokeResults)
	return nil
}
