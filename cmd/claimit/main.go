package main

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/claimit/claimit/internal/calculation"
	"github.com/claimit/claimit/internal/config"
	"github.com/claimit/claimit/internal/output"
	"github.com/claimit/claimit/internal/server"
	"github.com/claimit/claimit/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "claimit",
	Short: "Canadian tax refund estimator",
	Long:  "Estimates a personal income-tax refund and surfaces applicable credits from a questionnaire answer file, an interactive wizard, or an HTTP endpoint.",
}

func engineForVariant(variant string) (*calculation.EstimateEngine, error) {
	switch calculation.Variant(variant) {
	case calculation.VariantFull:
		return calculation.NewEstimateEngine(), nil
	case calculation.VariantDemo:
		return calculation.NewDemoEngine(), nil
	default:
		return nil, fmt.Errorf("unknown variant %q (want full or demo)", variant)
	}
}

func estimateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "estimate [answers-file]",
		Short: "Compute a refund estimate from a YAML answer file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			variant, _ := cmd.Flags().GetString("variant")
			format, _ := cmd.Flags().GetString("format")

			engine, err := engineForVariant(variant)
			if err != nil {
				return err
			}

			parser := config.NewInputParser()
			answers, err := parser.LoadFromFile(args[0])
			if err != nil {
				return err
			}

			result := engine.ComputeEstimate(answers)

			switch format {
			case "json":
				out, err := output.FormatJSON(result)
				if err != nil {
					return err
				}
				fmt.Fprintln(os.Stdout, out)
			case "console":
				fmt.Fprintln(os.Stdout, output.FormatConsole(answers, result))
			default:
				return fmt.Errorf("unknown format %q (want console or json)", format)
			}
			return nil
		},
	}
	cmd.Flags().String("variant", string(calculation.VariantFull), "Estimate formula: full or demo")
	cmd.Flags().String("format", "console", "Output format: console or json")
	return cmd
}

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the estimate engine over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, _ := cmd.Flags().GetString("addr")
			logLevel, _ := cmd.Flags().GetString("log-level")
			logFormat, _ := cmd.Flags().GetString("log-format")

			logger, err := buildLogger(logLevel, logFormat)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			return server.New(logger).ListenAndServe(addr)
		},
	}
	cmd.Flags().String("addr", ":8080", "Listen address")
	cmd.Flags().String("log-level", "info", "Log level: debug, info, warn, error")
	cmd.Flags().String("log-format", "console", "Log format: console or json")
	return cmd
}

// buildLogger constructs the zap logger for the server path.
func buildLogger(level, format string) (*zap.Logger, error) {
	var zapLevel zap.AtomicLevel
	switch level {
	case "debug":
		zapLevel = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		zapLevel = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn", "warning":
		zapLevel = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zapLevel = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	var cfg zap.Config
	switch format {
	case "console":
		cfg = zap.NewDevelopmentConfig()
	case "json":
		cfg = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}
	cfg.Level = zapLevel
	return cfg.Build()
}

func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui [answers-file]",
		Short: "Run the interactive questionnaire wizard",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			model := tui.NewModel()
			if len(args) == 1 {
				parser := config.NewInputParser()
				answers, err := parser.LoadFromFile(args[0])
				if err != nil {
					return err
				}
				model = tui.NewModelWithAnswers(*answers)
			}

			program := tea.NewProgram(model, tea.WithAltScreen())
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("wizard failed: %w", err)
			}
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "claimit %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Version)
			}
		},
	}
}

func main() {
	rootCmd.AddCommand(estimateCmd())
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(tuiCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
