package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"service-catalog/internal/common/config"
	"service-catalog/internal/common/errors"
	"service-catalog/internal/common/logger"

	"github.com/spf13/cobra"
)

var rootFlags struct {
	configFile   string
	servicesFile string
	schemaFile   string
	format       string
	metricsFile  string
	logLevel     string
}

func newRootCmd(stdout, stderr io.Writer, exitCode *int) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog-validator",
		Short: "Validate the service catalog and print repository statistics",
		Long: `Validate services.json against the catalog's structural rules.

Checks performed, in reporting order:
  - required top-level and per-service fields, duplicate serviceId and slug
  - every service category refers to a declared category id
  - website URLs use the http:// or https:// scheme

All errors are reported in one pass. Statistics (services per category,
pricing models, verification status) are printed only when no errors are
found. schema.json must be present and parse as JSON.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := runValidate(cmd.Context(), cmd, stdout)
			*exitCode = code
			return err
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringVarP(&rootFlags.configFile, "config", "c", "", "config file path (default: configs/config.yaml or ./config.yaml)")
	flags.StringVar(&rootFlags.servicesFile, "services", "", "path to services.json")
	flags.StringVar(&rootFlags.schemaFile, "schema", "", "path to schema.json")
	flags.StringVarP(&rootFlags.format, "format", "f", "", "report format: text, json")
	flags.StringVar(&rootFlags.metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile")
	flags.StringVar(&rootFlags.logLevel, "log-level", "", "log level: debug, info, warn, error")

	return cmd
}

// execute runs the CLI and returns the process exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	exitCode := 0
	cmd := newRootCmd(stdout, stderr, &exitCode)
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(stderr, err)
		if exitCode == 0 {
			exitCode = 1
		}
	}
	return exitCode
}

// runValidate loads configuration, applies flag overrides and runs one
// validation pass.
func runValidate(ctx context.Context, cmd *cobra.Command, stdout io.Writer) (int, error) {
	cfg, err := config.Load(rootFlags.configFile)
	if err != nil {
		return 1, errors.NewConfigInvalidError(err.Error())
	}

	if err := applyFlagOverrides(cmd, cfg); err != nil {
		return 1, err
	}
	config.ResolveDataDir(cfg)

	log := logger.NewStructured(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output)
	defer func() { _ = log.Sync() }()

	runner := NewRunner(cfg, log, stdout)
	runErr := runner.Run(ctx)

	// Validation and load failures are already on stdout; the handler only logs.
	return errors.NewErrorHandler(log).HandleRunError(runner.RunID(), runErr), nil
}

func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()

	if flags.Changed("services") {
		abs, err := filepath.Abs(rootFlags.servicesFile)
		if err != nil {
			return fmt.Errorf("resolve --services: %w", err)
		}
		cfg.Validator.ServicesFile = abs
	}
	if flags.Changed("schema") {
		abs, err := filepath.Abs(rootFlags.schemaFile)
		if err != nil {
			return fmt.Errorf("resolve --schema: %w", err)
		}
		cfg.Validator.SchemaFile = abs
	}
	if flags.Changed("format") {
		cfg.Validator.Format = rootFlags.format
	}
	if flags.Changed("metrics-file") {
		cfg.Metrics.TextfilePath = rootFlags.metricsFile
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = rootFlags.logLevel
	}

	if err := config.Validate(cfg); err != nil {
		return errors.NewConfigInvalidError(err.Error())
	}
	return nil
}
