package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iwvelando/property-simulator/internal/config"
	"github.com/iwvelando/property-simulator/internal/logging"
	"github.com/iwvelando/property-simulator/internal/server"
	"github.com/iwvelando/property-simulator/internal/simulation"
	"github.com/iwvelando/property-simulator/pkg/constants"
	"github.com/iwvelando/property-simulator/pkg/jurisdiction"
	"github.com/iwvelando/property-simulator/pkg/output"
	"github.com/iwvelando/property-simulator/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootOptions struct {
	configLocation string
	outputFormat   string
	logLevel       string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:          "property-simulator",
		Short:        "Estimate notary fees, capital-gain tax and loan costs of a property transaction",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.configLocation, "config", constants.DefaultConfigFile, "path to simulation file")
	root.PersistentFlags().StringVar(&opts.outputFormat, "output-format", "", "type of output override: pretty, csv, json")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level override (debug, info, warn, error)")

	root.AddCommand(
		newSimulateCommand(opts),
		newCompareCommand(opts),
		newScheduleCommand(opts),
		newServeCommand(opts),
		newVersionCommand(),
	)
	return root
}

// setup loads the simulation file, builds the logger and resolves the
// output format.
func (opts *rootOptions) setup() (*config.Configuration, *zap.Logger, string, error) {
	conf, err := config.LoadConfiguration(opts.configLocation)
	if err != nil {
		return nil, nil, "", fmt.Errorf("failed to load configuration at %s: %w", opts.configLocation, err)
	}

	logger, err := logging.New(conf.Logging, opts.logLevel)
	if err != nil {
		return nil, nil, "", fmt.Errorf("failed to initialize logger: %w", err)
	}

	outputFormat := conf.OutputFormat(opts.outputFormat)
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		_ = logger.Sync()
		return nil, nil, "", err
	}

	return conf, logger, outputFormat, nil
}

func logWarnings(logger *zap.Logger, warnings []string) {
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}
}

func newSimulateCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "simulate",
		Short: "Simulate the transaction described in the simulation file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, logger, outputFormat, err := opts.setup()
			if err != nil {
				return err
			}
			defer func() {
				_ = logger.Sync()
			}()

			if err := validation.New().Struct(conf.Simulation); err != nil {
				return err
			}

			now := time.Now()
			logWarnings(logger, conf.ValidateConfiguration(now))

			result, err := simulation.RunWithFixedTime(logger, conf.Simulation, now)
			if err != nil {
				return err
			}
			return output.Result(cmd.OutOrStdout(), outputFormat, result)
		},
	}
}

func newCompareCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "compare",
		Short: "Simulate the transaction in every supported country",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, logger, outputFormat, err := opts.setup()
			if err != nil {
				return err
			}
			defer func() {
				_ = logger.Sync()
			}()

			input := conf.Simulation
			if input.Country == "" {
				input.Country = jurisdiction.France
			}
			if err := validation.New().Struct(input); err != nil {
				return err
			}

			comparison, err := simulation.Compare(logger, input, time.Now())
			if err != nil {
				return err
			}
			return output.Comparison(cmd.OutOrStdout(), outputFormat, comparison)
		},
	}
}

func newScheduleCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "schedule",
		Short: "Print the month-by-month amortization schedule of the loan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, logger, outputFormat, err := opts.setup()
			if err != nil {
				return err
			}
			defer func() {
				_ = logger.Sync()
			}()

			schedule, err := conf.LoanSchedule(logger)
			if err != nil {
				return fmt.Errorf("failed to process loan amortization schedule: %w", err)
			}
			return output.Schedule(cmd.OutOrStdout(), outputFormat, schedule)
		},
	}
}

func newServeCommand(opts *rootOptions) *cobra.Command {
	var serverConfig string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the simulation HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := server.LoadConfig(serverConfig)
			if err != nil {
				return err
			}

			logger, err := logging.New(cfg.Logging, opts.logLevel)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			defer func() {
				_ = logger.Sync()
			}()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return server.Run(ctx, cfg, logger, version)
		},
	}
	cmd.Flags().StringVar(&serverConfig, "server-config", constants.DefaultServerConfigFile, "path to server configuration file")
	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version)
			return err
		},
	}
}
