// cmd/main.go is the application entry point.
// It wires together all layers and exposes them through the serve and shell commands.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Shivanand-hulikatti/event-registry/internal/config"
	"github.com/Shivanand-hulikatti/event-registry/internal/logging"
	"github.com/Shivanand-hulikatti/event-registry/internal/metrics"
	"github.com/Shivanand-hulikatti/event-registry/internal/repository"
	"github.com/Shivanand-hulikatti/event-registry/internal/seed"
	"github.com/Shivanand-hulikatti/event-registry/internal/service"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfg *config.Config

	root := &cobra.Command{
		Use:           "event-registry",
		Short:         "Create events with a fixed capacity and register participants",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load()
			if err != nil {
				return err
			}
			if err := applyFlags(cmd, loaded); err != nil {
				return err
			}
			cfg = loaded
			return nil
		},
	}

	root.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error (overrides LOG_LEVEL)")
	root.PersistentFlags().String("seed-file", "", "TOML file with startup events (overrides SEED_FILE)")
	root.PersistentFlags().Bool("no-seed", false, "start with an empty catalog")

	root.AddCommand(
		newServeCmd(func() *config.Config { return cfg }),
		newShellCmd(func() *config.Config { return cfg }),
	)
	return root
}

// applyFlags copies explicitly set flags over the environment configuration.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("seed-file") {
		cfg.SeedFile, _ = flags.GetString("seed-file")
	}
	if flags.Changed("no-seed") {
		cfg.SeedDisabled, _ = flags.GetBool("no-seed")
	}
	if flags.Lookup("port") != nil && flags.Changed("port") {
		cfg.Port, _ = flags.GetString("port")
	}
	return cfg.Validate()
}

// core bundles the two components every front end talks to.
type core struct {
	catalog *service.EventCatalog
	ledger  *service.RegistrationLedger
}

// newCore builds the store, the catalog and the ledger, then installs the seed events.
func newCore(ctx context.Context, cfg *config.Config, logger *slog.Logger, m *metrics.Metrics) (*core, error) {
	store := repository.NewStore()
	opts := []service.Option{service.WithLogger(logger), service.WithMetrics(m)}
	catalog := service.NewEventCatalog(store, opts...)
	ledger := service.NewRegistrationLedger(catalog, opts...)

	if !cfg.SeedDisabled {
		f, err := seed.Load(cfg.SeedFile)
		if err != nil {
			return nil, err
		}
		events, err := seed.Apply(ctx, catalog, f)
		if err != nil {
			return nil, err
		}
		logger.InfoContext(ctx, "catalog seeded", "events", len(events))
	}
	return &core{catalog: catalog, ledger: ledger}, nil
}

func newLogger(cfg *config.Config) *slog.Logger {
	return logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, Output: os.Stderr})
}
