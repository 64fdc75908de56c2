package main

import (
	"context"
	"fmt"

	"github.com/mfreeman451/pgradar/pkg/config"
	"github.com/mfreeman451/pgradar/pkg/core"
	"github.com/mfreeman451/pgradar/pkg/lifecycle"
	"github.com/spf13/cobra"
)

type flags struct {
	configPath string
	envFiles   []string
}

func rootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:          "pgradar",
		Short:        "PostgreSQL metrics sampling, retention and alerting",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), &f)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&f.configPath, "config", "c", "/etc/pgradar/pgradar.json", "Path to config file (JSON or YAML)")
	pf.StringSliceVar(&f.envFiles, "env-file", []string{".env"}, "KEY=value files loaded before the config")

	cmd.AddCommand(serveCmd(&f), checkConfigCmd(&f))

	return cmd
}

func serveCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:          "serve",
		Short:        "Run the sampler, alerting pipeline and HTTP API",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), f)
		},
	}
}

func checkConfigCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:          "check-config",
		Short:        "Validate the config file and exit",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(f)
			if err != nil {
				return err
			}

			cmd.Printf("config OK: %d instances, retention %d minutes, persistent=%v\n",
				len(cfg.Instances), cfg.RetentionMinutes, cfg.Persistent)

			return nil
		},
	}
}

func loadConfig(f *flags) (*config.ConsoleConfig, error) {
	if err := config.LoadEnv(f.envFiles...); err != nil {
		return nil, err
	}

	var cfg config.ConsoleConfig

	if err := config.LoadAndValidate(f.configPath, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return &cfg, nil
}

func serve(ctx context.Context, f *flags) error {
	cfg, err := loadConfig(f)
	if err != nil {
		return err
	}

	server, err := core.NewServer(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return lifecycle.RunServer(ctx, &lifecycle.ServerOptions{
		ListenAddr:      cfg.ListenAddr,
		ServiceName:     "pgradar",
		Service:         server,
		Handler:         server.Handler(),
		ShutdownTimeout: cfg.ShutdownTimeout.Duration(),
	})
}
