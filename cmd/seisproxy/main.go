package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	serverrun "github.com/rzbill/seisproxy/internal/cmd/server"
	cfgpkg "github.com/rzbill/seisproxy/internal/config"
	logpkg "github.com/rzbill/seisproxy/pkg/log"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	level := logpkg.ParseLevel(os.Getenv("SEISPROXY_LOG_LEVEL"))
	logger := logpkg.NewLogger(
		logpkg.WithLevel(level),
		logpkg.WithFormatter(&logpkg.TextFormatter{}),
		logpkg.WithOutput(logpkg.NewConsoleOutput()),
	)
	logpkg.RedirectStdLog(logger)

	rootCmd := &cobra.Command{
		Use:   "seisproxy",
		Short: "seisproxy runtime CLI",
		Long:  "seisproxy fans out published seismic packets to subscribers over gRPC. This CLI starts the server and validates configuration.",
	}

	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newVersionCommand())
	rootCmd.AddCommand(newConfigCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "serve",
		Short:   "Start the frontend and backend gRPC listeners",
		Aliases: []string{"start", "run"},
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			cfg, err := cfgpkg.Load(configPath)
			if err != nil {
				return err
			}
			cfgpkg.FromEnv(&cfg)
			if v, _ := cmd.Flags().GetString("frontend-addr"); v != "" {
				setAddr(&cfg.Frontend.Host, &cfg.Frontend.Port, v)
			}
			if v, _ := cmd.Flags().GetString("backend-addr"); v != "" {
				setAddr(&cfg.Backend.Host, &cfg.Backend.Port, v)
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()
			return serverrun.Run(ctx, serverrun.Options{Config: cfg})
		},
	}
	cmd.Flags().String("config", os.Getenv("SEISPROXY_CONFIG"), "Path to a JSON or YAML configuration file")
	cmd.Flags().String("frontend-addr", "", "Override frontend.host:port")
	cmd.Flags().String("backend-addr", "", "Override backend.host:port")
	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the seisproxy version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}
}

func newConfigCommand() *cobra.Command {
	configCmd := &cobra.Command{Use: "config", Short: "Configuration operations"}
	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Load and validate a configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			cfg, err := cfgpkg.Load(configPath)
			if err != nil {
				return err
			}
			cfgpkg.FromEnv(&cfg)
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			fmt.Println("configuration is valid")
			return nil
		},
	}
	validateCmd.Flags().String("config", os.Getenv("SEISPROXY_CONFIG"), "Path to a JSON or YAML configuration file")
	configCmd.AddCommand(validateCmd)
	return configCmd
}

func setAddr(host *string, port *int, addr string) {
	h, ps, err := net.SplitHostPort(addr)
	if err != nil {
		return
	}
	p, err := strconv.Atoi(ps)
	if err != nil {
		return
	}
	*host = h
	*port = p
}
