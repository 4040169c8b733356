// Package main is the restaurant-bot binary: the HTTP API server plus the
// terminal client for browsing, ordering and booking against it.
package main

import (
	"fmt"
	"os"
	"runtime"

	"restaurant-bot/config"
	"restaurant-bot/handlers"
	"restaurant-bot/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const appName = "restaurant-bot"

// globals are the persistent flags shared by every command
type globals struct {
	configPath string
	logLevel   string
}

// load resolves the config and builds a logger at the requested level
func (g *globals) load() (*config.Config, *zap.SugaredLogger, error) {
	bootstrap := logger.Must(g.levelOr("info"), "console")
	cfg, err := config.NewLoader(bootstrap).Load(g.configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	if g.logLevel != "" {
		cfg.Logging.Level = g.logLevel
	}
	log, err := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return nil, nil, fmt.Errorf("build logger: %w", err)
	}
	return cfg, log, nil
}

func (g *globals) levelOr(fallback string) string {
	if g.logLevel != "" {
		return g.logLevel
	}
	return fallback
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	g := &globals{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Indian restaurant discovery, ordering and reservations",
		Long: `restaurant-bot serves the restaurant API and pages, and doubles as a
terminal client for it.

Run without a subcommand to start the server.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), g)
		},
	}

	cmd.PersistentFlags().StringVarP(&g.configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		serveCmd(g),
		seedCmd(g),
		clearCmd(g),
		restaurantsCmd(g),
		menuCmd(g),
		cartCmd(g),
		checkoutCmd(g),
		reserveCmd(g),
		ordersCmd(g),
		reservationsCmd(g),
		chatCmd(g),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, handlers.Version)
			},
		},
	)

	return cmd
}
