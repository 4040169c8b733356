package main

import (
	"context"
	"fmt"

	"restaurant-bot/seed"
	"restaurant-bot/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func seedCmd(g *globals) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the sample restaurants and menus",
		Long: `Load the sample restaurants and menus into the configured store.
An already populated catalog is left alone unless --force is given, which
wipes restaurants and menu items first.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd.Context(), g, func(ctx context.Context, s store.Store, log *zap.SugaredLogger) error {
				if force {
					if err := seed.Clear(ctx, s, log); err != nil {
						return err
					}
				}
				seeded, err := seed.Run(ctx, s, log)
				if err != nil {
					return err
				}
				if !seeded {
					fmt.Fprintln(cmd.OutOrStdout(), "Catalog already populated, nothing to do (use --force to reseed)")
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Sample data seeded successfully")
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Clear the catalog before seeding")
	return cmd
}

func clearCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete every restaurant and menu item",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd.Context(), g, func(ctx context.Context, s store.Store, log *zap.SugaredLogger) error {
				if err := seed.Clear(ctx, s, log); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Catalog cleared")
				return nil
			})
		},
	}
}

// withStore opens the configured store for the duration of fn
func withStore(ctx context.Context, g *globals, fn func(context.Context, store.Store, *zap.SugaredLogger) error) error {
	cfg, log, err := g.load()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	s, err := cfg.OpenStore()
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	ctx, cancel := context.WithTimeout(ctx, cfg.Database.Timeout)
	defer cancel()
	defer func() {
		if err := s.Close(ctx); err != nil {
			log.Warnw("failed to close store", "error", err)
		}
	}()

	return fn(ctx, s, log)
}
