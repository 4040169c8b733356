package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"restaurant-bot/chatbot"
	"restaurant-bot/config"
	"restaurant-bot/events"
	"restaurant-bot/handlers"
	"restaurant-bot/metrics"
	"restaurant-bot/orders"
	"restaurant-bot/reservations"
	"restaurant-bot/routes"
	"restaurant-bot/seed"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func serveCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), g)
		},
	}
}

func serve(ctx context.Context, g *globals) error {
	cfg, log, err := g.load()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	s, err := cfg.OpenStore()
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	log.Infow("store opened", "driver", cfg.Database.Driver)

	if cfg.Database.SeedOnStart {
		seedCtx, cancel := context.WithTimeout(ctx, cfg.Database.Timeout)
		_, err := seed.Run(seedCtx, s, log)
		cancel()
		if err != nil {
			return fmt.Errorf("seed catalog: %w", err)
		}
	}

	publisher := newPublisher(cfg, log)
	m := metrics.New()

	h := handlers.New(
		s,
		orders.NewService(s, s, publisher, m, log),
		reservations.NewService(s, s, publisher, m, log),
		chatbot.Default(),
		m,
		log,
	)

	gin.SetMode(cfg.Server.Mode)
	router := routes.NewRouter(h, routes.Options{
		StaticDir: cfg.Server.StaticDir,
		Metrics:   m,
		Logger:    log,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	shutdown := make(chan error, 1)
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		sig := <-quit
		log.Infow("shutting down", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		shutdown <- drain(ctx, srv, publisher, s, log)
	}()

	log.Infow("server running", "addr", "http://localhost"+srv.Addr, "mode", cfg.Server.Mode)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen: %w", err)
	}

	if err := <-shutdown; err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("server stopped")
	return nil
}

type closer interface {
	Close(ctx context.Context) error
}

// drain waits for in-flight requests to finish, then closes the publisher and
// the store they write to
func drain(ctx context.Context, srv *http.Server, publisher events.Publisher, s closer, log *zap.SugaredLogger) error {
	err := srv.Shutdown(ctx)
	if err != nil {
		log.Errorw("server did not drain in time", "error", err)
	}
	if err := publisher.Close(); err != nil {
		log.Errorw("failed to close event publisher", "error", err)
	}
	if err := s.Close(ctx); err != nil {
		log.Errorw("failed to close store", "error", err)
	}
	return err
}

// newPublisher returns a Kafka publisher when brokers are configured and a
// no-op one otherwise; publish failures are logged, never returned to callers
func newPublisher(cfg *config.Config, log *zap.SugaredLogger) events.Publisher {
	if len(cfg.Events.Brokers) == 0 {
		log.Info("no kafka brokers configured, events disabled")
		return events.Noop{}
	}
	log.Infow("publishing events", "brokers", cfg.Events.Brokers, "topic", cfg.Events.Topic)
	return events.Logged{
		Publisher: events.NewKafkaPublisher(cfg.Events.Brokers, cfg.Events.Topic),
		Log:       log,
	}
}
