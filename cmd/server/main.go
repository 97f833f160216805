package main

import (
	"context"
	"database/sql"
	"dispatch-board-service/internal/adapters/hints"
	"dispatch-board-service/internal/adapters/journal"
	"dispatch-board-service/internal/adapters/maps"
	"dispatch-board-service/internal/adapters/notify"
	"dispatch-board-service/internal/adapters/seeds"
	"dispatch-board-service/internal/api"
	"dispatch-board-service/internal/config"
	"dispatch-board-service/internal/platform/db"
	"dispatch-board-service/internal/platform/logging"
	"dispatch-board-service/internal/platform/metrics"
	"dispatch-board-service/internal/ports"
	"dispatch-board-service/internal/services"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// main is the application composition root.
// It wires concrete adapters behind ports and starts the HTTP server.
func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := logging.Setup(cfg.Env)
	if envErr != nil {
		logger.Info().Msg("No .env file found (using environment variables)")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

func run(ctx context.Context, cfg config.Config, logger zerolog.Logger) error {
	seed, err := seeds.Load(cfg.SeedPath)
	if err != nil {
		return err
	}

	hintSource, err := hints.NewRandomSource(seed.Hints)
	if err != nil {
		return fmt.Errorf("run: hint catalog: %w", err)
	}

	store, err := services.NewAssignmentStore(seed.Assignments, hintSource)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	sink, closeSinks, err := buildSinks(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeSinks()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector, err := metrics.NewPrometheus(reg, "dispatch")
	if err != nil {
		return fmt.Errorf("run: register metrics: %w", err)
	}

	svc := services.NewDispatchService(
		store,
		sink,
		notify.NewLineStubNotifier(logger),
		maps.NewGoogleMapsLinkBuilder(cfg.MapsBaseURL),
		collector,
	)
	router := api.NewRouter(svc, collector, reg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", srv.Addr).Int("assignments", store.Len()).Msg("Server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("run: listen: %w", err)
	case <-ctx.Done():
	}

	logger.Info().Msg("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("run: shutdown: %w", err)
	}
	return nil
}

// buildSinks always journals to the log and adds Postgres and Redis when configured.
func buildSinks(ctx context.Context, cfg config.Config, logger zerolog.Logger) (ports.EventSink, func(), error) {
	sinks := journal.Fanout{journal.NewLogSink(logger)}
	var (
		conn   *sql.DB
		client *redis.Client
	)
	closeAll := func() {
		if conn != nil {
			_ = conn.Close()
		}
		if client != nil {
			_ = client.Close()
		}
	}

	if cfg.DatabaseURL != "" {
		var err error
		conn, err = db.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, func() {}, fmt.Errorf("build sinks: %w", err)
		}
		if err := journal.InitSchema(ctx, conn); err != nil {
			closeAll()
			return nil, func() {}, fmt.Errorf("build sinks: %w", err)
		}
		sinks = append(sinks, journal.NewPostgresSink(conn))
		log.Info().Msg("Postgres event journal enabled")
	}

	if cfg.RedisAddr != "" {
		var err error
		client, err = journal.DialRedis(ctx, cfg.RedisAddr)
		if err != nil {
			closeAll()
			return nil, func() {}, fmt.Errorf("build sinks: %w", err)
		}
		sinks = append(sinks, journal.NewRedisStreamSink(client, cfg.RedisStream))
		log.Info().Str("stream", cfg.RedisStream).Msg("Redis event stream enabled")
	}

	return sinks, closeAll, nil
}
