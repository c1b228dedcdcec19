// cmd/foodiebot/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"foodiebot/internal/catalog"
	"foodiebot/internal/common/config"
	"foodiebot/internal/common/database"
	"foodiebot/internal/common/logger"
	"foodiebot/internal/convlog"
	"foodiebot/internal/engine"
	"foodiebot/internal/models"
	"foodiebot/internal/server"
	"foodiebot/internal/session"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("starting foodiebot",
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	ctx := context.Background()

	catalogStore, err := buildCatalogStore(ctx, cfg, zapLog)
	if err != nil {
		zapLog.Fatal("catalog store initialization failed", zap.Error(err))
	}

	sessionStore, err := buildSessionStore(ctx, cfg, zapLog)
	if err != nil {
		zapLog.Fatal("session store initialization failed", zap.Error(err))
	}

	turnLog, err := buildConversationLog(ctx, cfg, zapLog)
	if err != nil {
		zapLog.Fatal("conversation log initialization failed", zap.Error(err))
	}

	eng := engine.New(engine.Config{
		TopN:                 cfg.Engine.TopN,
		NeutralBaselineScore: cfg.Engine.NeutralBaselineScore,
		TargetMatchRatio:     cfg.Engine.TargetMatchRatio,
		ScoreWeights:         cfg.Engine.ScoreWeights,
	}, catalogStore, sessionStore, turnLog, log)

	srv := server.New(cfg.Server.Address, eng, log)

	// Metrics and pprof on a separate listener so the chat surface stays
	// minimal.
	go func() {
		http.Handle("/metrics", promhttp.Handler())
		zapLog.Info("metrics listening", zap.String("address", cfg.Server.MetricsAddress))
		if err := http.ListenAndServe(cfg.Server.MetricsAddress, nil); err != nil {
			zapLog.Error("metrics server stopped", zap.Error(err))
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		zapLog.Fatal("chat server failed", zap.Error(err))
	case sig := <-stop:
		zapLog.Info("shutting down", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("shutdown incomplete", zap.Error(err))
	}
	zapLog.Info("shutdown complete")
}

func buildCatalogStore(ctx context.Context, cfg *config.Config, zapLog *zap.Logger) (catalog.Store, error) {
	switch cfg.Stores.Catalog {
	case "postgres":
		var client *database.PostgresClient
		err := retryWithBackoff(func() error {
			var err error
			client, err = database.NewPostgres(cfg.Database.Postgres)
			if err != nil {
				return err
			}
			return client.Ping(ctx)
		}, 5, 2*time.Second, zapLog, "PostgreSQL catalog connection")
		if err != nil {
			return nil, err
		}
		return catalog.NewPostgresStore(client.DB), nil

	case "elasticsearch":
		var client *database.ElasticsearchClient
		err := retryWithBackoff(func() error {
			var err error
			client, err = database.NewElasticsearch(cfg.Database.Elasticsearch)
			if err != nil {
				return err
			}
			return client.Ping()
		}, 5, 2*time.Second, zapLog, "Elasticsearch catalog connection")
		if err != nil {
			return nil, err
		}
		return catalog.NewElasticsearchStore(client.Client, cfg.Database.Elasticsearch.Index), nil

	default:
		products, err := memoryCatalog(cfg)
		if err != nil {
			return nil, err
		}
		zapLog.Info("using in-memory catalog", zap.Int("products", len(products)))
		return catalog.NewMemoryStore(products), nil
	}
}

func memoryCatalog(cfg *config.Config) ([]models.Product, error) {
	if cfg.Catalog.SeedFile != "" {
		return catalog.LoadSeedFile(cfg.Catalog.SeedFile)
	}
	return catalog.Generate(cfg.Catalog.Seed), nil
}

func buildSessionStore(ctx context.Context, cfg *config.Config, zapLog *zap.Logger) (session.Store, error) {
	if cfg.Stores.Sessions != "redis" {
		return session.NewMemoryStore(), nil
	}

	var client *database.RedisClient
	err := retryWithBackoff(func() error {
		var err error
		client, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		return client.Ping(ctx)
	}, 5, 2*time.Second, zapLog, "Redis session connection")
	if err != nil {
		return nil, err
	}
	ttl := time.Duration(cfg.Session.TTLMinutes) * time.Minute
	return session.NewRedisStore(client.Client, ttl), nil
}

func buildConversationLog(ctx context.Context, cfg *config.Config, zapLog *zap.Logger) (convlog.Store, error) {
	if cfg.Stores.ConversationLog != "postgres" {
		return convlog.NewMemoryStore(), nil
	}

	var client *database.PostgresClient
	err := retryWithBackoff(func() error {
		var err error
		client, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		return client.Ping(ctx)
	}, 5, 2*time.Second, zapLog, "PostgreSQL conversation log connection")
	if err != nil {
		return nil, err
	}
	return convlog.NewPostgresStore(client.DB), nil
}
