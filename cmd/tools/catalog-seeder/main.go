// cmd/tools/catalog-seeder/main.go

// catalog-seeder writes a product catalog into a PostgreSQL or Elasticsearch
// store, either from the built-in generator or from a validated JSON seed
// file.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"foodiebot/internal/catalog"
	"foodiebot/internal/common/config"
	"foodiebot/internal/common/database"
	"foodiebot/internal/common/logger"
	"foodiebot/internal/models"
)

func main() {
	var (
		target   = flag.String("target", "postgres", "store to seed: postgres | elasticsearch | stdout")
		seedFile = flag.String("seed-file", "", "JSON product file; empty uses the built-in generator")
		seed     = flag.Int64("seed", 1, "generator seed when no seed file is given")
	)
	flag.Parse()

	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	products, err := loadProducts(*seedFile, *seed)
	if err != nil {
		zapLog.Fatal("loading products failed", zap.Error(err))
	}
	zapLog.Info("products loaded", zap.Int("count", len(products)))

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	switch *target {
	case "postgres":
		cfg, err := config.Load()
		if err != nil {
			zapLog.Fatal("config load failed", zap.Error(err))
		}
		client, err := database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			zapLog.Fatal("postgres connection failed", zap.Error(err))
		}
		defer client.Close()
		if err := client.Ping(ctx); err != nil {
			zapLog.Fatal("postgres ping failed", zap.Error(err))
		}
		store := catalog.NewPostgresStore(client.DB)
		if err := store.InsertProducts(ctx, products); err != nil {
			zapLog.Fatal("seeding postgres failed", zap.Error(err))
		}
		zapLog.Info("postgres seeded", zap.Int("products", len(products)))

	case "elasticsearch":
		cfg, err := config.Load()
		if err != nil {
			zapLog.Fatal("config load failed", zap.Error(err))
		}
		client, err := database.NewElasticsearch(cfg.Database.Elasticsearch)
		if err != nil {
			zapLog.Fatal("elasticsearch connection failed", zap.Error(err))
		}
		if err := client.Ping(); err != nil {
			zapLog.Fatal("elasticsearch ping failed", zap.Error(err))
		}
		store := catalog.NewElasticsearchStore(client.Client, cfg.Database.Elasticsearch.Index)
		if err := store.IndexProducts(ctx, products); err != nil {
			zapLog.Fatal("seeding elasticsearch failed", zap.Error(err))
		}
		zapLog.Info("elasticsearch seeded", zap.Int("products", len(products)))

	case "stdout":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(products); err != nil {
			zapLog.Fatal("encoding products failed", zap.Error(err))
		}

	default:
		fmt.Fprintf(os.Stderr, "unknown target %q\n", *target)
		os.Exit(2)
	}
}

func loadProducts(seedFile string, seed int64) ([]models.Product, error) {
	if seedFile != "" {
		return catalog.LoadSeedFile(seedFile)
	}
	return catalog.Generate(seed), nil
}
