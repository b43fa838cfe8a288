package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v3"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/leadscope/leadscope-go/internal/config"
	"github.com/leadscope/leadscope-go/internal/dataset"
	"github.com/leadscope/leadscope-go/internal/db"
	"github.com/leadscope/leadscope-go/internal/handler"
	"github.com/leadscope/leadscope-go/internal/middleware"
	"github.com/leadscope/leadscope-go/internal/router"
	"github.com/leadscope/leadscope-go/internal/service"
)

func main() {
	cfg := config.Load()

	middleware.InitLogger(cfg.LogLevel, "leadscope-api")

	ctx := context.Background()

	// The dataset is loaded in full, once; queries never touch the source
	// again.
	var (
		ds   *dataset.Dataset
		pool *pgxpool.Pool
		err  error
	)
	switch cfg.DatasetSource {
	case "postgres":
		pool, err = db.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		defer pool.Close()

		ds, err = dataset.NewPostgresSource(pool).Load(ctx)
	case "file":
		ds, err = dataset.LoadFile(cfg.DatasetPath)
	default:
		log.Fatalf("unknown DATASET_SOURCE %q (want file or postgres)", cfg.DatasetSource)
	}
	if err != nil {
		log.Fatalf("failed to load dataset: %v", err)
	}
	log.Printf("dataset loaded: %d leads (version %s)", len(ds.Leads), ds.Version)

	cache := service.NewCacheService(cfg.RedisURL)
	defer cache.Close()

	leadSvc := service.NewLeadService(ds, cache)

	handler.InitMetrics(leadSvc)

	h := &router.Handlers{
		Lead:   handler.NewLeadHandler(leadSvc),
		Facet:  handler.NewFacetHandler(leadSvc),
		Stats:  handler.NewStatsHandler(leadSvc),
		Export: handler.NewExportHandler(leadSvc),
		Health: handler.NewHealthHandler(leadSvc, pool, cache.Client()),
	}

	app := fiber.New(fiber.Config{
		AppName:      "LeadScope API",
		ServerHeader: "LeadScope",
	})

	router.Setup(app, h, cfg.CORSOrigins)

	log.Printf("LeadScope backend starting on :%s (env=%s)", cfg.Port, cfg.Environment)
	log.Fatal(app.Listen(":" + cfg.Port))
}
