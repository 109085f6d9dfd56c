package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	chartsExcel "github.com/stevanlohja/mn-pulse-alpha/internal/charts/adapters/excel"
	chartsHttp "github.com/stevanlohja/mn-pulse-alpha/internal/charts/adapters/http/fiber"
	chartsRender "github.com/stevanlohja/mn-pulse-alpha/internal/charts/adapters/render/gochart"
	chartsUsecase "github.com/stevanlohja/mn-pulse-alpha/internal/charts/core/usecase"

	datasetFile "github.com/stevanlohja/mn-pulse-alpha/internal/dataset/adapters/file"
	datasetHttpsource "github.com/stevanlohja/mn-pulse-alpha/internal/dataset/adapters/httpsource"
	datasetPg "github.com/stevanlohja/mn-pulse-alpha/internal/dataset/adapters/postgres"
	datasetPorts "github.com/stevanlohja/mn-pulse-alpha/internal/dataset/core/ports"
	datasetUsecase "github.com/stevanlohja/mn-pulse-alpha/internal/dataset/core/usecase"
	datasetStore "github.com/stevanlohja/mn-pulse-alpha/internal/dataset/store"

	"github.com/stevanlohja/mn-pulse-alpha/internal/config"
	"github.com/stevanlohja/mn-pulse-alpha/internal/web"

	"github.com/gofiber/fiber/v2"
	_ "github.com/lib/pq"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "github.com/stevanlohja/mn-pulse-alpha/docs"
)

func main() {
	// Config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Source reader adapter
	reader, cleanup, err := newReader(cfg)
	if err != nil {
		log.Fatalf("failed to set up source reader: %v", err)
	}
	if cleanup != nil {
		defer cleanup()
	}

	// In-memory pristine dataset
	store := datasetStore.NewMemory()

	// One-shot load. A failure is terminal for the session but does not kill
	// the process: the store remembers it and every chart endpoint reports it.
	loadUC := datasetUsecase.NewLoadDatasetUseCase(reader, store)
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 30*time.Second)
	if ds, err := loadUC.Execute(loadCtx); err != nil {
		log.Printf("dataset load failed: %v", err)
	} else {
		log.Printf("dataset loaded: %d series, %d events", len(ds.Series), len(ds.Events))
	}
	cancelLoad()

	// Usecases
	viewsUC := chartsUsecase.NewGetChartViewsUseCase(store)
	optionsUC := chartsUsecase.NewGetFilterOptionsUseCase(store)

	// HTTP (Fiber) app + handlers
	app := fiber.New()

	chartsHandler := chartsHttp.NewChartsHandler(viewsUC, optionsUC, chartsRender.NewRenderer(), chartsExcel.NewExporter())
	app.Get("/api/charts", chartsHandler.GetCharts)
	app.Get("/api/charts/aggregate.png", chartsHandler.GetAggregatePNG)
	app.Get("/api/filters", chartsHandler.GetFilters)
	app.Get("/api/export", chartsHandler.ExportWorkbook)

	// Dashboard page
	web.Register(app)

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(cfg.Server.Addr); err != nil {
			log.Printf("fiber stopped: %v", err)
		}
	}()

	log.Printf("server started on %s", cfg.Server.Addr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("fiber shutdown error: %v", err)
	}

	log.Println("server exiting")
}

// newReader picks the source adapter the config names: a JSON file on disk, a
// remote JSON document, or warehouse tables.
func newReader(cfg *config.AppConfig) (datasetPorts.DatasetReaderPort, func(), error) {
	switch {
	case cfg.Source.File != "":
		return datasetFile.NewReader(cfg.Source.File), nil, nil

	case cfg.Source.URL != "":
		return datasetHttpsource.NewReader(cfg.Source.URL, nil), nil, nil

	default:
		db, err := sql.Open("postgres", cfg.Source.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}

		db.SetMaxOpenConns(5)
		db.SetMaxIdleConns(2)
		db.SetConnMaxLifetime(30 * time.Minute)

		if err := db.Ping(); err != nil {
			db.Close()
			return nil, nil, err
		}

		return datasetPg.NewDatasetRepository(datasetPg.NewSQLDB(db)), func() { db.Close() }, nil
	}
}
