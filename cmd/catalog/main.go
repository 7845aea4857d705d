package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/skystore/catalog/internal/adapters/config"
	"github.com/skystore/catalog/internal/adapters/console"
	"github.com/skystore/catalog/internal/adapters/jsonfile"
	"github.com/skystore/catalog/internal/adapters/notify"
	"github.com/skystore/catalog/internal/core/domain"
	"github.com/skystore/catalog/internal/core/logger"
	"github.com/skystore/catalog/internal/core/service"
)

func main() {
	// initialize config and logger
	cfg := config.NewConfig()
	if err := logger.Initialize(cfg.Logger.Endpoint, cfg.Logger.ServiceName, cfg.Logger.IsProduction); err != nil {
		// logger not available yet, fall back to stderr
		fmt.Println("failed to initialize logger: " + err.Error())
		os.Exit(1)
	}

	ctx := context.Background()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := logger.Shutdown(shutdownCtx); err != nil {
			fmt.Println("logger shutdown error: " + err.Error())
		}
	}()

	// ports
	loader := jsonfile.NewLoader(cfg.Catalog.Path)
	confirmer := console.NewConfirmer(os.Stdin, os.Stdout, cfg.Confirm.AssumeYes)
	notifier := notify.NewLogNotifier()

	// services over a fresh set of process-wide counters
	counters := domain.NewCounters()
	catalogService := service.NewCatalogService(counters, confirmer, notifier)

	records, err := loader.Load(ctx)
	if err != nil {
		logger.Fatal(ctx, "Failed to load catalog", err, map[string]any{"path": cfg.Catalog.Path})
	}

	categories, err := catalogService.ImportRecords(ctx, records)
	if err != nil {
		logger.Fatal(ctx, "Failed to import catalog", err, nil)
	}
	logger.Info(ctx, "Catalog imported", map[string]any{
		"categories": catalogService.CategoryCount(),
		"products":   catalogService.ProductCount(),
	})

	for _, category := range categories {
		fmt.Println(category.DisplayInfo())
		for it := category.Iter(); ; {
			product, ok := it.Next()
			if !ok {
				break
			}
			fmt.Println("  " + product.String())
		}
		fmt.Printf("  средняя цена: %.2f руб.\n", float64(category.AveragePrice()))
	}
}
