// Package main is the spreadsheet import tool. It seeds the database from the
// Clients/Products/Invoices/InvoiceItems workbooks and exits.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"fakturo/internal/importer"
	"fakturo/internal/infrastructure/storage/postgres"
	"fakturo/internal/infrastructure/storage/postgres/entity_repo"
	"fakturo/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	dataDir := flag.String("data", "./data", "directory containing the xlsx workbooks")
	flag.Parse()

	log, err := logger.New(logger.Config{
		Level:       getEnv("LOG_LEVEL", "info"),
		Development: getEnv("APP_ENV", "development") == "development",
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx := logger.WithLogger(context.Background(), log)

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("required environment variable DATABASE_URL not set")
	}

	if err := postgres.RunMigrations(dsn); err != nil {
		log.Fatalw("failed to run migrations", "error", err)
	}

	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(dsn))
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	txm := postgres.NewTxManager(pool)
	clientRepo := entity_repo.NewClientRepo(txm)
	productRepo := entity_repo.NewProductRepo(txm)
	invoiceRepo := entity_repo.NewInvoiceRepo(txm)

	// Importer order matters: invoices reference clients and products.
	if err := importer.NewClientsImporter(clientRepo).
		Run(ctx, filepath.Join(*dataDir, "Clients.xlsx")); err != nil {
		log.Errorw("clients import failed", "error", err)
	}

	if err := importer.NewProductsImporter(productRepo).
		Run(ctx, filepath.Join(*dataDir, "Products.xlsx")); err != nil {
		log.Errorw("products import failed", "error", err)
	}

	if err := importer.NewInvoicesImporter(invoiceRepo, productRepo).
		Run(ctx,
			filepath.Join(*dataDir, "Invoices.xlsx"),
			filepath.Join(*dataDir, "InvoiceItems.xlsx"),
		); err != nil {
		log.Errorw("invoices import failed", "error", err)
	}

	log.Info("import finished")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
