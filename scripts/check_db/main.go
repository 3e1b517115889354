package main

import (
	"context"
	"fmt"
	"os"

	"asset-tracker/internal/config"
	"asset-tracker/internal/database"
	"asset-tracker/internal/repository"

	"github.com/rs/zerolog"
)

// Connects with the DB_* settings, creates the products table if needed
// and reports how many products it holds.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to load configuration: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := database.NewPool(ctx, cfg.Database, zerolog.Nop())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	var dbName string
	err = pool.QueryRow(ctx, "SELECT current_database()").Scan(&dbName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "QueryRow failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully connected to database: %s\n", dbName)

	if err := repository.EnsureSchema(ctx, pool); err != nil {
		fmt.Fprintf(os.Stderr, "Schema check failed: %v\n", err)
		os.Exit(1)
	}

	products, err := repository.NewProductRepository(pool, zerolog.Nop()).ListAll(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Listing products failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Products table holds %d rows\n", len(products))
}
