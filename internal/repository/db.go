package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/gorm"
)

// productsSchema is the DDL of the products table used by the pgx repository.
// It matches the table gorm migrates from productRecord.
const productsSchema = `
	CREATE TABLE IF NOT EXISTS products (
		id BIGSERIAL PRIMARY KEY,
		type VARCHAR(255) NOT NULL,
		brand VARCHAR(255) NOT NULL,
		model VARCHAR(255) NOT NULL,
		office VARCHAR(16) NOT NULL,
		purchase_date DATE NOT NULL,
		price NUMERIC NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_products_office ON products(office);
`

// EnsureSchema creates the products table when it does not exist yet.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, productsSchema); err != nil {
		return fmt.Errorf("failed to create products schema: %w", err)
	}
	return nil
}

// Migrate brings the products table of a gorm database up to date.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(&productRecord{}); err != nil {
		return fmt.Errorf("failed to migrate products table: %w", err)
	}
	return nil
}
