package repository

import (
	"context"
	"fmt"

	"asset-tracker/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

// Insert stores a product and reads back its generated ID.
// The price is sent as text so that no precision is lost on the way.
func (r *productRepository) Insert(ctx context.Context, product *model.Product) error {
	query := `
		INSERT INTO products (type, brand, model, office, purchase_date, price)
		VALUES ($1, $2, $3, $4, $5, $6::numeric)
		RETURNING id
	`

	err := r.pool.QueryRow(ctx, query,
		product.Type,
		product.Brand,
		product.Model,
		product.Office.String(),
		product.PurchaseDate,
		product.Price.String(),
	).Scan(&product.ID)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("brand", product.Brand).
			Str("model", product.Model).
			Msg("failed to insert product")
		return fmt.Errorf("failed to insert product: %w", err)
	}

	r.logger.Debug().
		Int64("product_id", product.ID).
		Msg("product inserted successfully")

	return nil
}

// ListAll retrieves every product row.
func (r *productRepository) ListAll(ctx context.Context) ([]model.Product, error) {
	query := `
		SELECT id, type, brand, model, office, purchase_date, price::text
		FROM products
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		var (
			p      model.Product
			office string
			price  string
		)
		err := rows.Scan(&p.ID, &p.Type, &p.Brand, &p.Model, &office, &p.PurchaseDate, &price)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}

		p.Office = model.ParseOfficeName(office)
		p.PurchaseDate = model.DateOnly(p.PurchaseDate)
		p.Price, err = decimal.NewFromString(price)
		if err != nil {
			r.logger.Error().Err(err).Int64("product_id", p.ID).Str("price", price).Msg("invalid stored price")
			return nil, fmt.Errorf("failed to parse price of product %d: %w", p.ID, err)
		}

		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}
