package repository

import (
	"context"
	"fmt"
	"time"

	"asset-tracker/internal/model"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// productRecord is the gorm row type of the products table.
type productRecord struct {
	ID           int64           `gorm:"primaryKey;autoIncrement"`
	Type         string          `gorm:"size:255;not null"`
	Brand        string          `gorm:"size:255;not null"`
	Model        string          `gorm:"size:255;not null"`
	Office       string          `gorm:"size:16;not null;index"`
	PurchaseDate time.Time       `gorm:"type:date;not null"`
	Price        decimal.Decimal `gorm:"type:numeric;not null"`
}

func (productRecord) TableName() string {
	return "products"
}

func toRecord(p *model.Product) productRecord {
	return productRecord{
		ID:           p.ID,
		Type:         p.Type,
		Brand:        p.Brand,
		Model:        p.Model,
		Office:       p.Office.String(),
		PurchaseDate: p.PurchaseDate,
		Price:        p.Price,
	}
}

func (r productRecord) toModel() model.Product {
	return model.Product{
		ID:           r.ID,
		Type:         r.Type,
		Brand:        r.Brand,
		Model:        r.Model,
		Office:       model.ParseOfficeName(r.Office),
		PurchaseDate: model.DateOnly(r.PurchaseDate),
		Price:        r.Price,
	}
}

// gormRepository implements ProductRepository through gorm.
type gormRepository struct {
	db     *gorm.DB
	logger zerolog.Logger
}

// NewGormRepository creates a gorm-backed product repository.
func NewGormRepository(db *gorm.DB, logger zerolog.Logger) ProductRepository {
	return &gormRepository{
		db:     db,
		logger: logger.With().Str("repository", "gorm").Logger(),
	}
}

// Insert creates a products row and copies the generated ID back.
func (r *gormRepository) Insert(ctx context.Context, product *model.Product) error {
	rec := toRecord(product)
	rec.ID = 0

	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		r.logger.Error().
			Err(err).
			Str("brand", product.Brand).
			Str("model", product.Model).
			Msg("failed to insert product")
		return fmt.Errorf("failed to insert product: %w", err)
	}

	product.ID = rec.ID

	r.logger.Debug().Int64("product_id", product.ID).Msg("product inserted successfully")

	return nil
}

// ListAll loads every products row.
func (r *gormRepository) ListAll(ctx context.Context) ([]model.Product, error) {
	var records []productRecord
	if err := r.db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		r.logger.Error().Err(err).Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}

	products := make([]model.Product, 0, len(records))
	for _, rec := range records {
		products = append(products, rec.toModel())
	}

	return products, nil
}
