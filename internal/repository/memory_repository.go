package repository

import (
	"context"
	"slices"
	"sync"

	"asset-tracker/internal/model"

	"github.com/rs/zerolog"
)

// memoryRepository implements ProductRepository with an in-process slice.
type memoryRepository struct {
	mu       sync.RWMutex
	products []model.Product
	nextID   int64
	logger   zerolog.Logger
}

// NewMemoryRepository creates an empty in-memory product repository.
func NewMemoryRepository(logger zerolog.Logger) ProductRepository {
	return &memoryRepository{
		nextID: 1,
		logger: logger.With().Str("repository", "memory").Logger(),
	}
}

// Insert appends a product and assigns it the next ID.
func (r *memoryRepository) Insert(ctx context.Context, product *model.Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	product.ID = r.nextID
	r.nextID++
	r.products = append(r.products, *product)

	r.logger.Debug().Int64("product_id", product.ID).Msg("product stored")

	return nil
}

// ListAll returns a copy of the stored products in insertion order.
func (r *memoryRepository) ListAll(ctx context.Context) ([]model.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	products := slices.Clone(r.products)
	if products == nil {
		products = []model.Product{}
	}
	return products, nil
}
