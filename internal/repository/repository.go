package repository

import (
	"context"

	"asset-tracker/internal/model"
)

// ProductRepository defines the interface for product storage.
type ProductRepository interface {
	// Insert stores a new product and sets its ID.
	Insert(ctx context.Context, product *model.Product) error

	// ListAll retrieves every stored product, in no particular order.
	ListAll(ctx context.Context) ([]model.Product, error)
}
