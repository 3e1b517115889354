package service

import (
	"context"

	"asset-tracker/internal/model"
)

// InventoryService defines the operations offered to the console.
type InventoryService interface {
	// AddProduct validates and stores a new product.
	AddProduct(ctx context.Context, input model.ProductInput) (*model.Product, error)

	// ListProducts returns every product sorted for display and enriched
	// with country, local price and status.
	ListProducts(ctx context.Context) ([]model.ProductView, error)
}
