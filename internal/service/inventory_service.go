package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"asset-tracker/internal/calculator"
	"asset-tracker/internal/model"
	"asset-tracker/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// Clock returns the current time.
type Clock func() time.Time

// inventoryService implements InventoryService.
type inventoryService struct {
	repo     repository.ProductRepository
	validate *validator.Validate
	now      Clock
	logger   zerolog.Logger
}

// NewInventoryService creates a new inventory service. A nil clock uses time.Now.
func NewInventoryService(repo repository.ProductRepository, now Clock, logger zerolog.Logger) InventoryService {
	if now == nil {
		now = time.Now
	}
	return &inventoryService{
		repo:     repo,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      now,
		logger:   logger.With().Str("service", "inventory").Logger(),
	}
}

// AddProduct validates and stores a new product.
// Products for an unrecognised office are rejected with model.ErrUnknownOffice.
func (s *inventoryService) AddProduct(ctx context.Context, input model.ProductInput) (*model.Product, error) {
	input.Type = strings.TrimSpace(input.Type)
	input.Brand = strings.TrimSpace(input.Brand)
	input.Model = strings.TrimSpace(input.Model)

	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	product := &model.Product{
		Type:         input.Type,
		Brand:        input.Brand,
		Model:        input.Model,
		Office:       input.Office,
		PurchaseDate: model.DateOnly(input.PurchaseDate),
		Price:        input.Price,
	}

	if err := s.repo.Insert(ctx, product); err != nil {
		s.logger.Error().Err(err).Str("brand", product.Brand).Msg("failed to add product")
		return nil, fmt.Errorf("failed to add product: %w", err)
	}

	s.logger.Info().
		Int64("product_id", product.ID).
		Str("office", product.Office.String()).
		Str("price", product.Price.String()).
		Msg("product added")

	return product, nil
}

// ListProducts returns every product sorted by office and purchase date.
func (s *inventoryService) ListProducts(ctx context.Context) ([]model.ProductView, error) {
	products, err := s.repo.ListAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list products")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	views := calculator.Enrich(products, s.now())

	for _, v := range views {
		if v.Err != nil {
			s.logger.Warn().
				Err(v.Err).
				Int64("product_id", v.ID).
				Msg("product has no valid office")
		}
	}

	s.logger.Debug().Int("count", len(views)).Msg("listed products")

	return views, nil
}

// validateInput validates a product input.
func (s *inventoryService) validateInput(input model.ProductInput) error {
	if !input.Office.Known() {
		s.logger.Warn().Int("office", int(input.Office)).Msg("rejected product with unknown office")
		return model.ErrUnknownOffice
	}

	if err := s.validate.Struct(input); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			s.logger.Warn().Str("field", verrs[0].Field()).Str("tag", verrs[0].Tag()).Msg("invalid product input")
			return fmt.Errorf("%w: %s is %s", model.ErrInvalidProduct, strings.ToLower(verrs[0].Field()), verrs[0].Tag())
		}
		return fmt.Errorf("%w: %v", model.ErrInvalidProduct, err)
	}

	if input.Price.IsNegative() {
		s.logger.Warn().Str("price", input.Price.String()).Msg("rejected negative price")
		return fmt.Errorf("%w: price must not be negative", model.ErrInvalidProduct)
	}

	return nil
}
