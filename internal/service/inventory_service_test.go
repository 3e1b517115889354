package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"asset-tracker/internal/model"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductRepository is a mock implementation of ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Insert(ctx context.Context, product *model.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) ListAll(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

func validInput() model.ProductInput {
	return model.ProductInput{
		Type:         "Phone",
		Brand:        "iPhone",
		Model:        "11",
		Office:       model.OfficeSpain,
		PurchaseDate: time.Date(2022, time.June, 25, 14, 30, 0, 0, time.UTC),
		Price:        decimal.RequireFromString("990"),
	}
}

func TestInventoryService_AddProduct(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	tests := []struct {
		name        string
		input       func() model.ProductInput
		callsRepo   bool
		repoError   error
		expectedErr error
	}{
		{
			name:      "Success",
			input:     validInput,
			callsRepo: true,
		},
		{
			name: "Zero price accepted",
			input: func() model.ProductInput {
				in := validInput()
				in.Price = decimal.Zero
				return in
			},
			callsRepo: true,
		},
		{
			name: "Unknown office rejected",
			input: func() model.ProductInput {
				in := validInput()
				in.Office = model.OfficeUnknown
				return in
			},
			expectedErr: model.ErrUnknownOffice,
		},
		{
			name: "Out of range office rejected",
			input: func() model.ProductInput {
				in := validInput()
				in.Office = model.OfficeLocation(42)
				return in
			},
			expectedErr: model.ErrUnknownOffice,
		},
		{
			name: "Blank brand rejected",
			input: func() model.ProductInput {
				in := validInput()
				in.Brand = "   "
				return in
			},
			expectedErr: model.ErrInvalidProduct,
		},
		{
			name: "Missing purchase date rejected",
			input: func() model.ProductInput {
				in := validInput()
				in.PurchaseDate = time.Time{}
				return in
			},
			expectedErr: model.ErrInvalidProduct,
		},
		{
			name: "Negative price rejected",
			input: func() model.ProductInput {
				in := validInput()
				in.Price = decimal.RequireFromString("-0.01")
				return in
			},
			expectedErr: model.ErrInvalidProduct,
		},
		{
			name:      "Repository error",
			input:     validInput,
			callsRepo: true,
			repoError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockProductRepository)
			if tt.callsRepo {
				mockRepo.On("Insert", ctx, mock.AnythingOfType("*model.Product")).
					Run(func(args mock.Arguments) {
						args.Get(1).(*model.Product).ID = 7
					}).
					Return(tt.repoError)
			}

			svc := NewInventoryService(mockRepo, nil, logger)
			product, err := svc.AddProduct(ctx, tt.input())

			switch {
			case tt.repoError != nil:
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.repoError)
				assert.Nil(t, product)
			case tt.expectedErr != nil:
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, product)
			default:
				require.NoError(t, err)
				require.NotNil(t, product)
				assert.Equal(t, int64(7), product.ID)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestInventoryService_AddProductNormalisesFields(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockProductRepository)

	var stored *model.Product
	mockRepo.On("Insert", ctx, mock.AnythingOfType("*model.Product")).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*model.Product)
		}).
		Return(nil)

	in := validInput()
	in.Brand = "  iPhone "
	in.PurchaseDate = time.Date(2022, time.June, 25, 23, 59, 0, 0, time.FixedZone("CEST", 2*3600))

	svc := NewInventoryService(mockRepo, nil, zerolog.Nop())
	_, err := svc.AddProduct(ctx, in)

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "iPhone", stored.Brand)
	assert.Equal(t, time.Date(2022, time.June, 25, 0, 0, 0, 0, time.UTC), stored.PurchaseDate)
	assert.True(t, decimal.RequireFromString("990").Equal(stored.Price))
}

func TestInventoryService_AddProductValidationMessage(t *testing.T) {
	mockRepo := new(MockProductRepository)
	svc := NewInventoryService(mockRepo, nil, zerolog.Nop())

	in := validInput()
	in.Model = ""

	_, err := svc.AddProduct(context.Background(), in)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "model is required")
	mockRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestInventoryService_ListProducts(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	stored := []model.Product{
		{ID: 1, Type: "Computer", Brand: "HP", Model: "Elitebook", Office: model.OfficeSweden,
			PurchaseDate: time.Date(2023, time.October, 2, 0, 0, 0, 0, time.UTC), Price: decimal.RequireFromString("100")},
		{ID: 2, Type: "Phone", Brand: "iPhone", Model: "8", Office: model.OfficeSpain,
			PurchaseDate: time.Date(2018, time.December, 29, 0, 0, 0, 0, time.UTC), Price: decimal.RequireFromString("100")},
		{ID: 3, Type: "Computer", Brand: "Asus", Model: "W234", Office: model.OfficeUSA,
			PurchaseDate: now.AddDate(0, 0, -920), Price: decimal.RequireFromString("1200")},
		{ID: 4, Type: "Phone", Brand: "Nokia", Model: "3310", Office: model.OfficeUnknown,
			PurchaseDate: now, Price: decimal.RequireFromString("10")},
	}

	mockRepo := new(MockProductRepository)
	mockRepo.On("ListAll", ctx).Return(stored, nil)

	svc := NewInventoryService(mockRepo, fixedClock(now), zerolog.Nop())
	views, err := svc.ListProducts(ctx)

	require.NoError(t, err)
	require.Len(t, views, 4)

	assert.Equal(t, int64(4), views[0].ID)
	assert.ErrorIs(t, views[0].Err, model.ErrInvalidState)

	assert.Equal(t, int64(2), views[1].ID)
	assert.Equal(t, "EUR", views[1].Currency)
	assert.Equal(t, "90.00", views[1].LocalPrice.StringFixed(2))
	assert.Equal(t, model.StatusRed, views[1].Status)

	assert.Equal(t, int64(1), views[2].ID)
	assert.Equal(t, "SEK", views[2].Currency)
	assert.Equal(t, "1054.00", views[2].LocalPrice.StringFixed(2))
	assert.Equal(t, model.StatusNormal, views[2].Status)

	assert.Equal(t, int64(3), views[3].ID)
	assert.Equal(t, model.StatusYellow, views[3].Status)

	mockRepo.AssertExpectations(t)
}

func TestInventoryService_ListProductsRepositoryError(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockProductRepository)
	mockRepo.On("ListAll", ctx).Return(nil, errors.New("connection refused"))

	svc := NewInventoryService(mockRepo, nil, zerolog.Nop())
	views, err := svc.ListProducts(ctx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
	assert.Nil(t, views)
	mockRepo.AssertExpectations(t)
}
