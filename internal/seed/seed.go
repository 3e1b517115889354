package seed

import (
	"context"
	"fmt"
	"io"
	"time"

	"asset-tracker/internal/model"
	"asset-tracker/internal/repository"
	"asset-tracker/internal/service"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

// Loader defines the interface for loading seed inventory files.
type Loader interface {
	// Load reads a CSV seed file and returns the products it describes.
	Load(ctx context.Context, path string) ([]model.ProductInput, error)
}

// Row is one line of a seed CSV file.
type Row struct {
	Type         string `csv:"type"`
	Brand        string `csv:"brand"`
	Model        string `csv:"model"`
	Office       string `csv:"office"`
	PurchaseDate string `csv:"purchase_date"`
	Price        string `csv:"price"`
}

// Input converts the row into a product input.
func (r Row) Input() (model.ProductInput, error) {
	office := model.ParseOfficeName(r.Office)
	if !office.Known() {
		return model.ProductInput{}, fmt.Errorf("%w: %q", model.ErrUnknownOffice, r.Office)
	}

	date, err := model.ParseDate(r.PurchaseDate)
	if err != nil {
		return model.ProductInput{}, fmt.Errorf("invalid purchase date %q: %w", r.PurchaseDate, err)
	}

	price, err := decimal.NewFromString(r.Price)
	if err != nil {
		return model.ProductInput{}, fmt.Errorf("invalid price %q: %w", r.Price, err)
	}

	return model.ProductInput{
		Type:         r.Type,
		Brand:        r.Brand,
		Model:        r.Model,
		Office:       office,
		PurchaseDate: date,
		Price:        price,
	}, nil
}

// RowFromInput is the inverse of Row.Input.
func RowFromInput(in model.ProductInput) Row {
	return Row{
		Type:         in.Type,
		Brand:        in.Brand,
		Model:        in.Model,
		Office:       in.Office.String(),
		PurchaseDate: in.PurchaseDate.Format(model.DateLayout),
		Price:        in.Price.String(),
	}
}

// Parse decodes a seed CSV stream. Line numbers in errors count the header.
func Parse(r io.Reader) ([]model.ProductInput, error) {
	var rows []Row
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode seed csv: %w", err)
	}

	inputs := make([]model.ProductInput, 0, len(rows))
	for i, row := range rows {
		in, err := row.Input()
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+2, err)
		}
		inputs = append(inputs, in)
	}

	return inputs, nil
}

// Write encodes inputs as a seed CSV stream with a header line.
func Write(w io.Writer, inputs []model.ProductInput) error {
	rows := make([]Row, 0, len(inputs))
	for _, in := range inputs {
		rows = append(rows, RowFromInput(in))
	}
	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("failed to encode seed csv: %w", err)
	}
	return nil
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// DefaultProducts returns the built-in sample inventory.
func DefaultProducts() []model.ProductInput {
	return []model.ProductInput{
		{Type: "Phone", Brand: "iPhone", Model: "8", Office: model.OfficeSpain, PurchaseDate: day(2018, time.December, 29), Price: decimal.NewFromInt(970)},
		{Type: "Computer", Brand: "HP", Model: "Elitebook", Office: model.OfficeSpain, PurchaseDate: day(2019, time.June, 1), Price: decimal.NewFromInt(1423)},
		{Type: "Phone", Brand: "iPhone", Model: "11", Office: model.OfficeSpain, PurchaseDate: day(2022, time.June, 25), Price: decimal.NewFromInt(990)},
		{Type: "Phone", Brand: "iPhone", Model: "X", Office: model.OfficeSweden, PurchaseDate: day(2018, time.July, 15), Price: decimal.NewFromInt(1245)},
		{Type: "Phone", Brand: "Motorola", Model: "Razr", Office: model.OfficeSweden, PurchaseDate: day(2022, time.December, 16), Price: decimal.NewFromInt(970)},
		{Type: "Computer", Brand: "HP", Model: "Elitebook", Office: model.OfficeSweden, PurchaseDate: day(2023, time.October, 2), Price: decimal.NewFromInt(588)},
		{Type: "Computer", Brand: "Asus", Model: "W234", Office: model.OfficeUSA, PurchaseDate: day(2017, time.April, 21), Price: decimal.NewFromInt(1200)},
		{Type: "Computer", Brand: "Lenovo", Model: "Yoga 730", Office: model.OfficeUSA, PurchaseDate: day(2018, time.May, 28), Price: decimal.NewFromInt(835)},
		{Type: "Computer", Brand: "Lenovo", Model: "Yoga 530", Office: model.OfficeUSA, PurchaseDate: day(2019, time.May, 21), Price: decimal.NewFromInt(1030)},
	}
}

// Seed adds inputs through svc when repo holds no products yet.
// It returns the number of products added.
func Seed(ctx context.Context, svc service.InventoryService, repo repository.ProductRepository, inputs []model.ProductInput) (int, error) {
	existing, err := repo.ListAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to check existing products: %w", err)
	}
	if len(existing) > 0 {
		return 0, nil
	}

	for i, in := range inputs {
		if _, err := svc.AddProduct(ctx, in); err != nil {
			return i, fmt.Errorf("failed to seed product %d (%s %s): %w", i+1, in.Brand, in.Model, err)
		}
	}

	return len(inputs), nil
}
