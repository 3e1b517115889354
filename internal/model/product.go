package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a piece of office equipment bought by one of the offices.
// Price is expressed in USD at the time of purchase.
type Product struct {
	ID           int64           `json:"id" db:"id"`
	Type         string          `json:"type" db:"type"`
	Brand        string          `json:"brand" db:"brand"`
	Model        string          `json:"model" db:"model"`
	Office       OfficeLocation  `json:"office" db:"office"`
	PurchaseDate time.Time       `json:"purchaseDate" db:"purchase_date"`
	Price        decimal.Decimal `json:"price" db:"price"`
}

// ProductInput holds the fields accepted when a product is added.
type ProductInput struct {
	Type         string          `validate:"required"`
	Brand        string          `validate:"required"`
	Model        string          `validate:"required"`
	Office       OfficeLocation  `validate:"required"`
	PurchaseDate time.Time       `validate:"required"`
	Price        decimal.Decimal `validate:"-"`
}

// CountryInfo is the display country, currency code and USD exchange rate of an office.
type CountryInfo struct {
	Country      string
	Currency     string
	ExchangeRate decimal.Decimal
}

// ProductView is a product enriched for listing.
// Err is set when the product's office cannot be resolved; the
// remaining derived fields are zero in that case.
type ProductView struct {
	Product
	CountryInfo
	LocalPrice decimal.Decimal
	Status     Status
	Err        error `json:"-"`
}

// DateOnly drops the clock part of t, keeping its calendar date in UTC.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DateLayout is the day/month/year format used for purchase dates on input.
const DateLayout = "02/01/2006"

// ParseDate parses a dd/MM/yyyy purchase date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(s))
}
