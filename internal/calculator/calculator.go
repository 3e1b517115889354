// Package calculator derives the display data of a product: the country and
// currency of its office, its price in that currency and its age status.
package calculator

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"asset-tracker/internal/model"

	"github.com/shopspring/decimal"
)

const day = 24 * time.Hour

// Age thresholds, using 365-day years.
const (
	RedAge    = (3*365 - 90) * day
	YellowAge = (3*365 - 180) * day
)

var countries = map[model.OfficeLocation]model.CountryInfo{
	model.OfficeSpain:  {Country: "Spain", Currency: "EUR", ExchangeRate: decimal.RequireFromString("0.90")},
	model.OfficeSweden: {Country: "Sweden", Currency: "SEK", ExchangeRate: decimal.RequireFromString("10.54")},
	model.OfficeUSA:    {Country: "USA", Currency: "USD", ExchangeRate: decimal.RequireFromString("1.00")},
}

// ResolveCountryInfo returns the fixed country information of an office.
// It fails with model.ErrInvalidState for OfficeUnknown or any value outside
// the supported set.
func ResolveCountryInfo(office model.OfficeLocation) (model.CountryInfo, error) {
	info, ok := countries[office]
	if !ok {
		return model.CountryInfo{}, fmt.Errorf("%w: %s (%d)", model.ErrInvalidState, office, int(office))
	}
	return info, nil
}

// ClassifyStatus classifies a product by the time elapsed between its
// purchase date and now. Purchase dates in the future are Normal.
func ClassifyStatus(purchaseDate, now time.Time) model.Status {
	age := now.Sub(purchaseDate)
	switch {
	case age >= RedAge:
		return model.StatusRed
	case age >= YellowAge:
		return model.StatusYellow
	default:
		return model.StatusNormal
	}
}

// ConvertPrice converts a USD price with the given exchange rate. The result
// is not rounded.
func ConvertPrice(price, rate decimal.Decimal) decimal.Decimal {
	return price.Mul(rate)
}

// SortForListing orders products by office, then by purchase date. Products
// that compare equal keep their relative order.
func SortForListing(products []model.Product) {
	slices.SortStableFunc(products, func(a, b model.Product) int {
		if c := cmp.Compare(a.Office, b.Office); c != 0 {
			return c
		}
		return a.PurchaseDate.Compare(b.PurchaseDate)
	})
}

// Enrich sorts a copy of products and derives the view of each one. A product
// whose office cannot be resolved gets a view with Err set instead of
// failing the whole listing.
func Enrich(products []model.Product, now time.Time) []model.ProductView {
	sorted := slices.Clone(products)
	SortForListing(sorted)

	views := make([]model.ProductView, 0, len(sorted))
	for _, p := range sorted {
		view := model.ProductView{Product: p}

		info, err := ResolveCountryInfo(p.Office)
		if err != nil {
			view.Err = err
			views = append(views, view)
			continue
		}

		view.CountryInfo = info
		view.LocalPrice = ConvertPrice(p.Price, info.ExchangeRate)
		view.Status = ClassifyStatus(p.PurchaseDate, now)
		views = append(views, view)
	}

	return views
}
