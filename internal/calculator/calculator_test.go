package calculator

import (
	"errors"
	"testing"
	"time"

	"asset-tracker/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolveCountryInfo(t *testing.T) {
	tests := []struct {
		name     string
		office   model.OfficeLocation
		country  string
		currency string
		rate     string
	}{
		{name: "Spain", office: model.OfficeSpain, country: "Spain", currency: "EUR", rate: "0.90"},
		{name: "Sweden", office: model.OfficeSweden, country: "Sweden", currency: "SEK", rate: "10.54"},
		{name: "USA", office: model.OfficeUSA, country: "USA", currency: "USD", rate: "1.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := ResolveCountryInfo(tt.office)

			require.NoError(t, err)
			assert.Equal(t, tt.country, info.Country)
			assert.Equal(t, tt.currency, info.Currency)
			assert.True(t, decimal.RequireFromString(tt.rate).Equal(info.ExchangeRate),
				"rate %s != %s", info.ExchangeRate, tt.rate)
		})
	}
}

func TestResolveCountryInfo_Unknown(t *testing.T) {
	for _, office := range []model.OfficeLocation{model.OfficeUnknown, model.OfficeLocation(7), model.OfficeLocation(-1)} {
		info, err := ResolveCountryInfo(office)

		require.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrInvalidState))
		assert.Equal(t, model.CountryInfo{}, info)
	}
}

func TestClassifyStatus_Boundaries(t *testing.T) {
	now := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		ageDays  int
		expected model.Status
	}{
		{name: "bought today", ageDays: 0, expected: model.StatusNormal},
		{name: "914 days", ageDays: 914, expected: model.StatusNormal},
		{name: "915 days", ageDays: 915, expected: model.StatusYellow},
		{name: "1004 days", ageDays: 1004, expected: model.StatusYellow},
		{name: "1005 days", ageDays: 1005, expected: model.StatusRed},
		{name: "ten years", ageDays: 3650, expected: model.StatusRed},
		{name: "future purchase", ageDays: -30, expected: model.StatusNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			purchased := now.Add(-time.Duration(tt.ageDays) * 24 * time.Hour)

			assert.Equal(t, tt.expected, ClassifyStatus(purchased, now))
		})
	}
}

func TestClassifyStatus_PartialDay(t *testing.T) {
	purchased := date(2020, time.January, 1)
	justShort := purchased.Add(RedAge - time.Second)

	assert.Equal(t, model.StatusYellow, ClassifyStatus(purchased, justShort))
	assert.Equal(t, model.StatusRed, ClassifyStatus(purchased, justShort.Add(time.Second)))
}

func TestClassifyStatus_Monotonic(t *testing.T) {
	purchased := date(2019, time.March, 10)

	prev := model.StatusNormal
	for d := 0; d <= 1200; d++ {
		now := purchased.Add(time.Duration(d) * 24 * time.Hour)
		got := ClassifyStatus(purchased, now)

		require.GreaterOrEqual(t, int(got), int(prev), "status went back at day %d", d)
		prev = got
	}
	assert.Equal(t, model.StatusRed, prev)
}

func TestConvertPrice(t *testing.T) {
	p1 := decimal.RequireFromString("100.00")
	p2 := decimal.RequireFromString("1234.567")
	rate := decimal.RequireFromString("10.54")

	t.Run("Spain rate", func(t *testing.T) {
		got := ConvertPrice(p1, decimal.RequireFromString("0.90"))
		assert.True(t, got.Equal(decimal.RequireFromString("90")), "got %s", got)
	})

	t.Run("identity rate", func(t *testing.T) {
		got := ConvertPrice(p2, decimal.RequireFromString("1.00"))
		assert.True(t, got.Equal(p2), "got %s", got)
	})

	t.Run("linear", func(t *testing.T) {
		sum := ConvertPrice(p1.Add(p2), rate)
		parts := ConvertPrice(p1, rate).Add(ConvertPrice(p2, rate))
		assert.True(t, sum.Equal(parts), "%s != %s", sum, parts)
	})

	t.Run("keeps full precision", func(t *testing.T) {
		got := ConvertPrice(decimal.RequireFromString("0.333"), rate)
		assert.Equal(t, "3.50982", got.String())
	})
}

func TestSortForListing(t *testing.T) {
	products := []model.Product{
		{Brand: "usa", Office: model.OfficeUSA, PurchaseDate: date(2020, time.January, 1)},
		{Brand: "spain-2019", Office: model.OfficeSpain, PurchaseDate: date(2019, time.January, 1)},
		{Brand: "sweden", Office: model.OfficeSweden, PurchaseDate: date(2021, time.January, 1)},
		{Brand: "spain-2018", Office: model.OfficeSpain, PurchaseDate: date(2018, time.January, 1)},
	}

	SortForListing(products)

	var brands []string
	for _, p := range products {
		brands = append(brands, p.Brand)
	}
	assert.Equal(t, []string{"spain-2018", "spain-2019", "sweden", "usa"}, brands)
}

func TestSortForListing_StableAndUnknownFirst(t *testing.T) {
	d := date(2022, time.May, 5)
	products := []model.Product{
		{Brand: "first", Office: model.OfficeSweden, PurchaseDate: d},
		{Brand: "unknown", Office: model.OfficeUnknown, PurchaseDate: date(2023, time.January, 1)},
		{Brand: "second", Office: model.OfficeSweden, PurchaseDate: d},
		{Brand: "third", Office: model.OfficeSweden, PurchaseDate: d},
	}

	SortForListing(products)

	var brands []string
	for _, p := range products {
		brands = append(brands, p.Brand)
	}
	assert.Equal(t, []string{"unknown", "first", "second", "third"}, brands)
}

func TestEnrich(t *testing.T) {
	now := date(2024, time.January, 1)
	products := []model.Product{
		{ID: 1, Office: model.OfficeSweden, PurchaseDate: date(2023, time.June, 1), Price: decimal.NewFromInt(100)},
		{ID: 2, Office: model.OfficeUnknown, PurchaseDate: date(2023, time.June, 1), Price: decimal.NewFromInt(50)},
		{ID: 3, Office: model.OfficeSpain, PurchaseDate: date(2020, time.January, 1), Price: decimal.NewFromInt(100)},
	}

	views := Enrich(products, now)

	require.Len(t, views, 3)
	// input is left untouched
	assert.Equal(t, int64(1), products[0].ID)

	unknown := views[0]
	assert.Equal(t, int64(2), unknown.ID)
	require.Error(t, unknown.Err)
	assert.ErrorIs(t, unknown.Err, model.ErrInvalidState)
	assert.True(t, unknown.LocalPrice.IsZero())

	spain := views[1]
	assert.Equal(t, int64(3), spain.ID)
	require.NoError(t, spain.Err)
	assert.Equal(t, "EUR", spain.Currency)
	assert.Equal(t, "90.00", spain.LocalPrice.StringFixed(2))
	assert.Equal(t, model.StatusRed, spain.Status)

	sweden := views[2]
	assert.Equal(t, int64(1), sweden.ID)
	assert.Equal(t, "SEK", sweden.Currency)
	assert.Equal(t, "1054.00", sweden.LocalPrice.StringFixed(2))
	assert.Equal(t, model.StatusNormal, sweden.Status)
}

func TestEnrich_Empty(t *testing.T) {
	views := Enrich(nil, time.Now())

	assert.NotNil(t, views)
	assert.Empty(t, views)
}
