package finance

import (
	"testing"

	"requisiciones_api/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func item(qty, price string) entities.LineItem {
	return entities.LineItem{
		Quantity:  decimal.RequireFromString(qty),
		UnitPrice: decimal.RequireFromString(price),
	}
}

func TestCompute(t *testing.T) {
	t.Run("financial identity", func(t *testing.T) {
		totals := Compute([]entities.LineItem{item("3", "100")})
		assert.Equal(t, "300.00", totals.Subtotal.StringFixed(2))
		assert.Equal(t, "48.00", totals.Tax.StringFixed(2))
		assert.Equal(t, "348.00", totals.Total.StringFixed(2))
		assert.True(t, totals.Total.Equal(totals.Subtotal.Add(totals.Tax)))
	})

	t.Run("empty", func(t *testing.T) {
		totals := Compute(nil)
		assert.True(t, totals.Subtotal.IsZero())
		assert.True(t, totals.Tax.IsZero())
		assert.True(t, totals.Total.IsZero())
	})

	t.Run("estimated price wins", func(t *testing.T) {
		it := item("2", "10")
		est := decimal.NewFromInt(15)
		it.EstimatedPrice = &est
		assert.Equal(t, "30.00", Subtotal([]entities.LineItem{it}).StringFixed(2))
	})

	t.Run("no intermediate rounding", func(t *testing.T) {
		totals := Compute([]entities.LineItem{item("3", "0.333"), item("1", "0.001")})
		assert.Equal(t, "1", totals.Subtotal.String())
		assert.Equal(t, "0.16", totals.Tax.String())
	})
}

func TestFormatCurrency(t *testing.T) {
	cases := map[string]string{
		"0":          "$0.00",
		"5":          "$5.00",
		"1234.5":     "$1,234.50",
		"999.999":    "$1,000.00",
		"1234567.89": "$1,234,567.89",
		"100000":     "$100,000.00",
		"-42.1":      "-$42.10",
	}
	for in, want := range cases {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, FormatCurrency(decimal.RequireFromString(in)))
		})
	}
	assert.Equal(t, "$0.00", FormatOptional(nil))
}
