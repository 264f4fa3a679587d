// Package finance computes requisition totals.
//
// All arithmetic is exact; values are only rounded when formatted for display.
package finance

import (
	"strings"

	"requisiciones_api/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// TaxRate is the fixed IVA applied to every requisition.
var TaxRate = decimal.RequireFromString("0.16")

type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

func Subtotal(items []entities.LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.Amount())
	}
	return sum
}

func Tax(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(TaxRate)
}

func Total(subtotal, tax decimal.Decimal) decimal.Decimal {
	return subtotal.Add(tax)
}

func Compute(items []entities.LineItem) Totals {
	sub := Subtotal(items)
	tax := Tax(sub)
	return Totals{Subtotal: sub, Tax: tax, Total: Total(sub, tax)}
}

// FormatCurrency renders an amount as "$1,234.50".
func FormatCurrency(v decimal.Decimal) string {
	fixed := v.Round(2).Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if v.Round(2).IsNegative() {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}

// FormatOptional formats a possibly missing amount, with $0.00 for nil.
func FormatOptional(v *decimal.Decimal) string {
	if v == nil {
		return FormatCurrency(decimal.Zero)
	}
	return FormatCurrency(*v)
}
