package money

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/andy/invoicegenius/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// Totals holds the derived amounts for an invoice. All three values are
// exact decimals; nothing is rounded until display.
type Totals struct {
	Subtotal  decimal.Decimal
	TaxAmount decimal.Decimal
	Total     decimal.Decimal
}

// LineTotal returns quantity x unit price for a single item.
func LineTotal(item domain.LineItem) decimal.Decimal {
	return decimal.NewFromFloat(item.Quantity).Mul(decimal.NewFromFloat(item.Price))
}

// CalculateTotals derives subtotal, tax and total from the item
// sequence and tax rate (percentage points). Negative quantities,
// prices and rates flow through the arithmetic unchecked.
func CalculateTotals(items []domain.LineItem, taxRate float64) Totals {
	subtotal := lo.Reduce(items, func(sum decimal.Decimal, item domain.LineItem, _ int) decimal.Decimal {
		return sum.Add(LineTotal(item))
	}, decimal.Zero)

	tax := subtotal.Mul(decimal.NewFromFloat(taxRate)).Div(hundred)

	return Totals{
		Subtotal:  subtotal,
		TaxAmount: tax,
		Total:     subtotal.Add(tax),
	}
}
