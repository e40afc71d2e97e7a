package money

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/andy/invoicegenius/internal/domain"
)

func TestCalculateTotals(t *testing.T) {
	items := []domain.LineItem{
		{ID: "1", Description: "Web Development Services", Quantity: 10, Price: 150},
		{ID: "2", Description: "UI/UX Design Phase", Quantity: 5, Price: 125},
	}

	totals := CalculateTotals(items, 10)

	if !totals.Subtotal.Equal(decimal.NewFromInt(2125)) {
		t.Errorf("expected subtotal 2125, got %s", totals.Subtotal)
	}
	if !totals.TaxAmount.Equal(decimal.NewFromFloat(212.5)) {
		t.Errorf("expected tax 212.5, got %s", totals.TaxAmount)
	}
	if !totals.Total.Equal(decimal.NewFromFloat(2337.5)) {
		t.Errorf("expected total 2337.5, got %s", totals.Total)
	}
}

func TestCalculateTotalsEmpty(t *testing.T) {
	totals := CalculateTotals(nil, 10)

	if !totals.Subtotal.IsZero() {
		t.Errorf("expected zero subtotal, got %s", totals.Subtotal)
	}
	if !totals.TaxAmount.IsZero() {
		t.Errorf("expected zero tax, got %s", totals.TaxAmount)
	}
	if !totals.Total.IsZero() {
		t.Errorf("expected zero total, got %s", totals.Total)
	}
}

func TestCalculateTotalsZeroRate(t *testing.T) {
	items := []domain.LineItem{
		{ID: "1", Quantity: 2, Price: 50},
	}

	totals := CalculateTotals(items, 0)

	if !totals.TaxAmount.IsZero() {
		t.Errorf("expected zero tax, got %s", totals.TaxAmount)
	}
	if !totals.Total.Equal(totals.Subtotal) {
		t.Errorf("expected total == subtotal, got %s and %s", totals.Total, totals.Subtotal)
	}
}

func TestCalculateTotalsNegativeValuesFlowThrough(t *testing.T) {
	// Credits are modeled as negative rows; the arithmetic must not
	// clamp them.
	items := []domain.LineItem{
		{ID: "1", Quantity: 1, Price: 100},
		{ID: "2", Quantity: 1, Price: -40},
	}

	totals := CalculateTotals(items, 10)

	if !totals.Subtotal.Equal(decimal.NewFromInt(60)) {
		t.Errorf("expected subtotal 60, got %s", totals.Subtotal)
	}
	if !totals.TaxAmount.Equal(decimal.NewFromInt(6)) {
		t.Errorf("expected tax 6, got %s", totals.TaxAmount)
	}
}

func TestLineTotal(t *testing.T) {
	item := domain.LineItem{Quantity: 2.5, Price: 100}
	if got := LineTotal(item); !got.Equal(decimal.NewFromInt(250)) {
		t.Errorf("expected 250, got %s", got)
	}
}

func TestCalculateTotalsExactFractions(t *testing.T) {
	// 0.1 + 0.2 style drift must not appear in the decimal pipeline.
	items := []domain.LineItem{
		{ID: "1", Quantity: 3, Price: 0.1},
	}

	totals := CalculateTotals(items, 0)

	if !totals.Subtotal.Equal(decimal.NewFromFloat(0.3)) {
		t.Errorf("expected exact 0.3, got %s", totals.Subtotal)
	}
}
