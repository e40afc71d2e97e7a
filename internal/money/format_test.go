package money

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatterCurrencyFallback(t *testing.T) {
	f := NewFormatter("NOTREAL", "en-IN")
	if f.Currency() != "USD" {
		t.Errorf("expected USD fallback, got %s", f.Currency())
	}
}

func TestFormatterLocaleFallback(t *testing.T) {
	// Unparseable locale falls back to the default; formatting must
	// still work.
	f := NewFormatter("USD", "not a locale!!")
	out := f.Format(decimal.NewFromInt(100))
	if out == "" {
		t.Fatal("expected non-empty output")
	}
}

func TestFormatIncludesAmount(t *testing.T) {
	f := NewFormatter("USD", "en-IN")
	out := f.Format(decimal.NewFromFloat(2337.5))

	if !strings.Contains(out, "337.50") {
		t.Errorf("expected two fraction digits for USD, got %q", out)
	}
	if !strings.Contains(out, ",") {
		t.Errorf("expected digit grouping, got %q", out)
	}
}

func TestFormatIndianGrouping(t *testing.T) {
	f := NewFormatter("INR", "en-IN")
	out := f.Format(decimal.NewFromInt(123456))

	// en-IN groups lakhs: 1,23,456
	if !strings.Contains(out, "1,23,456") {
		t.Errorf("expected Indian grouping, got %q", out)
	}
}

func TestFormatFloatMatchesFormat(t *testing.T) {
	f := NewFormatter("USD", "en-IN")
	if f.FormatFloat(150) != f.Format(decimal.NewFromInt(150)) {
		t.Error("FormatFloat and Format disagree for the same amount")
	}
}
