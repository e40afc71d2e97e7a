package domain

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestMergeCompanyAbsentFieldsKeepDefaults(t *testing.T) {
	def := DefaultCompany()
	merged := MergeCompany(def, json.RawMessage(`{"name":"Custom Co"}`))

	if merged.Name != "Custom Co" {
		t.Errorf("expected stored name to win, got %q", merged.Name)
	}
	if merged.Email != def.Email {
		t.Errorf("expected default email, got %q", merged.Email)
	}
	if merged.Address != def.Address {
		t.Errorf("expected default address, got %q", merged.Address)
	}
}

func TestMergeCompanyStoredZeroValueWins(t *testing.T) {
	// Presence is decided at the JSON level: an explicitly stored empty
	// string must override a non-empty default.
	def := DefaultCompany()
	merged := MergeCompany(def, json.RawMessage(`{"phone":""}`))

	if merged.Phone != "" {
		t.Errorf("expected stored empty phone to win, got %q", merged.Phone)
	}
}

func TestMergeCompanyNilAndCorruptRaw(t *testing.T) {
	def := DefaultCompany()

	if got := MergeCompany(def, nil); got != def {
		t.Error("nil raw should return defaults unchanged")
	}
	if got := MergeCompany(def, json.RawMessage(`{broken`)); got != def {
		t.Error("corrupt raw should return defaults unchanged")
	}
}

func TestMergeInvoiceItemsReplaceWholesale(t *testing.T) {
	def := DefaultInvoice(time.Now())
	merged := MergeInvoice(def, json.RawMessage(`{"items":[{"id":"x","description":"One item","quantity":3,"price":9.5}]}`))

	if len(merged.Items) != 1 {
		t.Fatalf("expected stored items to replace defaults, got %d items", len(merged.Items))
	}
	if merged.Items[0].ID != "x" || merged.Items[0].Quantity != 3 {
		t.Errorf("unexpected item: %+v", merged.Items[0])
	}
	// Untouched sections keep defaults
	if merged.Number != def.Number {
		t.Errorf("expected default number, got %q", merged.Number)
	}
}

func TestMergeInvoiceEmptyItemsArrayWins(t *testing.T) {
	// A user who deleted every item must not get the samples back.
	def := DefaultInvoice(time.Now())
	merged := MergeInvoice(def, json.RawMessage(`{"items":[]}`))

	if len(merged.Items) != 0 {
		t.Errorf("expected stored empty items to win, got %d items", len(merged.Items))
	}
}

func TestMergeInvoiceTaxRateZeroWins(t *testing.T) {
	def := DefaultInvoice(time.Now())
	merged := MergeInvoice(def, json.RawMessage(`{"taxRate":0}`))

	if merged.TaxRate != 0 {
		t.Errorf("expected stored zero tax rate to win, got %v", merged.TaxRate)
	}
}

func TestMergeInvoiceDoesNotAliasDefaultItems(t *testing.T) {
	def := DefaultInvoice(time.Now())
	merged := MergeInvoice(def, nil)

	merged.Items[0].Description = "mutated"
	if def.Items[0].Description == "mutated" {
		t.Error("merged invoice shares item backing array with defaults")
	}
}

func TestMergeDesignValidValues(t *testing.T) {
	def := DefaultDesign()
	merged := MergeDesign(def, json.RawMessage(`{"template":"glitch","colorTheme":"rose","font":"space"}`))

	if merged.Template != TemplateGlitch {
		t.Errorf("expected glitch, got %q", merged.Template)
	}
	if merged.ColorTheme != ThemeRose {
		t.Errorf("expected rose, got %q", merged.ColorTheme)
	}
	if merged.Font != FontSpace {
		t.Errorf("expected space, got %q", merged.Font)
	}
}

func TestMergeDesignUnknownValuesRejected(t *testing.T) {
	def := DefaultDesign()
	merged := MergeDesign(def, json.RawMessage(`{"template":"brutalist","colorTheme":"chartreuse"}`))

	if merged.Template != def.Template {
		t.Errorf("unknown template should keep default, got %q", merged.Template)
	}
	if merged.ColorTheme != def.ColorTheme {
		t.Errorf("unknown theme should keep default, got %q", merged.ColorTheme)
	}
}

func TestDefaultInvoiceDates(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	inv := DefaultInvoice(now)

	if inv.Date != "2026-03-01" {
		t.Errorf("expected date 2026-03-01, got %q", inv.Date)
	}
	if inv.DueDate != "2026-03-15" {
		t.Errorf("expected due date two weeks out, got %q", inv.DueDate)
	}
}

func TestInvoiceCloneNormalizesNilItems(t *testing.T) {
	inv := DefaultInvoice(time.Now())
	inv.Items = nil

	clone := inv.Clone()
	if clone.Items == nil {
		t.Fatal("expected empty item slice, got nil")
	}

	raw, err := json.Marshal(clone)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(raw), `"items":[]`) {
		t.Errorf("expected items to serialize as an array, got %s", raw)
	}
}

func TestAppStateCloneIsDeep(t *testing.T) {
	state := DefaultState(time.Now())
	clone := state.Clone()

	clone.Invoice.Items[0].Price = 999999
	if state.Invoice.Items[0].Price == 999999 {
		t.Error("clone shares item backing array with original")
	}
}
