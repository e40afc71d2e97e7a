package render

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/andy/invoicegenius/internal/domain"
	"github.com/andy/invoicegenius/internal/money"
)

func testState() (domain.InvoiceData, domain.CompanyDetails, money.Formatter) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	state := domain.DefaultState(now)
	f := money.NewFormatter(state.Invoice.Currency, "en-IN")
	return state.Invoice, state.Company, f
}

func design(t domain.TemplateType) domain.DesignSettings {
	return domain.DesignSettings{Template: t, ColorTheme: domain.ThemePurple, Font: domain.FontSans}
}

func containsText(texts []string, want string) bool {
	for _, s := range texts {
		if strings.Contains(s, want) {
			return true
		}
	}
	return false
}

// Every template arranges the same invoice data; none may drop content.
func TestAllTemplatesShowSameContent(t *testing.T) {
	inv, co, f := testState()
	totals := money.CalculateTotals(inv.Items, inv.TaxRate)

	required := []string{
		co.Name,
		inv.Number,
		inv.Date,
		inv.DueDate,
		inv.Client.Name,
		inv.Client.Email,
		inv.Client.Address,
		inv.Terms,
		inv.Notes,
		f.Format(totals.Subtotal),
		f.Format(totals.TaxAmount),
		f.Format(totals.Total),
	}
	for _, item := range inv.Items {
		required = append(required,
			item.Description,
			f.Format(money.LineTotal(item)),
		)
	}

	for _, tmpl := range domain.Templates {
		doc := Render(inv, co, design(tmpl), f)
		texts := doc.Texts()

		for _, want := range required {
			if !containsText(texts, want) {
				t.Errorf("template %s: missing %q", tmpl, want)
			}
		}
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	inv, co, f := testState()

	for _, tmpl := range domain.Templates {
		a := Render(inv, co, design(tmpl), f)
		b := Render(inv, co, design(tmpl), f)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("template %s: repeated render differs", tmpl)
		}
	}
}

func TestRenderDoesNotMutateInputs(t *testing.T) {
	inv, co, f := testState()
	itemsBefore := make([]domain.LineItem, len(inv.Items))
	copy(itemsBefore, inv.Items)

	for _, tmpl := range domain.Templates {
		Render(inv, co, design(tmpl), f)
	}

	if !reflect.DeepEqual(inv.Items, itemsBefore) {
		t.Error("render mutated the item slice")
	}
}

func TestRenderPageDimensions(t *testing.T) {
	inv, co, f := testState()

	for _, tmpl := range domain.Templates {
		doc := Render(inv, co, design(tmpl), f)
		if doc.Width != PageWidth || doc.Height != PageHeight {
			t.Errorf("template %s: unexpected page size %gx%g", tmpl, doc.Width, doc.Height)
		}
		if doc.Template != tmpl {
			t.Errorf("expected template %s, got %s", tmpl, doc.Template)
		}
	}
}

func TestUnknownTemplateFallsBackToModern(t *testing.T) {
	inv, co, f := testState()
	doc := Render(inv, co, domain.DesignSettings{Template: "hand-edited"}, f)

	if doc.Template != domain.TemplateModern {
		t.Errorf("expected modern fallback, got %s", doc.Template)
	}
}

func TestEmptyInvoiceStillRenders(t *testing.T) {
	inv, co, f := testState()
	inv.Items = nil

	for _, tmpl := range domain.Templates {
		doc := Render(inv, co, design(tmpl), f)
		if len(doc.Elements) == 0 {
			t.Errorf("template %s: empty document for empty invoice", tmpl)
		}
		// Totals collapse to zero but stay visible
		if !containsText(doc.Texts(), f.Format(money.CalculateTotals(nil, inv.TaxRate).Total)) {
			t.Errorf("template %s: zero total not shown", tmpl)
		}
	}
}

func TestTaxIDShownOnlyWhenSet(t *testing.T) {
	inv, co, f := testState()
	co.TaxID = ""

	doc := Render(inv, co, design(domain.TemplateClassic), f)
	if containsText(doc.Texts(), "Tax ID") {
		t.Error("classic: tax id row shown for empty tax id")
	}

	co.TaxID = "GSTIN-12345"
	doc = Render(inv, co, design(domain.TemplateClassic), f)
	if !containsText(doc.Texts(), "GSTIN-12345") {
		t.Error("classic: tax id missing")
	}

	// Glitch has the same conditional block: the element disappears
	// entirely when the profile has no tax id.
	withID := len(Render(inv, co, design(domain.TemplateGlitch), f).Texts())
	if !containsText(Render(inv, co, design(domain.TemplateGlitch), f).Texts(), "GSTIN-12345") {
		t.Error("glitch: tax id missing")
	}

	co.TaxID = ""
	texts := Render(inv, co, design(domain.TemplateGlitch), f).Texts()
	if containsText(texts, "GSTIN-12345") {
		t.Error("glitch: stale tax id shown")
	}
	if len(texts) != withID-1 {
		t.Errorf("glitch: expected one fewer text run without tax id, got %d vs %d", len(texts), withID)
	}
}

func TestFontFamilySelection(t *testing.T) {
	inv, co, f := testState()

	cases := map[domain.FontChoice]string{
		domain.FontSans:   "Inter",
		domain.FontOutfit: "Outfit",
		domain.FontSpace:  "Space Grotesk",
	}
	for font, family := range cases {
		d := design(domain.TemplateModern)
		d.Font = font
		doc := Render(inv, co, d, f)
		if doc.FontFamily != family {
			t.Errorf("font %s: expected family %q, got %q", font, family, doc.FontFamily)
		}
	}
}

func TestPaletteFallback(t *testing.T) {
	if PaletteFor("no-such-theme") != PaletteFor(domain.ThemePurple) {
		t.Error("unknown theme should fall back to purple")
	}
	if PaletteFor(domain.ThemeBlue) == PaletteFor(domain.ThemeRose) {
		t.Error("distinct themes share a palette")
	}
}
