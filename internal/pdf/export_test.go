package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/andy/invoicegenius/internal/domain"
	"github.com/andy/invoicegenius/internal/money"
	"github.com/andy/invoicegenius/internal/render"
)

func TestExportAllTemplates(t *testing.T) {
	state := domain.DefaultState(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	f := money.NewFormatter(state.Invoice.Currency, "en-IN")

	for _, tmpl := range domain.Templates {
		design := domain.DesignSettings{
			Template:   tmpl,
			ColorTheme: domain.ThemePurple,
			Font:       domain.FontSans,
		}
		doc := render.Render(state.Invoice, state.Company, design, f)

		data, err := Exporter{}.Export(doc)
		if err != nil {
			t.Fatalf("template %s: export failed: %v", tmpl, err)
		}
		if !bytes.HasPrefix(data, []byte("%PDF")) {
			t.Errorf("template %s: output is not a PDF", tmpl)
		}
		if len(data) < 1000 {
			t.Errorf("template %s: suspiciously small PDF (%d bytes)", tmpl, len(data))
		}
	}
}

func TestExportEmptyDocument(t *testing.T) {
	doc := &render.Document{
		Width:  render.PageWidth,
		Height: render.PageHeight,
	}

	data, err := Exporter{}.Export(doc)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Error("output is not a PDF")
	}
}

func TestHexRGB(t *testing.T) {
	r, g, b := hexRGB("#9333ea")
	if r != 0x93 || g != 0x33 || b != 0xea {
		t.Errorf("unexpected rgb: %d %d %d", r, g, b)
	}

	r, g, b = hexRGB("garbage")
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("invalid hex should map to black, got %d %d %d", r, g, b)
	}
}
