package pdf

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"github.com/andy/invoicegenius/internal/render"
)

// A4 in millimetres; documents are laid out in a 794x1123 pixel space
// and scaled down uniformly.
const (
	pageWidthMM = 210.0
	pxToMM      = pageWidthMM / render.PageWidth
	pxToPt      = 0.75 // 96 DPI pixel to point
)

// Exporter writes a rendered document as a print-ready PDF. Print
// overrides apply here and only here: decorative elements are dropped
// and gradients are flattened to their leading color. The interactive
// preview keeps them.
type Exporter struct{}

// Export produces the PDF bytes for one document.
func (Exporter) Export(doc *render.Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	if doc.Background != "" && doc.Background != "#ffffff" {
		r, g, b := hexRGB(doc.Background)
		pdf.SetFillColor(r, g, b)
		pdf.Rect(0, 0, pageWidthMM, pageWidthMM*render.PageHeight/render.PageWidth, "F")
	}

	for _, e := range doc.Elements {
		if e.Decorative {
			continue
		}
		switch e.Kind {
		case render.KindRect, render.KindLine:
			drawRect(pdf, e, e.Fill)
		case render.KindGradient:
			drawRect(pdf, e, e.From)
		case render.KindText:
			drawText(pdf, doc.FontFamily, e)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func drawRect(pdf *gofpdf.Fpdf, e render.Element, fill string) {
	x, y := e.X*pxToMM, e.Y*pxToMM
	w, h := e.W*pxToMM, e.H*pxToMM
	style := ""
	if fill != "" {
		r, g, b := hexRGB(fill)
		pdf.SetFillColor(r, g, b)
		style += "F"
	}
	if e.Stroke != "" {
		r, g, b := hexRGB(e.Stroke)
		pdf.SetDrawColor(r, g, b)
		pdf.SetLineWidth(0.2)
		style += "D"
	}
	if style == "" {
		return
	}
	pdf.Rect(x, y, w, h, style)
}

func drawText(pdf *gofpdf.Fpdf, family string, e render.Element) {
	if e.Text == "" {
		return
	}
	styleStr := ""
	if e.Bold {
		styleStr = "B"
	}
	pdf.SetFont(coreFamily(family, e.Mono), styleStr, e.Size*pxToPt)
	r, g, b := hexRGB(e.Color)
	pdf.SetTextColor(r, g, b)

	// Anchor the cell so the requested alignment lands on e.X.
	width := pdf.GetStringWidth(e.Text)
	x := e.X * pxToMM
	switch e.Align {
	case render.AlignRight:
		x -= width
	case render.AlignCenter:
		x -= width / 2
	}
	lineHeight := e.Size * pxToMM * 1.2
	pdf.SetXY(x, e.Y*pxToMM)
	pdf.CellFormat(width, lineHeight, e.Text, "", 0, "L", false, 0, "")
}

// coreFamily maps the document's named families onto the nearest PDF
// core fonts; embedding the real webfonts is out of scope for export.
func coreFamily(family string, mono bool) string {
	if mono {
		return "Courier"
	}
	switch family {
	case "Outfit":
		return "Times"
	case "Space Grotesk":
		return "Courier"
	default:
		return "Helvetica"
	}
}

func hexRGB(hex string) (int, int, int) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0
	}
	r, _ := strconv.ParseUint(hex[1:3], 16, 8)
	g, _ := strconv.ParseUint(hex[3:5], 16, 8)
	b, _ := strconv.ParseUint(hex[5:7], 16, 8)
	return int(r), int(g), int(b)
}
