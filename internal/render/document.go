package render

import (
	"github.com/samber/lo"

	"github.com/andy/invoicegenius/internal/domain"
)

// Page dimensions: A4 proportions at 96 DPI (210mm x 297mm). Every
// template lays out against this fixed coordinate space; viewers scale
// the whole page, never reflow it.
const (
	PageWidth  = 794.0
	PageHeight = 1123.0
)

// Kind discriminates document elements.
type Kind int

const (
	KindRect Kind = iota
	KindLine
	KindText
	KindGradient
)

// Align positions text relative to its X anchor.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Element is one positioned primitive on the page. Coordinates are in
// page pixels with the origin at the top left.
type Element struct {
	Kind Kind
	X    float64
	Y    float64
	W    float64
	H    float64

	// Text runs
	Text  string
	Size  float64
	Bold  bool
	Mono  bool
	Align Align
	Color string

	// Rects and lines
	Fill   string
	Stroke string

	// Gradient fills
	From string
	To   string

	// Decorative elements are suppressed (or flattened, for gradients)
	// on the print/export path and kept in the interactive preview.
	Decorative bool
}

// Document is a rendered invoice page: pure data, no layout logic.
type Document struct {
	Width      float64
	Height     float64
	Template   domain.TemplateType
	Background string
	FontFamily string
	Elements   []Element
}

// Texts returns every text run in element order. Used by viewers that
// only care about content, and by tests asserting that all templates
// display identical data.
func (d *Document) Texts() []string {
	return lo.FilterMap(d.Elements, func(e Element, _ int) (string, bool) {
		return e.Text, e.Kind == KindText
	})
}

// page accumulates elements for one document.
type page struct {
	doc *Document
}

func newPage(t domain.TemplateType, background, fontFamily string) *page {
	return &page{doc: &Document{
		Width:      PageWidth,
		Height:     PageHeight,
		Template:   t,
		Background: background,
		FontFamily: fontFamily,
	}}
}

type opt func(*Element)

func bold() opt         { return func(e *Element) { e.Bold = true } }
func mono() opt         { return func(e *Element) { e.Mono = true } }
func align(a Align) opt { return func(e *Element) { e.Align = a } }
func deco() opt         { return func(e *Element) { e.Decorative = true } }

func (p *page) add(e Element, opts ...opt) {
	for _, o := range opts {
		o(&e)
	}
	p.doc.Elements = append(p.doc.Elements, e)
}

func (p *page) text(s string, x, y, size float64, color string, opts ...opt) {
	p.add(Element{Kind: KindText, Text: s, X: x, Y: y, Size: size, Color: color}, opts...)
}

func (p *page) rect(x, y, w, h float64, fill string, opts ...opt) {
	p.add(Element{Kind: KindRect, X: x, Y: y, W: w, H: h, Fill: fill}, opts...)
}

func (p *page) line(x, y, w, thickness float64, color string, opts ...opt) {
	p.add(Element{Kind: KindLine, X: x, Y: y, W: w, H: thickness, Fill: color}, opts...)
}

// frame draws an unfilled, stroked rectangle.
func (p *page) frame(x, y, w, h float64, stroke string, opts ...opt) {
	p.add(Element{Kind: KindRect, X: x, Y: y, W: w, H: h, Stroke: stroke}, opts...)
}

func (p *page) gradient(x, y, w, h float64, from, to string, opts ...opt) {
	p.add(Element{Kind: KindGradient, X: x, Y: y, W: w, H: h, From: from, To: to}, opts...)
}
