package render

import (
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/andy/invoicegenius/internal/domain"
	"github.com/andy/invoicegenius/internal/money"
)

// Render maps invoice content, the issuer profile and design settings
// to a fixed-size page. It is pure: the same inputs always produce the
// same document, and no input is mutated. Template variants arrange
// the same data differently; they never change the numbers or text
// shown.
func Render(inv domain.InvoiceData, co domain.CompanyDetails, design domain.DesignSettings, f money.Formatter) *Document {
	c := renderContext{
		inv:    inv,
		co:     co,
		totals: money.CalculateTotals(inv.Items, inv.TaxRate),
		fmt:    f,
		pal:    PaletteFor(design.ColorTheme),
	}
	family := FamilyFor(design.Font)

	switch design.Template {
	case domain.TemplateClassic:
		return renderClassic(c, family)
	case domain.TemplateBold:
		return renderBold(c, family)
	case domain.TemplateNeo:
		return renderNeo(c, family)
	case domain.TemplateGlitch:
		return renderGlitch(c, family)
	case domain.TemplateModern:
		return renderModern(c, family)
	default:
		// Unknown tags are normalized at load; keep modern as the
		// safety net for states constructed by hand.
		return renderModern(c, family)
	}
}

// renderContext bundles the data every template variant draws from.
type renderContext struct {
	inv    domain.InvoiceData
	co     domain.CompanyDetails
	totals money.Totals
	fmt    money.Formatter
	pal    Palette
}

func (c renderContext) money(d decimal.Decimal) string {
	return c.fmt.Format(d)
}

func (c renderContext) unitPrice(item domain.LineItem) string {
	return c.fmt.FormatFloat(item.Price)
}

func (c renderContext) lineTotal(item domain.LineItem) string {
	return c.fmt.Format(money.LineTotal(item))
}

func (c renderContext) quantity(item domain.LineItem) string {
	return strconv.FormatFloat(item.Quantity, 'f', -1, 64)
}

func (c renderContext) taxRate() string {
	return strconv.FormatFloat(c.inv.TaxRate, 'f', -1, 64)
}

// joinNonEmpty joins the non-empty parts with sep, so missing optional
// fields collapse instead of leaving dangling separators.
func joinNonEmpty(sep string, parts ...string) string {
	return strings.Join(lo.Compact(parts), sep)
}

