package render

import "github.com/andy/invoicegenius/internal/domain"

// Glitch: dark terminal aesthetic with monospaced labels and a gradient
// spine along the left edge.
func renderGlitch(c renderContext, family string) *Document {
	p := newPage(domain.TemplateGlitch, colorNight, family)
	pal := c.pal

	const (
		margin    = 48.0
		gray300   = "#d1d5db"
		gray400   = "#9ca3af"
		gray500   = "#6b7280"
		hairline  = "#262626"
		panelFill = "#171717"
	)
	right := PageWidth - margin

	// Gradient spine.
	p.gradient(0, 0, 6, PageHeight, pal.GradientFrom, pal.GradientTo)

	// Header.
	p.text(c.co.Name, margin, margin, 40, colorWhite, bold())
	p.text(c.co.Email, margin, margin+54, 13, gray400, mono())
	if c.co.TaxID != "" {
		p.text(c.co.TaxID, margin, margin+74, 13, gray400, mono())
	}
	p.frame(right-250, margin, 250, 30, hairline)
	p.text("INVOICE_"+c.inv.Number, right-125, margin+8, 13, pal.Text, mono(), align(AlignCenter))
	p.text(c.inv.Date, right, margin+44, 14, gray400, align(AlignRight))

	p.line(margin, margin+110, PageWidth-2*margin, 1, hairline)

	y := margin + 150.0

	// Recipient and due date.
	p.text("/// BILL_TO_CLIENT", margin, y, 11, gray500, mono())
	p.text(c.inv.Client.Name, margin, y+24, 26, colorWhite, bold())
	p.text(c.inv.Client.Address, margin, y+60, 14, gray400)
	p.text(c.inv.Client.Email, margin, y+80, 14, gray400)

	dueX := PageWidth * 0.66
	p.line(dueX-24, y, 1, 100, hairline)
	p.text("/// PAYMENT_DUE", dueX, y, 11, gray500, mono())
	p.text(c.inv.DueDate, dueX, y+24, 26, pal.Text, bold())

	y += 140

	// Table.
	qtyX := 470.0
	priceX := 590.0
	p.text("ITEM_DESC", margin+8, y, 11, gray500, mono())
	p.text("QTY", qtyX, y, 11, gray500, mono(), align(AlignCenter))
	p.text("UNIT_PRICE", priceX, y, 11, gray500, mono(), align(AlignRight))
	p.text("TOTAL", right-8, y, 11, gray500, mono(), align(AlignRight))
	y += 20
	p.line(margin, y, PageWidth-2*margin, 1, hairline)
	y += 18

	for _, item := range c.inv.Items {
		p.text(item.Description, margin+8, y, 14, colorWhite)
		p.text(c.quantity(item), qtyX, y, 14, gray400, mono(), align(AlignCenter))
		p.text(c.unitPrice(item), priceX, y, 14, gray400, mono(), align(AlignRight))
		p.text(c.lineTotal(item), right-8, y, 14, colorWhite, bold(), align(AlignRight))
		y += 24
		p.line(margin, y, PageWidth-2*margin, 1, panelFill)
		y += 16
	}

	y += 24

	// Summary.
	sumX := right - 300
	p.text("SUBTOTAL", sumX, y, 13, gray400, mono())
	p.text(c.money(c.totals.Subtotal), right, y, 13, gray400, mono(), align(AlignRight))
	p.text("TAX_"+c.taxRate()+"%", sumX, y+26, 13, gray400, mono())
	p.text(c.money(c.totals.TaxAmount), right, y+26, 13, gray400, mono(), align(AlignRight))
	p.line(sumX, y+54, 300, 1, hairline)
	p.text("TOTAL", sumX, y+70, 22, pal.Text, bold())
	p.text(c.money(c.totals.Total), right, y+70, 22, pal.Text, bold(), align(AlignRight))

	// Footer panel.
	fy := PageHeight - margin - 130
	p.rect(margin, fy, PageWidth-2*margin, 130, panelFill)
	p.frame(margin, fy, PageWidth-2*margin, 130, hairline)
	p.text("/// TERMS_AND_NOTES", margin+24, fy+20, 11, gray500, mono())
	p.text(c.inv.Terms, margin+24, fy+48, 13, gray300)
	p.text(c.inv.Notes, margin+24, fy+76, 13, gray400)

	return p.doc
}
