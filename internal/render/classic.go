package render

import "github.com/andy/invoicegenius/internal/domain"

// Classic: structured layout with hairline borders and an understated
// INVOICE masthead.
func renderClassic(c renderContext, family string) *Document {
	p := newPage(domain.TemplateClassic, colorWhite, family)
	pal := c.pal

	const margin = 48.0
	right := PageWidth - margin

	// Masthead: issuer left, INVOICE + number right.
	p.text(c.co.Name, margin, margin, 32, colorInk, bold())
	p.text(c.co.Address, margin, margin+48, 13, colorSlate500)
	p.text(joinNonEmpty("  •  ", c.co.Email, c.co.Phone), margin, margin+68, 13, colorSlate500)
	p.text(c.co.Website, margin, margin+88, 13, colorSlate500)

	p.text("INVOICE", right, margin, 44, colorSlate200, align(AlignRight))
	p.text("#"+c.inv.Number, right, margin+58, 20, pal.Text, bold(), align(AlignRight))

	p.line(margin, margin+118, PageWidth-2*margin, 2, colorSlate100)

	y := margin + 150.0

	// Bill-to and dates grid.
	p.text("Bill To", margin, y, 12, colorSlate400, bold())
	p.text(c.inv.Client.Name, margin, y+22, 18, colorInk)
	p.text(c.inv.Client.Address, margin, y+48, 14, colorSlate500)
	p.text(c.inv.Client.Email, margin, y+68, 14, colorSlate500)

	colA := PageWidth * 0.55
	colB := PageWidth * 0.78
	p.text("Invoice Date", colA, y, 12, colorSlate400, bold())
	p.text(c.inv.Date, colA, y+20, 14, colorSlate700)
	p.text("Due Date", colB, y, 12, colorSlate400, bold())
	p.text(c.inv.DueDate, colB, y+20, 14, colorSlate700)
	if c.co.TaxID != "" {
		// The Tax ID row only exists when the profile carries one.
		p.text("Tax ID", colA, y+52, 12, colorSlate400, bold())
		p.text(c.co.TaxID, colA, y+72, 14, colorSlate700)
	}

	y += 120

	// Item table.
	qtyX := 470.0
	priceX := 590.0
	p.text("Description", margin+8, y, 12, colorSlate500, bold())
	p.text("Qty", qtyX, y, 12, colorSlate500, bold(), align(AlignCenter))
	p.text("Price", priceX, y, 12, colorSlate500, bold(), align(AlignRight))
	p.text("Total", right-8, y, 12, colorSlate500, bold(), align(AlignRight))
	y += 20
	p.line(margin, y, PageWidth-2*margin, 1, colorSlate200)
	y += 16

	for _, item := range c.inv.Items {
		p.text(item.Description, margin+8, y, 14, colorSlate700)
		p.text(c.quantity(item), qtyX, y, 14, colorSlate500, align(AlignCenter))
		p.text(c.unitPrice(item), priceX, y, 14, colorSlate500, align(AlignRight))
		p.text(c.lineTotal(item), right-8, y, 14, colorSlate700, bold(), align(AlignRight))
		y += 24
		p.line(margin, y, PageWidth-2*margin, 1, colorSlate50)
		y += 16
	}

	y += 16

	// Totals column.
	sumX := right - 300
	p.text("Subtotal", sumX, y, 14, colorSlate500)
	p.text(c.money(c.totals.Subtotal), right, y, 14, colorSlate500, align(AlignRight))
	p.text("Tax ("+c.taxRate()+"%)", sumX, y+26, 14, colorSlate500)
	p.text(c.money(c.totals.TaxAmount), right, y+26, 14, colorSlate500, align(AlignRight))
	p.line(sumX, y+52, 300, 1, colorSlate200)
	p.text("Total", sumX, y+66, 20, pal.Text, bold())
	p.text(c.money(c.totals.Total), right, y+66, 20, pal.Text, bold(), align(AlignRight))

	// Footer pinned to the bottom.
	fy := PageHeight - margin - 120
	p.line(margin, fy, PageWidth-2*margin, 2, colorSlate100)
	p.text("Terms & Conditions", margin, fy+24, 14, colorInk, bold())
	p.text(c.inv.Terms, margin, fy+48, 13, colorSlate500)
	noteX := PageWidth/2 + 16
	p.text("Notes", noteX, fy+24, 14, colorInk, bold())
	p.text(c.inv.Notes, noteX, fy+48, 13, colorSlate500)

	return p.doc
}
