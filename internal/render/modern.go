package render

import "github.com/andy/invoicegenius/internal/domain"

// Modern: rounded cards on white, total due shown up front in the
// header card.
func renderModern(c renderContext, family string) *Document {
	p := newPage(domain.TemplateModern, colorWhite, family)
	pal := c.pal

	const margin = 48.0
	right := PageWidth - margin

	// Header card: issuer identity left, total due right.
	p.rect(margin, margin, PageWidth-2*margin, 152, pal.Light)
	p.rect(margin+32, margin+30, 40, 40, pal.Primary)
	if c.co.Name != "" {
		p.text(string([]rune(c.co.Name)[:1]), margin+52, margin+40, 20, colorWhite, bold(), align(AlignCenter))
	}
	p.text(c.co.Name, margin+88, margin+40, 24, colorSlate800, bold())
	p.text(c.co.Address, margin+32, margin+94, 14, colorSlate500)
	p.text("Total Due", right-32, margin+28, 12, colorSlate500, align(AlignRight))
	p.text(c.money(c.totals.Total), right-32, margin+48, 36, pal.Text, bold(), align(AlignRight))
	p.text("Inv #"+c.inv.Number, right-32, margin+100, 14, colorSlate400, align(AlignRight))

	y := margin + 192.0

	// Recipient block with dates alongside.
	p.text("Bill To", margin, y, 12, colorSlate400, bold())
	p.rect(margin, y+24, 4, 76, colorSlate100)
	p.text(c.inv.Client.Name, margin+16, y+28, 20, colorInk)
	p.text(c.inv.Client.Email, margin+16, y+58, 14, colorSlate500)
	p.text(c.inv.Client.Address, margin+16, y+80, 14, colorSlate500)

	datesX := PageWidth * 0.62
	p.text("Issued", datesX, y+28, 14, colorSlate400)
	p.text(c.inv.Date, right, y+28, 14, colorSlate700, bold(), align(AlignRight))
	p.line(datesX, y+52, right-datesX, 1, colorSlate50)
	p.text("Due", datesX, y+64, 14, colorSlate400)
	p.text(c.inv.DueDate, right, y+64, 14, colorSlate700, bold(), align(AlignRight))
	p.line(datesX, y+88, right-datesX, 1, colorSlate50)

	y += 140

	// Item rows as individual cards.
	descX := margin + 24
	qtyX := 470.0
	priceX := 590.0
	totalX := right - 24
	p.text("Item Description", descX, y, 12, colorSlate400, bold())
	p.text("Qty", qtyX, y, 12, colorSlate400, bold(), align(AlignCenter))
	p.text("Price", priceX, y, 12, colorSlate400, bold(), align(AlignRight))
	p.text("Total", totalX, y, 12, colorSlate400, bold(), align(AlignRight))
	y += 26

	for _, item := range c.inv.Items {
		p.rect(margin, y, PageWidth-2*margin, 44, colorSlate50)
		ty := y + 14
		p.text(item.Description, descX, ty, 14, colorSlate700, bold())
		p.text(c.quantity(item), qtyX, ty, 14, colorSlate500, align(AlignCenter))
		p.text(c.unitPrice(item), priceX, ty, 14, colorSlate500, align(AlignRight))
		p.text(c.lineTotal(item), totalX, ty, 14, colorSlate800, bold(), align(AlignRight))
		y += 52
	}

	y += 24

	// Summary.
	sumX := right - 280
	p.text("Subtotal", sumX, y, 14, colorSlate500)
	p.text(c.money(c.totals.Subtotal), right, y, 14, colorSlate500, align(AlignRight))
	p.text("Tax ("+c.taxRate()+"%)", sumX, y+28, 14, colorSlate500)
	p.text(c.money(c.totals.TaxAmount), right, y+28, 14, colorSlate500, align(AlignRight))
	p.line(sumX, y+54, 280, 1, colorSlate100)
	p.text("Total", sumX, y+68, 20, pal.Text, bold())
	p.text(c.money(c.totals.Total), right, y+68, 20, pal.Text, bold(), align(AlignRight))

	// Footer card pinned to the bottom of the page.
	fy := PageHeight - margin - 140
	p.rect(margin, fy, PageWidth-2*margin, 140, colorSlate50)
	p.text("Terms & Conditions", margin+24, fy+24, 14, pal.Text, bold())
	p.text(c.inv.Terms, margin+24, fy+50, 13, colorSlate700)
	noteX := PageWidth/2 + 24
	p.text("Note", noteX, fy+24, 14, pal.Text, bold())
	p.text(c.inv.Notes, noteX, fy+50, 13, colorSlate700)

	return p.doc
}
