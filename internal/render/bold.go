package render

import "github.com/andy/invoicegenius/internal/domain"

// Bold: full-bleed color banner and heavy use of the theme's primary
// fill.
func renderBold(c renderContext, family string) *Document {
	p := newPage(domain.TemplateBold, colorWhite, family)
	pal := c.pal

	const margin = 48.0
	right := PageWidth - margin

	// Banner.
	p.rect(0, 0, PageWidth, 210, pal.Primary)
	p.text("INVOICE", margin, margin, 44, colorWhite, bold())
	p.text("#"+c.inv.Number, margin, margin+64, 16, colorWhite)
	p.text(c.co.Name, right, margin, 24, colorWhite, bold(), align(AlignRight))
	p.text(c.co.Email, right, margin+34, 14, colorWhite, align(AlignRight))

	y := 210 + margin

	// Recipient and dates.
	p.text("Billed To", margin, y, 12, colorSlate400, bold())
	p.text(c.inv.Client.Name, margin, y+22, 22, colorSlate800, bold())
	p.text(c.inv.Client.Address, margin, y+52, 14, colorSlate500)
	p.text(c.inv.Client.Email, margin, y+72, 14, colorSlate500)

	datesX := PageWidth * 0.68
	p.text("Date Issued", datesX, y, 12, colorSlate400, bold())
	p.text(c.inv.Date, datesX, y+20, 14, colorSlate800)
	p.text("Date Due", datesX, y+50, 12, colorSlate400, bold())
	p.text(c.inv.DueDate, datesX, y+70, 14, colorSlate800)

	y += 120

	// Table with a primary header band and zebra rows.
	qtyX := 470.0
	priceX := 590.0
	p.rect(margin, y, PageWidth-2*margin, 34, pal.Primary)
	p.text("Description", margin+16, y+9, 12, colorWhite, bold())
	p.text("Qty", qtyX, y+9, 12, colorWhite, bold(), align(AlignCenter))
	p.text("Price", priceX, y+9, 12, colorWhite, bold(), align(AlignRight))
	p.text("Total", right-16, y+9, 12, colorWhite, bold(), align(AlignRight))
	y += 34

	for i, item := range c.inv.Items {
		if i%2 == 0 {
			p.rect(margin, y, PageWidth-2*margin, 42, colorSlate50)
		}
		ty := y + 13
		p.text(item.Description, margin+16, ty, 14, colorSlate700)
		p.text(c.quantity(item), qtyX, ty, 14, colorSlate500, align(AlignCenter))
		p.text(c.unitPrice(item), priceX, ty, 14, colorSlate500, align(AlignRight))
		p.text(c.lineTotal(item), right-16, ty, 14, colorSlate700, bold(), align(AlignRight))
		y += 42
		p.line(margin, y, PageWidth-2*margin, 1, colorSlate100)
	}

	y += 32

	// Summary in a light tinted box.
	boxW := 280.0
	boxX := right - boxW
	p.rect(boxX, y, boxW, 124, pal.Light)
	p.text("Subtotal", boxX+24, y+20, 14, colorSlate500)
	p.text(c.money(c.totals.Subtotal), right-24, y+20, 14, colorSlate500, align(AlignRight))
	p.text("Tax ("+c.taxRate()+"%)", boxX+24, y+48, 14, colorSlate500)
	p.text(c.money(c.totals.TaxAmount), right-24, y+48, 14, colorSlate500, align(AlignRight))
	p.text("Total", boxX+24, y+84, 20, pal.Text, bold())
	p.text(c.money(c.totals.Total), right-24, y+84, 20, pal.Text, bold(), align(AlignRight))

	// Footer box.
	fy := PageHeight - margin - 130
	p.rect(margin, fy, PageWidth-2*margin, 130, colorSlate50)
	p.text("Payment Terms", margin+24, fy+24, 14, colorSlate800, bold())
	p.text(c.inv.Terms, margin+24, fy+48, 13, colorSlate500)
	p.text("Thank you", right-24, fy+24, 14, colorSlate800, bold(), align(AlignRight))
	p.text(c.inv.Notes, right-24, fy+48, 13, colorSlate500, align(AlignRight))

	return p.doc
}
