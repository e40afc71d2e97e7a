package render

import "github.com/andy/invoicegenius/internal/domain"

// Neo: soft gradients and floating cards on a near-white ground. The
// header wash and glow are decorative only; the due-date card gradient
// is content chrome and survives printing as a flat fill.
func renderNeo(c renderContext, family string) *Document {
	p := newPage(domain.TemplateNeo, colorSlate50, family)
	pal := c.pal

	const margin = 48.0
	right := PageWidth - margin

	// Decorative header wash and corner glow.
	p.gradient(0, 0, PageWidth, 256, pal.GradientFrom, pal.GradientTo, deco())
	p.gradient(PageWidth-200, -100, 300, 300, pal.GradientFrom, pal.GradientTo, deco())

	// Issuer glass card.
	p.rect(margin, margin, 330, 96, colorWhite)
	p.text(c.co.Name, margin+24, margin+22, 26, colorInk, bold())
	p.text(c.co.Email, margin+24, margin+60, 14, colorSlate500)

	p.text("INVOICE", right, margin, 54, colorSlate200, bold(), align(AlignRight))
	p.text("#"+c.inv.Number, right, margin+70, 24, pal.Text, bold(), align(AlignRight))

	y := margin + 160.0

	// Recipient card.
	p.text("Billed To", margin, y, 12, colorSlate400, bold())
	p.rect(margin, y+22, 330, 104, colorWhite)
	p.text(c.inv.Client.Name, margin+24, y+44, 20, colorSlate800, bold())
	p.text(c.inv.Client.Address, margin+24, y+74, 13, colorSlate500)
	p.text(c.inv.Client.Email, margin+24, y+94, 13, colorSlate500)

	// Date cards: issued on white, due on the theme gradient.
	cardW := 160.0
	issuedX := PageWidth*0.55 + 10
	dueX := issuedX + cardW + 16
	p.rect(issuedX, y+22, cardW, 84, colorWhite)
	p.text("Issued", issuedX+20, y+40, 11, colorSlate400, bold())
	p.text(c.inv.Date, issuedX+20, y+62, 16, colorSlate800, bold())
	p.gradient(dueX, y+22, cardW, 84, pal.GradientFrom, pal.GradientTo)
	p.text("Due Date", dueX+20, y+40, 11, colorWhite, bold())
	p.text(c.inv.DueDate, dueX+20, y+62, 16, colorWhite, bold())

	y += 160

	// Items card.
	qtyX := 470.0
	priceX := 590.0
	rows := float64(len(c.inv.Items))
	p.rect(margin, y, PageWidth-2*margin, 40+rows*48, colorWhite)
	p.rect(margin, y, PageWidth-2*margin, 40, colorSlate50)
	p.text("Item", margin+24, y+12, 12, colorSlate400, bold())
	p.text("Qty", qtyX, y+12, 12, colorSlate400, bold(), align(AlignCenter))
	p.text("Price", priceX, y+12, 12, colorSlate400, bold(), align(AlignRight))
	p.text("Total", right-24, y+12, 12, colorSlate400, bold(), align(AlignRight))
	y += 40

	for i, item := range c.inv.Items {
		ty := y + 16
		p.text(item.Description, margin+24, ty, 14, colorSlate700, bold())
		p.text(c.quantity(item), qtyX, ty, 14, colorSlate500, align(AlignCenter))
		p.text(c.unitPrice(item), priceX, ty, 14, colorSlate500, align(AlignRight))
		p.text(c.lineTotal(item), right-24, ty, 14, colorInk, bold(), align(AlignRight))
		y += 48
		if i != len(c.inv.Items)-1 {
			p.line(margin+16, y, PageWidth-2*margin-32, 1, colorSlate50)
		}
	}

	y += 32

	// Summary card.
	boxW := 340.0
	boxX := right - boxW
	p.rect(boxX, y, boxW, 150, colorWhite)
	p.text("Subtotal", boxX+28, y+24, 14, colorSlate500)
	p.text(c.money(c.totals.Subtotal), right-28, y+24, 14, colorSlate500, align(AlignRight))
	p.text("Tax ("+c.taxRate()+"%)", boxX+28, y+52, 14, colorSlate500)
	p.text(c.money(c.totals.TaxAmount), right-28, y+52, 14, colorSlate500, align(AlignRight))
	p.line(boxX+28, y+84, boxW-56, 1, colorSlate200)
	p.text("Total Due", boxX+28, y+102, 13, colorSlate400, bold())
	p.text(c.money(c.totals.Total), right-28, y+96, 30, pal.Text, bold(), align(AlignRight))

	// Footer: terms and notes left, issuer contact right.
	fy := PageHeight - margin - 110
	p.text("Terms", margin, fy, 13, colorInk, bold())
	p.text(c.inv.Terms, margin, fy+24, 13, colorSlate500)
	p.text(c.inv.Notes, margin, fy+48, 13, colorSlate500)
	p.text(c.co.Website, right, fy+24, 12, colorSlate400, align(AlignRight))
	p.text(c.co.Address, right, fy+48, 12, colorSlate400, align(AlignRight))

	return p.doc
}
