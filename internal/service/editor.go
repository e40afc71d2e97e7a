package service

import (
	"context"
	"errors"

	"github.com/andy/invoicegenius/internal/domain"
)

var ErrItemNotFound = errors.New("line item not found")

// Saver persists full application state snapshots. The state store
// satisfies it; tests use recording fakes.
type Saver interface {
	Save(ctx context.Context, state domain.AppState)
}

// CompanyField names an editable company profile field.
type CompanyField int

const (
	CompanyName CompanyField = iota
	CompanyEmail
	CompanyPhone
	CompanyAddress
	CompanyLogoURL
	CompanyWebsite
	CompanyTaxID
)

// InvoiceField names an editable invoice metadata field.
type InvoiceField int

const (
	InvoiceNumber InvoiceField = iota
	InvoiceDate
	InvoiceDueDate
	InvoiceNotes
	InvoiceTerms
	InvoiceCurrency
)

// ClientField names an editable client detail field.
type ClientField int

const (
	ClientName ClientField = iota
	ClientEmail
	ClientAddress
)

// Editor owns the working application state. Every mutation produces a
// fresh immutable snapshot and persists it; readers always see a
// consistent copy and never observe a half-applied edit.
type Editor struct {
	state domain.AppState
	store Saver
	newID func() string
}

// NewEditor creates an editor seeded with the given state.
func NewEditor(state domain.AppState, store Saver) *Editor {
	return &Editor{
		state: state.Clone(),
		store: store,
		newID: func() string { return domain.NewLineItem().ID },
	}
}

// State returns a snapshot of the current state. Mutating the returned
// value has no effect on the editor.
func (e *Editor) State() domain.AppState {
	return e.state.Clone()
}

func (e *Editor) commit(ctx context.Context, next domain.AppState) {
	e.state = next
	e.store.Save(ctx, next)
}

// UpdateCompany sets one company profile field.
func (e *Editor) UpdateCompany(ctx context.Context, field CompanyField, value string) {
	next := e.state.Clone()
	switch field {
	case CompanyName:
		next.Company.Name = value
	case CompanyEmail:
		next.Company.Email = value
	case CompanyPhone:
		next.Company.Phone = value
	case CompanyAddress:
		next.Company.Address = value
	case CompanyLogoURL:
		next.Company.LogoURL = value
	case CompanyWebsite:
		next.Company.Website = value
	case CompanyTaxID:
		next.Company.TaxID = value
	default:
		return
	}
	e.commit(ctx, next)
}

// UpdateInvoice sets one invoice metadata field.
func (e *Editor) UpdateInvoice(ctx context.Context, field InvoiceField, value string) {
	next := e.state.Clone()
	switch field {
	case InvoiceNumber:
		next.Invoice.Number = value
	case InvoiceDate:
		next.Invoice.Date = value
	case InvoiceDueDate:
		next.Invoice.DueDate = value
	case InvoiceNotes:
		next.Invoice.Notes = value
	case InvoiceTerms:
		next.Invoice.Terms = value
	case InvoiceCurrency:
		next.Invoice.Currency = value
	default:
		return
	}
	e.commit(ctx, next)
}

// SetTaxRate sets the invoice-wide tax percentage.
func (e *Editor) SetTaxRate(ctx context.Context, rate float64) {
	next := e.state.Clone()
	next.Invoice.TaxRate = rate
	e.commit(ctx, next)
}

// UpdateClient sets one client detail field.
func (e *Editor) UpdateClient(ctx context.Context, field ClientField, value string) {
	next := e.state.Clone()
	switch field {
	case ClientName:
		next.Invoice.Client.Name = value
	case ClientEmail:
		next.Invoice.Client.Email = value
	case ClientAddress:
		next.Invoice.Client.Address = value
	default:
		return
	}
	e.commit(ctx, next)
}

// AddItem appends a fresh empty line item and returns its id.
func (e *Editor) AddItem(ctx context.Context) string {
	next := e.state.Clone()
	item := domain.LineItem{ID: e.newID(), Quantity: 1, Price: 0}
	next.Invoice.Items = append(next.Invoice.Items, item)
	e.commit(ctx, next)
	return item.ID
}

func (e *Editor) updateItem(ctx context.Context, id string, apply func(*domain.LineItem)) error {
	next := e.state.Clone()
	for i := range next.Invoice.Items {
		if next.Invoice.Items[i].ID == id {
			apply(&next.Invoice.Items[i])
			e.commit(ctx, next)
			return nil
		}
	}
	return ErrItemNotFound
}

// SetItemDescription sets the description of the item with the given id.
func (e *Editor) SetItemDescription(ctx context.Context, id, description string) error {
	return e.updateItem(ctx, id, func(it *domain.LineItem) {
		it.Description = description
	})
}

// SetItemQuantity sets the quantity of the item with the given id.
func (e *Editor) SetItemQuantity(ctx context.Context, id string, quantity float64) error {
	return e.updateItem(ctx, id, func(it *domain.LineItem) {
		it.Quantity = quantity
	})
}

// SetItemPrice sets the unit price of the item with the given id.
func (e *Editor) SetItemPrice(ctx context.Context, id string, price float64) error {
	return e.updateItem(ctx, id, func(it *domain.LineItem) {
		it.Price = price
	})
}

// DeleteItem removes the item with the given id. Removing the last
// item is allowed; the invoice may be empty.
func (e *Editor) DeleteItem(ctx context.Context, id string) error {
	next := e.state.Clone()
	items := next.Invoice.Items
	for i := range items {
		if items[i].ID == id {
			next.Invoice.Items = append(items[:i:i], items[i+1:]...)
			e.commit(ctx, next)
			return nil
		}
	}
	return ErrItemNotFound
}

// SetDesign replaces the design settings wholesale. Invalid values are
// ignored.
func (e *Editor) SetDesign(ctx context.Context, d domain.DesignSettings) {
	if !d.Template.Valid() || !d.ColorTheme.Valid() || !d.Font.Valid() {
		return
	}
	next := e.state.Clone()
	next.Design = d
	e.commit(ctx, next)
}

// SetTemplate switches the page layout. Unknown values are ignored.
func (e *Editor) SetTemplate(ctx context.Context, t domain.TemplateType) {
	if !t.Valid() {
		return
	}
	next := e.state.Clone()
	next.Design.Template = t
	e.commit(ctx, next)
}

// SetColorTheme switches the accent palette. Unknown values are ignored.
func (e *Editor) SetColorTheme(ctx context.Context, c domain.ColorTheme) {
	if !c.Valid() {
		return
	}
	next := e.state.Clone()
	next.Design.ColorTheme = c
	e.commit(ctx, next)
}

// SetFont switches the document type family. Unknown values are ignored.
func (e *Editor) SetFont(ctx context.Context, f domain.FontChoice) {
	if !f.Valid() {
		return
	}
	next := e.state.Clone()
	next.Design.Font = f
	e.commit(ctx, next)
}
