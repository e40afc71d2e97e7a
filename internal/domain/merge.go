package domain

import "encoding/json"

// Per-entity merge functions implementing the forward-compatible load
// contract: fields present in the stored blob override defaults, fields
// absent in the stored blob keep the default value. Presence is decided
// at the JSON level (pointer patch structs), so a stored zero value
// still wins over a non-zero default.
//
// The merge is deliberately one level deep per section: a stored Items
// array replaces the default array wholesale, and a stored Client
// replaces the default client wholesale. Recursing into nested
// structures would silently resurrect deleted line items.

type companyPatch struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	LogoURL *string `json:"logoUrl"`
	Website *string `json:"website"`
	TaxID   *string `json:"taxId"`
}

// MergeCompany overlays the stored company section onto def.
// A nil or unparseable raw section leaves def untouched.
func MergeCompany(def CompanyDetails, raw json.RawMessage) CompanyDetails {
	var p companyPatch
	if len(raw) == 0 || json.Unmarshal(raw, &p) != nil {
		return def
	}
	out := def
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Email != nil {
		out.Email = *p.Email
	}
	if p.Phone != nil {
		out.Phone = *p.Phone
	}
	if p.Address != nil {
		out.Address = *p.Address
	}
	if p.LogoURL != nil {
		out.LogoURL = *p.LogoURL
	}
	if p.Website != nil {
		out.Website = *p.Website
	}
	if p.TaxID != nil {
		out.TaxID = *p.TaxID
	}
	return out
}

type invoicePatch struct {
	Number   *string        `json:"number"`
	Date     *string        `json:"date"`
	DueDate  *string        `json:"dueDate"`
	Items    *[]LineItem    `json:"items"`
	Client   *ClientDetails `json:"client"`
	Notes    *string        `json:"notes"`
	Terms    *string        `json:"terms"`
	Currency *string        `json:"currency"`
	TaxRate  *float64       `json:"taxRate"`
}

// MergeInvoice overlays the stored invoice section onto def.
func MergeInvoice(def InvoiceData, raw json.RawMessage) InvoiceData {
	var p invoicePatch
	if len(raw) == 0 || json.Unmarshal(raw, &p) != nil {
		return def.Clone()
	}
	out := def.Clone()
	if p.Number != nil {
		out.Number = *p.Number
	}
	if p.Date != nil {
		out.Date = *p.Date
	}
	if p.DueDate != nil {
		out.DueDate = *p.DueDate
	}
	if p.Items != nil {
		out.Items = *p.Items
	}
	if p.Client != nil {
		out.Client = *p.Client
	}
	if p.Notes != nil {
		out.Notes = *p.Notes
	}
	if p.Terms != nil {
		out.Terms = *p.Terms
	}
	if p.Currency != nil {
		out.Currency = *p.Currency
	}
	if p.TaxRate != nil {
		out.TaxRate = *p.TaxRate
	}
	return out
}

type designPatch struct {
	Template   *TemplateType `json:"template"`
	ColorTheme *ColorTheme   `json:"colorTheme"`
	Font       *FontChoice   `json:"font"`
}

// MergeDesign overlays the stored design section onto def. Unknown
// enum values are rejected back to the default so the closed sets stay
// closed even against hand-edited storage.
func MergeDesign(def DesignSettings, raw json.RawMessage) DesignSettings {
	var p designPatch
	if len(raw) == 0 || json.Unmarshal(raw, &p) != nil {
		return def
	}
	out := def
	if p.Template != nil && p.Template.Valid() {
		out.Template = *p.Template
	}
	if p.ColorTheme != nil && p.ColorTheme.Valid() {
		out.ColorTheme = *p.ColorTheme
	}
	if p.Font != nil && p.Font.Valid() {
		out.Font = *p.Font
	}
	return out
}
