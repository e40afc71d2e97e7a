package domain

import "time"

// Hardcoded defaults used when no persisted state exists (or it cannot
// be parsed), and as the base layer of the merge-on-load contract.

// DefaultCompany returns the default issuer profile.
func DefaultCompany() CompanyDetails {
	return CompanyDetails{
		Name:    "Acme Corp",
		Email:   "hello@acmecorp.com",
		Phone:   "+1 (555) 123-4567",
		Address: "123 Innovation Dr, Tech City, TC 90210",
		Website: "www.acmecorp.com",
	}
}

// DefaultInvoice returns the default invoice, dated now and due in two
// weeks, seeded with two example items.
func DefaultInvoice(now time.Time) InvoiceData {
	return InvoiceData{
		Number:  "INV-001",
		Date:    now.Format(DateLayout),
		DueDate: now.Add(14 * 24 * time.Hour).Format(DateLayout),
		Items: []LineItem{
			{ID: "1", Description: "Web Development Services", Quantity: 10, Price: 150},
			{ID: "2", Description: "UI/UX Design Phase", Quantity: 5, Price: 125},
		},
		Client: ClientDetails{
			Name:    "Globex Corporation",
			Email:   "accounts@globex.com",
			Address: "456 Business Rd, Enterprise City, EC 54321",
		},
		Notes:    "Thank you for your business!",
		Terms:    "Payment is due within 14 days.",
		Currency: "USD",
		TaxRate:  10,
	}
}

// DefaultDesign returns the default design settings.
func DefaultDesign() DesignSettings {
	return DesignSettings{
		Template:   TemplateModern,
		ColorTheme: ThemePurple,
		Font:       FontSans,
	}
}

// DefaultState returns the full default application state.
func DefaultState(now time.Time) AppState {
	return AppState{
		Company: DefaultCompany(),
		Invoice: DefaultInvoice(now),
		Design:  DefaultDesign(),
	}
}
