package domain

// DateLayout is the calendar date format used throughout the persisted
// state (ISO-8601 date, no time component).
const DateLayout = "2006-01-02"

// InvoiceData is the single current invoice being edited. Subtotal, tax
// and total are always derived from Items and TaxRate, never stored.
type InvoiceData struct {
	Number   string        `json:"number"`
	Date     string        `json:"date"`
	DueDate  string        `json:"dueDate"`
	Items    []LineItem    `json:"items"`
	Client   ClientDetails `json:"client"`
	Notes    string        `json:"notes"`
	Terms    string        `json:"terms"`
	Currency string        `json:"currency"`
	TaxRate  float64       `json:"taxRate"`
}

// Clone returns a deep copy. Items get their own backing array so a
// clone can be mutated without touching the original snapshot; a nil
// slice comes back as an empty one, so clones always serialize items
// as an array.
func (inv InvoiceData) Clone() InvoiceData {
	out := inv
	out.Items = make([]LineItem, len(inv.Items))
	copy(out.Items, inv.Items)
	return out
}
