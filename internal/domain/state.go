package domain

// AppState is the single root object persisted between sessions.
// It is only ever replaced wholesale or by swapping one of its three
// sections; line items inside Invoice are copied on edit, never mutated
// in place.
type AppState struct {
	Company CompanyDetails `json:"company"`
	Invoice InvoiceData    `json:"invoice"`
	Design  DesignSettings `json:"design"`
}

// Clone returns a deep copy of the state.
func (s AppState) Clone() AppState {
	out := s
	out.Invoice = s.Invoice.Clone()
	return out
}
