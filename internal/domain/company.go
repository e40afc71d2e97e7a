package domain

// CompanyDetails is the invoice issuer profile. There is exactly one
// company profile per installation, shared by every invoice.
type CompanyDetails struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	LogoURL string `json:"logoUrl,omitempty"`
	Website string `json:"website,omitempty"`
	TaxID   string `json:"taxId,omitempty"`
}
