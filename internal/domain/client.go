package domain

// ClientDetails is the invoice recipient. An invoice always has exactly
// one client.
type ClientDetails struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}
