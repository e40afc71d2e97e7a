package render

import "github.com/andy/invoicegenius/internal/domain"

// FamilyFor maps a font choice to its type family name. Applied to the
// whole document; individual elements only vary size, weight and the
// mono flag.
func FamilyFor(f domain.FontChoice) string {
	switch f {
	case domain.FontOutfit:
		return "Outfit"
	case domain.FontSpace:
		return "Space Grotesk"
	default:
		return "Inter"
	}
}
