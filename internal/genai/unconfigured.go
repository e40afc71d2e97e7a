package genai

import "context"

// Unconfigured is the no-op generator injected when no API credential
// is present. It short-circuits to the deterministic fallbacks without
// touching the network.
type Unconfigured struct{}

// GenerateTerms returns the canned default terms sentence.
func (Unconfigured) GenerateTerms(ctx context.Context, tone string) string {
	return DefaultTerms
}

// GenerateItemDescription returns the keywords unchanged.
func (Unconfigured) GenerateItemDescription(ctx context.Context, keywords string) string {
	return keywords
}
