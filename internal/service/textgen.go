package service

import "context"

// TextGenerator produces suggested invoice copy. Implementations are
// best-effort and must always return usable text, falling back to
// deterministic defaults rather than erroring.
type TextGenerator interface {
	// GenerateTerms returns a short payment terms paragraph in the
	// given tone.
	GenerateTerms(ctx context.Context, tone string) string

	// GenerateItemDescription expands keywords into a line item
	// description.
	GenerateItemDescription(ctx context.Context, keywords string) string
}
