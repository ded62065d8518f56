// Package suggest proposes keywords for a categorization rule from sample
// record text, using the Gemini API behind a small client interface.
package suggest

import "context"

// AIClient abstracts the generative model so the suggester can be tested
// without network access.
type AIClient interface {
	// GenerateText sends a prompt and returns the raw model response.
	GenerateText(ctx context.Context, prompt string) (string, error)
}
