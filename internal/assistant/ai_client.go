package assistant

import "context"

// AIClient defines the interface for the generative backend. The abstraction
// keeps the guardrail and fallback logic testable without external API calls
// and leaves the provider swappable.
type AIClient interface {
	// Generate produces a reply for the fully assembled prompt.
	Generate(ctx context.Context, prompt string) (string, error)
}
