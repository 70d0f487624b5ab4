package llm

import "context"

// Provider is a minimal abstraction over chat-based LLMs. It hides concrete
// vendors so the extraction pipeline stays provider-agnostic.
type Provider interface {
	// Complete sends a single-turn prompt and returns the full model reply.
	Complete(ctx context.Context, prompt string) (string, error)
	Close() error
}
