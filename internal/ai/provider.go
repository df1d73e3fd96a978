package ai

import (
	"context"
)

// FallbackReply is returned when a provider answers with empty content. The
// exchange still succeeds; only the reply text is substituted.
const FallbackReply = "I'm not sure how to respond."

// Provider turns a rendered conversation prompt into reply text.
type Provider interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Registry maps the model selectors stored on chatrooms to their providers.
// It is built once at startup and injected into the handlers that need it.
type Registry map[string]Provider

// Lookup returns the provider for a model selector.
func (r Registry) Lookup(modelID string) (Provider, bool) {
	p, ok := r[modelID]
	return p, ok
}

// Supported reports whether a model selector has a registered provider.
func (r Registry) Supported(modelID string) bool {
	_, ok := r[modelID]
	return ok
}
