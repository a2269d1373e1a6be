package assistant

import (
	"context"
	"fmt"
)

// CompletionProvider is the capability boundary to the backing language
// model. Implementations must be safe for concurrent use and must wrap every
// failure, including an empty or malformed choice list, in *ProviderError.
type CompletionProvider interface {
	Request(ctx context.Context, model string, messages []Message) (string, error)
}

// Service produces one assistant turn for a conversation history.
type Service interface {
	Complete(ctx context.Context, history []Message) ([]Message, error)
}

// ProviderError wraps any failure originating from a completion provider:
// transport errors, provider error responses, and responses without usable
// content. It is surfaced to callers unmodified, with no retry or fallback.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s provider: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
