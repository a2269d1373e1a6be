package assistant

import (
	"context"
	"strings"

	assistantpkg "chefbot/pkg/assistant"
)

// Service is the conversation completion service. It holds only the prompt
// and model fixed at construction, so concurrent calls are independent.
type Service struct {
	provider assistantpkg.CompletionProvider
	model    string
	prompt   string
}

func NewService(provider assistantpkg.CompletionProvider, model string, prompt string) *Service {
	if prompt == "" {
		prompt = DefaultSystemPrompt
	}
	return &Service{
		provider: provider,
		model:    model,
		prompt:   prompt,
	}
}

// Complete sends the history to the provider and returns it extended with
// the assistant's reply. The history is first normalized so a system message
// sits at index 0 exactly once; a caller-supplied leading system message is
// kept. The returned slice is a new value and the argument is never mutated.
// Provider failures come back as *assistantpkg.ProviderError with no history.
func (svc *Service) Complete(ctx context.Context, history []assistantpkg.Message) ([]assistantpkg.Message, error) {
	effective := assistantpkg.WithSystemPrompt(history, svc.prompt)

	reply, err := svc.provider.Request(ctx, svc.model, effective)
	if err != nil {
		return nil, err
	}

	updated := make([]assistantpkg.Message, 0, len(effective)+1)
	updated = append(updated, effective...)
	updated = append(updated, assistantpkg.Message{
		Role:    assistantpkg.RoleAssistant,
		Content: strings.TrimSpace(reply),
	})
	return updated, nil
}
