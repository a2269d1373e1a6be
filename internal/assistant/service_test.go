package assistant

import (
	"context"
	"errors"
	"testing"

	assistantpkg "chefbot/pkg/assistant"
)

// fakeProvider records every request and replies with a fixed value.
type fakeProvider struct {
	reply string
	err   error

	models []string
	calls  [][]assistantpkg.Message
}

func (f *fakeProvider) Request(_ context.Context, model string, messages []assistantpkg.Message) (string, error) {
	f.models = append(f.models, model)
	f.calls = append(f.calls, messages)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func TestComplete_EmptyHistory(t *testing.T) {
	provider := &fakeProvider{reply: "  Pancakes recipe...  "}
	svc := NewService(provider, "gpt-4o-mini", "")

	updated, err := svc.Complete(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(provider.calls) != 1 {
		t.Fatalf("expected 1 provider call, got %d", len(provider.calls))
	}
	sent := provider.calls[0]
	if len(sent) != 1 || sent[0].Role != assistantpkg.RoleSystem || sent[0].Content != DefaultSystemPrompt {
		t.Fatal("provider must receive exactly the synthesized system prompt")
	}

	if len(updated) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(updated))
	}
	last := updated[len(updated)-1]
	if last.Role != assistantpkg.RoleAssistant {
		t.Fatalf("expected assistant role, got %q", last.Role)
	}
	if last.Content != "Pancakes recipe..." {
		t.Fatalf("expected trimmed reply, got %q", last.Content)
	}
}

func TestComplete_PrependsSystemPrompt(t *testing.T) {
	provider := &fakeProvider{reply: "Omelette it is"}
	svc := NewService(provider, "gpt-4o-mini", "test prompt")

	history := []assistantpkg.Message{
		{Role: assistantpkg.RoleUser, Content: "I want something quick"},
	}

	updated, err := svc.Complete(context.Background(), history)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sent := provider.calls[0]
	if len(sent) != 2 {
		t.Fatalf("expected 2 messages sent, got %d", len(sent))
	}
	if sent[0].Role != assistantpkg.RoleSystem || sent[0].Content != "test prompt" {
		t.Fatal("first sent message must be the configured system prompt")
	}
	if sent[1] != history[0] {
		t.Fatal("user turn must follow the prompt unchanged")
	}

	if len(updated) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(updated))
	}
}

func TestComplete_KeepsCallerSystemPrompt(t *testing.T) {
	provider := &fakeProvider{reply: "hello"}
	svc := NewService(provider, "gpt-4o-mini", "default prompt")

	history := []assistantpkg.Message{
		{Role: assistantpkg.RoleSystem, Content: "custom prompt"},
		{Role: assistantpkg.RoleUser, Content: "hi"},
	}

	updated, err := svc.Complete(context.Background(), history)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sent := provider.calls[0]
	if len(sent) != 2 {
		t.Fatalf("expected history sent unchanged, got %d messages", len(sent))
	}
	if sent[0].Content != "custom prompt" {
		t.Fatalf("caller prompt must not be overridden, got %q", sent[0].Content)
	}

	if len(updated) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(updated))
	}
	if updated[len(updated)-1].Role != assistantpkg.RoleAssistant {
		t.Fatal("last message must be the assistant reply")
	}
}

func TestComplete_PassesConfiguredModel(t *testing.T) {
	provider := &fakeProvider{reply: "ok"}
	svc := NewService(provider, "llama3.2:1b", "prompt")

	if _, err := svc.Complete(context.Background(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(provider.models) != 1 || provider.models[0] != "llama3.2:1b" {
		t.Fatalf("expected model llama3.2:1b, got %v", provider.models)
	}
}

func TestComplete_ProviderErrorPropagates(t *testing.T) {
	wrapped := &assistantpkg.ProviderError{Provider: "openai", Err: errors.New("rate limited")}
	provider := &fakeProvider{err: wrapped}
	svc := NewService(provider, "gpt-4o-mini", "prompt")

	updated, err := svc.Complete(context.Background(), []assistantpkg.Message{
		{Role: assistantpkg.RoleUser, Content: "hi"},
	})
	if updated != nil {
		t.Fatal("no history must be returned on provider failure")
	}

	var provErr *assistantpkg.ProviderError
	if !errors.As(err, &provErr) {
		t.Fatalf("expected *ProviderError, got %T", err)
	}
	if provErr != wrapped {
		t.Fatal("provider error must surface unmodified")
	}
}

func TestComplete_DoesNotMutateInput(t *testing.T) {
	provider := &fakeProvider{reply: "reply"}
	svc := NewService(provider, "gpt-4o-mini", "prompt")

	history := make([]assistantpkg.Message, 0, 4)
	history = append(history, assistantpkg.Message{Role: assistantpkg.RoleSystem, Content: "custom"})
	history = append(history, assistantpkg.Message{Role: assistantpkg.RoleUser, Content: "hi"})

	if _, err := svc.Complete(context.Background(), history); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(history) != 2 {
		t.Fatalf("input length changed to %d", len(history))
	}
	if history[0].Content != "custom" || history[1].Content != "hi" {
		t.Fatal("input contents changed")
	}
	// The spare capacity of the caller's slice must stay untouched.
	spare := history[:3]
	if spare[2].Role == assistantpkg.RoleAssistant {
		t.Fatal("reply was appended into the caller's backing array")
	}
}

func TestNewService_DefaultPrompt(t *testing.T) {
	svc := NewService(&fakeProvider{}, "gpt-4o-mini", "")
	if svc.prompt != DefaultSystemPrompt {
		t.Fatal("empty prompt must fall back to DefaultSystemPrompt")
	}
}

func TestServiceImplementsInterface(t *testing.T) {
	var _ assistantpkg.Service = (*Service)(nil)
}
