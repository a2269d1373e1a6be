package assistant

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	ollamaapi "github.com/ollama/ollama/api"

	assistantpkg "chefbot/pkg/assistant"
	"chefbot/pkg/optional"
)

// OllamaProvider implements the completion provider against a local or
// remote Ollama daemon.
type OllamaProvider struct {
	client *ollamaapi.Client
}

func NewOllamaProvider(host string) *OllamaProvider {
	client := ollamaapi.NewClient(&url.URL{
		Scheme: "http",
		Host:   host,
	}, http.DefaultClient)

	return &OllamaProvider{client: client}
}

// Pull downloads the model if the daemon does not have it yet.
func (p *OllamaProvider) Pull(ctx context.Context, model string) error {
	err := p.client.Pull(ctx, &ollamaapi.PullRequest{Model: model, Stream: optional.Pointer(true)}, func(response ollamaapi.ProgressResponse) error {
		slog.Info("Pulling model",
			slog.String("name", model),
			slog.Int64("completed", response.Completed),
			slog.Int64("total", response.Total))
		return nil
	})
	if err != nil {
		return &assistantpkg.ProviderError{Provider: "ollama", Err: err}
	}
	return nil
}

// Request asks for a single non-streaming completion.
func (p *OllamaProvider) Request(ctx context.Context, model string, messages []assistantpkg.Message) (string, error) {
	builder := &strings.Builder{}
	builder.Grow(1024)

	err := p.client.Chat(ctx, &ollamaapi.ChatRequest{
		Model:    model,
		Messages: toOllamaMessages(messages),
		Stream:   optional.Pointer(false),
	}, func(response ollamaapi.ChatResponse) error {
		builder.WriteString(response.Message.Content)
		return nil
	})
	if err != nil {
		return "", &assistantpkg.ProviderError{Provider: "ollama", Err: err}
	}

	return builder.String(), nil
}

func toOllamaMessages(messages []assistantpkg.Message) []ollamaapi.Message {
	result := make([]ollamaapi.Message, len(messages))
	for i, message := range messages {
		result[i] = ollamaapi.Message{
			Role:    string(message.Role),
			Content: message.Content,
		}
	}
	return result
}
