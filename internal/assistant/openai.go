package assistant

import (
	"context"
	"errors"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	assistantpkg "chefbot/pkg/assistant"
)

// OpenAIProvider implements the completion provider on the official OpenAI
// Go SDK. Any OpenAI-compatible endpoint works via WithBaseURL.
type OpenAIProvider struct {
	client openai.Client
}

type OpenAIOption func(*openaiConfig)

type openaiConfig struct {
	apiKey  string
	baseURL string
	timeout time.Duration
}

// WithAPIKey sets the API key. If empty, the SDK falls back to OPENAI_API_KEY.
func WithAPIKey(key string) OpenAIOption {
	return func(c *openaiConfig) { c.apiKey = key }
}

// WithBaseURL points the client at a custom OpenAI-compatible endpoint
// (Ollama, vLLM, Azure and the like).
func WithBaseURL(url string) OpenAIOption {
	return func(c *openaiConfig) { c.baseURL = url }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) OpenAIOption {
	return func(c *openaiConfig) { c.timeout = d }
}

func NewOpenAIProvider(opts ...OpenAIOption) *OpenAIProvider {
	var cfg openaiConfig
	for _, o := range opts {
		o(&cfg)
	}

	var clientOpts []option.RequestOption
	if cfg.apiKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(cfg.apiKey))
	}
	if cfg.baseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(cfg.baseURL))
	}
	if cfg.timeout > 0 {
		clientOpts = append(clientOpts, option.WithRequestTimeout(cfg.timeout))
	}

	return &OpenAIProvider{client: openai.NewClient(clientOpts...)}
}

// Request asks for a single non-streaming completion and returns the content
// of the first choice.
func (p *OpenAIProvider) Request(ctx context.Context, model string, messages []assistantpkg.Message) (string, error) {
	completion, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    model,
		Messages: toOpenAIMessages(messages),
	})
	if err != nil {
		return "", &assistantpkg.ProviderError{Provider: "openai", Err: err}
	}

	if len(completion.Choices) == 0 {
		return "", &assistantpkg.ProviderError{Provider: "openai", Err: errors.New("response contains no choices")}
	}

	return completion.Choices[0].Message.Content, nil
}

// toOpenAIMessages converts conversation messages to the SDK union type.
func toOpenAIMessages(messages []assistantpkg.Message) []openai.ChatCompletionMessageParamUnion {
	result := make([]openai.ChatCompletionMessageParamUnion, len(messages))
	for i, message := range messages {
		switch message.Role {
		case assistantpkg.RoleSystem:
			result[i] = openai.SystemMessage(message.Content)
		case assistantpkg.RoleAssistant:
			result[i] = openai.AssistantMessage(message.Content)
		default:
			result[i] = openai.UserMessage(message.Content)
		}
	}
	return result
}
