package ai

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

// ChatProvider talks to the OpenAI chat completions API or any service that
// mirrors it (DeepSeek, OpenRouter, Ollama).
type ChatProvider struct {
	client openai.Client
	model  string
	name   string
}

// NewOpenAIProvider creates a provider for api.openai.com, or baseURL when set.
func NewOpenAIProvider(apiKey, baseURL, model string) (*ChatProvider, error) {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &ChatProvider{client: openai.NewClient(opts...), model: model, name: ProviderOpenAI}, nil
}

// NewCompatibleProvider creates a provider for an OpenAI-compatible endpoint.
func NewCompatibleProvider(apiKey, baseURL, model string) (*ChatProvider, error) {
	if baseURL == "" {
		return nil, ErrMissingBaseURL
	}
	client := openai.NewClient(option.WithAPIKey(apiKey), option.WithBaseURL(baseURL))
	return &ChatProvider{client: client, model: model, name: ProviderCompatible}, nil
}

func (p *ChatProvider) Name() string {
	return p.name
}

// Test sends a short prompt to verify the key, endpoint and model.
func (p *ChatProvider) Test(ctx context.Context) (string, error) {
	params := p.params("", "Reply with the single word: ok", false)
	params.MaxTokens = openai.Int(16)
	return p.complete(ctx, params)
}

func (p *ChatProvider) Complete(ctx context.Context, systemPrompt, content string) (string, error) {
	return p.complete(ctx, p.params(systemPrompt, content, false))
}

// CompleteJSON requests json_object output so the reply is a single object.
func (p *ChatProvider) CompleteJSON(ctx context.Context, systemPrompt, content string) (string, error) {
	return p.complete(ctx, p.params(systemPrompt, content, true))
}

func (p *ChatProvider) params(systemPrompt, content string, jsonMode bool) openai.ChatCompletionNewParams {
	var messages []openai.ChatCompletionMessageParamUnion
	if systemPrompt != "" {
		messages = append(messages, openai.SystemMessage(systemPrompt))
	}
	messages = append(messages, openai.UserMessage(content))

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(p.model),
		Messages: messages,
	}
	if jsonMode {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		}
	}
	return params
}

// complete returns the first choice's text, or "" when the model sent no choices.
func (p *ChatProvider) complete(ctx context.Context, params openai.ChatCompletionNewParams) (string, error) {
	resp, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("%s chat completion: %w", p.name, err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
