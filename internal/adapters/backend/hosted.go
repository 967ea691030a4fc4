package backend

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"
	"go.trai.ch/stacky/internal/core/domain"
	"go.trai.ch/zerr"
)

// HostedClient talks to an OpenAI-compatible chat completions API.
type HostedClient struct {
	client *openai.Client
	model  string
}

// NewHostedClient creates a client for the API at baseURL. A nil httpClient
// keeps the library default.
func NewHostedClient(apiKey, baseURL, model string, httpClient openai.HTTPDoer) *HostedClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if httpClient != nil {
		cfg.HTTPClient = httpClient
	}
	return &HostedClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// Model returns the model used for chat requests.
func (c *HostedClient) Model() string {
	return c.model
}

// Chat sends one exchange and returns the content of the first choice.
// An empty system prompt is omitted.
func (c *HostedClient) Chat(ctx context.Context, system, user string) (string, error) {
	var messages []openai.ChatCompletionMessage
	if system != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: system,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: user,
	})

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: messages,
	})
	if err != nil {
		return "", errors.Join(domain.ErrBackendRequestFailed, err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.Join(domain.ErrBackendResponseInvalid, zerr.New("response has no choices"))
	}
	return resp.Choices[0].Message.Content, nil
}
