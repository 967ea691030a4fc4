package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.trai.ch/stacky/internal/core/domain"
	"go.trai.ch/zerr"
)

// maxErrorBody bounds how much of a failed response body is kept in errors.
const maxErrorBody = 512

// OllamaClient talks to an Ollama server over its HTTP API.
type OllamaClient struct {
	host  string
	model string
	http  *http.Client
}

// NewOllamaClient creates a client for the server at host. A nil httpClient
// selects http.DefaultClient.
func NewOllamaClient(host, model string, httpClient *http.Client) *OllamaClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &OllamaClient{
		host:  strings.TrimRight(host, "/"),
		model: model,
		http:  httpClient,
	}
}

type ollamaMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaChatRequest struct {
	Model    string          `json:"model"`
	Messages []ollamaMessage `json:"messages"`
	Stream   bool            `json:"stream"`
}

type ollamaChatResponse struct {
	Message ollamaMessage `json:"message"`
}

type ollamaPSResponse struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}

type ollamaVersionResponse struct {
	Version string `json:"version"`
}

// Model returns the model used for chat requests.
func (c *OllamaClient) Model() string {
	return c.model
}

// Chat sends one exchange to /api/chat and returns the reply text.
// An empty system prompt is omitted.
func (c *OllamaClient) Chat(ctx context.Context, system, user string) (string, error) {
	req := ollamaChatRequest{Model: c.model}
	if system != "" {
		req.Messages = append(req.Messages, ollamaMessage{Role: "system", Content: system})
	}
	req.Messages = append(req.Messages, ollamaMessage{Role: "user", Content: user})

	var resp ollamaChatResponse
	if err := c.do(ctx, http.MethodPost, "/api/chat", req, &resp); err != nil {
		return "", err
	}
	return resp.Message.Content, nil
}

// RunningModels lists the models currently loaded on the server.
func (c *OllamaClient) RunningModels(ctx context.Context) ([]string, error) {
	var resp ollamaPSResponse
	if err := c.do(ctx, http.MethodGet, "/api/ps", nil, &resp); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(resp.Models))
	for _, m := range resp.Models {
		names = append(names, m.Name)
	}
	return names, nil
}

// Version returns the server version.
func (c *OllamaClient) Version(ctx context.Context) (string, error) {
	var resp ollamaVersionResponse
	if err := c.do(ctx, http.MethodGet, "/api/version", nil, &resp); err != nil {
		return "", err
	}
	return resp.Version, nil
}

func (c *OllamaClient) do(ctx context.Context, method, path string, body, out any) error {
	url := c.host + path

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return zerr.Wrap(err, "encode request")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return errors.Join(domain.ErrBackendRequestFailed, zerr.With(err, "url", url))
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Join(domain.ErrBackendRequestFailed, zerr.With(err, "url", url))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		statusErr := zerr.New(fmt.Sprintf("unexpected status %d", resp.StatusCode))
		statusErr = zerr.With(statusErr, "url", url)
		if text := strings.TrimSpace(string(snippet)); text != "" {
			statusErr = zerr.With(statusErr, "body", text)
		}
		return errors.Join(domain.ErrBackendRequestFailed, statusErr)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Join(domain.ErrBackendResponseInvalid, zerr.With(err, "url", url))
	}
	return nil
}
