package backend

import (
	"go.trai.ch/stacky/internal/core/domain"
	"go.trai.ch/stacky/internal/core/ports"
)

// ollamaHint is logged when the self-hosted server could not be reached.
const ollamaHint = "all attempts to reach Ollama failed. Is Ollama running? Try running: ollama serve"

// NewProvider picks the backend named by settings: Ollama when UseOllama is
// set, otherwise the hosted API, which requires an API key.
func NewProvider(
	settings domain.Settings,
	cache ports.PlanCache,
	docs ports.DocsLookup,
	logger ports.Logger,
	tracer ports.Tracer,
) (*Provider, error) {
	if settings.UseOllama {
		client := NewOllamaClient(settings.Ollama.Host, settings.Ollama.Model, nil)
		return New(client, Options{
			Name:      "ollama",
			System:    selfHostedSystemPrompt,
			Strict:    true,
			Hint:      ollamaHint,
			Framework: settings.Docs.Framework,
			Retry:     settings.Retry,
		}, cache, docs, logger, tracer), nil
	}

	if settings.Hosted.APIKey == "" {
		return nil, domain.ErrMissingAPIKey
	}
	client := NewHostedClient(settings.Hosted.APIKey, settings.Hosted.BaseURL, settings.Hosted.Model, nil)
	return New(client, Options{
		Name:      "hosted",
		System:    hostedSystemPrompt,
		Framework: settings.Docs.Framework,
		Retry:     settings.Retry,
	}, cache, docs, logger, tracer), nil
}

// NewSanity builds the sanity checker for the configured backend.
func NewSanity(settings domain.Settings) (*SanityChecker, error) {
	if settings.UseOllama {
		client := NewOllamaClient(settings.Ollama.Host, settings.Ollama.Model, nil)
		return NewSanityChecker(client, client, settings.Ollama.MinVersion), nil
	}

	if settings.Hosted.APIKey == "" {
		return nil, domain.ErrMissingAPIKey
	}
	client := NewHostedClient(settings.Hosted.APIKey, settings.Hosted.BaseURL, settings.Hosted.Model, nil)
	return NewSanityChecker(client, nil, ""), nil
}
