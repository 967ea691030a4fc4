// Package backend obtains scaffolding plans from language-model backends.
package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.trai.ch/stacky/internal/core/domain"
	"go.trai.ch/stacky/internal/core/ports"
	"go.trai.ch/zerr"
)

// Chatter sends one system/user exchange to a model and returns the reply text.
type Chatter interface {
	Chat(ctx context.Context, system, user string) (string, error)
	Model() string
}

// Options configure a Provider.
type Options struct {
	// Name identifies the backend in logs and spans.
	Name string
	// System is the system prompt sent with every request.
	System string
	// Strict enables schema validation of responses and the heredoc rewrite.
	Strict bool
	// Hint is logged once every attempt has failed.
	Hint string
	// Framework overrides the framework used for the docs lookup.
	Framework string
	Retry     domain.RetrySettings
}

// Provider implements ports.PlanProvider on top of a Chatter.
type Provider struct {
	client Chatter
	opts   Options
	cache  ports.PlanCache
	docs   ports.DocsLookup
	logger ports.Logger
	tracer ports.Tracer
}

// New creates a Provider. docs may be nil.
func New(
	client Chatter,
	opts Options,
	cache ports.PlanCache,
	docs ports.DocsLookup,
	logger ports.Logger,
	tracer ports.Tracer,
) *Provider {
	if opts.Retry.Attempts < 1 {
		opts.Retry.Attempts = 1
	}
	return &Provider{
		client: client,
		opts:   opts,
		cache:  cache,
		docs:   docs,
		logger: logger,
		tracer: tracer,
	}
}

// GetScaffoldingPlan returns the plan for prefs, from the cache when possible.
func (p *Provider) GetScaffoldingPlan(ctx context.Context, prefs domain.Preferences) (*domain.Plan, error) {
	if plan, ok := p.cache.Get(prefs); ok {
		p.logger.Debug("using cached plan")
		return plan, nil
	}

	user := UserMessage(prefs, p.referenceDocs(ctx, prefs))

	plan, err := p.fetchWithRetry(ctx, user)
	if err != nil {
		return nil, err
	}

	if p.opts.Strict {
		plan.Commands = RewriteContent(plan.Commands)
	} else {
		plan.Commands = RewriteContentEntries(plan.Commands)
	}

	if err := p.cache.Set(prefs, plan); err != nil {
		p.logger.Warn("could not cache plan: " + err.Error())
	}
	return plan, nil
}

func (p *Provider) referenceDocs(ctx context.Context, prefs domain.Preferences) string {
	if p.docs == nil {
		return ""
	}
	framework := p.opts.Framework
	if framework == "" {
		framework = prefs.Framework()
	}
	if framework == "" {
		return ""
	}

	text, err := p.docs.Lookup(ctx, framework)
	if err != nil {
		p.logger.Debug(fmt.Sprintf("no reference docs for %s: %v", framework, err))
		return ""
	}
	p.logger.Debug("using reference docs for " + framework)
	return text
}

func (p *Provider) fetchWithRetry(ctx context.Context, user string) (*domain.Plan, error) {
	total := p.opts.Retry.Attempts

	var lastErr error
	made := 0
	for attempt := 1; attempt <= total; attempt++ {
		made = attempt

		plan, err := p.attempt(ctx, attempt, user)
		if err == nil {
			return plan, nil
		}
		lastErr = err

		if attempt == total {
			p.logger.Warn(fmt.Sprintf("attempt %d/%d failed: %v", attempt, total, err))
			break
		}

		wait := time.Duration(attempt) * p.opts.Retry.BaseDelay
		p.logger.Warn(fmt.Sprintf("attempt %d/%d failed: %v, retrying in %s", attempt, total, err, wait))

		if err := sleep(ctx, wait); err != nil {
			lastErr = err
			break
		}
	}

	if p.opts.Hint != "" && ctx.Err() == nil {
		p.logger.Warn(p.opts.Hint)
	}

	return nil, errors.Join(
		domain.ErrPlanFetchFailed,
		zerr.With(zerr.Wrap(lastErr, fmt.Sprintf("all %d attempts failed", made)), "attempts", made),
	)
}

func (p *Provider) attempt(ctx context.Context, attempt int, user string) (*domain.Plan, error) {
	ctx, span := p.tracer.Start(ctx, "backend.chat")
	defer span.End()
	span.SetAttribute("backend", p.opts.Name)
	span.SetAttribute("model", p.client.Model())
	span.SetAttribute("attempt", attempt)

	content, err := p.client.Chat(ctx, p.opts.System, user)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	plan, err := p.decode(content)
	if err != nil {
		p.logger.Debug("failed to parse model response: " + content)
		span.RecordError(err)
		return nil, err
	}
	span.SetAttribute("commands", len(plan.Commands))
	return plan, nil
}

func (p *Provider) decode(content string) (*domain.Plan, error) {
	raw := []byte(StripCodeFence(content))

	if p.opts.Strict {
		if err := ValidatePlanShape(raw); err != nil {
			return nil, err
		}
	}

	var plan domain.Plan
	if err := json.Unmarshal(raw, &plan); err != nil {
		return nil, errors.Join(domain.ErrBackendResponseInvalid, err)
	}
	return &plan, nil
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
