package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stacky/internal/adapters/backend"
	"go.trai.ch/stacky/internal/adapters/cache"
	"go.trai.ch/stacky/internal/adapters/config"
	"go.trai.ch/stacky/internal/adapters/docs"
	"go.trai.ch/stacky/internal/adapters/logger"
	"go.trai.ch/stacky/internal/adapters/wizard"
	"go.trai.ch/stacky/internal/core/domain"
	"go.trai.ch/stacky/internal/core/ports"
	"go.trai.ch/stacky/internal/engine/executor"
	"go.trai.ch/stacky/internal/engine/validator"
)

// NodeID is the unique identifier for the application components Graft node.
const NodeID graft.ID = "app.components"

// Components bundles what the CLI needs to run.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			backend.NodeID,
			backend.SanityNodeID,
			validator.NodeID,
			executor.NodeID,
			wizard.NodeID,
			cache.NodeID,
			docs.NodeID,
			logger.NodeID,
			config.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			provider, err := graft.Dep[ports.PlanProvider](ctx)
			if err != nil {
				return nil, err
			}
			sanity, err := graft.Dep[ports.SanityChecker](ctx)
			if err != nil {
				return nil, err
			}
			commandValidator, err := graft.Dep[ports.CommandValidator](ctx)
			if err != nil {
				return nil, err
			}
			commandExecutor, err := graft.Dep[ports.CommandExecutor](ctx)
			if err != nil {
				return nil, err
			}
			prompter, err := graft.Dep[ports.Prompter](ctx)
			if err != nil {
				return nil, err
			}
			planCache, err := graft.Dep[ports.PlanCache](ctx)
			if err != nil {
				return nil, err
			}
			lookup, err := graft.Dep[ports.DocsLookup](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}

			a := New(provider, sanity, commandValidator, commandExecutor, prompter, planCache, lookup, log).
				WithSanityCheck(settings.SanityCheck)
			return &Components{App: a, Logger: log}, nil
		},
	})
}
