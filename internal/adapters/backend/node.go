package backend

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stacky/internal/adapters/cache"
	"go.trai.ch/stacky/internal/adapters/config"
	"go.trai.ch/stacky/internal/adapters/docs"
	"go.trai.ch/stacky/internal/adapters/logger"
	"go.trai.ch/stacky/internal/adapters/telemetry"
	"go.trai.ch/stacky/internal/core/domain"
	"go.trai.ch/stacky/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the plan provider Graft node.
	NodeID graft.ID = "adapter.plan_provider"

	// SanityNodeID is the unique identifier for the sanity checker Graft node.
	SanityNodeID graft.ID = "adapter.sanity_checker"
)

func init() {
	graft.Register(graft.Node[ports.PlanProvider]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, cache.NodeID, docs.NodeID, logger.NodeID, telemetry.NodeID},
		Run: func(ctx context.Context) (ports.PlanProvider, error) {
			settings, err := graft.Dep[domain.Settings](ctx)
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
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			provider, err := NewProvider(settings, planCache, lookup, log, tracer)
			if err != nil {
				return nil, err
			}
			return provider, nil
		},
	})

	graft.Register(graft.Node[ports.SanityChecker]{
		ID:        SanityNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.SanityChecker, error) {
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			checker, err := NewSanity(settings)
			if err != nil {
				return nil, err
			}
			return checker, nil
		},
	})
}
