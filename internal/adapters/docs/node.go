package docs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stacky/internal/adapters/config"
	"go.trai.ch/stacky/internal/core/domain"
	"go.trai.ch/stacky/internal/core/ports"
)

// NodeID is the unique identifier for the framework docs Graft node.
const NodeID graft.ID = "adapter.docs"

func init() {
	graft.Register(graft.Node[ports.DocsLookup]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.DocsLookup, error) {
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewLibrary(settings.Docs.Dir, settings.Docs.URLs, nil), nil
		},
	})
}
