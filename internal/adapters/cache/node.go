package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stacky/internal/core/domain"
	"go.trai.ch/stacky/internal/core/ports"
)

// NodeID is the unique identifier for the response cache Graft node.
const NodeID graft.ID = "adapter.response_cache"

func init() {
	graft.Register(graft.Node[ports.PlanCache]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PlanCache, error) {
			return NewStore(domain.DefaultCachePath()), nil
		},
	})
}
