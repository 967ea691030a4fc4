package executor

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stacky/internal/adapters/config"    //nolint:depguard // Wired in engine node
	"go.trai.ch/stacky/internal/adapters/logger"    //nolint:depguard // Wired in engine node
	"go.trai.ch/stacky/internal/adapters/shell"     //nolint:depguard // Wired in engine node
	"go.trai.ch/stacky/internal/adapters/telemetry" //nolint:depguard // Wired in engine node
	"go.trai.ch/stacky/internal/core/domain"
	"go.trai.ch/stacky/internal/core/ports"
)

// NodeID is the unique identifier for the executor Graft node.
const NodeID graft.ID = "engine.executor"

func init() {
	graft.Register(graft.Node[ports.CommandExecutor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID, telemetry.NodeID, config.NodeID},
		Run: func(ctx context.Context) (ports.CommandExecutor, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
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
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return New(runner, log, tracer, settings.Executor.BaseDir, WithDelay(settings.Executor.CommandDelay)), nil
		},
	})
}
