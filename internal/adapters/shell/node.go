package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stacky/internal/adapters/config"
	"go.trai.ch/stacky/internal/adapters/logger"
	"go.trai.ch/stacky/internal/core/domain"
	"go.trai.ch/stacky/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the command runner Graft node.
	NodeID graft.ID = "adapter.command_runner"
	// BuiltinsNodeID is the unique identifier for the shell builtin query Graft node.
	BuiltinsNodeID graft.ID = "adapter.shell_builtins"
)

func init() {
	graft.Register(graft.Node[ports.CommandRunner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, config.NodeID},
		Run: func(ctx context.Context) (ports.CommandRunner, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewRunner(log, WithPTY(settings.Executor.PTY)), nil
		},
	})

	graft.Register(graft.Node[ports.BuiltinSource]{
		ID:        BuiltinsNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.BuiltinSource, error) {
			return NewBuiltinQuery(), nil
		},
	})
}
