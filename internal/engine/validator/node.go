package validator

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/stacky/internal/adapters/logger" //nolint:depguard // Wired in engine node
	"go.trai.ch/stacky/internal/adapters/shell"  //nolint:depguard // Wired in engine node
	"go.trai.ch/stacky/internal/core/ports"
)

// NodeID is the unique identifier for the command validator Graft node.
const NodeID graft.ID = "engine.validator"

func init() {
	graft.Register(graft.Node[ports.CommandValidator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.BuiltinsNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.CommandValidator, error) {
			builtins, err := graft.Dep[ports.BuiltinSource](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(builtins, PathLookup, log), nil
		},
	})
}

// PathLookup resolves name against the PATH of the current process.
func PathLookup(name string) bool {
	_, err := shell.LookPath(name, os.Environ())
	return err == nil
}
