package ports

import (
	"context"
	"io"
)

// CommandRunner runs a single shell statement.
//
//go:generate mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type CommandRunner interface {
	// Run executes command through the shell in dir.
	//
	// The env parameter contains environment variables in "KEY=VALUE" format
	// and replaces the process environment.
	//
	// It returns an error if the command cannot start or exits nonzero.
	Run(ctx context.Context, dir, command string, env []string, stdout, stderr io.Writer) error
}

// BuiltinSource reports the builtins of the user's shell.
type BuiltinSource interface {
	Builtins(ctx context.Context) ([]string, error)
}
