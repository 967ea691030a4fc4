package ports

import (
	"context"

	"go.trai.ch/stacky/internal/core/domain"
)

// CommandValidator checks that plan commands can run in this environment.
//
//go:generate mockgen -source=pipeline.go -destination=mocks/mock_pipeline.go -package=mocks
type CommandValidator interface {
	// ValidateCommands returns one result per command, in order. It never fails as a whole.
	ValidateCommands(ctx context.Context, commands []domain.Command) []domain.ValidationResult
}

// CommandExecutor runs a command sequence against a project directory.
type CommandExecutor interface {
	// ExecuteCommands runs commands in order and renders Docker artifacts when docker is non-nil.
	ExecuteCommands(ctx context.Context, projectName string, commands []domain.Command, docker *domain.DockerConfig) error
}
