package ports

import (
	"context"

	"go.trai.ch/stacky/internal/core/domain"
)

// Prompter collects preferences and confirmations from the user.
//
//go:generate mockgen -source=prompter.go -destination=mocks/mock_prompter.go -package=mocks
type Prompter interface {
	// Preferences returns the preference record for a new project.
	Preferences(ctx context.Context) (domain.Preferences, error)

	// Confirm asks a yes/no question.
	Confirm(ctx context.Context, question string) (bool, error)
}
