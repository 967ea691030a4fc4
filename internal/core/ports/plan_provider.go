package ports

import (
	"context"

	"go.trai.ch/stacky/internal/core/domain"
)

// PlanProvider obtains a scaffolding plan for a preference record from a model backend.
//
//go:generate mockgen -source=plan_provider.go -destination=mocks/mock_plan_provider.go -package=mocks
type PlanProvider interface {
	// GetScaffoldingPlan returns a plan, consulting the response cache first.
	// It fails with domain.ErrPlanFetchFailed once all attempts are exhausted.
	GetScaffoldingPlan(ctx context.Context, prefs domain.Preferences) (*domain.Plan, error)
}

// SanityChecker verifies that the self-hosted model server is usable.
type SanityChecker interface {
	// SanityCheck lists running models, checks the server version and sends a short prompt.
	SanityCheck(ctx context.Context) (*domain.SanityReport, error)
}
