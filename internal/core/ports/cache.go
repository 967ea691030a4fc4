package ports

import "go.trai.ch/stacky/internal/core/domain"

// PlanCache maps preference records to previously obtained plans.
//
//go:generate mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type PlanCache interface {
	// Get returns the cached plan for prefs. A missing or unreadable store is a miss.
	Get(prefs domain.Preferences) (*domain.Plan, bool)

	// Set stores plan under the key derived from prefs.
	Set(prefs domain.Preferences, plan *domain.Plan) error

	// Clear removes every cached entry.
	Clear() error
}
