package ports

import "context"

// DocsLookup returns reference text for a framework.
//
//go:generate mockgen -source=docs.go -destination=mocks/mock_docs.go -package=mocks
type DocsLookup interface {
	// Lookup returns the reference text for framework.
	// Callers treat any error as "no extra context".
	Lookup(ctx context.Context, framework string) (string, error)

	// Frameworks lists the frameworks that have reference text.
	Frameworks() []string
}
