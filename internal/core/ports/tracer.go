package ports

import "context"

// Tracer starts spans around backend calls and command execution.
//
//go:generate mockgen -source=tracer.go -destination=mocks/mock_tracer.go -package=mocks
type Tracer interface {
	Start(ctx context.Context, name string) (context.Context, Span)
}

// Span is a single traced operation.
type Span interface {
	End()
	RecordError(err error)
	SetAttribute(key string, value any)
}
