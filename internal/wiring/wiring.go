// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/stacky/internal/adapters/backend"
	_ "go.trai.ch/stacky/internal/adapters/cache"
	_ "go.trai.ch/stacky/internal/adapters/config"
	_ "go.trai.ch/stacky/internal/adapters/docs"
	_ "go.trai.ch/stacky/internal/adapters/logger"
	_ "go.trai.ch/stacky/internal/adapters/shell"
	_ "go.trai.ch/stacky/internal/adapters/telemetry"
	_ "go.trai.ch/stacky/internal/adapters/wizard"
	// Register app and engine nodes.
	_ "go.trai.ch/stacky/internal/app"
	_ "go.trai.ch/stacky/internal/engine/executor"
	_ "go.trai.ch/stacky/internal/engine/validator"
)
