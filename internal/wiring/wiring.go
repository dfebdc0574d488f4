// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/weld/internal/adapters/android"
	_ "go.trai.ch/weld/internal/adapters/cargo"
	_ "go.trai.ch/weld/internal/adapters/cas"
	_ "go.trai.ch/weld/internal/adapters/config"
	_ "go.trai.ch/weld/internal/adapters/linear"
	_ "go.trai.ch/weld/internal/adapters/linker"
	_ "go.trai.ch/weld/internal/adapters/logger"
	_ "go.trai.ch/weld/internal/adapters/scaffold"
	_ "go.trai.ch/weld/internal/adapters/shell"
	_ "go.trai.ch/weld/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/weld/internal/app"
	_ "go.trai.ch/weld/internal/engine/builder"
	_ "go.trai.ch/weld/internal/engine/command"
	_ "go.trai.ch/weld/internal/engine/estimate"
)
