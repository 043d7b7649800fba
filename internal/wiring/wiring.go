// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/hullworks/keel/internal/adapters/config"
	_ "github.com/hullworks/keel/internal/adapters/fingerprint"
	_ "github.com/hullworks/keel/internal/adapters/logger"
	_ "github.com/hullworks/keel/internal/adapters/telemetry/progrock"
	_ "github.com/hullworks/keel/internal/adapters/templates"
	// Register app and engine nodes.
	_ "github.com/hullworks/keel/internal/app"
	_ "github.com/hullworks/keel/internal/engine/generator"
	_ "github.com/hullworks/keel/internal/engine/plugins"
	_ "github.com/hullworks/keel/internal/engine/project"
)
