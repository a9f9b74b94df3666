package tgentities

import (
	"sync"

	"github.com/riverfjs/tgentities/internal/types"
)

// RenderConfig controls HTML rendering and message preparation.
type RenderConfig = types.RenderConfig

var (
	defaultConfig     *RenderConfig
	defaultConfigOnce sync.Once
)

// DefaultConfig returns the default render configuration (singleton).
// Callers must not modify it; copy it first.
func DefaultConfig() *RenderConfig {
	defaultConfigOnce.Do(func() {
		defaultConfig = types.DefaultRenderConfig()
	})
	return defaultConfig
}
