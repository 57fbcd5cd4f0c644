//go:build !ebiten

package ui

import (
	"islandgen/internal/core"
	"islandgen/pkg/worldgen"
)

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(int) *HUD { return nil }

// SetStatus is a no-op in the headless build.
func (h *HUD) SetStatus(string) {}

// SetWorld is a no-op in the headless build.
func (h *HUD) SetWorld(worldgen.Result) {}

// Update is a no-op in the headless build.
func (h *HUD) Update(core.ParameterSnapshot) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}
