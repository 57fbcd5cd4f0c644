//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"islandgen/internal/core"
	"islandgen/pkg/worldgen"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding   = 10
	headerBaseline = 14
	lineHeight     = 16
	groupSpacing   = 8
)

var (
	panelColor  = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	headerColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor    = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

// HUD renders the parameter panel to the right of the map.
type HUD struct {
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot

	status string
	stats  []string
}

// NewHUD constructs a HUD with the provided panel width.
func NewHUD(width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{width: width}
}

// SetStatus replaces the status line.
func (h *HUD) SetStatus(status string) {
	if h == nil {
		return
	}
	h.status = status
}

// SetWorld summarises a finished world.
func (h *HUD) SetWorld(res worldgen.Result) {
	if h == nil {
		return
	}
	h.status = fmt.Sprintf("seed %d", res.Seed)
	h.stats = []string{
		fmt.Sprintf("attempts  %d", res.Attempts),
		fmt.Sprintf("land      %.1f%%", 100*res.LandFraction()),
		fmt.Sprintf("lands     %d", len(res.Lands)),
		fmt.Sprintf("seas      %d", len(res.Seas)),
		fmt.Sprintf("smoothing %d", res.SmoothingRounds),
	}
}

// Update refreshes the cached parameter snapshot.
func (h *HUD) Update(snapshot core.ParameterSnapshot) {
	if h == nil {
		return
	}
	h.snapshot = snapshot
}

// Draw paints the HUD panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(panelColor)

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.status, face, panelPadding, y, headerColor)
	for _, line := range h.stats {
		y += lineHeight
		text.Draw(h.panel, line, face, panelPadding, y, labelColor)
	}
	for _, group := range h.snapshot.Groups {
		y += lineHeight + groupSpacing
		text.Draw(h.panel, group.Name, face, panelPadding, y, headerColor)
		for _, p := range group.Params {
			y += lineHeight
			text.Draw(h.panel, fmt.Sprintf("%-18s %s", p.Label, p.Value), face, panelPadding, y, dimColor)
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}
