//go:build ebiten

package ui

import (
	"image/color"

	"islandgen/pkg/worldgen"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Overlay draws land outlines on top of the map. Key 1 toggles it.
type Overlay struct {
	scale       int
	color       color.Color
	showOutline bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(scale int, c color.Color) *Overlay {
	return &Overlay{scale: scale, color: c, showOutline: true}
}

// Update toggles the outline on key press.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showOutline = !o.showOutline
	}
}

// Draw strokes every land boundary through the cell centres.
func (o *Overlay) Draw(screen *ebiten.Image, world *worldgen.Result) {
	if !o.showOutline || world == nil || world.Terrain == nil {
		return
	}
	size := world.Terrain.Size
	s := float32(o.scale)
	center := func(idx int) (float32, float32) {
		x, y := size.Coords(idx)
		return (float32(x) + 0.5) * s, (float32(y) + 0.5) * s
	}
	for _, land := range world.Lands {
		path := land.Boundary
		for i := 1; i < len(path); i++ {
			x0, y0 := center(path[i-1])
			x1, y1 := center(path[i])
			vector.StrokeLine(screen, x0, y0, x1, y1, 1, o.color, false)
		}
	}
}
