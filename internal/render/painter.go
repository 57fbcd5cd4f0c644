//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"islandgen/pkg/core"
)

// TerrainPainter keeps a one-pixel-per-cell image of a terrain grid.
type TerrainPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewTerrainPainter allocates a painter for a grid of size w*h.
func NewTerrainPainter(w, h int) *TerrainPainter {
	tp := &TerrainPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	tp.img = ebiten.NewImage(w, h)
	return tp
}

// Update uploads the grid colours into the painter image.
func (tp *TerrainPainter) Update(grid *core.TerrainGrid, heights *core.ScalarField, style Style) {
	if grid.W != tp.w || grid.H != tp.h {
		return
	}
	fillTerrainRGBA(tp.buf, grid, heights, style)
	tp.img.WritePixels(tp.buf)
}

// Draw renders the painter image scaled onto dst.
func (tp *TerrainPainter) Draw(dst *ebiten.Image, scale int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(tp.img, op)
}

// Size returns the dimensions of the underlying image.
func (tp *TerrainPainter) Size() (int, int) { return tp.w, tp.h }
