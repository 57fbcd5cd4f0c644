package render

import (
	"image"
	"image/color"

	"islandgen/pkg/core"
)

// Style controls how a world is coloured.
type Style struct {
	DeepWater    color.RGBA
	ShallowWater color.RGBA
	Lowland      color.RGBA
	Highland     color.RGBA
	Coast        color.RGBA

	// Scale is the pixel edge length of one cell.
	Scale int
	// ContourWidth is the stroke width of land outlines in pixels. Zero
	// disables outlines.
	ContourWidth float64
}

// DefaultStyle returns the standard map palette.
func DefaultStyle() Style {
	return Style{
		DeepWater:    color.RGBA{R: 20, G: 48, B: 96, A: 255},
		ShallowWater: color.RGBA{R: 60, G: 120, B: 180, A: 255},
		Lowland:      color.RGBA{R: 96, G: 160, B: 80, A: 255},
		Highland:     color.RGBA{R: 150, G: 130, B: 100, A: 255},
		Coast:        color.RGBA{R: 30, G: 30, B: 30, A: 255},
		Scale:        4,
		ContourWidth: 1.5,
	}
}

// fillTerrainRGBA converts terrain tiles into RGBA pixels in buf, one pixel
// per cell. Land is shaded between Lowland and Highland by height, water
// between ShallowWater and DeepWater. heights may be nil.
func fillTerrainRGBA(buf []byte, grid *core.TerrainGrid, heights *core.ScalarField, style Style) {
	var hv []float64
	if heights != nil && heights.Size == grid.Size {
		hv = heights.Values()
	}
	for i, t := range grid.Cells() {
		h := 0.5
		if hv != nil {
			h = hv[i]
		}
		var col color.RGBA
		if t == core.Land {
			col = lerpRGBA(style.Lowland, style.Highland, h)
		} else {
			col = lerpRGBA(style.DeepWater, style.ShallowWater, h)
		}
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// TerrainImage rasterises the grid at the style scale.
func TerrainImage(grid *core.TerrainGrid, heights *core.ScalarField, style Style) *image.RGBA {
	scale := max(style.Scale, 1)
	cells := make([]byte, 4*grid.Area())
	fillTerrainRGBA(cells, grid, heights, style)

	img := image.NewRGBA(image.Rect(0, 0, grid.W*scale, grid.H*scale))
	for y := 0; y < img.Rect.Dy(); y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < img.Rect.Dx(); x++ {
			src := 4 * grid.Index(x/scale, y/scale)
			copy(row[4*x:4*x+4], cells[src:src+4])
		}
	}
	return img
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	inv := 1 - t
	return color.RGBA{
		R: uint8(float64(a.R)*inv + float64(b.R)*t + 0.5),
		G: uint8(float64(a.G)*inv + float64(b.G)*t + 0.5),
		B: uint8(float64(a.B)*inv + float64(b.B)*t + 0.5),
		A: uint8(float64(a.A)*inv + float64(b.A)*t + 0.5),
	}
}
