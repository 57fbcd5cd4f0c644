// Package render draws generated worlds for people: PNG export through gg
// and, with the ebiten build tag, an on-screen painter.
package render

import (
	"fmt"
	"io"

	"github.com/gogpu/gg"

	"islandgen/pkg/core"
	"islandgen/pkg/regions"
	"islandgen/pkg/worldgen"
)

// ExportPNG draws the terrain and the land outlines of res and writes a PNG.
func ExportPNG(w io.Writer, res worldgen.Result, style Style) error {
	if res.Terrain == nil {
		return fmt.Errorf("render: result has no terrain")
	}
	dc := gg.NewContextForImage(TerrainImage(res.Terrain, res.Heights, style))
	defer dc.Close()

	if style.ContourWidth > 0 {
		if err := strokeContours(dc, res.Terrain.Size, res.Lands, style); err != nil {
			return err
		}
	}
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}

// strokeContours outlines every land boundary through the cell centres.
func strokeContours(dc *gg.Context, size core.Size, lands []regions.Region, style Style) error {
	scale := float64(max(style.Scale, 1))
	dc.SetColor(style.Coast)
	dc.SetLineWidth(style.ContourWidth)
	for _, land := range lands {
		if len(land.Boundary) < 2 {
			continue
		}
		for i, idx := range land.Boundary {
			x, y := size.Coords(idx)
			px, py := (float64(x)+0.5)*scale, (float64(y)+0.5)*scale
			if i == 0 {
				dc.MoveTo(px, py)
				continue
			}
			dc.LineTo(px, py)
		}
		dc.ClosePath()
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("render: stroke land %d: %w", land.ID, err)
		}
	}
	return nil
}
