// Package regions finds connected seas and landmasses in a terrain grid.
//
// Seas are water components that touch the grid border. Water that cannot
// reach the border (lakes) is reclassified as land during sea detection and
// becomes part of the surrounding landmass.
package regions

import (
	"slices"

	"islandgen/pkg/core"
)

// Region is a maximal 8-connected component of same-typed cells.
type Region struct {
	ID int
	// Tiles holds ascending cell indices.
	Tiles []int
	// Boundary is the closed clockwise contour of a land region.
	Boundary []int
}

// Size returns the number of tiles in the region.
func (r Region) Size() int { return len(r.Tiles) }

// Limits bounds the tile count of kept regions. Regions outside the range
// are reported as discarded.
type Limits struct {
	MinSeaSize  int
	MaxSeaSize  int
	MinLandSize int
	MaxLandSize int
}

func (l Limits) keepSea(n int) bool  { return n >= l.MinSeaSize && n <= l.MaxSeaSize }
func (l Limits) keepLand(n int) bool { return n >= l.MinLandSize && n <= l.MaxLandSize }

// Detection holds the outcome of both detection passes.
type Detection struct {
	Seas  []Region
	Lands []Region

	DiscardedSeas  []Region
	DiscardedLands []Region
}

// Detect runs sea detection followed by land detection on grid.
func Detect(grid *core.TerrainGrid, limits Limits) Detection {
	seas, droppedSeas := DetectSeas(grid, limits.MinSeaSize, limits.MaxSeaSize)
	lands, droppedLands := DetectLands(grid, limits.MinLandSize, limits.MaxLandSize)
	return Detection{
		Seas:           seas,
		Lands:          lands,
		DiscardedSeas:  droppedSeas,
		DiscardedLands: droppedLands,
	}
}

// DetectSeas flood fills water from every border cell and then rewrites the
// grid so only border-connected water stays water. Sea ids start at 1 and
// follow discovery order; seas sized outside [minSize, maxSize] are returned
// separately and still count as ocean in the grid.
func DetectSeas(grid *core.TerrainGrid, minSize, maxSize int) (kept, discarded []Region) {
	limits := Limits{MinSeaSize: minSize, MaxSeaSize: maxSize}
	cells := grid.Cells()
	ocean := make([]bool, len(cells))
	f := newFiller(grid)

	id := 1
	visitBorder := func(x, y int) {
		idx := grid.Index(x, y)
		if ocean[idx] || cells[idx] != core.Water {
			return
		}
		tiles := f.fill(idx, core.Water, ocean)
		r := Region{ID: id, Tiles: tiles}
		id++
		if limits.keepSea(len(tiles)) {
			kept = append(kept, r)
		} else {
			discarded = append(discarded, r)
		}
	}

	for y := 0; y < grid.H; y++ {
		if y == 0 || y == grid.H-1 {
			for x := 0; x < grid.W; x++ {
				visitBorder(x, y)
			}
			continue
		}
		visitBorder(0, y)
		if grid.W > 1 {
			visitBorder(grid.W-1, y)
		}
	}

	for i := range cells {
		if ocean[i] {
			cells[i] = core.Water
		} else {
			cells[i] = core.Land
		}
	}
	return kept, discarded
}

// DetectLands labels every land component in row-major discovery order with
// ids starting at 0 and traces the boundary of each kept region.
func DetectLands(grid *core.TerrainGrid, minSize, maxSize int) (kept, discarded []Region) {
	limits := Limits{MinLandSize: minSize, MaxLandSize: maxSize}
	cells := grid.Cells()
	visited := make([]bool, len(cells))
	f := newFiller(grid)

	id := 0
	for idx, t := range cells {
		if t != core.Land || visited[idx] {
			continue
		}
		tiles := f.fill(idx, core.Land, visited)
		r := Region{ID: id, Tiles: tiles}
		id++
		if !limits.keepLand(len(tiles)) {
			discarded = append(discarded, r)
			continue
		}
		r.Boundary = Trace(grid, idx, core.Land)
		kept = append(kept, r)
	}
	return kept, discarded
}

// filler is an 8-connected flood fill with an explicit stack that is reused
// across fills of the same grid.
type filler struct {
	grid  *core.TerrainGrid
	stack []int
}

func newFiller(grid *core.TerrainGrid) *filler {
	return &filler{grid: grid, stack: make([]int, 0, 64)}
}

// fill marks and returns every cell of type target connected to start. Cells
// already marked in visited are never revisited.
func (f *filler) fill(start int, target core.Tile, visited []bool) []int {
	g := f.grid
	cells := g.Cells()

	var tiles []int
	visited[start] = true
	f.stack = append(f.stack[:0], start)
	for len(f.stack) > 0 {
		idx := f.stack[len(f.stack)-1]
		f.stack = f.stack[:len(f.stack)-1]
		tiles = append(tiles, idx)

		x, y := g.Coords(idx)
		for _, off := range core.Moore {
			nx, ny := x+off.DX, y+off.DY
			if !g.InBounds(nx, ny) {
				continue
			}
			n := g.Index(nx, ny)
			if visited[n] || cells[n] != target {
				continue
			}
			visited[n] = true
			f.stack = append(f.stack, n)
		}
	}
	slices.Sort(tiles)
	return tiles
}
