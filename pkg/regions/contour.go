package regions

import "islandgen/pkg/core"

// Trace follows the outer boundary of the region containing start using
// Moore-neighbour tracing and returns the clockwise path of cell indices.
//
// start must be the first cell of its region in row-major order, so that the
// cell to its west is known not to match. The returned path repeats start as
// its final entry; a region without matching neighbours yields [start].
//
// Regions joined only through single-cell bridges can terminate early when
// the trace passes back through start before the outline is complete.
func Trace(grid *core.TerrainGrid, start int, target core.Tile) []int {
	sx, sy := grid.Coords(start)
	px, py := sx, sy
	bx, by := sx-1, sy

	path := []int{start}
	limit := 8*grid.Area() + 8
	for steps := 0; steps < limit; steps++ {
		from := ringIndex(bx-px, by-py)

		found := false
		for k := 0; k < len(core.Moore); k++ {
			off := core.Moore[(from+k)%len(core.Moore)]
			nx, ny := px+off.DX, py+off.DY
			if !matches(grid, nx, ny, target) {
				bx, by = nx, ny
				continue
			}
			px, py = nx, ny
			found = true
			break
		}
		if !found {
			return path
		}

		idx := grid.Index(px, py)
		if path[len(path)-1] != idx {
			path = append(path, idx)
		}
		if idx == start {
			return path
		}
	}
	return path
}

func matches(grid *core.TerrainGrid, x, y int, target core.Tile) bool {
	return grid.InBounds(x, y) && grid.At(x, y) == target
}

// ringIndex maps a neighbour offset to its position in core.Moore. West is 7,
// east 3, north 1 and south 5.
func ringIndex(dx, dy int) int {
	for i, off := range core.Moore {
		if off.DX == dx && off.DY == dy {
			return i
		}
	}
	return 7
}
