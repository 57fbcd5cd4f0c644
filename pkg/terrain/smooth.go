package terrain

import "islandgen/pkg/core"

// DefaultMinNeighbours is the number of same-valued neighbours a cell needs
// to keep its value.
const DefaultMinNeighbours = 4

// Smooth runs the majority automaton over grid in place for at most
// iterations rounds and returns the number of rounds executed. Out-of-bounds
// neighbours count as matching, which keeps edge cells stable. Smoothing
// stops early after a round without flips.
func Smooth(grid *core.TerrainGrid, iterations, minNeighbours int) int {
	w, h := grid.W, grid.H
	cur := grid.Cells()
	prev := make([]core.Tile, len(cur))

	rounds := 0
	for rounds < iterations {
		copy(prev, cur)
		rounds++

		flips := 0
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				idx := y*w + x
				self := prev[idx]
				same := 0
				for _, off := range core.Moore {
					nx, ny := x+off.DX, y+off.DY
					if nx < 0 || ny < 0 || nx >= w || ny >= h {
						same++
						continue
					}
					if prev[ny*w+nx] == self {
						same++
					}
				}
				if same < minNeighbours {
					cur[idx] = self ^ 1
					flips++
				}
			}
		}
		if flips == 0 {
			break
		}
	}
	return rounds
}
