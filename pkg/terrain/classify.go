// Package terrain turns height fields into land/water grids and cleans them
// up with a cellular automaton.
package terrain

import "islandgen/pkg/core"

// Classify marks every cell strictly above seaLevel as land.
func Classify(field *core.ScalarField, seaLevel float64) *core.TerrainGrid {
	grid := core.NewTerrainGrid(field.W, field.H)
	cells := grid.Cells()
	for i, h := range field.Values() {
		if h > seaLevel {
			cells[i] = core.Land
		}
	}
	return grid
}
