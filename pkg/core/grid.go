package core

// Tile is the binary terrain classification of a single cell.
type Tile uint8

const (
	Water Tile = iota
	Land
)

func (t Tile) String() string {
	if t == Land {
		return "land"
	}
	return "water"
}

// Size describes the dimensions of a grid.
type Size struct {
	W int
	H int
}

// Area returns the number of cells covered by the size.
func (s Size) Area() int { return s.W * s.H }

// Index returns the linear slice index for coordinates (x, y).
func (s Size) Index(x, y int) int { return y*s.W + x }

// Coords splits a linear index back into (x, y).
func (s Size) Coords(idx int) (int, int) { return idx % s.W, idx / s.W }

// InBounds reports whether (x, y) lies inside the grid.
func (s Size) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.W && y < s.H
}

// IsBorder reports whether (x, y) lies on the outermost ring of cells.
func (s Size) IsBorder(x, y int) bool {
	return x == 0 || y == 0 || x == s.W-1 || y == s.H-1
}

// Offset is a relative grid step.
type Offset struct {
	DX, DY int
}

// Moore lists the eight neighbour offsets clockwise starting at north-west.
var Moore = [8]Offset{
	{-1, -1}, // NW
	{0, -1},  // N
	{1, -1},  // NE
	{1, 0},   // E
	{1, 1},   // SE
	{0, 1},   // S
	{-1, 1},  // SW
	{-1, 0},  // W
}

// ScalarField stores continuous per-cell values in row-major order.
type ScalarField struct {
	Size
	data []float64
}

// NewScalarField allocates a zeroed field with the given dimensions.
func NewScalarField(w, h int) *ScalarField {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ScalarField{Size: Size{W: w, H: h}, data: make([]float64, w*h)}
}

// Values exposes the backing slice so callers can read values directly.
func (f *ScalarField) Values() []float64 { return f.data }

// At returns the value at (x, y).
func (f *ScalarField) At(x, y int) float64 { return f.data[y*f.W+x] }

// Set stores v at (x, y).
func (f *ScalarField) Set(x, y int, v float64) { f.data[y*f.W+x] = v }

// Crop copies the top-left w*h rectangle into a new field.
func (f *ScalarField) Crop(w, h int) *ScalarField {
	out := NewScalarField(w, h)
	for y := 0; y < out.H; y++ {
		copy(out.data[y*out.W:(y+1)*out.W], f.data[y*f.W:y*f.W+out.W])
	}
	return out
}

// TerrainGrid stores a land/water classification in row-major order.
type TerrainGrid struct {
	Size
	data []Tile
}

// NewTerrainGrid allocates an all-water grid with the given dimensions.
func NewTerrainGrid(w, h int) *TerrainGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &TerrainGrid{Size: Size{W: w, H: h}, data: make([]Tile, w*h)}
}

// Cells exposes the backing slice so callers can read/write tiles directly.
func (g *TerrainGrid) Cells() []Tile { return g.data }

// At returns the tile at (x, y).
func (g *TerrainGrid) At(x, y int) Tile { return g.data[y*g.W+x] }

// Set stores t at (x, y).
func (g *TerrainGrid) Set(x, y int, t Tile) { g.data[y*g.W+x] = t }

// Count returns the number of cells holding t.
func (g *TerrainGrid) Count(t Tile) int {
	n := 0
	for _, c := range g.data {
		if c == t {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the grid.
func (g *TerrainGrid) Clone() *TerrainGrid {
	out := &TerrainGrid{Size: g.Size, data: make([]Tile, len(g.data))}
	copy(out.data, g.data)
	return out
}

// Fill sets every cell to t.
func (g *TerrainGrid) Fill(t Tile) {
	for i := range g.data {
		g.data[i] = t
	}
}
