package server

import (
	"errors"

	"islandgen/pkg/core"
	"islandgen/pkg/regions"
	"islandgen/pkg/worldgen"
)

// Request asks for a world built from a preset with optional overrides.
type Request struct {
	ID     string            `json:"id,omitempty"`
	Preset string            `json:"preset,omitempty"`
	Params map[string]string `json:"params,omitempty"`
	// Fields includes the height and moisture fields in the reply.
	Fields bool `json:"fields,omitempty"`
}

// WorldMessage is the JSON form of a generated world.
type WorldMessage struct {
	Type     string `json:"type"`
	ID       string `json:"id,omitempty"`
	Seed     int64  `json:"seed"`
	Attempts int    `json:"attempts"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`

	LandFraction float64 `json:"landFraction"`
	// Terrain holds one byte per cell, 0 for water and 1 for land.
	Terrain []byte `json:"terrain"`

	Heights  []float64 `json:"heights,omitempty"`
	Moisture []float64 `json:"moisture,omitempty"`

	Seas  []RegionMessage `json:"seas"`
	Lands []RegionMessage `json:"lands"`
}

// RegionMessage describes one sea or land region.
type RegionMessage struct {
	ID       int      `json:"id"`
	Size     int      `json:"size"`
	Boundary [][2]int `json:"boundary,omitempty"`
}

// ErrorMessage reports a failed request.
type ErrorMessage struct {
	Type     string `json:"type"`
	ID       string `json:"id,omitempty"`
	Error    string `json:"error"`
	Attempts int    `json:"attempts,omitempty"`
}

// EncodeWorld converts res into its wire form.
func EncodeWorld(id string, res worldgen.Result, fields bool) WorldMessage {
	grid := res.Terrain
	msg := WorldMessage{
		Type:         "world",
		ID:           id,
		Seed:         res.Seed,
		Attempts:     res.Attempts,
		Width:        grid.W,
		Height:       grid.H,
		LandFraction: res.LandFraction(),
		Terrain:      make([]byte, grid.Area()),
		Seas:         encodeRegions(grid.Size, res.Seas),
		Lands:        encodeRegions(grid.Size, res.Lands),
	}
	for i, t := range grid.Cells() {
		msg.Terrain[i] = byte(t)
	}
	if fields {
		msg.Heights = append([]float64(nil), res.Heights.Values()...)
		msg.Moisture = append([]float64(nil), res.Moisture.Values()...)
	}
	return msg
}

func encodeRegions(size core.Size, rs []regions.Region) []RegionMessage {
	out := make([]RegionMessage, 0, len(rs))
	for _, r := range rs {
		m := RegionMessage{ID: r.ID, Size: r.Size()}
		if len(r.Boundary) > 0 {
			m.Boundary = make([][2]int, len(r.Boundary))
			for i, idx := range r.Boundary {
				x, y := size.Coords(idx)
				m.Boundary[i] = [2]int{x, y}
			}
		}
		out = append(out, m)
	}
	return out
}

// EncodeError converts err into its wire form.
func EncodeError(id string, err error) ErrorMessage {
	msg := ErrorMessage{Type: "error", ID: id, Error: err.Error()}
	var exhausted *worldgen.ExhaustedError
	if errors.As(err, &exhausted) {
		msg.Attempts = exhausted.Attempts
	}
	return msg
}
