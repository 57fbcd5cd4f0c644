package app

import (
	"strconv"

	"islandgen/internal/core"
	"islandgen/pkg/worldgen"
)

// Parameters exports the world configuration grouped for display.
func Parameters(c worldgen.Config) core.ParameterSnapshot {
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", c.Width),
				intParam("h", "Height", c.Height),
				int64Param("seed", "Seed", c.Seed),
				intParam("retries", "Retries", c.MaxRetries),
			},
		},
		{
			Name: "Terrain",
			Params: []core.Parameter{
				floatParam("sea_level", "Sea level", c.SeaLevel),
				floatParam("roughness", "Roughness", c.NoiseRoughness),
				intParam("smoothing", "Smoothing rounds", c.MaxSmoothingIterations),
				intParam("min_neighbours", "Min neighbours", c.MinNeighbours),
			},
		},
		{
			Name: "Lands",
			Params: []core.Parameter{
				intParam("min_lands", "Min lands", c.MinLands),
				boundParam("max_lands", "Max lands", c.MaxLands),
				intParam("min_land_size", "Min land size", c.MinLandSize),
				boundParam("max_land_size", "Max land size", c.MaxLandSize),
				floatParam("min_land_pct", "Min land fraction", c.MinPercentLand),
				floatParam("max_land_pct", "Max land fraction", c.MaxPercentLand),
			},
		},
		{
			Name: "Seas",
			Params: []core.Parameter{
				intParam("min_seas", "Min seas", c.MinSeas),
				boundParam("max_seas", "Max seas", c.MaxSeas),
				intParam("min_sea_size", "Min sea size", c.MinSeaSize),
				boundParam("max_sea_size", "Max sea size", c.MaxSeaSize),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func boundParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBound,
		Value: formatBound(value),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func formatBound(v int) string {
	if v == worldgen.Unbounded {
		return "inf"
	}
	return strconv.Itoa(v)
}
