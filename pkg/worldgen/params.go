package worldgen

// StepParameter nudges a float setting by delta. Sea level and the land
// fractions are clamped to [0,1].
func (c *Config) StepParameter(key string, delta float64) bool {
	switch key {
	case "sea_level":
		c.SeaLevel = clampUnit(c.SeaLevel + delta)
	case "roughness":
		c.NoiseRoughness = max(0, c.NoiseRoughness+delta)
	case "min_land_pct":
		c.MinPercentLand = clampUnit(c.MinPercentLand + delta)
	case "max_land_pct":
		c.MaxPercentLand = clampUnit(c.MaxPercentLand + delta)
	default:
		return false
	}
	return true
}

func clampUnit(v float64) float64 {
	return min(1, max(0, v))
}
