package worldgen

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"strconv"
	"strings"

	"islandgen/pkg/noise"
	"islandgen/pkg/terrain"
)

// Unbounded disables an upper count or size limit.
const Unbounded = math.MaxInt

// MoistureRoughness is the fixed roughness of the moisture field.
const MoistureRoughness = 2.0

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("worldgen: invalid config")

// Config holds the constraints for a single generation request.
type Config struct {
	Seed   int64
	Width  int
	Height int

	SeaLevel               float64
	NoiseRoughness         float64
	MaxSmoothingIterations int
	MinNeighbours          int

	MinLands int
	MaxLands int
	MinSeas  int
	MaxSeas  int

	MinPercentLand float64
	MaxPercentLand float64

	MinLandSize int
	MaxLandSize int
	MinSeaSize  int
	MaxSeaSize  int

	MaxRetries int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Seed:   1,
		Width:  128,
		Height: 128,

		SeaLevel:               0.5,
		NoiseRoughness:         0.9,
		MaxSmoothingIterations: 100,
		MinNeighbours:          terrain.DefaultMinNeighbours,

		MinLands: 1,
		MaxLands: Unbounded,
		MinSeas:  0,
		MaxSeas:  Unbounded,

		MinPercentLand: 0.3,
		MaxPercentLand: 1.0,

		MinLandSize: 20,
		MaxLandSize: Unbounded,
		MinSeaSize:  20,
		MaxSeaSize:  Unbounded,

		MaxRetries: 1000,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs)
// on top of DefaultConfig. Unknown keys and unparsable values are ignored.
func FromMap(cfg map[string]string) Config {
	return DefaultConfig().WithOverrides(cfg)
}

// WithOverrides returns a copy of c with the keys in cfg applied.
func (c Config) WithOverrides(cfg map[string]string) Config {
	for k, v := range cfg {
		c.SetParameter(k, v)
	}
	return c
}

// SetParameter updates the field registered under key. It reports false when
// the key is unknown or the value cannot be parsed.
func (c *Config) SetParameter(key, value string) bool {
	value = strings.TrimSpace(value)
	switch key {
	case "seed":
		parsed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return false
		}
		c.Seed = parsed
		return true
	case "w":
		return setInt(&c.Width, value)
	case "h":
		return setInt(&c.Height, value)
	case "sea_level":
		return setFloat(&c.SeaLevel, value)
	case "roughness":
		return setFloat(&c.NoiseRoughness, value)
	case "smoothing":
		return setInt(&c.MaxSmoothingIterations, value)
	case "min_neighbours":
		return setInt(&c.MinNeighbours, value)
	case "min_lands":
		return setInt(&c.MinLands, value)
	case "max_lands":
		return setBound(&c.MaxLands, value)
	case "min_seas":
		return setInt(&c.MinSeas, value)
	case "max_seas":
		return setBound(&c.MaxSeas, value)
	case "min_land_pct":
		return setFloat(&c.MinPercentLand, value)
	case "max_land_pct":
		return setFloat(&c.MaxPercentLand, value)
	case "min_land_size":
		return setInt(&c.MinLandSize, value)
	case "max_land_size":
		return setBound(&c.MaxLandSize, value)
	case "min_sea_size":
		return setInt(&c.MinSeaSize, value)
	case "max_sea_size":
		return setBound(&c.MaxSeaSize, value)
	case "retries":
		return setInt(&c.MaxRetries, value)
	}
	return false
}

func setInt(dst *int, value string) bool {
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return false
	}
	*dst = parsed
	return true
}

func setBound(dst *int, value string) bool {
	if isUnbounded(value) {
		*dst = Unbounded
		return true
	}
	return setInt(dst, value)
}

func setFloat(dst *float64, value string) bool {
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return false
	}
	*dst = parsed
	return true
}

func isUnbounded(value string) bool {
	switch strings.ToLower(value) {
	case "inf", "infinity", "unbounded", "-1":
		return true
	}
	return false
}

func formatBound(v int) string {
	if v == Unbounded {
		return "inf"
	}
	return strconv.Itoa(v)
}

// Validate reports configuration errors that no amount of retrying can fix.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("dimensions must be positive, got %dx%d", c.Width, c.Height))
	}
	if c.Width > noise.MaxDimension || c.Height > noise.MaxDimension {
		errs = append(errs, fmt.Errorf("dimensions must not exceed %d, got %dx%d", noise.MaxDimension, c.Width, c.Height))
	}
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"sea_level", c.SeaLevel},
		{"roughness", c.NoiseRoughness},
		{"min_land_pct", c.MinPercentLand},
		{"max_land_pct", c.MaxPercentLand},
	} {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			errs = append(errs, fmt.Errorf("%s must be finite, got %v", f.name, f.value))
		}
	}
	if c.NoiseRoughness < 0 {
		errs = append(errs, fmt.Errorf("roughness must not be negative, got %v", c.NoiseRoughness))
	}
	if c.MaxSmoothingIterations < 0 {
		errs = append(errs, fmt.Errorf("smoothing must not be negative, got %d", c.MaxSmoothingIterations))
	}
	if c.MinNeighbours < 0 || c.MinNeighbours > 8 {
		errs = append(errs, fmt.Errorf("min_neighbours must be in [0,8], got %d", c.MinNeighbours))
	}
	for _, r := range []struct {
		name     string
		min, max int
	}{
		{"lands", c.MinLands, c.MaxLands},
		{"seas", c.MinSeas, c.MaxSeas},
		{"land_size", c.MinLandSize, c.MaxLandSize},
		{"sea_size", c.MinSeaSize, c.MaxSeaSize},
	} {
		if r.min < 0 {
			errs = append(errs, fmt.Errorf("min_%s must not be negative, got %d", r.name, r.min))
		}
		if r.max < r.min {
			errs = append(errs, fmt.Errorf("max_%s (%s) below min_%s (%d)", r.name, formatBound(r.max), r.name, r.min))
		}
	}
	if c.MinPercentLand > c.MaxPercentLand {
		errs = append(errs, fmt.Errorf("max_land_pct (%v) below min_land_pct (%v)", c.MaxPercentLand, c.MinPercentLand))
	}
	if c.MaxRetries < 1 {
		errs = append(errs, fmt.Errorf("retries must be at least 1, got %d", c.MaxRetries))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Int64Var(&c.Seed, "seed", c.Seed, "world seed")
	fs.IntVar(&c.Width, "w", c.Width, "map width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "map height in cells")
	fs.Float64Var(&c.SeaLevel, "sea_level", c.SeaLevel, "height threshold separating water from land")
	fs.Float64Var(&c.NoiseRoughness, "roughness", c.NoiseRoughness, "height noise roughness")
	fs.IntVar(&c.MaxSmoothingIterations, "smoothing", c.MaxSmoothingIterations, "maximum smoothing rounds")
	fs.IntVar(&c.MinNeighbours, "min_neighbours", c.MinNeighbours, "same-valued neighbours a cell needs to survive smoothing")
	fs.IntVar(&c.MinLands, "min_lands", c.MinLands, "minimum number of landmasses")
	fs.Var(boundValue{&c.MaxLands}, "max_lands", "maximum number of landmasses (inf for unbounded)")
	fs.IntVar(&c.MinSeas, "min_seas", c.MinSeas, "minimum number of seas")
	fs.Var(boundValue{&c.MaxSeas}, "max_seas", "maximum number of seas (inf for unbounded)")
	fs.Float64Var(&c.MinPercentLand, "min_land_pct", c.MinPercentLand, "minimum land fraction")
	fs.Float64Var(&c.MaxPercentLand, "max_land_pct", c.MaxPercentLand, "maximum land fraction")
	fs.IntVar(&c.MinLandSize, "min_land_size", c.MinLandSize, "smallest landmass kept, in cells")
	fs.Var(boundValue{&c.MaxLandSize}, "max_land_size", "largest landmass kept, in cells (inf for unbounded)")
	fs.IntVar(&c.MinSeaSize, "min_sea_size", c.MinSeaSize, "smallest sea kept, in cells")
	fs.Var(boundValue{&c.MaxSeaSize}, "max_sea_size", "largest sea kept, in cells (inf for unbounded)")
	fs.IntVar(&c.MaxRetries, "retries", c.MaxRetries, "attempts before giving up")
}

// boundValue is a flag.Value for limits that accept "inf".
type boundValue struct{ v *int }

func (b boundValue) String() string {
	if b.v == nil {
		return ""
	}
	return formatBound(*b.v)
}

func (b boundValue) Set(s string) error {
	if !setBound(b.v, s) {
		return fmt.Errorf("invalid bound %q", s)
	}
	return nil
}
