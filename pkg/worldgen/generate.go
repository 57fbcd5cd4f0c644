// Package worldgen drives the island generation pipeline and retries with new
// seeds until the generated world satisfies the requested constraints.
package worldgen

import (
	"context"
	"log/slog"

	"islandgen/pkg/core"
	"islandgen/pkg/noise"
	"islandgen/pkg/regions"
	"islandgen/pkg/terrain"
)

// Result is a generated world. It is never modified after Generate returns.
type Result struct {
	Heights  *core.ScalarField
	Moisture *core.ScalarField
	Terrain  *core.TerrainGrid

	Seas  []regions.Region
	Lands []regions.Region

	// Seed is the seed of the attempt that produced the world.
	Seed int64
	// Attempts counts every attempt run, including the successful one.
	Attempts int
	// SmoothingRounds is the number of smoothing rounds the world needed.
	SmoothingRounds int
}

// LandFraction returns the share of land cells in the terrain grid.
func (r Result) LandFraction() float64 {
	if r.Terrain == nil {
		return 0
	}
	return landFraction(r.Terrain)
}

// Generate runs the pipeline with cfg.Seed and retries with seeds drawn from
// a stream seeded by cfg.Seed until a world passes validation. It returns an
// *ExhaustedError after cfg.MaxRetries failed attempts and ctx.Err() when the
// context is cancelled between attempts.
func Generate(ctx context.Context, cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	log := Logger()

	seeds := core.NewStream(cfg.Seed)
	seed := cfg.Seed
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		res, v, err := runAttempt(cfg, seed)
		if err != nil {
			return Result{}, err
		}
		if v == nil {
			res.Attempts = attempt
			log.Info("world generated",
				slog.Int64("seed", seed),
				slog.Int("attempts", attempt),
				slog.Int("lands", len(res.Lands)),
				slog.Int("seas", len(res.Seas)),
				slog.Float64("land_pct", res.LandFraction()),
			)
			return res, nil
		}

		log.Debug("attempt rejected",
			slog.Int("attempt", attempt),
			slog.Int64("seed", seed),
			slog.String("reason", v.Error()),
		)
		if attempt >= cfg.MaxRetries {
			log.Warn("retry budget exhausted", slog.Int64("seed", cfg.Seed), slog.Int("attempts", attempt))
			return Result{}, &ExhaustedError{Attempts: attempt, Seed: cfg.Seed}
		}
		seed = seeds.Int(0, core.MaxSeed)
	}
}

// GenerateSeed is Generate with cfg.Seed replaced by seed.
func GenerateSeed(ctx context.Context, cfg Config, seed int64) (Result, error) {
	cfg.Seed = seed
	return Generate(ctx, cfg)
}

// runAttempt builds one world from seed. The grids it allocates are owned by
// the attempt and dropped when validation fails.
func runAttempt(cfg Config, seed int64) (Result, *violation, error) {
	rng := core.NewStream(seed)
	heightSeed := rng.Int(0, core.MaxSeed)
	moistureSeed := rng.Int(0, core.MaxSeed)

	heights, err := noise.DiamondSquare(noise.Options{
		Width:     cfg.Width,
		Height:    cfg.Height,
		Roughness: cfg.NoiseRoughness,
		Seed:      heightSeed,
	})
	if err != nil {
		return Result{}, nil, err
	}
	moisture, err := noise.DiamondSquare(noise.Options{
		Width:     cfg.Width,
		Height:    cfg.Height,
		Roughness: MoistureRoughness,
		Seed:      moistureSeed,
	})
	if err != nil {
		return Result{}, nil, err
	}

	grid := terrain.Classify(heights, cfg.SeaLevel)
	rounds := terrain.Smooth(grid, cfg.MaxSmoothingIterations, cfg.MinNeighbours)
	found := regions.Detect(grid, regions.Limits{
		MinSeaSize:  cfg.MinSeaSize,
		MaxSeaSize:  cfg.MaxSeaSize,
		MinLandSize: cfg.MinLandSize,
		MaxLandSize: cfg.MaxLandSize,
	})

	res := Result{
		Heights:         heights,
		Moisture:        moisture,
		Terrain:         grid,
		Seas:            found.Seas,
		Lands:           found.Lands,
		Seed:            seed,
		SmoothingRounds: rounds,
	}
	return res, validate(cfg, res), nil
}

// validate checks the land fraction, then the sea count, then the land count.
func validate(cfg Config, res Result) *violation {
	if pct := landFraction(res.Terrain); pct < cfg.MinPercentLand || pct > cfg.MaxPercentLand {
		return &violation{kind: violationLandPercent, got: pct, min: cfg.MinPercentLand, max: cfg.MaxPercentLand}
	}
	if n := len(res.Seas); n < cfg.MinSeas || n > cfg.MaxSeas {
		return &violation{kind: violationSeaCount, got: float64(n), min: float64(cfg.MinSeas), max: float64(cfg.MaxSeas)}
	}
	if n := len(res.Lands); n < cfg.MinLands || n > cfg.MaxLands {
		return &violation{kind: violationLandCount, got: float64(n), min: float64(cfg.MinLands), max: float64(cfg.MaxLands)}
	}
	return nil
}

func landFraction(g *core.TerrainGrid) float64 {
	return float64(g.Count(core.Land)) / float64(g.Area())
}
