package worldgen

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"math"
	"reflect"
	"strings"
	"testing"

	"islandgen/pkg/core"
)

// permissive accepts any world, so the first attempt always succeeds.
func permissive() Config {
	c := DefaultConfig()
	c.Width, c.Height = 50, 50
	c.MinLands = 0
	c.MinPercentLand = 0
	c.MaxPercentLand = 1
	c.MinLandSize = 0
	c.MinSeaSize = 0
	return c
}

func TestGenerateFirstAttemptUsesSeed(t *testing.T) {
	cfg := permissive()
	cfg.Seed = 42
	res, err := Generate(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if res.Attempts != 1 || res.Seed != 42 {
		t.Fatalf("attempts=%d seed=%d, expected 1 and 42", res.Attempts, res.Seed)
	}
	if res.Terrain.Area() != 2500 || res.Heights.Area() != 2500 || res.Moisture.Area() != 2500 {
		t.Fatal("fields not cropped to 50x50")
	}
	if reflect.DeepEqual(res.Heights.Values(), res.Moisture.Values()) {
		t.Fatal("height and moisture fields share a seed")
	}
	if res.SmoothingRounds < 1 || res.SmoothingRounds > cfg.MaxSmoothingIterations {
		t.Fatalf("smoothing rounds %d out of range", res.SmoothingRounds)
	}
}

func TestGenerateEndToEndWithDefaultSizeLimits(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 42
	cfg.Width, cfg.Height = 50, 50
	cfg.SeaLevel = 0.5
	cfg.MaxRetries = 10
	cfg.MinPercentLand, cfg.MaxPercentLand = 0, 1
	cfg.MinLands, cfg.MaxLands = 0, Unbounded
	cfg.MinSeas, cfg.MaxSeas = 0, Unbounded

	res, err := Generate(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if res.Attempts != 1 {
		t.Fatalf("attempts=%d, expected 1", res.Attempts)
	}
	if n := len(res.Terrain.Cells()); n != 2500 {
		t.Fatalf("terrain has %d cells, expected 2500", n)
	}
	for _, land := range res.Lands {
		if land.Size() < 20 {
			t.Fatalf("land %d has %d tiles, below the default minimum", land.ID, land.Size())
		}
	}
	for _, sea := range res.Seas {
		if sea.Size() < 20 {
			t.Fatalf("sea %d has %d tiles, below the default minimum", sea.ID, sea.Size())
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 64, 48
	cfg.Seed = 7
	a, errA := Generate(context.Background(), cfg)
	b, errB := Generate(context.Background(), cfg)
	if (errA == nil) != (errB == nil) {
		t.Fatalf("outcomes differ: %v vs %v", errA, errB)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatal("identical configs produced different worlds")
	}
}

func TestGenerateResultSatisfiesConstraints(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 64, 64
	for seed := int64(1); seed <= 4; seed++ {
		res, err := GenerateSeed(context.Background(), cfg, seed)
		if errors.Is(err, ErrExhausted) {
			continue
		}
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if v := validate(cfg, res); v != nil {
			t.Fatalf("seed %d: returned world violates %v", seed, v)
		}
		for _, land := range res.Lands {
			if land.Size() < cfg.MinLandSize {
				t.Fatalf("seed %d: land %d smaller than min size", seed, land.ID)
			}
			if len(land.Boundary) == 0 {
				t.Fatalf("seed %d: land %d has no boundary", seed, land.ID)
			}
		}
		for _, sea := range res.Seas {
			for _, idx := range sea.Tiles {
				if res.Terrain.Cells()[idx] != core.Water {
					t.Fatalf("seed %d: sea %d holds land", seed, sea.ID)
				}
			}
		}
	}
}

func TestGenerateExhausted(t *testing.T) {
	cfg := permissive()
	cfg.Width, cfg.Height = 17, 17
	cfg.Seed = 99
	cfg.MinLands = 1_000_000
	cfg.MaxRetries = 3

	_, err := Generate(context.Background(), cfg)
	if !errors.Is(err, ErrExhausted) {
		t.Fatalf("expected ErrExhausted, got %v", err)
	}
	var ex *ExhaustedError
	if !errors.As(err, &ex) {
		t.Fatalf("expected *ExhaustedError, got %T", err)
	}
	if ex.Attempts != 3 || ex.Seed != 99 {
		t.Fatalf("got attempts=%d seed=%d", ex.Attempts, ex.Seed)
	}
}

func TestGenerateRejectsInvalidConfig(t *testing.T) {
	cases := map[string]func(*Config){
		"zero width":    func(c *Config) { c.Width = 0 },
		"wide":          func(c *Config) { c.Width = 1 << 20 },
		"area overflow": func(c *Config) { c.Width, c.Height = 3, 1<<62 },
		"nan sea level": func(c *Config) { c.SeaLevel = math.NaN() },
		"inverted pct":  func(c *Config) { c.MinPercentLand, c.MaxPercentLand = 0.8, 0.2 },
		"no retries":    func(c *Config) { c.MaxRetries = 0 },
		"max below min": func(c *Config) { c.MinLands, c.MaxLands = 3, 2 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(&cfg)
			if _, err := Generate(context.Background(), cfg); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestGenerateHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Generate(ctx, permissive()); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestGenerateLogsRejectedAttempts(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	cfg := permissive()
	cfg.Width, cfg.Height = 9, 9
	cfg.MinLands = 1_000
	cfg.MaxRetries = 2
	_, _ = Generate(context.Background(), cfg)

	out := buf.String()
	if strings.Count(out, "attempt rejected") != 2 {
		t.Fatalf("expected two rejected attempts in log:\n%s", out)
	}
	if !strings.Contains(out, `reason="lands`) {
		t.Fatalf("rejection reason missing:\n%s", out)
	}
	if !strings.Contains(out, "retry budget exhausted") {
		t.Fatalf("exhaustion not logged:\n%s", out)
	}
}

func TestValidateOrder(t *testing.T) {
	cfg := DefaultConfig()
	grid := core.NewTerrainGrid(4, 4)
	res := Result{Terrain: grid}

	if v := validate(cfg, res); v == nil || v.kind != violationLandPercent {
		t.Fatalf("all-water world should fail the land fraction first, got %v", v)
	}
	grid.Fill(core.Land)
	cfg.MinSeas = 1
	if v := validate(cfg, res); v == nil || v.kind != violationSeaCount {
		t.Fatalf("expected sea count violation, got %v", v)
	}
	cfg.MinSeas = 0
	if v := validate(cfg, res); v == nil || v.kind != violationLandCount {
		t.Fatalf("expected land count violation, got %v", v)
	}
}
