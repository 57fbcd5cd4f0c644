package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"sort"
	"sync"
	"time"

	"islandgen/internal/app"
	"islandgen/pkg/worldgen"
)

type sweepResult struct {
	seed     int64
	attempts int
	lands    int
	seas     int
	landPct  float64
	err      error
}

func (r sweepResult) String() string {
	if r.err != nil {
		return fmt.Sprintf("seed=%d err=%v", r.seed, r.err)
	}
	return fmt.Sprintf("seed=%d attempts=%d lands=%d seas=%d land=%.1f%%",
		r.seed, r.attempts, r.lands, r.seas, 100*r.landPct)
}

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	first := flag.Int64("first", 1, "first seed to try")
	count := flag.Int("count", 64, "number of consecutive seeds to try")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	top := flag.Int("top", 5, "number of results to list")
	flag.Parse()

	worldgen.SetLogger(app.NewLogger(os.Stderr, cfg.Verbose))

	world, err := cfg.Resolve(flag.CommandLine)
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid configuration:", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Sweeping %d seeds from %d (%d workers, preset %s, %dx%d)\n",
		*count, *first, *workers, cfg.Preset, world.Width, world.Height)

	jobs := make(chan int64)
	results := make(chan sweepResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				results <- runSeed(ctx, world, seed)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		defer close(jobs)
		for i := 0; i < *count; i++ {
			select {
			case jobs <- *first + int64(i):
			case <-ctx.Done():
				return
			}
		}
	}()

	start := time.Now()
	var ok, exhausted []sweepResult
	for res := range results {
		switch {
		case res.err == nil:
			ok = append(ok, res)
		case errors.Is(res.err, worldgen.ErrExhausted):
			exhausted = append(exhausted, res)
		default:
			fmt.Println(res)
		}
	}

	sort.Slice(ok, func(i, j int) bool {
		if ok[i].attempts != ok[j].attempts {
			return ok[i].attempts < ok[j].attempts
		}
		return ok[i].seed < ok[j].seed
	})
	elapsed := time.Since(start)

	total := len(ok) + len(exhausted)
	fmt.Printf("\n%d/%d seeds succeeded, %d exhausted (elapsed %s)\n",
		len(ok), total, len(exhausted), elapsed.Round(time.Millisecond))
	if len(ok) > 0 {
		sum := 0
		for _, res := range ok {
			sum += res.attempts
		}
		fmt.Printf("mean attempts %.2f\n", float64(sum)/float64(len(ok)))
	}

	fmt.Printf("\nTop %d seeds by attempts:\n", min(*top, len(ok)))
	for i := 0; i < len(ok) && i < *top; i++ {
		fmt.Printf("%2d) %s\n", i+1, ok[i])
	}
}

func runSeed(ctx context.Context, cfg worldgen.Config, seed int64) sweepResult {
	res, err := worldgen.GenerateSeed(ctx, cfg, seed)
	if err != nil {
		return sweepResult{seed: seed, err: err}
	}
	return sweepResult{
		seed:     seed,
		attempts: res.Attempts,
		lands:    len(res.Lands),
		seas:     len(res.Seas),
		landPct:  res.LandFraction(),
	}
}
