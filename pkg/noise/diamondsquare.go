// Package noise synthesises fractal scalar fields.
package noise

import (
	"errors"
	"fmt"

	"islandgen/pkg/core"
)

// MaxDimension is the largest width or height DiamondSquare accepts. The
// working field for it has edge MaxDimension+1.
const MaxDimension = 1 << 13

// ErrInvalidSize is returned when the requested field has no cells or
// exceeds MaxDimension.
var ErrInvalidSize = errors.New("noise: field size out of range")

// Options controls a diamond-square run.
type Options struct {
	Width  int
	Height int

	// Roughness scales the displacement amplitude with the step size.
	Roughness float64
	// Jitter is a constant displacement added at every step.
	Jitter float64

	Seed int64

	// Corners optionally fixes the four corner values (NW, NE, SW, SE).
	// When nil the corners are drawn from the stream.
	Corners *[4]float64
}

// FieldSize returns the smallest 2^n+1 edge length strictly greater than
// both dimensions. Dimensions above MaxDimension are clamped to it.
func FieldSize(w, h int) int {
	need := min(max(w, h), MaxDimension)
	size := 2
	for size+1 <= need {
		size *= 2
	}
	return size + 1
}

// DiamondSquare generates a midpoint-displacement height field. The working
// field is square with edge FieldSize(Width, Height); the result is its
// top-left Width*Height crop, so requests sharing a working field agree on
// every cell they both cover.
func DiamondSquare(opts Options) (*core.ScalarField, error) {
	if opts.Width <= 0 || opts.Height <= 0 || opts.Width > MaxDimension || opts.Height > MaxDimension {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, opts.Width, opts.Height)
	}

	rng := core.NewStream(opts.Seed)
	size := FieldSize(opts.Width, opts.Height)
	field := core.NewScalarField(size, size)

	last := size - 1
	if opts.Corners != nil {
		field.Set(0, 0, opts.Corners[0])
		field.Set(last, 0, opts.Corners[1])
		field.Set(0, last, opts.Corners[2])
		field.Set(last, last, opts.Corners[3])
	} else {
		field.Set(0, 0, rng.Next())
		field.Set(last, 0, rng.Next())
		field.Set(0, last, rng.Next())
		field.Set(last, last, rng.Next())
	}

	for step := size - 1; step > 1; step /= 2 {
		r := float64(step)/float64(size)*opts.Roughness + opts.Jitter
		diamond(field, step, r, rng)
		square(field, step, r, rng)
	}

	vals := field.Values()
	for i, v := range vals {
		vals[i] = clamp01(v)
	}

	return field.Crop(opts.Width, opts.Height), nil
}

// diamond sets the centre of every step*step square.
func diamond(f *core.ScalarField, step int, r float64, rng *core.Stream) {
	half := step / 2
	for y := half; y < f.H; y += step {
		for x := half; x < f.W; x += step {
			avg := (f.At(x-half, y-half) +
				f.At(x+half, y-half) +
				f.At(x-half, y+half) +
				f.At(x+half, y+half)) / 4
			f.Set(x, y, avg+rng.Float(-r, r))
		}
	}
}

// square sets every edge midpoint from its orthogonal neighbours at distance
// step/2. Along the outer edge only three neighbours exist.
func square(f *core.ScalarField, step int, r float64, rng *core.Stream) {
	half := step / 2
	for y := 0; y < f.H; y += half {
		start := half
		if (y/half)%2 == 1 {
			start = 0
		}
		for x := start; x < f.W; x += step {
			sum, n := 0.0, 0
			if y-half >= 0 {
				sum += f.At(x, y-half)
				n++
			}
			if y+half < f.H {
				sum += f.At(x, y+half)
				n++
			}
			if x-half >= 0 {
				sum += f.At(x-half, y)
				n++
			}
			if x+half < f.W {
				sum += f.At(x+half, y)
				n++
			}
			f.Set(x, y, sum/float64(n)+rng.Float(-r, r))
		}
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
