package noise

import (
	"errors"
	"slices"
	"testing"
)

func TestFieldSize(t *testing.T) {
	cases := []struct {
		w, h, want int
	}{
		{1, 1, 3},
		{2, 2, 3},
		{3, 3, 5},
		{4, 2, 5},
		{50, 50, 65},
		{64, 10, 65},
		{65, 10, 129},
		{10, 129, 257},
		{MaxDimension, 1, MaxDimension + 1},
		{1, 1 << 62, MaxDimension + 1},
	}
	for _, tc := range cases {
		if got := FieldSize(tc.w, tc.h); got != tc.want {
			t.Fatalf("FieldSize(%d, %d) = %d, expected %d", tc.w, tc.h, got, tc.want)
		}
	}
}

func TestDiamondSquareValuesStayInUnitRange(t *testing.T) {
	for _, roughness := range []float64{0, 0.9, 2, 8} {
		for seed := int64(1); seed <= 5; seed++ {
			f, err := DiamondSquare(Options{Width: 40, Height: 23, Roughness: roughness, Jitter: 0.1, Seed: seed})
			if err != nil {
				t.Fatal(err)
			}
			if f.W != 40 || f.H != 23 {
				t.Fatalf("field size %dx%d, expected 40x23", f.W, f.H)
			}
			for i, v := range f.Values() {
				if v < 0 || v > 1 {
					t.Fatalf("roughness %v seed %d: value %v at %d outside [0,1]", roughness, seed, v, i)
				}
			}
		}
	}
}

func TestDiamondSquareDeterministic(t *testing.T) {
	opts := Options{Width: 33, Height: 33, Roughness: 0.9, Seed: 4242}
	a, err := DiamondSquare(opts)
	if err != nil {
		t.Fatal(err)
	}
	b, err := DiamondSquare(opts)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(a.Values(), b.Values()) {
		t.Fatal("same options produced different fields")
	}

	opts.Seed++
	c, err := DiamondSquare(opts)
	if err != nil {
		t.Fatal(err)
	}
	if slices.Equal(a.Values(), c.Values()) {
		t.Fatal("different seeds produced identical fields")
	}
}

func TestDiamondSquareCropsInsteadOfResampling(t *testing.T) {
	wide, err := DiamondSquare(Options{Width: 60, Height: 40, Roughness: 0.9, Seed: 11})
	if err != nil {
		t.Fatal(err)
	}
	small, err := DiamondSquare(Options{Width: 50, Height: 50, Roughness: 0.9, Seed: 11})
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 40; y++ {
		for x := 0; x < 50; x++ {
			if wide.At(x, y) != small.At(x, y) {
				t.Fatalf("cell (%d,%d) differs between crops: %v vs %v", x, y, wide.At(x, y), small.At(x, y))
			}
		}
	}
}

func TestDiamondSquareFixedCornersWithoutDisplacement(t *testing.T) {
	corners := [4]float64{0.5, 0.5, 0.5, 0.5}
	f, err := DiamondSquare(Options{Width: 17, Height: 17, Corners: &corners, Seed: 3})
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range f.Values() {
		if v != 0.5 {
			t.Fatalf("value %v at %d, expected flat 0.5 field", v, i)
		}
	}
}

func TestDiamondSquareRejectsOutOfRangeSize(t *testing.T) {
	for _, opts := range []Options{
		{Width: 0, Height: 5},
		{Width: 5, Height: -1},
		{Width: 3, Height: MaxDimension + 1},
		{Width: 1 << 62, Height: 3},
	} {
		if _, err := DiamondSquare(opts); !errors.Is(err, ErrInvalidSize) {
			t.Fatalf("DiamondSquare(%dx%d) err=%v, expected ErrInvalidSize", opts.Width, opts.Height, err)
		}
	}
}
