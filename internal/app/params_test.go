package app

import (
	"testing"

	"islandgen/pkg/worldgen"
)

func TestParametersSnapshot(t *testing.T) {
	cfg := worldgen.DefaultConfig()
	cfg.MaxSeas = 3
	snap := Parameters(cfg)

	cases := map[string]string{
		"sea_level": "0.5",
		"w":         "128",
		"seed":      "1",
		"max_lands": "inf",
		"max_seas":  "3",
	}
	for key, want := range cases {
		p, ok := snap.Lookup(key)
		if !ok {
			t.Fatalf("parameter %s missing", key)
		}
		if p.Value != want {
			t.Fatalf("%s rendered as %q, expected %q", key, p.Value, want)
		}
	}
	if _, ok := snap.Lookup("nope"); ok {
		t.Fatal("unknown key resolved")
	}
}
