package app

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"islandgen/pkg/worldgen"
)

// Config represents the command-line parameters shared by the commands.
type Config struct {
	Preset  string
	Scale   int
	TPS     int
	Verbose bool

	// world only carries defaults for flag help; Resolve rebuilds the world
	// config from the preset and the flags that were actually set.
	world worldgen.Config
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Preset: "island", Scale: 4, TPS: 30, world: worldgen.DefaultConfig()}
}

// Bind attaches the configuration and every world constraint to fs.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Preset, "preset", c.Preset, "world preset ("+strings.Join(worldgen.PresetNames(), ", ")+")")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log rejected attempts")
	c.world.Bind(fs)
}

// Resolve builds the world config from the selected preset with every flag
// set on the command line applied on top.
func (c *Config) Resolve(fs *flag.FlagSet) (worldgen.Config, error) {
	overrides := map[string]string{}
	fs.Visit(func(f *flag.Flag) {
		overrides[f.Name] = f.Value.String()
	})
	cfg, ok := worldgen.Preset(c.Preset, overrides)
	if !ok {
		return worldgen.Config{}, fmt.Errorf("unknown preset %q", c.Preset)
	}
	return cfg, cfg.Validate()
}

// NewLogger returns a text logger writing to w at info level, or debug level
// when verbose is set.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
