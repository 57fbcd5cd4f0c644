package worldgen

import "sort"

// Factory builds a Config from flag-style overrides.
type Factory func(params map[string]string) Config

var presets = map[string]Factory{}

// Register adds a preset factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	presets[name] = f
}

// Presets exposes the registry of available preset factories.
func Presets() map[string]Factory {
	return presets
}

// PresetNames returns the registered preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Preset builds the named preset with overrides applied on top.
func Preset(name string, params map[string]string) (Config, bool) {
	f, ok := presets[name]
	if !ok {
		return Config{}, false
	}
	return f(params), true
}

func init() {
	Register("island", func(params map[string]string) Config {
		return FromMap(params)
	})
	Register("archipelago", func(params map[string]string) Config {
		c := DefaultConfig()
		c.SeaLevel = 0.55
		c.NoiseRoughness = 1.1
		c.MinLands = 4
		c.MinLandSize = 12
		c.MinPercentLand = 0.15
		c.MaxPercentLand = 0.45
		return c.WithOverrides(params)
	})
	Register("continent", func(params map[string]string) Config {
		c := DefaultConfig()
		c.SeaLevel = 0.4
		c.NoiseRoughness = 0.7
		c.MaxLands = 2
		c.MinSeas = 1
		c.MinPercentLand = 0.5
		c.MaxPercentLand = 0.85
		return c.WithOverrides(params)
	})
}
