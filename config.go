package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"

	"github.com/vaclav-dvorak/go-fractals/explorer"
	"github.com/vaclav-dvorak/go-fractals/fractal"
	"github.com/vaclav-dvorak/go-fractals/input"
	"github.com/vaclav-dvorak/go-fractals/render"
)

const envPrefix = "FRACTAL_"

type appConfig struct {
	Backend string `koanf:"backend"`
	Width   int    `koanf:"width"`
	Height  int    `koanf:"height"`
	Start   string `koanf:"start"`
	Chime   bool   `koanf:"chime"`
	LogFile string `koanf:"log_file"`
}

type config struct {
	App        appConfig           `koanf:"app"`
	Explorer   explorer.Config     `koanf:"explorer"`
	Render     render.Config       `koanf:"render"`
	Mandelbrot fractal.Preset      `koanf:"mandelbrot"`
	Julia      fractal.Preset      `koanf:"julia"`
	Mandelbox  fractal.Preset      `koanf:"mandelbox"`
	Logistic   fractal.Preset      `koanf:"logistic"`
	Sierpinski fractal.Preset      `koanf:"sierpinski"`
	Keys       map[string][]string `koanf:"keys,omitempty"`
}

func defaultConfig() config {
	p := fractal.DefaultPresets()
	return config{
		App: appConfig{
			Backend: "window",
			Width:   800,
			Height:  600,
			Start:   "mandelbrot",
		},
		Explorer:   explorer.DefaultConfig(),
		Render:     render.DefaultConfig(),
		Mandelbrot: p.Mandelbrot,
		Julia:      p.Julia,
		Mandelbox:  p.Mandelbox,
		Logistic:   p.Logistic,
		Sierpinski: p.Sierpinski,
	}
}

func (c config) presets() fractal.Presets {
	return fractal.Presets{
		Mandelbrot: c.Mandelbrot,
		Julia:      c.Julia,
		Mandelbox:  c.Mandelbox,
		Logistic:   c.Logistic,
		Sierpinski: c.Sierpinski,
	}
}

// loadConfig layers the built-in defaults, the TOML file at path (if it
// exists) and FRACTAL_ environment variables. FRACTAL_RENDER__SEED=7 sets
// render.seed.
func loadConfig(path string) (config, error) {
	k := koanf.New(".")
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return config{}, fmt.Errorf("error loading defaults: %w", err)
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return config{}, fmt.Errorf("error loading config: %w", err)
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return config{}, fmt.Errorf("error loading config: %w", err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return config{}, fmt.Errorf("error loading environment: %w", err)
	}

	var conf config
	if err := k.Unmarshal("", &conf); err != nil {
		return config{}, fmt.Errorf("error parsing config: %w", err)
	}
	conf.Keys = mergeKeys(input.DefaultKeys(), conf.Keys)
	return conf, conf.validate()
}

// mergeKeys replaces the default key list of every action named in
// overrides.
func mergeKeys(defaults, overrides map[string][]string) map[string][]string {
	for action, keys := range overrides {
		defaults[action] = keys
	}
	return defaults
}

func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "__", ".")
}

func (c config) validate() error {
	switch c.App.Backend {
	case "window", "terminal":
	default:
		return fmt.Errorf("unknown backend %q", c.App.Backend)
	}
	if c.App.Backend == "window" && (c.App.Width < 1 || c.App.Height < 1) {
		return fmt.Errorf("canvas size %dx%d", c.App.Width, c.App.Height)
	}
	if _, err := fractal.ParseKind(c.App.Start); err != nil {
		return err
	}
	if err := c.presets().Validate(); err != nil {
		return err
	}
	if _, err := input.NewBindings(c.Keys); err != nil {
		return fmt.Errorf("[keys]: %w", err)
	}
	return nil
}
