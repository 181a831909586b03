// Package config loads engine configuration from YAML files. Options
// are independent: absent keys keep whatever the base Config already
// holds, so a file can override just the pieces it cares about.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hubastard/glade/engine/clock"
	"github.com/hubastard/glade/engine/colors"
	"github.com/hubastard/glade/engine/core"
	"github.com/hubastard/glade/engine/gfx/scaling"
)

// File mirrors the YAML layout. Booleans are pointers so a file can
// still express false explicitly.
type File struct {
	Window struct {
		Title     string `yaml:"title"`
		Width     int    `yaml:"width"`
		Height    int    `yaml:"height"`
		VSync     *bool  `yaml:"vsync"`
		Resizable *bool  `yaml:"resizable"`
	} `yaml:"window"`

	Canvas struct {
		Width      int       `yaml:"width"`
		Height     int       `yaml:"height"`
		Scaling    string    `yaml:"scaling"`
		Background []float32 `yaml:"background"`
		Clear      []float32 `yaml:"clear"`
	} `yaml:"canvas"`

	Timestep struct {
		Mode            string   `yaml:"mode"`
		TickRate        Duration `yaml:"tick_rate"`
		MaxAccumulation Duration `yaml:"max_accumulation"`
	} `yaml:"timestep"`

	Batch struct {
		MaxVertices int `yaml:"max_vertices"`
	} `yaml:"batch"`

	QuitOnEscape *bool `yaml:"quit_on_escape"`
}

// Duration parses YAML scalars through time.ParseDuration, so files
// can say "16.6ms" or "1s".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("bad duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Load reads a YAML file and overlays its options onto the engine
// defaults.
func Load(path string) (core.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return core.Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(core.DefaultConfig(), data)
	if err != nil {
		return core.Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Parse overlays YAML options onto base.
func Parse(base core.Config, data []byte) (core.Config, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return base, err
	}
	return f.apply(base)
}

func (f File) apply(c core.Config) (core.Config, error) {
	if f.Window.Title != "" {
		c.Title = f.Window.Title
	}
	if f.Window.Width > 0 {
		c.Width = f.Window.Width
	}
	if f.Window.Height > 0 {
		c.Height = f.Window.Height
	}
	if f.Window.VSync != nil {
		c.VSync = *f.Window.VSync
	}
	if f.Window.Resizable != nil {
		c.Resizable = *f.Window.Resizable
	}

	if f.Canvas.Width > 0 {
		c.CanvasWidth = f.Canvas.Width
	}
	if f.Canvas.Height > 0 {
		c.CanvasHeight = f.Canvas.Height
	}
	if f.Canvas.Scaling != "" {
		m, err := scaling.ParseMode(f.Canvas.Scaling)
		if err != nil {
			return c, err
		}
		c.ScalingMode = m
	}
	if f.Canvas.Background != nil {
		col, err := parseColor(f.Canvas.Background)
		if err != nil {
			return c, fmt.Errorf("background: %w", err)
		}
		c.Background = col
	}
	if f.Canvas.Clear != nil {
		col, err := parseColor(f.Canvas.Clear)
		if err != nil {
			return c, fmt.Errorf("clear: %w", err)
		}
		c.ClearColor = col
	}

	switch f.Timestep.Mode {
	case "":
	case "fixed":
		c.Timestep = clock.Fixed
	case "variable":
		c.Timestep = clock.Variable
	default:
		return c, fmt.Errorf("unknown timestep mode %q", f.Timestep.Mode)
	}
	if f.Timestep.TickRate > 0 {
		c.TickRate = time.Duration(f.Timestep.TickRate)
	}
	if f.Timestep.MaxAccumulation > 0 {
		c.MaxAccumulation = time.Duration(f.Timestep.MaxAccumulation)
	}

	if f.Batch.MaxVertices > 0 {
		c.MaxBatchVertices = f.Batch.MaxVertices
	}
	if f.QuitOnEscape != nil {
		c.QuitOnEscape = *f.QuitOnEscape
	}
	return c, nil
}

func parseColor(v []float32) (colors.Color, error) {
	switch len(v) {
	case 3:
		return colors.Color{v[0], v[1], v[2], 1}, nil
	case 4:
		return colors.Color{v[0], v[1], v[2], v[3]}, nil
	}
	return colors.Color{}, fmt.Errorf("want 3 or 4 components, got %d", len(v))
}
