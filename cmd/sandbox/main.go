package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/hubastard/glade/engine/clock"
	"github.com/hubastard/glade/engine/config"
	"github.com/hubastard/glade/engine/core"
	"github.com/hubastard/glade/engine/gfx"
	glbackend "github.com/hubastard/glade/engine/gfx/gl"
	"github.com/hubastard/glade/engine/gfx/scaling"
	"github.com/hubastard/glade/engine/platform"
	"github.com/hubastard/glade/engine/profiler"
)

var (
	flagConfig   string
	flagFont     string
	flagScaling  string
	flagTimestep string
	flagTick     time.Duration
	flagVSync    bool
	flagVerbose  bool
)

func main() {
	root := &cobra.Command{
		Use:           "sandbox",
		Short:         "glade engine demo scenes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			log.SetPrefix("sandbox")
			if flagVerbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&flagConfig, "config", "c", "", "engine config YAML")
	pf.StringVar(&flagFont, "font", "", "overlay TTF (default: built-in)")
	pf.StringVar(&flagScaling, "scaling", "", "canvas scaling mode")
	pf.StringVar(&flagTimestep, "timestep", "", "fixed or variable")
	pf.DurationVar(&flagTick, "tick", 0, "fixed-mode tick duration")
	pf.BoolVar(&flagVSync, "vsync", true, "sync presentation to the display")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging")

	root.AddCommand(bunniesCmd(), scalingCmd(), interpCmd(), cameraCmd())

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

// sceneConfig builds the engine config for one scene: defaults, then
// the optional YAML file, then flag overrides.
func sceneConfig(cmd *cobra.Command, title string) (core.Config, error) {
	cfg := core.DefaultConfig()
	if flagConfig != "" {
		var err error
		if cfg, err = config.Load(flagConfig); err != nil {
			return core.Config{}, err
		}
	}

	if cmd.Flags().Changed("vsync") {
		cfg.VSync = flagVSync
	}
	if flagScaling != "" {
		mode, err := scaling.ParseMode(flagScaling)
		if err != nil {
			return core.Config{}, err
		}
		cfg.ScalingMode = mode
	}
	switch flagTimestep {
	case "":
	case "fixed":
		cfg.Timestep = clock.Fixed
	case "variable":
		cfg.Timestep = clock.Variable
	default:
		return core.Config{}, fmt.Errorf("unknown timestep %q", flagTimestep)
	}
	if flagTick > 0 {
		cfg.TickRate = flagTick
	}

	cfg.Title = "glade sandbox: " + title
	cfg.QuitOnEscape = true
	return cfg, nil
}

func runScene(cfg core.Config, layers ...core.Layer) error {
	profiler.Init(1 << 12)

	app := &core.Layers{}
	for _, l := range layers {
		app.Stack.Push(l)
	}

	newWindow := func(cfg core.Config) (core.Window, error) {
		return platform.NewWindow(cfg)
	}
	newDevice := func(win core.Window, cfg core.Config) (gfx.Device, error) {
		return glbackend.New(win, cfg)
	}
	return core.Run(app, cfg, newWindow, newDevice)
}
