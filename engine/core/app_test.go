package core

import (
	"testing"
	"time"

	"github.com/hubastard/glade/engine/colors"
	"github.com/hubastard/glade/engine/gfx/scaling"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()

	if c.TickRate != time.Second/60 {
		t.Errorf("TickRate = %v, want %v", c.TickRate, time.Second/60)
	}
	if c.MaxAccumulation != 150*time.Millisecond {
		t.Errorf("MaxAccumulation = %v, want 150ms", c.MaxAccumulation)
	}
	if c.MaxBatchVertices != 8192 {
		t.Errorf("MaxBatchVertices = %d, want 8192", c.MaxBatchVertices)
	}
	if c.ScalingMode != scaling.Letterbox {
		t.Errorf("ScalingMode = %v, want letterbox", c.ScalingMode)
	}
	if c.Background != colors.Black || c.ClearColor != colors.Black {
		t.Error("default background and clear color should be opaque black")
	}
	if !c.VSync {
		t.Error("vsync should default on")
	}
}

func TestWithDefaultsFillsZeroValues(t *testing.T) {
	c := Config{Width: 800, Height: 600}.withDefaults()

	if c.CanvasWidth != 800 || c.CanvasHeight != 600 {
		t.Errorf("canvas = %dx%d, want window size 800x600", c.CanvasWidth, c.CanvasHeight)
	}
	if c.TickRate != time.Second/60 {
		t.Errorf("TickRate = %v, want %v", c.TickRate, time.Second/60)
	}
	if c.MaxBatchVertices != 8192 {
		t.Errorf("MaxBatchVertices = %d, want 8192", c.MaxBatchVertices)
	}
}

func TestWithDefaultsKeepsTransparentColors(t *testing.T) {
	// Transparent black is a valid explicit choice, not an unset
	// option; only DefaultConfig opts into opaque black.
	c := Config{Background: colors.Transparent, ClearColor: colors.Transparent}.withDefaults()

	if c.Background != colors.Transparent {
		t.Errorf("Background = %v, want transparent", c.Background)
	}
	if c.ClearColor != colors.Transparent {
		t.Errorf("ClearColor = %v, want transparent", c.ClearColor)
	}
}

func TestWithDefaultsKeepsExplicitOptions(t *testing.T) {
	in := Config{
		Width: 640, Height: 480,
		CanvasWidth: 320, CanvasHeight: 240,
		TickRate:         time.Second / 30,
		MaxBatchVertices: 64,
		Background:       colors.DarkGray,
	}
	c := in.withDefaults()

	if c.CanvasWidth != 320 || c.CanvasHeight != 240 {
		t.Errorf("canvas = %dx%d, want 320x240", c.CanvasWidth, c.CanvasHeight)
	}
	if c.TickRate != time.Second/30 {
		t.Errorf("TickRate = %v, want %v", c.TickRate, time.Second/30)
	}
	if c.MaxBatchVertices != 64 {
		t.Errorf("MaxBatchVertices = %d, want 64", c.MaxBatchVertices)
	}
	if c.Background != colors.DarkGray {
		t.Error("explicit background should survive")
	}
}
