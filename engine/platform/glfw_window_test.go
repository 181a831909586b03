package platform

import "testing"

func TestCursorToPixels(t *testing.T) {
	tests := []struct {
		name       string
		x, y       float64
		winW, winH int
		fbW, fbH   int
		wantX      float64
		wantY      float64
	}{
		{"1x display passes through", 100, 50, 800, 600, 800, 600, 100, 50},
		{"2x retina doubles", 100, 50, 800, 600, 1600, 1200, 200, 100},
		{"fractional 1.5x scale", 100, 50, 800, 600, 1200, 900, 150, 75},
		{"per-axis scale", 100, 50, 800, 600, 1600, 600, 200, 50},
		{"zero window size keeps position", 100, 50, 0, 0, 1600, 1200, 100, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := cursorToPixels(tt.x, tt.y, tt.winW, tt.winH, tt.fbW, tt.fbH)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("cursorToPixels = (%v, %v), want (%v, %v)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}
