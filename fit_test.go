package tilecam

import (
	"errors"
	"image"
	"testing"
)

func TestFitScale(t *testing.T) {
	tests := []struct {
		name          string
		window        WindowSize
		tileCount     image.Point
		pixelsPerTile image.Point
		wantScale     int
		wantSize      image.Point
		wantOrigin    image.Point
	}{
		{
			name:          "exact triple fit",
			window:        WindowSize{1920, 600},
			tileCount:     image.Pt(80, 25),
			pixelsPerTile: image.Pt(8, 8),
			wantScale:     3,
			wantSize:      image.Pt(1920, 600),
			wantOrigin:    image.Pt(0, 0),
		},
		{
			name:          "limited by narrow axis",
			window:        WindowSize{1000, 500},
			tileCount:     image.Pt(80, 25),
			pixelsPerTile: image.Pt(8, 8),
			wantScale:     1, // sx=1, sy=2
			wantSize:      image.Pt(640, 200),
			wantOrigin:    image.Pt(180, 150),
		},
		{
			name:          "window smaller than target clamps to native scale",
			window:        WindowSize{300, 150},
			tileCount:     image.Pt(80, 25),
			pixelsPerTile: image.Pt(8, 8),
			wantScale:     1,
			wantSize:      image.Pt(640, 200),
			wantOrigin:    image.Pt(-170, -25),
		},
		{
			name:          "square grid in wide window",
			window:        WindowSize{1280, 720},
			tileCount:     image.Pt(10, 10),
			pixelsPerTile: image.Pt(8, 8),
			wantScale:     9, // sx=16, sy=9
			wantSize:      image.Pt(720, 720),
			wantOrigin:    image.Pt(280, 0),
		},
		{
			name:          "non-square tiles",
			window:        WindowSize{640, 480},
			tileCount:     image.Pt(40, 25),
			pixelsPerTile: image.Pt(8, 16),
			wantScale:     1, // target 320x400, sx=2, sy=1
			wantSize:      image.Pt(320, 400),
			wantOrigin:    image.Pt(160, 40),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := NewGridConfig(tt.tileCount, tt.pixelsPerTile)
			if err != nil {
				t.Fatalf("NewGridConfig: %v", err)
			}
			fit, err := Fit(tt.window, cfg)
			if err != nil {
				t.Fatalf("Fit: %v", err)
			}
			if fit.Scale != tt.wantScale {
				t.Errorf("scale = %d, want %d", fit.Scale, tt.wantScale)
			}
			if fit.ViewportSize != tt.wantSize {
				t.Errorf("viewport size = %v, want %v", fit.ViewportSize, tt.wantSize)
			}
			if fit.ViewportOrigin != tt.wantOrigin {
				t.Errorf("viewport origin = %v, want %v", fit.ViewportOrigin, tt.wantOrigin)
			}
		})
	}
}

func TestFitScaleFormula(t *testing.T) {
	cfg, err := NewGridConfig(image.Pt(80, 25), image.Pt(8, 8))
	if err != nil {
		t.Fatal(err)
	}
	target := cfg.TargetResolution()
	for _, window := range []WindowSize{
		{640, 200}, {641, 201}, {1280, 400}, {1920, 600},
		{3840, 2160}, {1000, 500}, {5000, 5000},
	} {
		fit, err := Fit(window, cfg)
		if err != nil {
			t.Fatalf("Fit(%v): %v", window, err)
		}
		want := min(window.Width/target.X, window.Height/target.Y)
		if want < 1 {
			want = 1
		}
		if fit.Scale != want {
			t.Errorf("Fit(%v).Scale = %d, want %d", window, fit.Scale, want)
		}
		if fit.Scale < 1 {
			t.Errorf("Fit(%v).Scale = %d, must be positive", window, fit.Scale)
		}
	}
}

func TestFitContainment(t *testing.T) {
	cfg, err := NewGridConfig(image.Pt(32, 18), image.Pt(16, 16))
	if err != nil {
		t.Fatal(err)
	}
	target := cfg.TargetResolution()
	for _, window := range []WindowSize{
		{512, 288}, {513, 288}, {1024, 576}, {1920, 1080}, {777, 333},
	} {
		if window.Width < target.X || window.Height < target.Y {
			t.Fatalf("test window %v smaller than target %v", window, target)
		}
		fit, err := Fit(window, cfg)
		if err != nil {
			t.Fatalf("Fit(%v): %v", window, err)
		}
		max := fit.ViewportOrigin.Add(fit.ViewportSize)
		if max.X > window.Width || max.Y > window.Height {
			t.Errorf("Fit(%v) viewport %v exceeds window", window, fit.Viewport())
		}
		if fit.ViewportOrigin.X < 0 || fit.ViewportOrigin.Y < 0 {
			t.Errorf("Fit(%v) origin %v negative for containable window", window, fit.ViewportOrigin)
		}
	}
}

func TestFitCentering(t *testing.T) {
	cfg, err := NewGridConfig(image.Pt(10, 10), image.Pt(8, 8))
	if err != nil {
		t.Fatal(err)
	}
	for _, window := range []WindowSize{{200, 120}, {201, 121}, {1000, 333}} {
		fit, err := Fit(window, cfg)
		if err != nil {
			t.Fatal(err)
		}
		wantX := (window.Width - fit.ViewportSize.X) / 2
		wantY := (window.Height - fit.ViewportSize.Y) / 2
		if fit.ViewportOrigin != image.Pt(wantX, wantY) {
			t.Errorf("centered origin for %v = %v, want (%d,%d)", window, fit.ViewportOrigin, wantX, wantY)
		}
	}

	corner := cfg.WithCentered(false)
	fit, err := Fit(WindowSize{1000, 333}, corner)
	if err != nil {
		t.Fatal(err)
	}
	if fit.ViewportOrigin != image.Pt(0, 0) {
		t.Errorf("non-centered origin = %v, want (0,0)", fit.ViewportOrigin)
	}
}

func TestFitSmallWindowOverflow(t *testing.T) {
	cfg, err := NewGridConfig(image.Pt(80, 25), image.Pt(8, 8))
	if err != nil {
		t.Fatal(err)
	}

	// smaller than target on x only
	fit, err := Fit(WindowSize{500, 600}, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if fit.Scale != 1 {
		t.Fatalf("scale = %d, want 1", fit.Scale)
	}
	if fit.Viewport().Max.X <= 500 {
		t.Errorf("viewport %v should overflow the window on x", fit.Viewport())
	}
	if fit.Viewport().Max.Y > 600 {
		t.Errorf("viewport %v should not overflow the window on y", fit.Viewport())
	}
}

func TestFitIdempotent(t *testing.T) {
	cfg, err := NewGridConfig(image.Pt(13, 7), image.Pt(12, 12))
	if err != nil {
		t.Fatal(err)
	}
	window := WindowSize{801, 403}
	first, err := Fit(window, cfg)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Fit(window, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("repeated fits differ: %+v vs %+v", first, second)
	}
	if Project(first, cfg) != Project(second, cfg) {
		t.Error("repeated projections differ")
	}
}

func TestFitInvalidWindow(t *testing.T) {
	cfg, err := NewGridConfig(image.Pt(8, 8), image.Pt(8, 8))
	if err != nil {
		t.Fatal(err)
	}
	for _, window := range []WindowSize{{0, 100}, {100, 0}, {-5, 100}, {100, -5}, {0, 0}} {
		_, err := Fit(window, cfg)
		if !errors.Is(err, ErrInvalidWindowSize) {
			t.Errorf("Fit(%v) error = %v, want ErrInvalidWindowSize", window, err)
		}
	}
}

func TestFitInvalidConfig(t *testing.T) {
	// hand-built config that bypassed NewGridConfig
	cfg := GridConfig{TileCount: image.Pt(0, 10), PixelsPerTile: image.Pt(8, 8)}
	_, err := Fit(WindowSize{640, 480}, cfg)
	if !errors.Is(err, ErrInvalidGridConfig) {
		t.Errorf("error = %v, want ErrInvalidGridConfig", err)
	}
}
