package tilecam

import "image"

// A FitResult describes how a tile grid fits into a window: the integer
// scale factor applied to the grid's target resolution, and the resulting
// viewport rectangle in physical pixel coordinates.
//
// FitResults are produced by [Fit]() and consumed by [Project](), [Draw]()
// and [CalcGeoM]().
type FitResult struct {
	// Number of physical pixels per logical pixel. Always >= 1.
	Scale int

	// Top-left corner of the viewport within the window.
	ViewportOrigin image.Point

	// Size of the viewport in physical pixels. This is the target
	// resolution multiplied by Scale, so it can exceed the window
	// size when the window is smaller than the target resolution.
	ViewportSize image.Point
}

// Returns the viewport as an [image.Rectangle] in window coordinates.
func (r FitResult) Viewport() image.Rectangle {
	return image.Rectangle{
		Min: r.ViewportOrigin,
		Max: r.ViewportOrigin.Add(r.ViewportSize),
	}
}

// Computes the best integer scale and viewport for displaying the config's
// tile grid inside the given window.
//
// The scale is the largest integer such that the grid's target resolution,
// multiplied by it, still fits the window on both axes. Scaling is always
// uniform, so pixels stay square even when the window's aspect ratio
// doesn't match the grid's.
//
// The scale never goes below 1: pixel art is only ever magnified, never
// minified. When the window is smaller than the target resolution, the
// viewport is computed at scale 1 and exceeds the window bounds on the
// small axes; callers presenting such a viewport must clip it. See
// [FitResult].
//
// Fit is pure and deterministic. It fails only with [ErrInvalidWindowSize]
// for non-positive window dimensions, or [ErrInvalidGridConfig] if the
// config bypassed [NewGridConfig]() validation.
func Fit(window WindowSize, config GridConfig) (FitResult, error) {
	if err := window.Validate(); err != nil {
		return FitResult{}, err
	}
	if err := config.Validate(); err != nil {
		return FitResult{}, err
	}

	target := config.TargetResolution()
	sx := window.Width / target.X
	sy := window.Height / target.Y
	scale := min(sx, sy)
	if scale < 1 {
		scale = 1
	}

	size := image.Pt(target.X*scale, target.Y*scale)
	var origin image.Point
	if config.Centered {
		// integer division keeps the origin on whole physical pixels
		origin = image.Pt((window.Width-size.X)/2, (window.Height-size.Y)/2)
	}
	return FitResult{
		Scale:          scale,
		ViewportOrigin: origin,
		ViewportSize:   size,
	}, nil
}
