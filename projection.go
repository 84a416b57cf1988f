package tilecam

import (
	"image"
	"math"
)

// A ProjectionResult holds orthographic frustum extents in world units,
// derived from a [FitResult] and the config's world space mode.
//
// In [WorldUnits] mode the frustum always spans exactly the tile count,
// regardless of scale. In [WorldPixels] mode it spans the viewport size
// divided by the scale, so doubling the scale halves the visible world
// span.
type ProjectionResult struct {
	Left   float64
	Right  float64
	Bottom float64
	Top    float64
	Near   float64
	Far    float64

	// Physical pixels per world unit, per axis. In [WorldUnits] mode
	// this is pixels per tile multiplied by the scale; in [WorldPixels]
	// mode it's the scale itself on both axes.
	PixelsPerUnit image.Point
}

// Derives orthographic projection extents from a fit.
//
// When the config is centered, the frustum is centered on the world
// origin. Odd spans can't be split evenly while keeping the edges on
// whole units, so the extra half unit always goes to the positive side:
// a span of 25 becomes [-12, +13]. Keeping the edges on whole units
// keeps them on the pixel grid, which is what lets sprites aligned to
// the grid render without seams. When the config is not centered, the
// frustum starts at the origin and extends to the positive side.
//
// Project is a total function: it never fails on a [FitResult] produced
// by [Fit]().
func Project(fit FitResult, config GridConfig) ProjectionResult {
	var spanX, spanY float64
	var pixelsPerUnit image.Point
	switch config.WorldSpace {
	case WorldPixels:
		spanX = float64(fit.ViewportSize.X) / float64(fit.Scale)
		spanY = float64(fit.ViewportSize.Y) / float64(fit.Scale)
		pixelsPerUnit = image.Pt(fit.Scale, fit.Scale)
	default: // WorldUnits
		spanX = float64(config.TileCount.X)
		spanY = float64(config.TileCount.Y)
		pixelsPerUnit = image.Pt(
			config.PixelsPerTile.X*fit.Scale,
			config.PixelsPerTile.Y*fit.Scale,
		)
	}

	left, right := splitSpan(spanX, config.Centered)
	bottom, top := splitSpan(spanY, config.Centered)
	return ProjectionResult{
		Left:          left,
		Right:         right,
		Bottom:        bottom,
		Top:           top,
		Near:          config.DepthRange.Near,
		Far:           config.DepthRange.Far,
		PixelsPerUnit: pixelsPerUnit,
	}
}

// Splits a world span into low and high frustum edges. Centered splits
// keep both edges on whole units, biasing odd spans to the positive side.
func splitSpan(span float64, centered bool) (low, high float64) {
	if !centered {
		return 0, span
	}
	low = -math.Floor(span / 2)
	return low, low + span
}

// Returns the world-unit width of the frustum.
func (p ProjectionResult) Width() float64 { return p.Right - p.Left }

// Returns the world-unit height of the frustum.
func (p ProjectionResult) Height() float64 { return p.Top - p.Bottom }

// Snaps a world position to the logical pixel grid. Sprites placed at
// snapped positions have their edges on physical pixel boundaries at
// the current scale, avoiding shimmer during movement.
func (p ProjectionResult) SnapToPixelGrid(x, y float64) (float64, float64) {
	ppx, ppy := float64(p.PixelsPerUnit.X), float64(p.PixelsPerUnit.Y)
	return math.Round(x*ppx) / ppx, math.Round(y*ppy) / ppy
}

// Returns the projection as a column-major 4x4 orthographic matrix,
// for consumers feeding the extents to a GL-style pipeline.
func (p ProjectionResult) Matrix() [16]float64 {
	rl := 1 / (p.Right - p.Left)
	tb := 1 / (p.Top - p.Bottom)
	fn := 1 / (p.Far - p.Near)
	return [16]float64{
		2 * rl, 0, 0, 0,
		0, 2 * tb, 0, 0,
		0, 0, -2 * fn, 0,
		-(p.Right + p.Left) * rl, -(p.Top + p.Bottom) * tb, -(p.Far + p.Near) * fn, 1,
	}
}
