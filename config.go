package tilecam

import (
	"errors"
	"image"
)

// A collection of validation errors defined by this package. [NewGridConfig]()
// can only fail with ErrInvalidGridConfig, and [Fit]() with ErrInvalidWindowSize.
var (
	ErrInvalidGridConfig = errors.New("grid config requires tile count and pixels per tile components >= 1")
	ErrInvalidWindowSize = errors.New("window size requires positive width and height")
)

// World space determines what one world unit means for the projection.
// It can be [WorldUnits] or [WorldPixels].
type WorldSpace uint8

// Returns a string representation of the world space
// ("WorldUnits", "WorldPixels", "Unknown").
func (s WorldSpace) String() string {
	switch s {
	case WorldUnits:
		return "WorldUnits"
	case WorldPixels:
		return "WorldPixels"
	default:
		return "Unknown"
	}
}

const (
	// One world unit equals one tile.
	WorldUnits WorldSpace = iota

	// One world unit equals one physical pixel at scale 1.
	WorldPixels
)

// Default depth range, matching the common convention for 2D
// orthographic cameras.
const (
	DefaultNear = 0.0
	DefaultFar  = 1000.0
)

// A DepthRange holds the near and far planes passed through to the
// orthographic projection.
type DepthRange struct {
	Near float64
	Far  float64
}

// A GridConfig describes the logical tile grid a camera should display:
// how many tiles, how many pixels each tile takes at scale 1, and how the
// resulting viewport and projection are laid out.
//
// GridConfigs are value types. Create one with [NewGridConfig]() and derive
// variants with the With* methods:
//
//	cfg, err := tilecam.NewGridConfig(image.Pt(80, 25), image.Pt(8, 8))
//	if err != nil { /* handle error */ }
//	cfg = cfg.WithWorldSpace(tilecam.WorldPixels).WithCentered(false)
type GridConfig struct {
	TileCount     image.Point
	PixelsPerTile image.Point
	WorldSpace    WorldSpace
	DepthRange    DepthRange
	Centered      bool
}

// Creates a [GridConfig] for the given tile count and pixels per tile,
// with defaults for everything else: centered viewport, [WorldUnits]
// world space and a [DefaultNear]/[DefaultFar] depth range.
//
// Returns [ErrInvalidGridConfig] if any component of tileCount or
// pixelsPerTile is below 1.
func NewGridConfig(tileCount, pixelsPerTile image.Point) (GridConfig, error) {
	config := GridConfig{
		TileCount:     tileCount,
		PixelsPerTile: pixelsPerTile,
		WorldSpace:    WorldUnits,
		DepthRange:    DepthRange{Near: DefaultNear, Far: DefaultFar},
		Centered:      true,
	}
	if err := config.Validate(); err != nil {
		return GridConfig{}, err
	}
	return config, nil
}

// Like [NewGridConfig](), but deriving the tile count from a target
// resolution in pixels. The resulting camera will be scaled to be as
// close as possible to the given resolution.
func NewGridConfigForResolution(pixelsPerTile, resolution image.Point) (GridConfig, error) {
	if pixelsPerTile.X < 1 || pixelsPerTile.Y < 1 {
		return GridConfig{}, ErrInvalidGridConfig
	}
	tileCount := image.Pt(resolution.X/pixelsPerTile.X, resolution.Y/pixelsPerTile.Y)
	return NewGridConfig(tileCount, pixelsPerTile)
}

// Returns [ErrInvalidGridConfig] if any component of the tile count or
// pixels per tile is below 1, nil otherwise.
func (c GridConfig) Validate() error {
	if c.TileCount.X < 1 || c.TileCount.Y < 1 {
		return ErrInvalidGridConfig
	}
	if c.PixelsPerTile.X < 1 || c.PixelsPerTile.Y < 1 {
		return ErrInvalidGridConfig
	}
	return nil
}

// Returns the target resolution in pixels at scale 1, which is
// the tile count multiplied by the pixels per tile on each axis.
func (c GridConfig) TargetResolution() image.Point {
	return image.Pt(c.TileCount.X*c.PixelsPerTile.X, c.TileCount.Y*c.PixelsPerTile.Y)
}

// Returns a copy of the config with the viewport centered in the window
// or anchored to its top-left corner. Defaults to centered.
func (c GridConfig) WithCentered(centered bool) GridConfig {
	c.Centered = centered
	return c
}

// Returns a copy of the config with the given world space mode.
func (c GridConfig) WithWorldSpace(worldSpace WorldSpace) GridConfig {
	c.WorldSpace = worldSpace
	return c
}

// Returns a copy of the config with the given near and far planes.
func (c GridConfig) WithDepthRange(near, far float64) GridConfig {
	c.DepthRange = DepthRange{Near: near, Far: far}
	return c
}

// A WindowSize is the current size of the host window in physical pixels.
// It's supplied fresh on every [Fit]() call; the package never stores it.
type WindowSize struct {
	Width  int
	Height int
}

// Returns [ErrInvalidWindowSize] if width or height is not positive,
// nil otherwise.
func (w WindowSize) Validate() error {
	if w.Width <= 0 || w.Height <= 0 {
		return ErrInvalidWindowSize
	}
	return nil
}
