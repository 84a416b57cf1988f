package tilecam

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// A Camera owns a [GridConfig] and caches the last computed [FitResult]
// and [ProjectionResult], recomputing them whenever the host reports a
// window resize. It's the stateful convenience layer over the pure
// [Fit]() and [Project]() functions, for hosts that don't want to manage
// the last-valid-result bookkeeping themselves.
//
// Usage mirrors how resize events usually arrive:
//   - Create a [NewCamera]() with a validated config.
//   - Call [Camera.OnResize]() from the host's layout or resize callback.
//   - Read [Camera.Fit]() and [Camera.Projection]() when rendering.
//
// A Camera is not safe for concurrent use; the host serializes resize
// notifications and rendering, which is the natural discipline in a
// game loop anyway.
type Camera struct {
	config     GridConfig
	lastWindow WindowSize
	fit        FitResult
	projection ProjectionResult
	hasResult  bool
}

// Creates a [Camera] for the given config. Returns [ErrInvalidGridConfig]
// if the config doesn't validate.
//
// The camera has no fit or projection until the first successful
// [Camera.OnResize]() call.
func NewCamera(config GridConfig) (*Camera, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Camera{config: config}, nil
}

// Recomputes the fit and projection for a new window size. Typically
// called once per resize notification.
//
// On [ErrInvalidWindowSize] the previously cached results are retained
// untouched, so a transient bad event (e.g. a minimized window reporting
// zero size) can simply be skipped by the host.
func (c *Camera) OnResize(width, height int) error {
	window := WindowSize{Width: width, Height: height}
	fit, err := Fit(window, c.config)
	if err != nil {
		return err
	}
	c.lastWindow = window
	c.fit = fit
	c.projection = Project(fit, c.config)
	c.hasResult = true
	return nil
}

// Returns the camera's current config.
func (c *Camera) Config() GridConfig { return c.config }

// Replaces the camera's config and, if a window size is already known,
// recomputes the cached results against it. Returns [ErrInvalidGridConfig]
// without changing anything if the new config doesn't validate.
func (c *Camera) SetConfig(config GridConfig) error {
	if err := config.Validate(); err != nil {
		return err
	}
	c.config = config
	if c.hasResult {
		return c.OnResize(c.lastWindow.Width, c.lastWindow.Height)
	}
	return nil
}

// Returns the last computed fit. The boolean is false if no successful
// [Camera.OnResize]() has happened yet.
func (c *Camera) Fit() (FitResult, bool) {
	return c.fit, c.hasResult
}

// Returns the last computed projection. The boolean is false if no
// successful [Camera.OnResize]() has happened yet.
func (c *Camera) Projection() (ProjectionResult, bool) {
	return c.projection, c.hasResult
}

// Refers to how much the view is scaled up based on the pixels per tile
// and tile count settings. Returns 0 before the first resize.
func (c *Camera) Zoom() int {
	if !c.hasResult {
		return 0
	}
	return c.fit.Scale
}

// Draws the world image into the window using the cached fit. See
// [Draw](). Does nothing before the first resize.
func (c *Camera) Draw(window, world *ebiten.Image) {
	if !c.hasResult {
		pkgLogger.Printf("WARNING: tilecam.Camera.Draw() called before any successful OnResize()")
		return
	}
	Draw(window, world, c.fit)
}

// --- coordinate conversions ---

// Converts a window pixel position (e.g. a cursor) to world coordinates.
// The boolean is false before the first resize, or when the position
// falls outside the viewport.
func (c *Camera) ScreenToWorld(screenX, screenY int) (x, y float64, ok bool) {
	if !c.hasResult {
		return 0, 0, false
	}
	pos := image.Pt(screenX, screenY)
	if !pos.In(c.fit.Viewport()) {
		return 0, 0, false
	}
	ppx := float64(c.projection.PixelsPerUnit.X)
	ppy := float64(c.projection.PixelsPerUnit.Y)
	dx := float64(pos.X - c.fit.ViewportOrigin.X)
	dy := float64(pos.Y - c.fit.ViewportOrigin.Y)
	// screen y grows downward, world y upward
	return c.projection.Left + dx/ppx, c.projection.Top - dy/ppy, true
}

// Converts world coordinates to a window pixel position. Positions
// outside the frustum convert without clamping. Returns (0,0) before
// the first resize.
func (c *Camera) WorldToScreen(x, y float64) (screenX, screenY int) {
	if !c.hasResult {
		return 0, 0
	}
	ppx := float64(c.projection.PixelsPerUnit.X)
	ppy := float64(c.projection.PixelsPerUnit.Y)
	sx := float64(c.fit.ViewportOrigin.X) + (x-c.projection.Left)*ppx
	sy := float64(c.fit.ViewportOrigin.Y) + (c.projection.Top-y)*ppy
	return int(math.Round(sx)), int(math.Round(sy))
}
