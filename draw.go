package tilecam

import "github.com/hajimehoshi/ebiten/v2"

// A utility function to draw a low resolution world image into the given
// window, magnified by the fit's integer scale with [ebiten.FilterNearest]
// so pixels stay crisp.
//
// The world image is expected to be the config's target resolution; the
// fit places it at the viewport origin, centered or corner-anchored
// depending on how the fit was computed. Any extra space in the window
// is left untouched, so whatever was on the background remains visible.
//
// Common usage:
//
//	fit, err := tilecam.Fit(window, cfg)
//	if err != nil { /* handle error */ }
//	tilecam.Draw(screen, worldImage, fit)
func Draw(window, world *ebiten.Image, fit FitResult) {
	var opts ebiten.DrawImageOptions
	opts.GeoM = CalcGeoM(window, fit)
	opts.Filter = ebiten.FilterNearest
	window.DrawImage(world, &opts)
}

// CalcGeoM returns the GeoM that projects a target-resolution image into
// the given window according to the fit. If you don't need the specific
// transform, see [Draw]() instead.
func CalcGeoM(window *ebiten.Image, fit FitResult) ebiten.GeoM {
	// translation to window origin, relevant for sub-images
	windowBounds := window.Bounds()
	tx := float64(windowBounds.Min.X + fit.ViewportOrigin.X)
	ty := float64(windowBounds.Min.Y + fit.ViewportOrigin.Y)

	var geom ebiten.GeoM
	if fit.Scale != 1 {
		geom.Scale(float64(fit.Scale), float64(fit.Scale))
	}
	geom.Translate(tx, ty)
	return geom
}
