package tilecam

import (
	"image"
	"math"
)

// A TileGrid maps between tile cell indices and world-unit positions for
// a config's tile grid, using the same layout as the [WorldUnits]
// projection: centered grids put the origin near the middle of the grid
// (odd counts biased to the positive side, like [Project]()), while
// non-centered grids start at the origin.
//
// Cell indices start at (0,0) in the bottom-left corner of the grid.
type TileGrid struct {
	tileCount image.Point
	originX   float64
	originY   float64
}

// Creates a [TileGrid] for the config's tile count and centering mode.
// Only meaningful in [WorldUnits] world space, where one world unit is
// one tile.
func NewTileGrid(config GridConfig) TileGrid {
	originX, _ := splitSpan(float64(config.TileCount.X), config.Centered)
	originY, _ := splitSpan(float64(config.TileCount.Y), config.Centered)
	return TileGrid{
		tileCount: config.TileCount,
		originX:   originX,
		originY:   originY,
	}
}

// Returns the number of tiles on each axis.
func (g TileGrid) TileCount() image.Point { return g.tileCount }

// Returns whether the given cell indices fall inside the grid.
func (g TileGrid) Contains(col, row int) bool {
	return col >= 0 && col < g.tileCount.X && row >= 0 && row < g.tileCount.Y
}

// Transforms a world position to the cell containing it. The boolean is
// false for positions outside the grid.
func (g TileGrid) ToCell(x, y float64) (col, row int, ok bool) {
	col = int(math.Floor(x - g.originX))
	row = int(math.Floor(y - g.originY))
	return col, row, g.Contains(col, row)
}

// Snaps a world position to the bottom-left corner of its cell. Positions
// outside the grid snap to the infinite extension of the cell lattice.
func (g TileGrid) Snap(x, y float64) (float64, float64) {
	return g.originX + math.Floor(x-g.originX), g.originY + math.Floor(y-g.originY)
}

// Transforms cell indices to the bottom-left corner of the cell in
// world units.
func (g TileGrid) CellMin(col, row int) (float64, float64) {
	return g.originX + float64(col), g.originY + float64(row)
}

// Transforms cell indices to the center point of the cell in world units.
func (g TileGrid) CellCenter(col, row int) (float64, float64) {
	x, y := g.CellMin(col, row)
	return x + 0.5, y + 0.5
}
