package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/roam/engine"
	"github.com/lixenwraith/roam/vmath"
)

// Terminal cells are about twice as tall as wide
const cellAspect = 2.0

// Context provides frame state for renderers, passed by value
// Renderers read the session on the host goroutine between steps
type Context struct {
	Session *engine.Session

	// Screen dimensions, set by the orchestrator
	Width  int
	Height int

	// Rows reserved at the bottom for the HUD
	HUDRows int

	// Rows of the world view per world unit along z
	Zoom float64
}

// DefaultZoom shows roughly 24 units of depth on a 48-row terminal
const DefaultZoom = 2.0

// Projection maps ground-plane points to screen cells, top-down
// Forward (-z) is up; the view centers on the camera look target
type Projection struct {
	center mgl64.Vec2
	zoom   float64
	cols   int
	rows   int
}

// Projection builds the world view for this frame
func (c Context) Projection() Projection {
	zoom := c.Zoom
	if zoom <= 0 {
		zoom = DefaultZoom
	}
	rows := max(c.Height-c.HUDRows, 0)
	var center mgl64.Vec2
	if c.Session != nil {
		center = vmath.Planar(c.Session.Camera.LookTarget)
	}
	return Projection{center: center, zoom: zoom, cols: c.Width, rows: rows}
}

// ToCell returns the cell for a planar point and whether it is on screen
func (p Projection) ToCell(pt mgl64.Vec2) (int, int, bool) {
	col := int(math.Floor(float64(p.cols)/2 + (pt.X()-p.center.X())*p.zoom*cellAspect))
	row := int(math.Floor(float64(p.rows)/2 + (pt.Y()-p.center.Y())*p.zoom))
	return col, row, col >= 0 && col < p.cols && row >= 0 && row < p.rows
}

// ToWorld returns the planar point at the center of a cell
func (p Projection) ToWorld(col, row int) mgl64.Vec2 {
	x := (float64(col)+0.5-float64(p.cols)/2)/(p.zoom*cellAspect) + p.center.X()
	z := (float64(row)+0.5-float64(p.rows)/2)/p.zoom + p.center.Y()
	return mgl64.Vec2{x, z}
}

// Rows is the height of the world view
func (p Projection) Rows() int {
	return p.rows
}

func (p Projection) Cols() int {
	return p.cols
}
