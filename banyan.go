package banyan

import "fmt"

// Subdivision is the number of child slots per axis in every tile. Each
// tile splits into a Subdivision×Subdivision grid of children, and one
// zoom-level step changes the meaning of a world unit by this factor.
const Subdivision = 5

// Vec2 is a 2D vector used for positions, offsets, and deltas
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns the component-wise difference v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v with both components multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin
// at the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Extent is the size of one tile in world units at zoom 1. It is fixed
// when a document is created (typically from the initial viewport size)
// and never changes afterward; it is the single scale anchor the whole
// infinite tree is built from. Every tile at every depth has the same
// extent in its own local coordinates — only the meaning of a world unit
// changes by Subdivision per depth step.
type Extent struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// GridAddress identifies one of the Subdivision×Subdivision child slots
// of a tile. Col and Row are each in [0, Subdivision).
type GridAddress struct {
	Col, Row int
}

// CenterAddress is the middle slot of the grid, (2,2). A tile placed
// into a freshly grown parent always lands here.
var CenterAddress = GridAddress{Subdivision / 2, Subdivision / 2}

// InRange reports whether both axes lie in [0, Subdivision).
func (a GridAddress) InRange() bool {
	return a.Col >= 0 && a.Col < Subdivision &&
		a.Row >= 0 && a.Row < Subdivision
}

// wrapped returns the address with both axes wrapped into range by
// modulo, handling negatives.
func (a GridAddress) wrapped() GridAddress {
	return GridAddress{
		Col: ((a.Col % Subdivision) + Subdivision) % Subdivision,
		Row: ((a.Row % Subdivision) + Subdivision) % Subdivision,
	}
}

// String returns the address in "col,row" form, the same form used by
// the persisted tree encoding.
func (a GridAddress) String() string {
	return fmt.Sprintf("%d,%d", a.Col, a.Row)
}

// Direction is one of the four cardinal directions used for same-depth
// neighbor resolution. East is +col, South is +row (Y down, matching
// screen space).
type Direction uint8

const (
	East  Direction = iota // +col
	West                   // -col
	North                  // -row (up on screen)
	South                  // +row (down on screen)
)

// delta returns the (col, row) step for the direction.
func (d Direction) delta() (dc, dr int) {
	switch d {
	case East:
		return 1, 0
	case West:
		return -1, 0
	case North:
		return 0, -1
	default:
		return 0, 1
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case East:
		return West
	case West:
		return East
	case North:
		return South
	default:
		return North
	}
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case East:
		return "east"
	case West:
		return "west"
	case North:
		return "north"
	default:
		return "south"
	}
}
