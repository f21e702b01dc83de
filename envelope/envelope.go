// Package envelope provides the axis-aligned bounding rectangle type shared
// by the rbush and flatbush packages.
package envelope

import (
	"fmt"
	"math"
)

// Envelope is a closed axis-aligned bounding rectangle over real-valued
// coordinates. The zero value is the degenerate point envelope at the
// origin; use Init to obtain the canonical empty envelope.
type Envelope struct {
	MinX, MinY, MaxX, MaxY float64
}

// Empty is the canonical null envelope: it intersects nothing, contains
// nothing, and has zero area and margin. ExpandToInclude treats it as the
// identity element.
var Empty = Envelope{
	MinX: math.Inf(1),
	MinY: math.Inf(1),
	MaxX: math.Inf(-1),
	MaxY: math.Inf(-1),
}

// Of returns the smallest envelope containing the two corner points
// (x1, y1) and (x2, y2), in either order.
func Of(x1, y1, x2, y2 float64) Envelope {
	e := Envelope{MinX: x1, MinY: y1, MaxX: x1, MaxY: y1}
	e.ExpandToIncludeXY(x2, y2)
	return e
}

// Init resets e to the canonical empty envelope.
func (e *Envelope) Init() {
	*e = Empty
}

// IsEmpty reports whether e is the null envelope, i.e. whether it has no
// valid extent along either axis.
func (e Envelope) IsEmpty() bool {
	return e.MinX > e.MaxX || e.MinY > e.MaxY
}

// Width returns the envelope's extent along the X axis, or zero for the
// empty envelope.
func (e Envelope) Width() float64 {
	if e.IsEmpty() {
		return 0
	}
	return e.MaxX - e.MinX
}

// Height returns the envelope's extent along the Y axis, or zero for the
// empty envelope.
func (e Envelope) Height() float64 {
	if e.IsEmpty() {
		return 0
	}
	return e.MaxY - e.MinY
}

// Area returns the envelope's area, or zero for the empty envelope.
func (e Envelope) Area() float64 {
	if e.IsEmpty() {
		return 0
	}
	return e.Width() * e.Height()
}

// Margin returns the envelope's half-perimeter, (width + height), or zero
// for the empty envelope. Margin is used as the split-axis quality metric
// in the R*-style node split.
func (e Envelope) Margin() float64 {
	if e.IsEmpty() {
		return 0
	}
	return e.Width() + e.Height()
}

// Centre returns the midpoint of e. The result is NaN in both coordinates
// for the empty envelope.
func (e Envelope) Centre() (x, y float64) {
	return (e.MinX + e.MaxX) / 2, (e.MinY + e.MaxY) / 2
}

// Intersects reports whether e and other share at least one point. The
// empty envelope intersects nothing, including itself.
func (e Envelope) Intersects(other Envelope) bool {
	if e.IsEmpty() || other.IsEmpty() {
		return false
	}
	return e.MinX <= other.MaxX && other.MinX <= e.MaxX &&
		e.MinY <= other.MaxY && other.MinY <= e.MaxY
}

// Contains reports whether other is entirely within e. The empty envelope
// contains nothing and is contained by nothing.
func (e Envelope) Contains(other Envelope) bool {
	if e.IsEmpty() || other.IsEmpty() {
		return false
	}
	return e.MinX <= other.MinX && other.MaxX <= e.MaxX &&
		e.MinY <= other.MinY && other.MaxY <= e.MaxY
}

// Intersection returns the overlap rectangle of e and other, or the empty
// envelope if they are disjoint.
func (e Envelope) Intersection(other Envelope) Envelope {
	if !e.Intersects(other) {
		return Empty
	}
	return Envelope{
		MinX: math.Max(e.MinX, other.MinX),
		MinY: math.Max(e.MinY, other.MinY),
		MaxX: math.Min(e.MaxX, other.MaxX),
		MaxY: math.Min(e.MaxY, other.MaxY),
	}
}

// ExpandToInclude mutates e in place to the smallest envelope containing
// both e and other. An empty operand on either side is the identity.
func (e *Envelope) ExpandToInclude(other Envelope) {
	if other.IsEmpty() {
		return
	}
	if e.IsEmpty() {
		*e = other
		return
	}
	e.MinX = math.Min(e.MinX, other.MinX)
	e.MinY = math.Min(e.MinY, other.MinY)
	e.MaxX = math.Max(e.MaxX, other.MaxX)
	e.MaxY = math.Max(e.MaxY, other.MaxY)
}

// ExpandToIncludeXY mutates e in place to the smallest envelope containing
// both e and the point (x, y).
func (e *Envelope) ExpandToIncludeXY(x, y float64) {
	e.ExpandToInclude(Envelope{MinX: x, MinY: y, MaxX: x, MaxY: y})
}

// Union returns the smallest envelope containing both e and other, leaving
// both operands unmodified.
func Union(e, other Envelope) Envelope {
	e.ExpandToInclude(other)
	return e
}

// EnlargementOf returns the increase in area that e would undergo if
// expanded to include other. It is the primary score used by RBush to
// choose a subtree during insert.
func (e Envelope) EnlargementOf(other Envelope) float64 {
	return Union(e, other).Area() - e.Area()
}

// String renders e as "[minX,minY,maxX,maxY]" using %g formatting.
func (e Envelope) String() string {
	return fmt.Sprintf("[%g,%g,%g,%g]", e.MinX, e.MinY, e.MaxX, e.MaxY)
}
