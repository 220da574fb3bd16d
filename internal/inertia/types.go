// Package inertia computes area, second moments of area, barycenters and
// principal moments of planar polygons, and combines them across a set of
// polygons.
//
// Every function is a pure function of its arguments. Descriptors passed to a
// combination must share one coordinate frame; this is not checked.
package inertia

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r2"
)

// Vertex represents a 2D coordinate
type Vertex = r2.Vec

// ErrZeroArea is returned when an area-weighted average is requested over a
// total area of exactly zero.
var ErrZeroArea = errors.New("total area is zero, cannot compute center of gravity")

// Contour is a closed polygon boundary: the first vertex is repeated as the
// last one. Winding order may be either direction.
type Contour []Vertex

// Closed reports whether the contour repeats its first vertex at the end
func (c Contour) Closed() bool {
	return len(c) > 1 && c[0] == c[len(c)-1]
}

// Close returns a copy of the contour with the first vertex appended when the
// contour is not already closed.
func (c Contour) Close() Contour {
	out := make(Contour, len(c), len(c)+1)
	copy(out, c)
	if len(c) > 0 && !c.Closed() {
		out = append(out, c[0])
	}
	return out
}

// Reverse returns the contour traversed in the opposite direction
func (c Contour) Reverse() Contour {
	out := make(Contour, len(c))
	for i, v := range c {
		out[len(c)-1-i] = v
	}
	return out
}

// Moments holds a second-moment triple. About the origin the fields are
// (Jx, Jy, Jxy); about a barycenter they are (I, J, IJ).
type Moments struct {
	X  float64 // Jx or I
	Y  float64 // Jy or J
	XY float64 // Jxy or IJ
}

// Add returns the component-wise sum
func (m Moments) Add(o Moments) Moments {
	return Moments{X: m.X + o.X, Y: m.Y + o.Y, XY: m.XY + o.XY}
}

// Descriptor summarizes one polygon's mechanical properties.
// Absolute and Barycenter are expressed in the frame of the source contour.
type Descriptor struct {
	Area       float64 // non-negative
	Absolute   Moments // origin-referenced moments
	Barycenter Vertex
	Angle      float64 // radians, orientation of the local axes
}

// Collection is an unordered set of descriptors
type Collection []Descriptor

// PrincipalMoments holds the two principal second moments, I <= J
type PrincipalMoments struct {
	I float64
	J float64
}

// Sum returns I + J
func (p PrincipalMoments) Sum() float64 {
	return p.I + p.J
}
