// Package fixture builds suction-cup footprints and the distance measures
// between placed fixtures.
package fixture

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gomoi/internal/inertia"
	"github.com/pkg/errors"
)

// Type is the fixture type code used by the placement solver
type Type int

const (
	Square    Type = 1
	Rectangle Type = 2
)

// ErrInvalidShapeCode is returned for a type code that is neither Square nor Rectangle
var ErrInvalidShapeCode = errors.New("invalid fixture type: must be 1 (square) or 2 (rectangle)")

func (t Type) String() string {
	switch t {
	case Square:
		return "square"
	case Rectangle:
		return "rectangle"
	}
	return fmt.Sprintf("type(%d)", int(t))
}

// Dimensions holds the footprint sizes of each fixture type (mm)
type Dimensions struct {
	SquareSide float64 `yaml:"square_side"`
	RectWidth  float64 `yaml:"rect_width"`
	RectHeight float64 `yaml:"rect_height"`
}

// DefaultDimensions returns the standard suction cup sizes
func DefaultDimensions() Dimensions {
	return Dimensions{
		SquareSide: 145,
		RectWidth:  145,
		RectHeight: 55,
	}
}

// Size returns the width and height of a fixture type
func (d Dimensions) Size(t Type) (w, h float64, err error) {
	switch t {
	case Square:
		return d.SquareSide, d.SquareSide, nil
	case Rectangle:
		return d.RectWidth, d.RectHeight, nil
	}
	return 0, 0, errors.Wrapf(ErrInvalidShapeCode, "got %d", int(t))
}

// Area returns the footprint area of a fixture type
func (d Dimensions) Area(t Type) (float64, error) {
	w, h, err := d.Size(t)
	if err != nil {
		return 0, err
	}
	return w * h, nil
}

// Contour builds the closed footprint anchored at its lower-left corner.
// Vertices run lower-left, upper-left, upper-right, lower-right.
func (d Dimensions) Contour(t Type, lowerLeft inertia.Vertex) (inertia.Contour, error) {
	w, h, err := d.Size(t)
	if err != nil {
		return nil, err
	}

	x, y := lowerLeft.X, lowerLeft.Y
	return inertia.Contour{
		{X: x, Y: y},
		{X: x, Y: y + h},
		{X: x + w, Y: y + h},
		{X: x + w, Y: y},
		{X: x, Y: y},
	}, nil
}

// Fixture is one placed suction cup
type Fixture struct {
	Index  int            // position in the solver output
	Type   Type
	Origin inertia.Vertex // lower-left corner of the footprint
	Center inertia.Vertex // declared center
}

// Contour returns the fixture footprint
func (f Fixture) Contour(d Dimensions) (inertia.Contour, error) {
	c, err := d.Contour(f.Type, f.Origin)
	if err != nil {
		return nil, errors.Wrapf(err, "fixture %d", f.Index)
	}
	return c, nil
}

// Descriptor builds the inertia descriptor of the fixture footprint.
// The barycenter is the declared center and the angle is zero.
func (f Fixture) Descriptor(d Dimensions) (inertia.Descriptor, error) {
	c, err := f.Contour(d)
	if err != nil {
		return inertia.Descriptor{}, err
	}
	return inertia.DescribeAt(c, f.Center, 0), nil
}

// Link is the Manhattan distance between two fixture centers
type Link struct {
	From     int // index into the fixture slice
	To       int
	Distance float64
}

// ManhattanDistance returns |ax-bx| + |ay-by|
func ManhattanDistance(a, b inertia.Vertex) float64 {
	return math.Abs(a.X-b.X) + math.Abs(a.Y-b.Y)
}

// PairwiseDistances returns the Manhattan distance between every pair of
// fixture centers, in (i, j) order with i < j.
func PairwiseDistances(fixtures []Fixture) []Link {
	var links []Link
	for i := range fixtures {
		for j := i + 1; j < len(fixtures); j++ {
			links = append(links, Link{
				From:     i,
				To:       j,
				Distance: ManhattanDistance(fixtures[i].Center, fixtures[j].Center),
			})
		}
	}
	return links
}

// TotalDistance sums the link distances
func TotalDistance(links []Link) float64 {
	var total float64
	for _, l := range links {
		total += l.Distance
	}
	return total
}

// DistanceObjective recomputes the placement solver's distance objective:
// signed center deltas over every pair i <= j (the y delta only counts for
// fixtures sharing an origin x) plus width + height of every fixture.
func DistanceObjective(fixtures []Fixture, d Dimensions) (float64, error) {
	var obj float64

	for i := range fixtures {
		for j := i; j < len(fixtures); j++ {
			a, b := fixtures[i], fixtures[j]
			obj += b.Center.X - a.Center.X
			if a.Origin.X == b.Origin.X {
				obj += b.Center.Y - a.Center.Y
			}
		}
	}

	for _, f := range fixtures {
		w, h, err := d.Size(f.Type)
		if err != nil {
			return 0, errors.Wrapf(err, "fixture %d", f.Index)
		}
		obj += w + h
	}

	return obj, nil
}
