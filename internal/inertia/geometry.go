package inertia

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Area computes the unsigned area of a closed contour using the shoelace
// formula. Degenerate contours yield 0.
func Area(c Contour) float64 {
	return math.Abs(signedArea(c))
}

func signedArea(c Contour) float64 {
	n := len(c)
	if n < 3 {
		return 0
	}

	var sum float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += r2.Cross(c[i], c[j])
	}

	return sum / 2
}

// Centroid returns the area-weighted centroid of a closed contour.
// A contour with zero area has no centroid and returns ErrZeroArea.
func Centroid(c Contour) (Vertex, error) {
	a := signedArea(c)
	if a == 0 {
		return Vertex{}, ErrZeroArea
	}

	var sumX, sumY float64
	n := len(c)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := r2.Cross(c[i], c[j])
		sumX += (c[i].X + c[j].X) * cross
		sumY += (c[i].Y + c[j].Y) * cross
	}

	return Vertex{X: sumX / (6 * a), Y: sumY / (6 * a)}, nil
}

// AbsoluteMoments computes the second moments of area of a closed contour
// about the global origin, reduced to a boundary sum over its edges.
//
// The absolute value is taken on each accumulator, so the sign of Jxy is lost.
func AbsoluteMoments(c Contour) Moments {
	var jx, jy, jxy float64

	for i := 0; i+1 < len(c); i++ {
		p, q := c[i], c[i+1]
		cross := r2.Cross(p, q)

		jx += (p.Y*p.Y + p.Y*q.Y + q.Y*q.Y) * cross
		jy += (p.X*p.X + p.X*q.X + q.X*q.X) * cross
		jxy += (p.X*q.Y + 2*p.X*p.Y + 2*q.X*q.Y + q.X*p.Y) * cross
	}

	return Moments{
		X:  math.Abs(jx) / 12,
		Y:  math.Abs(jy) / 12,
		XY: math.Abs(jxy) / 24,
	}
}

// Describe builds a descriptor from a contour, using its own centroid as the
// barycenter.
func Describe(c Contour, angle float64) (Descriptor, error) {
	g, err := Centroid(c)
	if err != nil {
		return Descriptor{}, err
	}
	return DescribeAt(c, g, angle), nil
}

// DescribeAt builds a descriptor from a contour and a barycenter supplied by
// the caller, e.g. a declared fixture center.
func DescribeAt(c Contour, barycenter Vertex, angle float64) Descriptor {
	return Descriptor{
		Area:       Area(c),
		Absolute:   AbsoluteMoments(c),
		Barycenter: barycenter,
		Angle:      angle,
	}
}
