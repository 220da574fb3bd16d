package inertia

import "math"

// ShiftToCentroid applies the parallel-axis theorem, moving origin-referenced
// moments to axes through g for a region of the given area.
func ShiftToCentroid(m Moments, g Vertex, area float64) Moments {
	return Moments{
		X:  m.X - g.Y*g.Y*area,
		Y:  m.Y - g.X*g.X*area,
		XY: m.XY - g.X*g.Y*area,
	}
}

// Rotate rotates a second-moment tensor by angle (radians).
// Any real angle is accepted.
func Rotate(m Moments, angle float64) Moments {
	sin, cos := math.Sincos(angle)
	sin2, cos2 := sin*sin, cos*cos

	return Moments{
		X:  m.X*cos2 + m.Y*sin2 - 2*m.XY*sin*cos,
		Y:  m.X*sin2 + m.Y*cos2 + 2*m.XY*sin*cos,
		XY: (m.X-m.Y)*sin*cos + m.XY*(cos2-sin2),
	}
}

// BarycentricMoments returns the moments of a polygon about its own
// barycentric axes, rotated by the descriptor angle. With a zero angle this
// is the plain parallel-axis shift.
func BarycentricMoments(d Descriptor) Moments {
	shifted := ShiftToCentroid(d.Absolute, d.Barycenter, d.Area)
	if d.Angle == 0 {
		return shifted
	}
	return Rotate(shifted, d.Angle)
}

// Principal extracts the principal moments of a 2x2 symmetric inertia tensor
func Principal(m Moments) PrincipalMoments {
	mean := (m.X + m.Y) / 2
	radius := 0.5 * math.Sqrt((m.X-m.Y)*(m.X-m.Y)+4*m.XY*m.XY)

	return PrincipalMoments{
		I: mean - radius,
		J: mean + radius,
	}
}
