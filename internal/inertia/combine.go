package inertia

// TotalArea returns the sum of the descriptor areas
func TotalArea(c Collection) float64 {
	var total float64
	for _, d := range c {
		total += d.Area
	}
	return total
}

// CenterOfGravity computes the area-weighted centroid of the collection.
// It returns ErrZeroArea when the total area is exactly zero.
func CenterOfGravity(c Collection) (Vertex, error) {
	var total, sumX, sumY float64

	for _, d := range c {
		total += d.Area
		sumX += d.Area * d.Barycenter.X
		sumY += d.Area * d.Barycenter.Y
	}

	if total == 0 {
		return Vertex{}, ErrZeroArea
	}

	return Vertex{X: sumX / total, Y: sumY / total}, nil
}

// CombinedAbsoluteMoments sums the absolute moments component-wise.
//
// Since AbsoluteMoments drops the sign of Jxy, the XY component is a sum of
// magnitudes rather than a true superposition.
func CombinedAbsoluteMoments(c Collection) Moments {
	var total Moments
	for _, d := range c {
		total = total.Add(d.Absolute)
	}
	return total
}

// CombinedBarycentricMoments shifts the combined absolute moments once, at
// the aggregate level, to axes through the global barycenter g.
func CombinedBarycentricMoments(c Collection, g Vertex) Moments {
	return ShiftToCentroid(CombinedAbsoluteMoments(c), g, TotalArea(c))
}

// CombinedBarycentricMomentsAuto is CombinedBarycentricMoments with the
// global barycenter computed from the collection itself.
func CombinedBarycentricMomentsAuto(c Collection) (Moments, Vertex, error) {
	g, err := CenterOfGravity(c)
	if err != nil {
		return Moments{}, Vertex{}, err
	}
	return CombinedBarycentricMoments(c, g), g, nil
}

// CombinedPrincipalMoments returns the principal moments of the collection
// about axes through g.
func CombinedPrincipalMoments(c Collection, g Vertex) PrincipalMoments {
	return Principal(CombinedBarycentricMoments(c, g))
}
