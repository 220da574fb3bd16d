// Package layout analyzes a set of fixtures placed on a workpiece: overall
// center of gravity, combined and principal moments of inertia, and the
// distances between fixture centers.
package layout

import (
	"log/slog"

	"github.com/alexiusacademia/gomoi/internal/fixture"
	"github.com/alexiusacademia/gomoi/internal/inertia"
	"github.com/pkg/errors"
)

// FixtureResult holds the per-fixture analysis
type FixtureResult struct {
	Fixture     fixture.Fixture
	Contour     inertia.Contour
	Descriptor  inertia.Descriptor
	Barycentric inertia.Moments // about the fixture's own barycenter
}

// Report holds the results of a layout analysis
type Report struct {
	Fixtures []FixtureResult

	// Aggregates
	TotalArea           float64
	CenterOfGravity     inertia.Vertex
	CombinedAbsolute    inertia.Moments
	CombinedBarycentric inertia.Moments // about CenterOfGravity
	Principal           inertia.PrincipalMoments

	// Distances between fixture centers
	Links             []fixture.Link
	ManhattanDistance float64
	DistanceObjective float64
}

// Analyze runs the inertia analysis over the selected fixtures.
// It fails with inertia.ErrZeroArea when no fixture contributes area.
func Analyze(fixtures []fixture.Fixture, dims fixture.Dimensions) (*Report, error) {
	report := &Report{}

	collection := make(inertia.Collection, 0, len(fixtures))
	for _, f := range fixtures {
		desc, err := f.Descriptor(dims)
		if err != nil {
			return nil, err
		}
		c, err := f.Contour(dims)
		if err != nil {
			return nil, err
		}
		fr := FixtureResult{
			Fixture:     f,
			Contour:     c,
			Descriptor:  desc,
			Barycentric: inertia.BarycentricMoments(desc),
		}
		slog.Debug("fixture described",
			"index", f.Index, "type", f.Type, "area", desc.Area,
			"jx", desc.Absolute.X, "jy", desc.Absolute.Y, "jxy", desc.Absolute.XY)

		report.Fixtures = append(report.Fixtures, fr)
		collection = append(collection, desc)
	}

	g, err := inertia.CenterOfGravity(collection)
	if err != nil {
		return nil, errors.Wrap(err, "could not analyze layout")
	}

	report.TotalArea = inertia.TotalArea(collection)
	report.CenterOfGravity = g
	report.CombinedAbsolute = inertia.CombinedAbsoluteMoments(collection)
	report.CombinedBarycentric = inertia.CombinedBarycentricMoments(collection, g)
	report.Principal = inertia.Principal(report.CombinedBarycentric)
	slog.Debug("layout combined",
		"fixtures", len(collection), "area", report.TotalArea,
		"xg", g.X, "yg", g.Y, "i", report.Principal.I, "j", report.Principal.J)

	report.Links = fixture.PairwiseDistances(fixtures)
	report.ManhattanDistance = fixture.TotalDistance(report.Links)
	report.DistanceObjective, err = fixture.DistanceObjective(fixtures, dims)
	if err != nil {
		return nil, err
	}

	return report, nil
}
