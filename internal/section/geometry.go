package section

import (
	"encoding/json"
	"math"
	"os"

	"github.com/alexiusacademia/gomoi/internal/inertia"
	"github.com/pkg/errors"
)

// LoadFromFile loads a section definition from a JSON file
func LoadFromFile(filepath string) (*Section, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, errors.Wrap(err, "could not read section file")
	}

	var section Section
	if err := json.Unmarshal(data, &section); err != nil {
		return nil, errors.Wrap(err, "could not decode section")
	}

	if err := section.Validate(); err != nil {
		return nil, err
	}

	return &section, nil
}

// Descriptor returns the inertia descriptor of the section.
// A degenerate section has no centroid and returns inertia.ErrZeroArea.
func (s *Section) Descriptor() (inertia.Descriptor, error) {
	return inertia.Describe(s.Contour(), s.Angle)
}

// CalculateProperties computes geometric properties of the section
func (s *Section) CalculateProperties() (*SectionProperties, error) {
	props := &SectionProperties{}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	// Find bounding box
	props.MinX, props.MaxX = s.Vertices[0].X, s.Vertices[0].X
	props.MinY, props.MaxY = s.Vertices[0].Y, s.Vertices[0].Y

	for _, v := range s.Vertices {
		props.MinX = math.Min(props.MinX, v.X)
		props.MaxX = math.Max(props.MaxX, v.X)
		props.MinY = math.Min(props.MinY, v.Y)
		props.MaxY = math.Max(props.MaxY, v.Y)
	}

	props.Width = props.MaxX - props.MinX
	props.Height = props.MaxY - props.MinY

	desc, err := s.Descriptor()
	if err != nil {
		return nil, err
	}

	props.Area = desc.Area
	props.CentroidX, props.CentroidY = desc.Barycenter.X, desc.Barycenter.Y
	props.Absolute = desc.Absolute
	props.Barycentric = inertia.BarycentricMoments(desc)
	props.Principal = inertia.Principal(props.Barycentric)

	return props, nil
}
