package section

import (
	"fmt"

	"github.com/alexiusacademia/gomoi/internal/inertia"
)

// Section represents a planar polygon defined by vertices
// The section is defined in a coordinate system where:
// - Y-axis points upward
// - X-axis points to the right
// - Origin can be at any convenient location; moments are referenced to it
type Section struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	// Section geometry defined by vertices (in mm)
	// Either winding order is accepted; the closing vertex is optional
	// The section is assumed to be a simple polygon (no holes)
	Vertices []Point `json:"vertices"`

	// Orientation of the local axes relative to the global frame (radians)
	Angle float64 `json:"angle,omitempty"`
}

// Point represents a 2D coordinate
type Point struct {
	X float64 `json:"x"` // mm
	Y float64 `json:"y"` // mm
}

// SectionProperties holds calculated geometric properties
type SectionProperties struct {
	// Overall dimensions
	Width  float64 // Bounding box width (mm)
	Height float64 // Bounding box height (mm)
	Area   float64 // Gross area (mm²)

	// Centroid location
	CentroidX float64 // mm
	CentroidY float64 // mm

	// Bounding box
	MinX float64
	MaxX float64
	MinY float64
	MaxY float64

	// Second moments of area (mm⁴)
	Absolute    inertia.Moments          // about the origin
	Barycentric inertia.Moments          // about the centroid, rotated by Angle
	Principal   inertia.PrincipalMoments // about the centroid
}

// Validate checks if the section definition is valid
func (s *Section) Validate() error {
	if len(s.Contour()) < 4 {
		return &ValidationError{"section must have at least 3 vertices"}
	}
	for i := 1; i < len(s.Vertices)-1; i++ {
		if s.Vertices[i] == s.Vertices[0] {
			return &ValidationError{msg: fmt.Sprintf("vertex %d repeats the first vertex before the end", i+1)}
		}
	}
	return nil
}

// Contour returns the section outline as a closed contour
func (s *Section) Contour() inertia.Contour {
	c := make(inertia.Contour, 0, len(s.Vertices)+1)
	for _, v := range s.Vertices {
		c = append(c, inertia.Vertex{X: v.X, Y: v.Y})
	}
	return c.Close()
}

// ValidationError represents a section validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
