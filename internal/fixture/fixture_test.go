package fixture

import (
	"math"
	"testing"

	"github.com/alexiusacademia/gomoi/internal/inertia"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContour(t *testing.T) {
	d := DefaultDimensions()

	tests := []struct {
		name string
		typ  Type
		area float64
	}{
		{"square", Square, 21025},
		{"rectangle", Rectangle, 7975},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := d.Contour(tt.typ, inertia.Vertex{X: 10, Y: 20})
			require.NoError(t, err)
			assert.Len(t, c, 5)
			assert.True(t, c.Closed())
			assert.Equal(t, inertia.Vertex{X: 10, Y: 20}, c[0])
			assert.Equal(t, tt.area, inertia.Area(c))

			a, err := d.Area(tt.typ)
			require.NoError(t, err)
			assert.Equal(t, tt.area, a)
		})
	}
}

func TestContour_InvalidShapeCode(t *testing.T) {
	d := DefaultDimensions()

	for _, typ := range []Type{0, 3, -1} {
		_, err := d.Contour(typ, inertia.Vertex{})
		assert.ErrorIs(t, err, ErrInvalidShapeCode)

		_, err = Fixture{Index: 4, Type: typ}.Descriptor(d)
		assert.ErrorIs(t, err, ErrInvalidShapeCode)
		assert.Contains(t, err.Error(), "fixture 4")
	}
}

func TestContour_CustomDimensions(t *testing.T) {
	d := Dimensions{SquareSide: 10, RectWidth: 20, RectHeight: 5}

	w, h, err := d.Size(Rectangle)
	require.NoError(t, err)
	assert.Equal(t, 20.0, w)
	assert.Equal(t, 5.0, h)

	c, err := d.Contour(Rectangle, inertia.Vertex{})
	require.NoError(t, err)
	assert.Equal(t, inertia.Vertex{X: 20, Y: 5}, c[2])
}

func TestDescriptor(t *testing.T) {
	f := Fixture{
		Type:   Square,
		Origin: inertia.Vertex{X: 0, Y: 0},
		Center: inertia.Vertex{X: 72.5, Y: 72.5},
	}

	desc, err := f.Descriptor(DefaultDimensions())
	require.NoError(t, err)
	assert.Equal(t, 21025.0, desc.Area)
	assert.Equal(t, f.Center, desc.Barycenter)
	assert.Zero(t, desc.Angle)
	assert.InEpsilon(t, math.Pow(145, 4)/3, desc.Absolute.X, 1e-9)
}

func TestPairwiseDistances(t *testing.T) {
	fixtures := []Fixture{
		{Center: inertia.Vertex{X: 0, Y: 0}},
		{Center: inertia.Vertex{X: 3, Y: 4}},
		{Center: inertia.Vertex{X: -1, Y: 2}},
	}

	links := PairwiseDistances(fixtures)
	require.Len(t, links, 3)
	assert.Equal(t, Link{From: 0, To: 1, Distance: 7}, links[0])
	assert.Equal(t, Link{From: 0, To: 2, Distance: 3}, links[1])
	assert.Equal(t, Link{From: 1, To: 2, Distance: 6}, links[2])
	assert.Equal(t, 16.0, TotalDistance(links))

	assert.Empty(t, PairwiseDistances(fixtures[:1]))
}

func TestDistanceObjective(t *testing.T) {
	fixtures := []Fixture{
		{Type: Square, Origin: inertia.Vertex{X: 0, Y: 0}, Center: inertia.Vertex{X: 72.5, Y: 72.5}},
		{Type: Rectangle, Origin: inertia.Vertex{X: 0, Y: 200}, Center: inertia.Vertex{X: 72.5, Y: 227.5}},
		{Type: Square, Origin: inertia.Vertex{X: 300, Y: 0}, Center: inertia.Vertex{X: 372.5, Y: 72.5}},
	}

	obj, err := DistanceObjective(fixtures, DefaultDimensions())
	require.NoError(t, err)

	// x deltas: 0 + 300 + 300; y delta only for the pair sharing x = 0: 155
	// sizes: 290 + 200 + 290
	assert.Equal(t, 600.0+155+780, obj)

	_, err = DistanceObjective([]Fixture{{Type: 9}}, DefaultDimensions())
	assert.ErrorIs(t, err, ErrInvalidShapeCode)
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "square", Square.String())
	assert.Equal(t, "rectangle", Rectangle.String())
	assert.Equal(t, "type(7)", Type(7).String())
}
