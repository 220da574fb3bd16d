package section

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/gomoi/internal/inertia"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromFile_TSection(t *testing.T) {
	sec, err := LoadFromFile(filepath.Join("testdata", "t-section.json"))
	require.NoError(t, err)
	assert.Equal(t, "T-Section", sec.Name)

	props, err := sec.CalculateProperties()
	require.NoError(t, err)

	assert.Equal(t, 900.0, props.Width)
	assert.Equal(t, 500.0, props.Height)
	assert.InDelta(t, 210000.0, props.Area, 1e-6)
	assert.InDelta(t, 150.0, props.CentroidX, 1e-9)
	assert.InDelta(t, 64.5e6/210000, props.CentroidY, 1e-9)

	yc := props.CentroidY
	wantI := 300*math.Pow(400, 3)/12 + 120000*math.Pow(200-yc, 2) +
		900*math.Pow(100, 3)/12 + 90000*math.Pow(450-yc, 2)
	wantJ := 400*math.Pow(300, 3)/12 + 100*math.Pow(900, 3)/12

	assert.InEpsilon(t, wantI, props.Barycentric.X, 1e-9)
	assert.InEpsilon(t, wantJ, props.Barycentric.Y, 1e-9)
	assert.InDelta(t, 0, props.Barycentric.XY, 1)
	assert.InEpsilon(t, wantI, props.Principal.I, 1e-9)
	assert.InEpsilon(t, wantJ, props.Principal.J, 1e-9)
}

func TestCalculateProperties_Rotated(t *testing.T) {
	sec := &Section{
		Vertices: []Point{{0, 0}, {145, 0}, {145, 55}, {0, 55}},
		Angle:    math.Pi / 2,
	}

	props, err := sec.CalculateProperties()
	require.NoError(t, err)

	// a quarter turn swaps the barycentric axes
	assert.InEpsilon(t, 145*math.Pow(55, 3)/12, props.Barycentric.Y, 1e-9)
	assert.InEpsilon(t, 55*math.Pow(145, 3)/12, props.Barycentric.X, 1e-9)
	assert.InEpsilon(t, props.Principal.I, props.Barycentric.Y, 1e-9)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		vertices []Point
		wantErr  bool
	}{
		{"triangle open", []Point{{0, 0}, {1, 0}, {0, 1}}, false},
		{"triangle closed", []Point{{0, 0}, {1, 0}, {0, 1}, {0, 0}}, false},
		{"too few", []Point{{0, 0}, {1, 0}}, true},
		{"closed too few", []Point{{0, 0}, {1, 0}, {0, 0}}, true},
		{"early repeat", []Point{{0, 0}, {1, 0}, {0, 0}, {0, 1}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sec := &Section{Vertices: tt.vertices}
			err := sec.Validate()
			if tt.wantErr {
				var verr *ValidationError
				assert.ErrorAs(t, err, &verr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCalculateProperties_Degenerate(t *testing.T) {
	sec := &Section{Vertices: []Point{{0, 0}, {1, 1}, {2, 2}}}
	_, err := sec.CalculateProperties()
	assert.ErrorIs(t, err, inertia.ErrZeroArea)
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join("testdata", "missing.json"))
	assert.Error(t, err)
}
