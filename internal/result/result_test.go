package result

import (
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/gomoi/internal/fixture"
	"github.com/alexiusacademia/gomoi/internal/inertia"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	res, err := Load(filepath.Join("testdata", "two_squares.json"))
	require.NoError(t, err)
	assert.Equal(t, 3, res.Len())

	fixtures, err := res.Selected()
	require.NoError(t, err)
	require.Len(t, fixtures, 2)

	assert.Equal(t, fixture.Fixture{
		Index:  2,
		Type:   fixture.Square,
		Origin: inertia.Vertex{X: 227.5, Y: -72.5},
		Center: inertia.Vertex{X: 300, Y: 0},
	}, fixtures[1])
	assert.Equal(t, 0, fixtures[0].Index)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "nope.json"))
	assert.Error(t, err)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `{"x": [`},
		{"missing key", `{"x": [], "y": [], "selected_fixture": [], "fixture_type": [], "fixtures_center_x": []}`},
		{"bad flag", `{"x": [0], "y": [0], "selected_fixture": [2], "fixture_type": [1], "fixtures_center_x": [0], "fixtures_center_y": [0]}`},
		{"length mismatch", `{"x": [0, 1], "y": [0], "selected_fixture": [1], "fixture_type": [1], "fixtures_center_x": [0], "fixtures_center_y": [0]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestParse_LengthMismatchIsValidationError(t *testing.T) {
	_, err := Parse([]byte(`{"x": [0, 1], "y": [0], "selected_fixture": [1], "fixture_type": [1], "fixtures_center_x": [0], "fixtures_center_y": [0]}`))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Error(), "x has 2 entries")
}

func TestSelected_InvalidShapeCode(t *testing.T) {
	res, err := Parse([]byte(`{"x": [0], "y": [0], "selected_fixture": [1], "fixture_type": [3], "fixtures_center_x": [0], "fixtures_center_y": [0]}`))
	require.NoError(t, err)

	_, err = res.Selected()
	assert.ErrorIs(t, err, fixture.ErrInvalidShapeCode)
}

func TestSelected_SkipsUnselectedInvalidType(t *testing.T) {
	res, err := Parse([]byte(`{"x": [0], "y": [0], "selected_fixture": [0], "fixture_type": [3], "fixtures_center_x": [0], "fixtures_center_y": [0]}`))
	require.NoError(t, err)

	fixtures, err := res.Selected()
	require.NoError(t, err)
	assert.Empty(t, fixtures)
}

func TestParse_SelectedFlags(t *testing.T) {
	res, err := Parse([]byte(`{"x": [0, 10], "y": [0, 0], "selected_fixture": [0, 1], "fixture_type": [1, 2], "fixtures_center_x": [72.5, 82.5], "fixtures_center_y": [72.5, 27.5]}`))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, res.Flags)

	fixtures, err := res.Selected()
	require.NoError(t, err)
	require.Len(t, fixtures, 1)
	assert.Equal(t, 1, fixtures[0].Index)
	assert.Equal(t, fixture.Rectangle, fixtures[0].Type)
}
