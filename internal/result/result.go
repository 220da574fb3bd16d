// Package result loads the output of the fixture placement solver.
package result

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/alexiusacademia/gomoi/internal/fixture"
	"github.com/alexiusacademia/gomoi/internal/inertia"
	"github.com/pkg/errors"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var schemaData []byte

var schemaLoader = gojsonschema.NewBytesLoader(schemaData)

// Result holds one solver solution as parallel per-fixture arrays
type Result struct {
	X       []float64 `json:"x"` // lower-left corner of each candidate footprint
	Y       []float64 `json:"y"`
	Flags   []int     `json:"selected_fixture"` // 1 when the fixture is used
	Types   []int     `json:"fixture_type"`
	CenterX []float64 `json:"fixtures_center_x"`
	CenterY []float64 `json:"fixtures_center_y"`
}

// ValidationError represents an invalid result document
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

// Load reads and validates a result file
func Load(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not read result file")
	}

	res, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "could not load %s", path)
	}
	return res, nil
}

// Parse validates a result document against the schema and decodes it
func Parse(data []byte) (*Result, error) {
	check, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, errors.Wrap(err, "invalid JSON")
	}
	if !check.Valid() {
		var msgs []string
		for _, desc := range check.Errors() {
			msgs = append(msgs, desc.String())
		}
		return nil, &ValidationError{msg: "schema validation failed: " + strings.Join(msgs, "; ")}
	}

	var res Result
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, errors.Wrap(err, "could not decode result")
	}

	if err := res.Validate(); err != nil {
		return nil, err
	}
	return &res, nil
}

// Validate checks that every per-fixture array has the same length
func (r *Result) Validate() error {
	n := len(r.Types)
	lengths := []struct {
		name string
		n    int
	}{
		{"x", len(r.X)},
		{"y", len(r.Y)},
		{"selected_fixture", len(r.Flags)},
		{"fixtures_center_x", len(r.CenterX)},
		{"fixtures_center_y", len(r.CenterY)},
	}
	for _, l := range lengths {
		if l.n != n {
			return &ValidationError{msg: fmt.Sprintf("%s has %d entries, fixture_type has %d", l.name, l.n, n)}
		}
	}
	return nil
}

// Len returns the number of candidate fixtures
func (r *Result) Len() int {
	return len(r.Types)
}

// Selected returns the fixtures the solver selected, in solver order
func (r *Result) Selected() ([]fixture.Fixture, error) {
	var out []fixture.Fixture
	for i := 0; i < r.Len(); i++ {
		if r.Flags[i] != 1 {
			continue
		}
		t := fixture.Type(r.Types[i])
		if t != fixture.Square && t != fixture.Rectangle {
			return nil, errors.Wrapf(fixture.ErrInvalidShapeCode, "fixture %d has type %d", i, r.Types[i])
		}
		out = append(out, fixture.Fixture{
			Index:  i,
			Type:   t,
			Origin: inertia.Vertex{X: r.X[i], Y: r.Y[i]},
			Center: inertia.Vertex{X: r.CenterX[i], Y: r.CenterY[i]},
		})
	}
	return out, nil
}
