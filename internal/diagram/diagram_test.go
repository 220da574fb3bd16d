package diagram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexiusacademia/gomoi/internal/inertia"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleLayout() LayoutDiagramData {
	sq := func(x, y float64) inertia.Contour {
		return inertia.Contour{{X: x, Y: y}, {X: x, Y: y + 145}, {X: x + 145, Y: y + 145}, {X: x + 145, Y: y}, {X: x, Y: y}}
	}
	return LayoutDiagramData{
		Workpiece: inertia.Contour{
			{X: 665, Y: 394}, {X: 20, Y: 262}, {X: 20, Y: 135}, {X: 665, Y: 4},
			{X: 689, Y: 17}, {X: 689, Y: 380}, {X: 665, Y: 394},
		},
		Fixtures: []FixtureShape{
			{Label: "c1", Contour: sq(100, 120), Barycenter: inertia.Vertex{X: 172.5, Y: 192.5}},
			{Label: "c2", Contour: sq(400, 120), Barycenter: inertia.Vertex{X: 472.5, Y: 192.5}},
		},
		Links: []Link{
			{From: inertia.Vertex{X: 172.5, Y: 192.5}, To: inertia.Vertex{X: 472.5, Y: 192.5}, Distance: 300},
		},
		CenterOfGravity: inertia.Vertex{X: 322.5, Y: 192.5},
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, 1.234, Truncate(1.23456, 3))
	assert.Equal(t, -1.235, Truncate(-1.2341, 3))
	assert.Equal(t, 150.0, Truncate(150, 3))
}

func TestPalette(t *testing.T) {
	colors := Palette(4)
	require.Len(t, colors, 4)
	assert.NotEqual(t, colors[0], colors[1])
	for _, c := range colors {
		assert.Equal(t, uint8(255), c.A)
	}
	assert.Empty(t, Palette(0))
}

func TestIntersectionsAtY(t *testing.T) {
	c := inertia.Contour{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0}, {X: 0, Y: 0}}
	assert.Equal(t, []float64{0, 10}, intersectionsAtY(c, 5))
	assert.Empty(t, intersectionsAtY(c, 20))
}

func TestDrawASCIILayout(t *testing.T) {
	out := DrawASCIILayout(sampleLayout(), 60, 20)

	assert.Contains(t, out, "FIXTURE LAYOUT")
	assert.Contains(t, out, "1")
	assert.Contains(t, out, "2")
	assert.Contains(t, out, "G")
	assert.Contains(t, out, "▒")
	assert.Contains(t, out, "g(322.500, 192.500)")

	frame := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "  │") {
			frame++
		}
	}
	assert.Equal(t, 20, frame)
}

func TestDrawASCIILayout_Degenerate(t *testing.T) {
	assert.Empty(t, DrawASCIILayout(LayoutDiagramData{}, 60, 20))
	assert.Empty(t, DrawASCIILayout(sampleLayout(), 1, 1))
}

func TestDrawSummaryBox(t *testing.T) {
	out := DrawSummaryBox("PRINCIPAL MOMENTS", []string{"I = 1", "J = 2"})
	assert.Contains(t, out, "PRINCIPAL MOMENTS")
	assert.Contains(t, out, "J = 2")
}

func TestExportLayout(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"layout.png", "layout.svg", filepath.Join("nested", "layout")} {
		path := filepath.Join(dir, name)
		written, err := ExportLayout(sampleLayout(), path)
		require.NoError(t, err)

		if filepath.Ext(path) == "" {
			path += ".png"
		}
		assert.Equal(t, path, written)
		info, err := os.Stat(written)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}
}
