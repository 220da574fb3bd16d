package diagram

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/alexiusacademia/gomoi/internal/inertia"
	"github.com/charmbracelet/lipgloss"
)

// FixtureShape is one fixture footprint to draw
type FixtureShape struct {
	Label      string // e.g. "c1"
	Contour    inertia.Contour
	Barycenter inertia.Vertex
}

// Link is a dimension line between two fixture barycenters
type Link struct {
	From     inertia.Vertex
	To       inertia.Vertex
	Distance float64
}

// LayoutDiagramData holds data for drawing a fixture layout
type LayoutDiagramData struct {
	Workpiece       inertia.Contour
	Fixtures        []FixtureShape
	Links           []Link
	CenterOfGravity inertia.Vertex
}

// bounds returns the bounding box of everything drawn
func (d LayoutDiagramData) bounds() (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)

	grow := func(v inertia.Vertex) {
		minX = math.Min(minX, v.X)
		maxX = math.Max(maxX, v.X)
		minY = math.Min(minY, v.Y)
		maxY = math.Max(maxY, v.Y)
	}

	for _, v := range d.Workpiece {
		grow(v)
	}
	for _, f := range d.Fixtures {
		for _, v := range f.Contour {
			grow(v)
		}
	}
	grow(d.CenterOfGravity)

	return minX, minY, maxX, maxY
}

// Truncate floors f to n decimal places
func Truncate(f float64, n int) float64 {
	p := math.Pow(10, float64(n))
	return math.Floor(f*p) / p
}

// DrawASCIILayout creates a character raster of the workpiece and fixtures
func DrawASCIILayout(data LayoutDiagramData, cols, rows int) string {
	var sb strings.Builder

	if cols < 2 || rows < 2 {
		return ""
	}

	minX, minY, maxX, maxY := data.bounds()
	dx := (maxX - minX) / float64(cols)
	dy := (maxY - minY) / float64(rows)
	if dx <= 0 || dy <= 0 {
		return ""
	}

	grid := make([][]rune, rows)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(" ", cols))
	}

	// Fill each row between scanline crossings
	fill := func(c inertia.Contour, ch rune) {
		for r := 0; r < rows; r++ {
			y := maxY - (float64(r)+0.5)*dy
			xs := intersectionsAtY(c, y)
			for i := 0; i+1 < len(xs); i += 2 {
				for col := 0; col < cols; col++ {
					x := minX + (float64(col)+0.5)*dx
					if x >= xs[i] && x <= xs[i+1] {
						grid[r][col] = ch
					}
				}
			}
		}
	}

	cell := func(v inertia.Vertex) (int, int) {
		col := clamp(int((v.X-minX)/dx), 0, cols-1)
		row := clamp(int((maxY-v.Y)/dy), 0, rows-1)
		return row, col
	}

	fill(data.Workpiece, '·')
	for _, f := range data.Fixtures {
		fill(f.Contour, '▒')
	}
	for i, f := range data.Fixtures {
		r, c := cell(f.Barycenter)
		mark := '*'
		if i < 9 {
			mark = rune('1' + i)
		}
		grid[r][c] = mark
	}
	r, c := cell(data.CenterOfGravity)
	grid[r][c] = 'G'

	sb.WriteString("\n")
	sb.WriteString("  FIXTURE LAYOUT\n")
	sb.WriteString("  ──────────────\n")
	sb.WriteString(fmt.Sprintf("  ┌%s┐\n", strings.Repeat("─", cols)))
	for _, line := range grid {
		sb.WriteString(fmt.Sprintf("  │%s│\n", string(line)))
	}
	sb.WriteString(fmt.Sprintf("  └%s┘\n", strings.Repeat("─", cols)))

	// Legend
	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString("  ··· = Workpiece\n")
	sb.WriteString("  ▒▒▒ = Fixture footprint (1-9 = barycenter c1..c9)\n")
	sb.WriteString(fmt.Sprintf("  G   = Overall center of gravity g(%.3f, %.3f)\n",
		Truncate(data.CenterOfGravity.X, 3), Truncate(data.CenterOfGravity.Y, 3)))

	return sb.String()
}

// intersectionsAtY finds the sorted X coordinates where a horizontal line at
// Y crosses the contour edges
func intersectionsAtY(c inertia.Contour, y float64) []float64 {
	var xs []float64

	for i := 0; i+1 < len(c); i++ {
		v1, v2 := c[i], c[i+1]

		if (v1.Y <= y && v2.Y > y) || (v2.Y <= y && v1.Y > y) {
			t := (y - v1.Y) / (v2.Y - v1.Y)
			xs = append(xs, v1.X+t*(v2.X-v1.X))
		}
	}

	sort.Float64s(xs)
	return xs
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			Padding(0, 2).
			MarginLeft(2)
	titleStyle = lipgloss.NewStyle().Bold(true)
)

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	body := titleStyle.Render(title)
	if len(lines) > 0 {
		body += "\n\n" + strings.Join(lines, "\n")
	}
	return boxStyle.Render(body)
}
