package diagram

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"github.com/alexiusacademia/gomoi/internal/inertia"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	vertexColor   = color.RGBA{R: 255, A: 255}
	centerColor   = color.RGBA{G: 128, A: 255}
	distanceColor = color.RGBA{R: 128, B: 128, A: 255}
)

// Palette returns n evenly spaced fixture fill colors
func Palette(n int) []color.RGBA {
	out := make([]color.RGBA, n)
	for i := range out {
		c := colorful.Hsv(360*float64(i)/math.Max(float64(n), 1), 0.55, 0.9)
		r, g, b := c.RGB255()
		out[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return out
}

func toXYs(c inertia.Contour) plotter.XYs {
	xys := make(plotter.XYs, len(c))
	for i, v := range c {
		xys[i] = plotter.XY{X: v.X, Y: v.Y}
	}
	return xys
}

func addLabel(p *plot.Plot, x, y float64, text string, c color.Color) error {
	l, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: x, Y: y}},
		Labels: []string{text},
	})
	if err != nil {
		return err
	}
	for i := range l.TextStyle {
		l.TextStyle[i].Color = c
	}
	p.Add(l)
	return nil
}

// ExportLayout exports a fixture layout diagram to an image file and returns
// the path written. Names without a png, svg or pdf extension get ".png".
func ExportLayout(data LayoutDiagramData, filename string) (string, error) {
	p := plot.New()
	p.Title.Text = "Fixture Layout"
	p.X.Label.Text = "X-coordinate"
	p.Y.Label.Text = "Y-coordinate"
	p.Add(plotter.NewGrid())

	// Workpiece outline and vertices
	if len(data.Workpiece) >= 3 {
		outline, err := plotter.NewLine(toXYs(data.Workpiece))
		if err != nil {
			return "", err
		}
		outline.LineStyle.Width = vg.Points(2)
		outline.LineStyle.Color = color.RGBA{B: 180, A: 255}
		p.Add(outline)
		p.Legend.Add("Workpiece", outline)

		vertices, err := plotter.NewScatter(toXYs(data.Workpiece))
		if err != nil {
			return "", err
		}
		vertices.GlyphStyle.Color = vertexColor
		vertices.GlyphStyle.Shape = draw.CircleGlyph{}
		vertices.GlyphStyle.Radius = vg.Points(3)
		p.Add(vertices)
		p.Legend.Add("Vertices", vertices)
	}

	// Fixture footprints and barycenters
	colors := Palette(len(data.Fixtures))
	for i, f := range data.Fixtures {
		footprint, err := plotter.NewPolygon(toXYs(f.Contour))
		if err != nil {
			return "", errors.Wrapf(err, "fixture %s", f.Label)
		}
		fill := colors[i]
		fill.A = 110
		footprint.Color = fill
		footprint.LineStyle.Color = color.Black
		p.Add(footprint)

		center, err := plotter.NewScatter(plotter.XYs{{X: f.Barycenter.X, Y: f.Barycenter.Y}})
		if err != nil {
			return "", err
		}
		center.GlyphStyle.Color = centerColor
		center.GlyphStyle.Shape = draw.CircleGlyph{}
		center.GlyphStyle.Radius = vg.Points(3)
		p.Add(center)

		if err := addLabel(p, f.Barycenter.X+5, f.Barycenter.Y+5, f.Label, centerColor); err != nil {
			return "", err
		}
	}

	// Dimension lines between barycenters
	for _, l := range data.Links {
		line, err := plotter.NewLine(plotter.XYs{
			{X: l.From.X, Y: l.From.Y},
			{X: l.To.X, Y: l.To.Y},
		})
		if err != nil {
			return "", err
		}
		line.LineStyle.Width = vg.Points(0.8)
		line.LineStyle.Color = color.Gray{Y: 128}
		line.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
		p.Add(line)

		midX, midY := (l.From.X+l.To.X)/2, (l.From.Y+l.To.Y)/2
		if err := addLabel(p, midX, midY, fmt.Sprintf("%.2f", l.Distance), distanceColor); err != nil {
			return "", err
		}
	}

	// Overall center of gravity
	g := data.CenterOfGravity
	cog, err := plotter.NewScatter(plotter.XYs{{X: g.X, Y: g.Y}})
	if err != nil {
		return "", err
	}
	cog.GlyphStyle.Color = color.Black
	cog.GlyphStyle.Shape = draw.CircleGlyph{}
	cog.GlyphStyle.Radius = vg.Points(4)
	p.Add(cog)
	p.Legend.Add("Overall center of gravity", cog)
	label := fmt.Sprintf("g(%g, %g)", Truncate(g.X, 3), Truncate(g.Y, 3))
	if err := addLabel(p, g.X+5, g.Y+5, label, color.Black); err != nil {
		return "", err
	}

	// Equal axis spans so shapes keep their proportions
	minX, minY, maxX, maxY := data.bounds()
	span := math.Max(maxX-minX, maxY-minY) * 1.1
	cx, cy := (minX+maxX)/2, (minY+maxY)/2
	p.X.Min, p.X.Max = cx-span/2, cx+span/2
	p.Y.Min, p.Y.Max = cy-span/2, cy+span/2

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", errors.Wrap(err, "could not create output directory")
		}
	}

	width := 8 * vg.Inch
	height := 8 * vg.Inch

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		// format follows the extension
	default:
		filename += ".png"
	}

	if err := p.Save(width, height, filename); err != nil {
		return "", err
	}
	return filename, nil
}
