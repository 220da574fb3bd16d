package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/alexiusacademia/gomoi/internal/diagram"
	"github.com/alexiusacademia/gomoi/internal/section"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	polygonFile  string
	polygonAngle float64
)

var polygonCmd = &cobra.Command{
	Use:   "polygon",
	Short: "Area and moments of inertia of a polygon",
	Long: `Calculate the area, barycenter, absolute and barycentric moments
of inertia and the principal moments of a polygon defined in a JSON file.

Absolute moments are referenced to the origin of the file's coordinates.
Barycentric moments are taken about the polygon's centroid and rotated by
the polygon angle (radians).

Example JSON file structure:
{
  "name": "Square Cup",
  "angle": 0,
  "vertices": [
    {"x": 0, "y": 0},
    {"x": 0, "y": 145},
    {"x": 145, "y": 145},
    {"x": 145, "y": 0}
  ]
}

Examples:
  gomoi polygon --file cup.json
  gomoi polygon -f cup.json --angle 0.7854`,
	RunE: runPolygon,
}

func init() {
	rootCmd.AddCommand(polygonCmd)

	polygonCmd.Flags().StringVarP(&polygonFile, "file", "f", "", "Path to polygon JSON file [required]")
	polygonCmd.Flags().Float64Var(&polygonAngle, "angle", 0, "Override the polygon angle (radians)")
	polygonCmd.MarkFlagRequired("file")
}

func runPolygon(cmd *cobra.Command, args []string) error {
	sec, err := section.LoadFromFile(polygonFile)
	if err != nil {
		return errors.Wrap(err, "could not load polygon")
	}
	if cmd.Flags().Changed("angle") {
		sec.Angle = polygonAngle
	}

	props, err := sec.CalculateProperties()
	if err != nil {
		return errors.Wrap(err, "could not analyze polygon")
	}

	out := cmd.OutOrStdout()

	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "     POLYGON MOMENTS OF INERTIA")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	if sec.Name != "" {
		fmt.Fprintf(out, "  Polygon: %s\n", sec.Name)
	}
	if sec.Description != "" {
		fmt.Fprintf(out, "  Description: %s\n", sec.Description)
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "GEOMETRY:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Width:\t%.2f mm\n", props.Width)
	fmt.Fprintf(w, "  Height:\t%.2f mm\n", props.Height)
	fmt.Fprintf(w, "  Vertices:\t%d points\n", len(sec.Contour())-1)
	fmt.Fprintf(w, "  Area:\t%.2f mm²\n", props.Area)
	fmt.Fprintf(w, "  Barycenter:\t(%.3f, %.3f) mm\n", props.CentroidX, props.CentroidY)
	fmt.Fprintf(w, "  Angle:\t%.4f rad\n", sec.Angle)
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "ABSOLUTE MOMENTS OF INERTIA (about origin):")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Jx:\t%.5e mm⁴\n", props.Absolute.X)
	fmt.Fprintf(w, "  Jy:\t%.5e mm⁴\n", props.Absolute.Y)
	fmt.Fprintf(w, "  Jxy:\t%.5e mm⁴\n", props.Absolute.XY)
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "BARYCENTRIC MOMENTS OF INERTIA:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  I:\t%.5e mm⁴\n", props.Barycentric.X)
	fmt.Fprintf(w, "  J:\t%.5e mm⁴\n", props.Barycentric.Y)
	fmt.Fprintf(w, "  IJ:\t%.5e mm⁴\n", props.Barycentric.XY)
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, diagram.DrawSummaryBox("PRINCIPAL MOMENTS OF INERTIA", []string{
		fmt.Sprintf("I = %.5e mm⁴", props.Principal.I),
		fmt.Sprintf("J = %.5e mm⁴", props.Principal.J),
	}))
	fmt.Fprintln(out)

	return nil
}
