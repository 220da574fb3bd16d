package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/alexiusacademia/gomoi/internal/config"
	"github.com/alexiusacademia/gomoi/internal/diagram"
	"github.com/alexiusacademia/gomoi/internal/layout"
	"github.com/alexiusacademia/gomoi/internal/result"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	fixturesResultFile  string
	fixturesConfigFile  string
	fixturesShowDiagram bool
	fixturesExportFile  string
)

var fixturesAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Center of gravity and principal moments of a fixture layout",
	Long: `Calculate the overall center of gravity, the combined barycentric
moments of inertia and the principal moments of the fixtures selected
by the placement solver, together with the Manhattan distances between
fixture centers.

Examples:
  gomoi fixtures analyze --result results_fdist_obj_mzn.json
  gomoi fixtures analyze -r results.json -c plate.yaml --diagram -o layout.png`,
	RunE: runFixturesAnalyze,
}

func init() {
	fixturesCmd.AddCommand(fixturesAnalyzeCmd)

	fixturesAnalyzeCmd.Flags().StringVarP(&fixturesResultFile, "result", "r", "", "Path to solver result JSON file [required]")
	fixturesAnalyzeCmd.Flags().StringVarP(&fixturesConfigFile, "config", "c", "", "Path to YAML config with fixture sizes and workpiece")
	fixturesAnalyzeCmd.MarkFlagRequired("result")

	// Diagram options
	fixturesAnalyzeCmd.Flags().BoolVar(&fixturesShowDiagram, "diagram", false, "Show ASCII layout diagram")
	fixturesAnalyzeCmd.Flags().StringVarP(&fixturesExportFile, "output", "o", "", "Export layout diagram to file (png, svg, pdf)")
}

func runFixturesAnalyze(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if fixturesConfigFile != "" {
		var err error
		if cfg, err = config.Load(fixturesConfigFile); err != nil {
			return err
		}
	}

	res, err := result.Load(fixturesResultFile)
	if err != nil {
		return err
	}

	fixtures, err := res.Selected()
	if err != nil {
		return err
	}

	report, err := layout.Analyze(fixtures, cfg.Fixtures)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "     FIXTURE LAYOUT MOMENTS OF INERTIA")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	fmt.Fprintln(out, "INPUT DATA:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Candidate fixtures:\t%d\n", res.Len())
	fmt.Fprintf(w, "  Selected fixtures:\t%d\n", len(fixtures))
	fmt.Fprintf(w, "  Square cup:\t%.0f x %.0f mm\n", cfg.Fixtures.SquareSide, cfg.Fixtures.SquareSide)
	fmt.Fprintf(w, "  Rectangular cup:\t%.0f x %.0f mm\n", cfg.Fixtures.RectWidth, cfg.Fixtures.RectHeight)
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "FIXTURES:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Label\tType\tCenter (mm)\tArea (mm²)\tI (mm⁴)\tJ (mm⁴)\n")
	fmt.Fprintf(w, "  ─────\t────\t───────────\t──────────\t───────\t───────\n")
	for i, fr := range report.Fixtures {
		c := fr.Fixture.Center
		fmt.Fprintf(w, "  c%d\t%s\t(%.1f, %.1f)\t%.0f\t%.5e\t%.5e\n",
			i+1, fr.Fixture.Type, c.X, c.Y, fr.Descriptor.Area, fr.Barycentric.X, fr.Barycentric.Y)
	}
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "CENTER OF GRAVITY:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Total area:\t%.2f mm²\n", report.TotalArea)
	fmt.Fprintf(w, "  x_G:\t%.3f mm\n", diagram.Truncate(report.CenterOfGravity.X, 3))
	fmt.Fprintf(w, "  y_G:\t%.3f mm\n", diagram.Truncate(report.CenterOfGravity.Y, 3))
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "COMBINED MOMENTS OF INERTIA:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Absolute Jx / Jy / Jxy:\t%.5e / %.5e / %.5e mm⁴\n",
		report.CombinedAbsolute.X, report.CombinedAbsolute.Y, report.CombinedAbsolute.XY)
	fmt.Fprintf(w, "  Barycentric Jx / Jy / Jxy:\t%.5e / %.5e / %.5e mm⁴\n",
		report.CombinedBarycentric.X, report.CombinedBarycentric.Y, report.CombinedBarycentric.XY)
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, diagram.DrawSummaryBox("PRINCIPAL MOMENTS OF INERTIA", []string{
		fmt.Sprintf("Principal moment I: %.5e mm⁴", report.Principal.I),
		fmt.Sprintf("Principal moment J: %.5e mm⁴", report.Principal.J),
		fmt.Sprintf("I + J:              %.5e mm⁴", report.Principal.Sum()),
	}))
	fmt.Fprintln(out)

	fmt.Fprintln(out, "MANHATTAN DISTANCE BETWEEN CENTERS:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, l := range report.Links {
		fmt.Fprintf(w, "  c%d - c%d:\t%.2f mm\n", l.From+1, l.To+1, l.Distance)
	}
	fmt.Fprintf(w, "  Total distance:\t%.2f mm\n", report.ManhattanDistance)
	fmt.Fprintf(w, "  Distance objective:\t%.2f\n", report.DistanceObjective)
	w.Flush()
	fmt.Fprintln(out)

	data := layoutDiagramData(report, cfg)

	if fixturesShowDiagram {
		fmt.Fprintln(out, diagram.DrawASCIILayout(data, 64, 24))
	}

	if fixturesExportFile != "" {
		written, err := diagram.ExportLayout(data, fixturesExportFile)
		if err != nil {
			return errors.Wrap(err, "could not export diagram")
		}
		fmt.Fprintf(out, "Diagram exported to: %s\n", written)
	}

	return nil
}

func layoutDiagramData(report *layout.Report, cfg *config.Config) diagram.LayoutDiagramData {
	data := diagram.LayoutDiagramData{
		Workpiece:       cfg.WorkpieceContour(),
		CenterOfGravity: report.CenterOfGravity,
	}

	for i, fr := range report.Fixtures {
		data.Fixtures = append(data.Fixtures, diagram.FixtureShape{
			Label:      fmt.Sprintf("c%d", i+1),
			Contour:    fr.Contour,
			Barycenter: fr.Descriptor.Barycenter,
		})
	}

	for _, l := range report.Links {
		data.Links = append(data.Links, diagram.Link{
			From:     report.Fixtures[l.From].Fixture.Center,
			To:       report.Fixtures[l.To].Fixture.Center,
			Distance: l.Distance,
		})
	}

	return data
}
