package cmd

import (
	"github.com/spf13/cobra"
)

var fixturesCmd = &cobra.Command{
	Use:   "fixtures",
	Short: "Fixture layout analysis",
	Long: `Analyze suction-cup fixture layouts produced by the placement solver.

The solver result is a JSON file with one entry per candidate fixture:
{
  "x": [...],                  lower-left corner x of each footprint
  "y": [...],                  lower-left corner y of each footprint
  "selected_fixture": [...],   1 when the fixture is used, else 0
  "fixture_type": [...],       1 = square cup, 2 = rectangular cup
  "fixtures_center_x": [...],
  "fixtures_center_y": [...]
}

Fixture sizes and the workpiece outline come from an optional YAML
config file:
  fixtures:
    square_side: 145
    rect_width: 145
    rect_height: 55
  workpiece:
    - [665, 394]
    - [20, 262]
    - [20, 135]

Subcommands:
  analyze  - Center of gravity and principal moments of a layout`,
}

func init() {
	rootCmd.AddCommand(fixturesCmd)
}
