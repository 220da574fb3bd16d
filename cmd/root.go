package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alexiusacademia/gomoi/internal/version"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "gomoi",
	Short: "Moments of inertia of polygons and fixture layouts",
	Long: `gomoi - Go Moments of Inertia

A CLI tool for the mechanical properties of planar polygons and of
suction-cup fixture layouts placed on a workpiece.

This tool helps engineers compute:
  - Area and barycenter of arbitrary polygons
  - Absolute and barycentric moments of inertia
  - Overall center of gravity of a set of fixtures
  - Combined principal moments of inertia`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gomoi v%-49s║\n", version.Version)
		fmt.Println("  ║   Go Moments of Inertia                                   ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Polygon area, barycenter and moments of inertia")
		fmt.Println("    • Fixture layout center of gravity")
		fmt.Println("    • Combined principal moments of inertia")
		fmt.Println("    • Layout diagrams (ASCII, png, svg, pdf)")
		fmt.Println()
		fmt.Println("  Use 'gomoi --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceErrors = true
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
