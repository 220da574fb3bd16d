package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gomoi/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gomoi",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gomoi v%s\n", version.Version)
		fmt.Println("Moments of Inertia of Polygons and Fixture Layouts")
		fmt.Printf("Commit: %s, built: %s\n", version.GitCommit, version.BuildTime)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
