package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gorolling/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gorolling",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gorolling v%s\n", version.Version)
		fmt.Println("Hot Rolling Schedule Designer")
		fmt.Printf("Commit %s, built %s\n", version.GitCommit, version.BuildTime)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
