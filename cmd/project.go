package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/gorolling/internal/diagram"
	"github.com/alexiusacademia/gorolling/internal/mill"
	"github.com/alexiusacademia/gorolling/internal/projectfile"
	"github.com/spf13/cobra"
)

var projectForce bool

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Create and inspect project files",
}

var projectNewCmd = &cobra.Command{
	Use:   "new <path>",
	Short: "Write the reference mill to a new project file",
	Long: `Write the reference mill (billet 130×130, 6 roughing, 4 intermediate and
7 finishing stands, 17 motors) to a YAML project file to start from.

Examples:
  gorolling project new mill.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runProjectNew,
}

var projectCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate a project file",
	Long: `Load a project file, validate its stand and motor identifiers and
report the computed final section.

Examples:
  gorolling project check -f mill.yaml`,
	Run: runProjectCheck,
}

var projectFieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "List the keys accepted by --set",
	Run:   runProjectFields,
}

func init() {
	rootCmd.AddCommand(projectCmd)
	projectCmd.AddCommand(projectNewCmd)
	projectCmd.AddCommand(projectCheckCmd)
	projectCmd.AddCommand(projectFieldsCmd)

	projectNewCmd.Flags().BoolVar(&projectForce, "force", false, "Overwrite an existing file")
}

func runProjectNew(cmd *cobra.Command, args []string) {
	path := args[0]
	if _, err := os.Stat(path); err == nil && !projectForce {
		fmt.Printf("Error: %s already exists (use --force to overwrite)\n", path)
		return
	}

	if err := projectfile.Save(path, mill.Default()); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("  ✓ Reference mill written to %s\n", path)
}

func runProjectCheck(cmd *cobra.Command, args []string) {
	if projectPath == "" {
		fmt.Println("Error: --file is required")
		return
	}

	p, err := loadProject()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	lines := []string{
		fmt.Sprintf("Name:           %s", p.Name),
		fmt.Sprintf("Stands:         %d", len(p.Stands)),
		fmt.Sprintf("Motors:         %d", len(p.Motors)),
		fmt.Sprintf("Blocks:         %d", len(p.Blocks)),
	}
	if last, ok := p.Final(); ok {
		lines = append(lines, fmt.Sprintf("Final section:  %.1f mm² (%s)", last.Derived.ExitArea, last.ID))
	}
	fmt.Println()
	fmt.Print(diagram.DrawSummaryBox("✓ PROJECT IS VALID", lines))
	fmt.Println()
}

func runProjectFields(cmd *cobra.Command, args []string) {
	names := mill.FieldNames()
	scopes := []struct{ scope, prefix string }{
		{"raw", "raw."},
		{"process", "process."},
		{"losses", "losses."},
		{"stand", "stand.<id>."},
		{"motor", "motor.<id>."},
		{"block", "block.<id>."},
	}

	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, s := range scopes {
		fields := append([]string(nil), names[s.scope]...)
		sort.Strings(fields)
		fmt.Fprintf(w, "  %s\t%s\n", s.prefix, strings.Join(fields, ", "))
	}
	w.Flush()
	fmt.Println()
}
