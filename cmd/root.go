package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/alexiusacademia/gorolling/internal/mill"
	"github.com/alexiusacademia/gorolling/internal/projectfile"
	"github.com/alexiusacademia/gorolling/internal/version"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	logLevel    string
	projectPath string
	setValues   []string
)

var rootCmd = &cobra.Command{
	Use:   "gorolling",
	Short: "Hot rolling mill pass schedule calculator",
	Long: `gorolling - Go Hot Rolling Schedule Designer

A CLI tool for the design of pass schedules in bar and rod
hot rolling mills (roughing, intermediate and finishing trains).

For every stand the tool derives:
  - Bar geometry at entry and exit of the groove
  - Reduction, elongation and spread
  - Bite, friction and neutral point angles
  - Rolling speeds along the line
  - Rolling force, no-load torque and load factor

Any edit to a stand re-runs the whole cascade from the raw material
down to the last finishing pass.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gorolling v%-45s║\n", version.Version)
		fmt.Println("  ║   Go Hot Rolling Schedule Designer                        ║")
		fmt.Printf("  ║   %s ©  %-36s║\n", version.Author, version.Year)
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the design of pass schedules")
		fmt.Println("  in bar and rod hot rolling mills.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Full pass cascade from billet or round stock")
		fmt.Println("    • Roughing, intermediate and finishing trains")
		fmt.Println("    • Stand cross-section diagrams (ASCII, png, svg, pdf)")
		fmt.Println("    • Motor torque and stand load factors")
		fmt.Println("    • Excel export of the schedule")
		fmt.Println()
		fmt.Println("  Use 'gorolling --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().StringVarP(&projectPath, "file", "f", "", "Project file (YAML); the reference mill is used when omitted")
	rootCmd.PersistentFlags().StringArrayVar(&setValues, "set", nil, "Edit a field before computing, e.g. stand.roughing-1.luz=92 (repeatable)")
}

// loadProject reads the project named by --file, or the reference mill,
// then applies every --set edit in order.
func loadProject() (mill.Project, error) {
	p := mill.Default()
	if projectPath != "" {
		var err error
		p, err = projectfile.Load(projectPath)
		if err != nil {
			return mill.Project{}, fmt.Errorf("load %s: %w", projectPath, err)
		}
		logrus.WithField("path", projectPath).Info("project loaded")
	}

	for _, kv := range setValues {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			return mill.Project{}, fmt.Errorf("--set %q: expected key=value", kv)
		}
		next, err := mill.Apply(p, key, value)
		if err != nil {
			return mill.Project{}, fmt.Errorf("--set %q: %w", kv, err)
		}
		logrus.WithFields(logrus.Fields{"key": key, "value": value}).Debug("field set")
		p = next
	}
	return p, nil
}

// saveProject writes p to path, falling back to --file when path is empty.
// It reports whether anything was written.
func saveProject(path string, p mill.Project) (bool, error) {
	if path == "" {
		path = projectPath
	}
	if path == "" {
		return false, nil
	}
	if err := projectfile.Save(path, p); err != nil {
		return false, err
	}
	logrus.WithField("path", path).Info("project saved")
	return true, nil
}
