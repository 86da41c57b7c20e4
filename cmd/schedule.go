package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gorolling/internal/diagram"
	"github.com/alexiusacademia/gorolling/internal/mill"
	"github.com/alexiusacademia/gorolling/internal/report"
	"github.com/alexiusacademia/gorolling/internal/rolling"
	"github.com/spf13/cobra"
)

var (
	scheduleStand       string
	scheduleShowDiagram bool
	scheduleExportFile  string
	scheduleWorkbook    string
	scheduleSave        string
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Compute and print the pass schedule of the mill",
	Long: `Run the pass cascade from the raw material through every stand and
print the resulting schedule.

Stands are rolled in order: roughing, intermediate, finishing, and by pass
number inside each train. The bar leaving one stand enters the next; oval
and flat bars are turned 90° before a closed groove.

Examples:
  # Schedule of the reference mill
  gorolling schedule

  # Schedule of a project file, with one gap changed
  gorolling schedule -f mill.yaml --set stand.roughing-1.luz_proj=92

  # Details and cross-section of one stand
  gorolling schedule --stand intermediate-2 --diagram -o stand.png

  # Export the schedule to Excel
  gorolling schedule -f mill.yaml --xlsx schedule.xlsx`,
	Run: runSchedule,
}

func init() {
	rootCmd.AddCommand(scheduleCmd)

	scheduleCmd.Flags().StringVarP(&scheduleStand, "stand", "s", "", "Show the full derived record of one stand")
	scheduleCmd.Flags().BoolVar(&scheduleShowDiagram, "diagram", false, "Show ASCII diagrams (cross-section with --stand, area and speed profile otherwise)")
	scheduleCmd.Flags().StringVarP(&scheduleExportFile, "output", "o", "", "Export diagram to file (png, svg, pdf)")
	scheduleCmd.Flags().StringVar(&scheduleWorkbook, "xlsx", "", "Export the schedule to an Excel workbook")
	scheduleCmd.Flags().StringVar(&scheduleSave, "save", "", "Write the project (after --set edits) to a YAML file")
}

func runSchedule(cmd *cobra.Command, args []string) {
	p, err := loadProject()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	if scheduleStand != "" {
		s, ok := p.Stand(scheduleStand)
		if !ok {
			fmt.Printf("Error: %v: %s\n", mill.ErrUnknownStand, scheduleStand)
			return
		}
		printStand(s)

		data := diagram.StandData(s)
		if scheduleShowDiagram {
			fmt.Println(diagram.DrawASCIIStandDiagram(data))
		}
		if scheduleExportFile != "" {
			if err := diagram.ExportPassProfile(data, scheduleExportFile); err != nil {
				fmt.Printf("Error exporting diagram: %v\n", err)
			} else {
				fmt.Printf("  Diagram exported to: %s\n\n", scheduleExportFile)
			}
		}
	} else {
		printSchedule(p)

		if scheduleShowDiagram {
			fmt.Println(diagram.DrawAreaProfile(p.Stands))
			fmt.Println(diagram.DrawSpeedGraph(p.Stands))
		}
		if scheduleExportFile != "" {
			if err := diagram.ExportSchedule(p.Stands, scheduleExportFile); err != nil {
				fmt.Printf("Error exporting diagram: %v\n", err)
			} else {
				fmt.Printf("  Diagram exported to: %s\n\n", scheduleExportFile)
			}
		}
	}

	if scheduleWorkbook != "" {
		if err := report.WriteWorkbook(scheduleWorkbook, p); err != nil {
			fmt.Printf("Error exporting workbook: %v\n", err)
		} else {
			fmt.Printf("  Workbook exported to: %s\n\n", scheduleWorkbook)
		}
	}

	if scheduleSave != "" {
		if _, err := saveProject(scheduleSave, p); err != nil {
			fmt.Printf("Error saving project: %v\n", err)
		} else {
			fmt.Printf("  Project saved to: %s\n\n", scheduleSave)
		}
	}
}

func printSchedule(p mill.Project) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════════════════════════════════")
	fmt.Printf("     PASS SCHEDULE - %s\n", p.Name)
	fmt.Println("═══════════════════════════════════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("RAW MATERIAL:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Stock:\t%s %.0f × %.0f mm\n", p.Raw.Kind, p.Raw.Width, p.Raw.Height)
	fmt.Fprintf(w, "  Area:\t%.1f mm²\n", p.Raw.Seed().Area)
	fmt.Fprintf(w, "  Temperature:\t%.0f °C\n", p.Raw.Temperature)
	fmt.Fprintf(w, "  Steel:\t%s\n", p.Raw.Steel)
	w.Flush()
	fmt.Println()

	for _, train := range rolling.Trains() {
		stands := p.StandsIn(train)
		if len(stands) == 0 {
			continue
		}
		fmt.Printf("%s TRAIN:\n", upper(train.String()))
		fmt.Println("───────────────────────────────────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintln(w, "Stand\tPass\tType\tGap\tExit W×H\tArea\tRed.%\tElong.\tSpeed\tForce\tLoad\t")
		fmt.Fprintln(w, "\t\t\tmm\tmm\tmm²\t\t\tm/s\tMN\t\t")
		for _, s := range stands {
			d := s.Derived
			twist := ""
			if d.Twisted {
				twist = "↻"
			}
			fmt.Fprintf(w, "%s\t%d\t%s%s\t%.1f\t%.1f×%.1f\t%.1f\t%.2f\t%.3f\t%.3f\t%.3f\t%.3f\t\n",
				s.ID, s.PassNumber, twist, s.Channel, s.EffectiveGap(),
				d.ExitWidth, d.ExitHeight, d.ExitArea, d.Reduction, d.Elongation,
				d.ExitSpeed, d.RollingForce, d.LoadFactor)
		}
		w.Flush()
		fmt.Println()
	}

	lines := []string{
		fmt.Sprintf("Stands:            %d", len(p.Stands)),
		fmt.Sprintf("Total elongation:  %.3f", report.TotalElongation(p)),
		fmt.Sprintf("Metallic losses:   %.2f %%", p.Losses.Total),
	}
	if last, ok := p.Final(); ok {
		lines = append(lines,
			fmt.Sprintf("Final section:     %.1f mm²", last.Derived.ExitArea),
			fmt.Sprintf("Finishing speed:   %.2f m/s", last.Derived.ExitSpeed),
		)
	}
	fmt.Print(diagram.DrawSummaryBox("MILL SUMMARY", lines))
	fmt.Println("  ↻ = bar turned 90° before the stand")
	fmt.Println()
}

func printStand(s rolling.Stand) {
	d := s.Derived

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     STAND %s - %s PASS %d\n", s.ID, upper(s.Train.String()), s.PassNumber)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	section := func(title string, rows [][2]string) {
		fmt.Printf("%s:\n", title)
		fmt.Println("───────────────────────────────────────────────────────────────")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for _, r := range rows {
			fmt.Fprintf(w, "  %s:\t%s\n", r[0], r[1])
		}
		w.Flush()
		fmt.Println()
	}

	section("TOOL", [][2]string{
		{"Channel type", s.Channel.String()},
		{"Gap (luz)", mm(s.Gap)},
		{"Projected gap", mm(s.ProjectedGap)},
		{"Radius", mm(s.Radius)},
		{"Widening factor", fmt.Sprintf("%.3f", s.WideningFactor)},
		{"Cylinder diameter", mm(s.CylinderDiameter)},
		{"Temperature", fmt.Sprintf("%.0f °C", s.Temperature)},
		{"Motor speed", fmt.Sprintf("%.0f rpm", s.MotorRPM)},
		{"Distance to next", fmt.Sprintf("%.2f m", s.DistanceNext)},
	})

	section("BAR", [][2]string{
		{"Entry (W × H)", fmt.Sprintf("%.2f × %.2f mm", d.EntryWidth, d.EntryHeight)},
		{"Entry area", mm2(d.EntryArea)},
		{"Exit (W × H)", fmt.Sprintf("%.2f × %.2f mm", d.ExitWidth, d.ExitHeight)},
		{"Exit area", mm2(d.ExitArea)},
		{"Turned before stand", yesNo(d.Twisted)},
	})

	section("DEFORMATION", [][2]string{
		{"Reduction", fmt.Sprintf("%.2f %%", d.Reduction)},
		{"Elongation", fmt.Sprintf("%.4f", d.Elongation)},
		{"Spread", mm(d.Spread)},
		{"Deformation coefficient", fmt.Sprintf("%.4f", d.DeformationCoeff)},
		{"Channel width", mm(d.ChannelWidth)},
		{"Channel area", mm2(d.ChannelArea)},
		{"Fill ratio", fmt.Sprintf("%.3f", d.FillRatio)},
		{"Width / channel", fmt.Sprintf("%.3f", d.WidthToChannel)},
		{"Width / height", fmt.Sprintf("%.3f", d.WidthToHeight)},
		{"Perimeter", mm(d.Perimeter)},
	})

	section("DIAMETERS", [][2]string{
		{"Gap depth", mm(d.GapDepth)},
		{"Diameter at gap bottom", mm(d.DiameterGapBottom)},
		{"Working diameter", mm(d.WorkingDiameter)},
		{"Project diameter", mm(d.ProjectDiameter)},
		{"Thermal dilation", fmt.Sprintf("%.5f", d.ThermalDilation)},
		{"Cylinder relation", fmt.Sprintf("%.4f", d.CylinderRelation)},
	})

	section("BITE", [][2]string{
		{"Contact angle", rad(d.ContactAngle)},
		{"Friction coefficient", fmt.Sprintf("%.2f", d.FrictionCoeff)},
		{"Grip angle", rad(d.GripAngle)},
		{"Contact / grip", fmt.Sprintf("%.1f %%", d.ContactOverGrip)},
		{"Neutral point", rad(d.NeutralPoint)},
		{"Contact length", mm(d.ContactLength)},
	})

	section("KINEMATICS AND LOAD", [][2]string{
		{"Gear ratio", fmt.Sprintf("%.2f", d.GearRatio)},
		{"Neutral point speed", fmt.Sprintf("%.3f m/s", d.NeutralPointSpeed)},
		{"Exit speed", fmt.Sprintf("%.3f m/s", d.ExitSpeed)},
		{"Time to next stand", fmt.Sprintf("%.2f s", d.TimeToNext)},
		{"Flow resistance", fmt.Sprintf("%.0f MPa", d.FlowResistance)},
		{"Max pressure", fmt.Sprintf("%.1f MPa", d.MaxPressure)},
		{"Rolling force", fmt.Sprintf("%.4f MN", d.RollingForce)},
		{"No-load torque", fmt.Sprintf("%.1f kNm", d.VacuumTorque)},
		{"Load factor", fmt.Sprintf("%.2f", d.LoadFactor)},
	})
}
