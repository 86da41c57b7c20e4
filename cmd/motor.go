package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var motorCmd = &cobra.Command{
	Use:   "motor",
	Short: "List the drive motors and their torque",
	Long: `List the drive motors of the mill with nominal and maximum torque.

Torque (kNm) = 9.5493 × power (kW) / nominal speed (rpm); the maximum
torque is 1.5 times the nominal one. The first motor of each train supplies
the gear ratio used for every stand of that train.

Examples:
  gorolling motor -f mill.yaml
  gorolling motor --set motor.motor-roughing-1.power=1800`,
	Run: runMotor,
}

func init() {
	rootCmd.AddCommand(motorCmd)
}

func runMotor(cmd *cobra.Command, args []string) {
	p, err := loadProject()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════════════════════════════════")
	fmt.Printf("     DRIVE MOTORS - %s\n", p.Name)
	fmt.Println("═══════════════════════════════════════════════════════════════════════════════════════════")
	fmt.Println()

	if len(p.Motors) == 0 {
		fmt.Println("  No motors defined.")
		fmt.Println()
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "Motor\tTrain\tPower\tNominal\tMax\tGear\tEff.\tTorque\tMax torque\t")
	fmt.Fprintln(w, "\t\tkW\trpm\trpm\t\t%\tkNm\tkNm\t")
	seen := make(map[string]bool)
	for _, m := range p.Motors {
		mark := ""
		if !seen[m.Train.String()] {
			seen[m.Train.String()] = true
			mark = " *"
		}
		fmt.Fprintf(w, "%s\t%s\t%.0f\t%.0f\t%.0f\t%.2f%s\t%.1f\t%.3f\t%.3f\t\n",
			m.ID, m.Train, m.Power, m.NominalRPM, m.MaxRPM, m.GearRatio, mark,
			m.Efficiency, m.NominalTorque, m.MaxTorque)
	}
	w.Flush()
	fmt.Println()
	fmt.Println("  * gear ratio applied to every stand of the train")
	fmt.Println()
}
