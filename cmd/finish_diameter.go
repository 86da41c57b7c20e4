package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gorolling/internal/caliber"
	"github.com/alexiusacademia/gorolling/internal/thermal"
	"github.com/spf13/cobra"
)

var finishMass float64

var finishDiameterCmd = &cobra.Command{
	Use:   "finish-diameter",
	Short: "Finishing groove diameter of a round rebar from its linear mass",
	Long: `Calculate the diameter of the finishing round groove for a rebar of a
given nominal linear mass, including hot dilation:

  d = √(4 · m / (π · 0.00785)) · 1.013

where m is the linear mass in kg/m and 0.00785 kg/(m·mm²) the density of steel.

Examples:
  # 12 mm rebar (0.888 kg/m)
  gorolling finish-diameter --mass 0.888`,
	Run: runFinishDiameter,
}

func init() {
	rootCmd.AddCommand(finishDiameterCmd)

	finishDiameterCmd.Flags().Float64VarP(&finishMass, "mass", "m", 0, "Nominal linear mass (kg/m) [required]")
	finishDiameterCmd.MarkFlagRequired("mass")
}

func runFinishDiameter(cmd *cobra.Command, args []string) {
	if finishMass <= 0 {
		fmt.Println("Error: --mass must be positive")
		return
	}

	d := thermal.FinishDiameter(finishMass)
	cold := d / thermal.CarbonDilation

	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Linear mass:\t%.3f kg/m\n", finishMass)
	fmt.Fprintf(w, "  Cold diameter:\t%.2f mm\n", cold)
	fmt.Fprintf(w, "  Hot groove diameter:\t%.2f mm\n", d)
	fmt.Fprintf(w, "  Groove area:\t%.2f mm²\n", caliber.Area(caliber.Round, d, d))
	w.Flush()
	fmt.Println()
}
