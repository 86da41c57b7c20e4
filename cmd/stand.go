package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gorolling/internal/caliber"
	"github.com/alexiusacademia/gorolling/internal/mill"
	"github.com/alexiusacademia/gorolling/internal/rolling"
	"github.com/spf13/cobra"
)

var (
	standTrain    string
	standChannel  string
	standGap      float64
	standDiameter float64
	standRPM      float64
	standSave     string
)

var standCmd = &cobra.Command{
	Use:   "stand",
	Short: "Add or remove stands",
	Long: `Add a stand at the end of a train or remove a stand from the mill.

Changes are written back to the project file given with --file, or to the
file given with --save. Without either, the resulting schedule is printed
but nothing is persisted.`,
}

var standAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Append a stand to a train",
	Long: `Append a stand as the last pass of a train.

A new stand starts as a box groove with a widening factor of 1.0 and every
other setting at zero. When --channel is given the widening factor usual
for that groove is suggested instead.

Examples:
  # Add a finishing stand to a project file
  gorolling stand add -f mill.yaml --train finishing --channel round --luz 3.8

  # Try a new roughing stand on the reference mill without saving
  gorolling stand add --train roughing`,
	Run: runStandAdd,
}

var standRemoveCmd = &cobra.Command{
	Use:   "remove <stand-id>",
	Short: "Remove a stand from its train",
	Long: `Remove a stand from the mill. The remaining stands keep their pass
numbers. The last stand of a train cannot be removed.

A stand added to the same train later is numbered after the count of its
stands, which may match a stand already there. Such a project is not saved.

Examples:
  gorolling stand remove -f mill.yaml intermediate-4`,
	Args: cobra.ExactArgs(1),
	Run:  runStandRemove,
}

func init() {
	rootCmd.AddCommand(standCmd)
	standCmd.AddCommand(standAddCmd)
	standCmd.AddCommand(standRemoveCmd)

	standCmd.PersistentFlags().StringVar(&standSave, "save", "", "Write the project to this file instead of --file")

	standAddCmd.Flags().StringVarP(&standTrain, "train", "t", "", "Train: roughing, intermediate or finishing [required]")
	standAddCmd.Flags().StringVarP(&standChannel, "channel", "c", "", "Channel type (box, oval, round, square, diamond, flat, angle)")
	standAddCmd.Flags().Float64Var(&standGap, "luz", 0, "Roll gap (mm)")
	standAddCmd.Flags().Float64Var(&standDiameter, "diameter", 0, "Cylinder diameter (mm)")
	standAddCmd.Flags().Float64Var(&standRPM, "rpm", 0, "Motor speed (rpm)")

	standAddCmd.MarkFlagRequired("train")
}

func runStandAdd(cmd *cobra.Command, args []string) {
	train, err := rolling.ParseTrain(standTrain)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	var channel caliber.Type
	if standChannel != "" {
		channel, err = caliber.Parse(standChannel)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
	}

	p, err := loadProject()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	p, id := mill.AddStand(p, train)
	p, err = mill.UpdateStand(p, id, func(t *rolling.Tool) {
		if standChannel != "" {
			t.Channel = channel
			t.WideningFactor = caliber.DefaultWideningFactor(channel)
		}
		t.Gap = standGap
		t.ProjectedGap = standGap
		t.CylinderDiameter = standDiameter
		t.MotorRPM = standRPM
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	s, _ := p.Stand(id)
	fmt.Printf("\n  Added stand %s as %s pass %d\n", s.ID, s.Train, s.PassNumber)
	printStand(s)
	persist(p)
}

func runStandRemove(cmd *cobra.Command, args []string) {
	id := args[0]

	p, err := loadProject()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	s, ok := p.Stand(id)
	if !ok {
		fmt.Printf("Error: %v: %s\n", mill.ErrUnknownStand, id)
		return
	}
	if !mill.CanRemoveStand(p, id) {
		fmt.Printf("Error: %s is the only stand of the %s train\n", id, s.Train)
		return
	}

	p, err = mill.RemoveStand(p, id)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("\n  Removed stand %s from the %s train\n", id, s.Train)
	printSchedule(p)
	persist(p)
}

func persist(p mill.Project) {
	saved, err := saveProject(standSave, p)
	switch {
	case err != nil:
		fmt.Printf("Error saving project: %v\n", err)
	case !saved:
		fmt.Println("  ⚠ No --file or --save given: changes were not saved")
	default:
		fmt.Println("  ✓ Project saved")
	}
	fmt.Println()
}
