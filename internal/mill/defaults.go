package mill

import (
	"fmt"

	"github.com/alexiusacademia/gorolling/internal/caliber"
	"github.com/alexiusacademia/gorolling/internal/rolling"
	"github.com/alexiusacademia/gorolling/internal/thermal"
)

// trainLayout describes the reference stands of one train
type trainLayout struct {
	train    rolling.Train
	gaps     []float64
	channels []caliber.Type
	temps    []float64
	rpm      []float64
	diameter float64
	radius   float64
	distance float64
}

// referenceMill is a 6 + 4 + 7 stand bar mill rolling a 130 mm billet
var referenceMill = []trainLayout{
	{
		train:    rolling.Roughing,
		gaps:     []float64{95, 80, 65, 55, 45, 38},
		channels: []caliber.Type{caliber.Box, caliber.Box, caliber.Oval, caliber.Round, caliber.Oval, caliber.Round},
		temps:    []float64{1100, 1090, 1080, 1070, 1060, 1050},
		rpm:      []float64{40, 50, 60, 70, 85, 100},
		diameter: 550,
		radius:   8,
		distance: 5.0,
	},
	{
		train:    rolling.Intermediate,
		gaps:     []float64{28, 22, 18, 14},
		channels: []caliber.Type{caliber.Oval, caliber.Round, caliber.Oval, caliber.Round},
		temps:    []float64{1040, 1030, 1020, 1010},
		rpm:      []float64{150, 200, 260, 340},
		diameter: 400,
		radius:   3,
		distance: 3.0,
	},
	{
		train:    rolling.Finishing,
		gaps:     []float64{12, 10, 8.5, 7, 6, 5, 4.2},
		channels: []caliber.Type{caliber.Oval, caliber.Round, caliber.Oval, caliber.Round, caliber.Oval, caliber.Round, caliber.Round},
		temps:    []float64{1000, 995, 990, 985, 980, 975, 970},
		rpm:      []float64{450, 550, 680, 850, 1050, 1300, 1600},
		diameter: 350,
		radius:   1.5,
		distance: 1.5,
	},
}

// referenceDrives lists the drive of each train's stands
var referenceDrives = []struct {
	train      rolling.Train
	power      float64
	rpm        float64
	maxRatio   float64
	gearRatio  float64
	efficiency float64
}{
	{rolling.Roughing, 1500, 1200, 1.25, 3.5, 95},
	{rolling.Intermediate, 800, 1500, 1.2, 2.8, 94},
	{rolling.Finishing, 500, 1800, 1.22, 2.0, 93},
}

// DefaultWideningFactor is the spread multiplier of every reference stand
const DefaultWideningFactor = 0.85

// Default builds the reference mill project with its cascade computed
func Default() Project {
	p := Project{
		Name: "HRS rolling mill",
		Raw: RawMaterial{
			Kind:        Billet,
			Width:       130,
			Height:      130,
			Corner:      5,
			Length:      12000,
			Temperature: 1150,
			Steel:       thermal.Carbon,
		},
		Process: ProcessConfig{
			ThermalExpansionFactor: thermal.CarbonDilation,
			SampleMeasurement:      2,
		},
		Losses: Losses{Oxidation: 1.5, Crop: 2.0, Cobble: 0.5}.withTotal(),
	}

	for _, layout := range referenceMill {
		for i, gap := range layout.gaps {
			p.Stands = append(p.Stands, rolling.Stand{
				ID:         fmt.Sprintf("%s-%d", layout.train, i+1),
				Train:      layout.train,
				PassNumber: i + 1,
				Tool: rolling.Tool{
					Channel:          layout.channels[i],
					Gap:              gap,
					ProjectedGap:     gap,
					Radius:           layout.radius,
					WideningFactor:   DefaultWideningFactor,
					CylinderDiameter: layout.diameter,
					Temperature:      layout.temps[i],
					MotorRPM:         layout.rpm[i],
					DistanceNext:     layout.distance,
				},
			})
		}
	}

	for _, d := range referenceDrives {
		for i := 0; i < len(p.StandsIn(d.train)); i++ {
			p.Motors = append(p.Motors, NewMotor(Motor{
				ID:         fmt.Sprintf("motor-%s-%d", d.train, i+1),
				Label:      fmt.Sprintf("Motor %s #%d", d.train, i+1),
				Train:      d.train,
				Power:      d.power,
				NominalRPM: d.rpm,
				MaxRPM:     d.rpm * d.maxRatio,
				GearRatio:  d.gearRatio,
				Efficiency: d.efficiency,
			}))
		}
	}

	return Recompute(p)
}
