package rolling

import (
	"math"
	"testing"

	"github.com/alexiusacademia/gorolling/internal/caliber"
	"github.com/alexiusacademia/gorolling/internal/thermal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func firstRoughingTool() Tool {
	return Tool{
		Channel:          caliber.Box,
		Gap:              95,
		ProjectedGap:     95,
		Radius:           8,
		WideningFactor:   0.85,
		CylinderDiameter: 550,
		Temperature:      1100,
		MotorRPM:         40,
		DistanceNext:     5,
	}
}

func TestRoll_FirstRoughingPass(t *testing.T) {
	in := Bar{Area: 16900, Width: 130, Height: 130, Channel: caliber.Box}
	p := Roll(in, firstRoughingTool(), Position{Train: Roughing, PassNumber: 1}, Conditions{GearRatio: 3.5})

	assert.Equal(t, 95.0, p.ExitHeight)
	assert.InDelta(t, 110.5, p.ExitWidth, 1e-9)
	assert.InDelta(t, 10287.55, p.ExitArea, 1e-6)
	assert.InDelta(t, 39.13, p.Reduction, 0.01)
	assert.InDelta(t, 1.6431, p.Elongation, 1e-3)
	assert.InDelta(t, 16900/10287.55, p.Elongation, 1e-9)
	assert.InDelta(t, -19.5, p.Spread, 1e-9)
	assert.InDelta(t, math.Log(16900/10287.55), p.DeformationCoeff, 1e-12)

	assert.InDelta(t, 110.5*1.04, p.ChannelWidth, 1e-9)
	assert.InDelta(t, 110.5*1.04*(95+16)*0.98, p.ChannelArea, 1e-6)

	assert.InDelta(t, 227.5, p.GapDepth, 1e-9)
	assert.InDelta(t, 95.0, p.DiameterGapBottom, 1e-9)
	assert.InDelta(t, 455.0, p.WorkingDiameter, 1e-9)
	assert.InDelta(t, 455*1.013, p.ProjectDiameter, 1e-9)
	assert.InDelta(t, math.Acos(1-35.0/455), p.ContactAngle, 1e-12)

	wantNPS := math.Pi * 455 * (40 / 3.5) / 60000
	assert.InDelta(t, wantNPS, p.NeutralPointSpeed, 1e-12)
	assert.InDelta(t, p.Elongation*wantNPS, p.ExitSpeed, 1e-12)
	assert.InDelta(t, 5/p.ExitSpeed, p.TimeToNext, 1e-9)

	assert.Equal(t, 0.35, p.FrictionCoeff)
	wantPressure := 80 * 1.35 * (1 + 0.5*p.DeformationCoeff)
	assert.InDelta(t, wantPressure, p.MaxPressure, 1e-9)
	contact := math.Sqrt(455.0 / 2 * 35)
	assert.InDelta(t, contact, p.ContactLength, 1e-9)
	assert.InDelta(t, wantPressure*contact*(130+110.5)/2/1e6, p.RollingForce, 1e-12)

	assert.Equal(t, 8.0, p.VacuumTorque)
	assert.Equal(t, 0.20, p.LoadFactor)
	assert.Equal(t, 3.5, p.GearRatio)
	assert.Equal(t, 3.5, p.TransmissionRatio)
}

func TestRoll_ElongationAndReductionIdentity(t *testing.T) {
	tool := firstRoughingTool()
	for _, area := range []float64{5000, 10287.55, 20000} {
		in := Bar{Area: area, Width: 130, Height: 130}
		p := Roll(in, tool, Position{Train: Intermediate, PassNumber: 2}, Conditions{GearRatio: 1})
		assert.InDelta(t, area/p.ExitArea, p.Elongation, 1e-12)
		assert.InDelta(t, (area-p.ExitArea)/area*100, p.Reduction, 1e-12)
	}

	in := Bar{Area: 10287.55, Width: 130, Height: 130}
	p := Roll(in, tool, Position{Train: Intermediate, PassNumber: 2}, Conditions{GearRatio: 1})
	assert.InDelta(t, 0, p.Reduction, 1e-9)
}

func TestRoll_UsesGapWhenNoProjection(t *testing.T) {
	tool := firstRoughingTool()
	tool.ProjectedGap = 0
	tool.Gap = 90
	p := Roll(Bar{Area: 16900, Width: 130, Height: 130}, tool, Position{}, Conditions{GearRatio: 1})
	assert.Equal(t, 90.0, p.ExitHeight)
}

func TestRoll_DegradesWithoutNaN(t *testing.T) {
	p := Roll(Bar{}, Tool{Gap: -5, WideningFactor: -1}, Position{}, Conditions{})

	assert.Zero(t, p.ExitArea)
	assert.Zero(t, p.Reduction)
	assert.Zero(t, p.Elongation)
	assert.Zero(t, p.DeformationCoeff)
	assert.Zero(t, p.NeutralPointSpeed)
	assert.Zero(t, p.ExitSpeed)
	assert.Zero(t, p.TimeToNext)
	assert.Equal(t, -5.0, p.ExitHeight)

	for name, v := range map[string]float64{
		"pressure": p.MaxPressure,
		"force":    p.RollingForce,
		"project":  p.ProjectDiameter,
		"fill":     p.FillRatio,
	} {
		assert.False(t, math.IsNaN(v) || math.IsInf(v, 0), name)
	}
}

func TestRoll_ThermalDilation(t *testing.T) {
	tool := firstRoughingTool()
	in := Bar{Area: 16900, Width: 130, Height: 130}

	p := Roll(in, tool, Position{}, Conditions{Steel: thermal.HighAlloy})
	assert.InDelta(t, 1+1.2e-5*1100, p.ThermalDilation, 1e-12)

	p = Roll(in, tool, Position{}, Conditions{Steel: thermal.Carbon, CarbonDilation: 1.02})
	assert.Equal(t, 1.02, p.ThermalDilation)

	tool.Temperature = 0
	p = Roll(in, tool, Position{}, Conditions{Steel: thermal.HighAlloy})
	assert.Equal(t, thermal.CarbonDilation, p.ThermalDilation)
}

func TestVacuumTorque_Boundaries(t *testing.T) {
	tests := []struct {
		diameter float64
		want     float64
	}{
		{100, 2.0},
		{350, 2.0},
		{351, 3.0},
		{400, 3.0},
		{450, 4.5},
		{500, 6.0},
		{550, 8.0},
		{600, 10.0},
		{650, 13.0},
		{700, 16.0},
		{750, 20.0},
		{751, 25.0},
		{2000, 25.0},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, VacuumTorque(tc.diameter), "diameter %.0f", tc.diameter)
	}
}

func TestLoadFactor(t *testing.T) {
	assert.Equal(t, 0.20, LoadFactor(Position{Train: Roughing, PassNumber: 1}))
	assert.Equal(t, 0.20, LoadFactor(Position{Train: Roughing, PassNumber: 4}))
	assert.Equal(t, 0.15, LoadFactor(Position{Train: Roughing, PassNumber: 5}))
	assert.Equal(t, 0.10, LoadFactor(Position{Train: Intermediate, PassNumber: 1}))
	assert.Equal(t, 0.10, LoadFactor(Position{Train: Finishing, PassNumber: 7}))
}

func TestTwisted_ExactPairs(t *testing.T) {
	want := map[[2]caliber.Type]bool{
		{caliber.Oval, caliber.Round}:     true,
		{caliber.Oval, caliber.Square}:    true,
		{caliber.Oval, caliber.Diamond}:   true,
		{caliber.Oval, caliber.Oval}:      true,
		{caliber.Flat, caliber.Round}:     true,
		{caliber.Flat, caliber.Square}:    true,
		{caliber.Flat, caliber.Diamond}:   true,
		{caliber.Flat, caliber.Oval}:      true,
		{caliber.Diamond, caliber.Square}: true,
	}
	for _, prev := range caliber.Types() {
		for _, curr := range caliber.Types() {
			assert.Equal(t, want[[2]caliber.Type{prev, curr}], Twisted(prev, curr), "%s -> %s", prev, curr)
		}
	}
}

func TestOrient(t *testing.T) {
	bar := Bar{Area: 100, Width: 40, Height: 20, Channel: caliber.Oval}
	got := Orient(bar, caliber.Round)
	assert.Equal(t, 20.0, got.Width)
	assert.Equal(t, 40.0, got.Height)
	assert.Equal(t, 100.0, got.Area)

	got = Orient(bar, caliber.Box)
	assert.Equal(t, bar, got)
}

func TestParseTrain(t *testing.T) {
	tr, err := ParseTrain("acabador")
	require.NoError(t, err)
	assert.Equal(t, Finishing, tr)

	_, err = ParseTrain("cooling-bed")
	assert.ErrorIs(t, err, ErrUnknownTrain)
}
