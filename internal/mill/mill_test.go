package mill

import (
	"testing"

	"github.com/alexiusacademia/gorolling/internal/caliber"
	"github.com/alexiusacademia/gorolling/internal/rolling"
	"github.com/alexiusacademia/gorolling/internal/thermal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func standIDs(p Project) []string {
	ids := make([]string, 0, len(p.Stands))
	for _, s := range p.Stands {
		ids = append(ids, s.ID)
	}
	return ids
}

func TestDefault_Layout(t *testing.T) {
	p := Default()

	assert.Len(t, p.StandsIn(rolling.Roughing), 6)
	assert.Len(t, p.StandsIn(rolling.Intermediate), 4)
	assert.Len(t, p.StandsIn(rolling.Finishing), 7)
	assert.Len(t, p.Motors, 17)
	assert.Empty(t, p.Blocks)
	assert.InDelta(t, 4.0, p.Losses.Total, 1e-12)

	for i := 1; i < len(p.Stands); i++ {
		assert.True(t, rolling.Less(p.Stands[i-1], p.Stands[i]), "stands out of order at %d", i)
	}
	assert.Equal(t, "roughing-1", p.Stands[0].ID)
	assert.Equal(t, "finishing-7", p.Stands[len(p.Stands)-1].ID)
}

func TestDefault_FirstRoughingStand(t *testing.T) {
	p := Default()
	s, ok := p.Stand("roughing-1")
	require.True(t, ok)

	d := s.Derived
	assert.InDelta(t, 16900, d.EntryArea, 1e-9)
	assert.Equal(t, 95.0, d.ExitHeight)
	assert.InDelta(t, 110.5, d.ExitWidth, 1e-9)
	assert.InDelta(t, 10287.55, d.ExitArea, 1e-6)
	assert.InDelta(t, 39.13, d.Reduction, 0.01)
	assert.InDelta(t, 1.643, d.Elongation, 1e-3)
	assert.Equal(t, 3.5, d.GearRatio)
	assert.Equal(t, thermal.CarbonDilation, d.ThermalDilation)
}

func TestDefault_EveryStandFullyDerived(t *testing.T) {
	p := Default()
	for _, s := range p.Stands {
		assert.Greater(t, s.Derived.ExitArea, 0.0, s.ID)
		assert.Greater(t, s.Derived.NeutralPointSpeed, 0.0, s.ID)
		assert.Greater(t, s.Derived.VacuumTorque, 0.0, s.ID)
		assert.Greater(t, s.Derived.LoadFactor, 0.0, s.ID)
	}
}

func TestMotorTorque(t *testing.T) {
	m := NewMotor(Motor{Power: 1500, NominalRPM: 1200})
	assert.InDelta(t, 11.937, m.NominalTorque, 1e-3)
	assert.InDelta(t, 17.905, m.MaxTorque, 1e-3)

	assert.Zero(t, MotorTorque(1500, 0))
}

func TestUpdateMotor_RefreshesTorque(t *testing.T) {
	p := Default()
	id := p.Motors[0].ID

	next, err := UpdateMotor(p, id, func(m *Motor) { m.Power = 3000 })
	require.NoError(t, err)
	m, _ := next.Motor(id)
	assert.InDelta(t, 3000*TorqueConstant/1200, m.NominalTorque, 1e-9)
	assert.InDelta(t, m.NominalTorque*1.5, m.MaxTorque, 1e-9)

	// the original snapshot is untouched
	orig, _ := p.Motor(id)
	assert.Equal(t, 1500.0, orig.Power)
}

func TestUpdateMotor_GearRatioFeedsCascade(t *testing.T) {
	p := Default()
	next, err := SetMotorField(p, "motor-roughing-1", "gear_ratio", "7")
	require.NoError(t, err)

	before, _ := p.Stand("roughing-2")
	after, _ := next.Stand("roughing-2")
	assert.Equal(t, 7.0, after.Derived.GearRatio)
	assert.InDelta(t, before.Derived.NeutralPointSpeed/2, after.Derived.NeutralPointSpeed, 1e-12)

	// only the first motor of a train drives the ratio
	next, err = SetMotorField(p, "motor-roughing-2", "gear_ratio", "7")
	require.NoError(t, err)
	after, _ = next.Stand("roughing-2")
	assert.Equal(t, 3.5, after.Derived.GearRatio)
}

func TestUpdateStand_PropagatesDownstream(t *testing.T) {
	p := Default()
	next, err := UpdateStand(p, "roughing-1", func(tool *rolling.Tool) { tool.WideningFactor = 0.9 })
	require.NoError(t, err)

	r1, _ := next.Stand("roughing-1")
	r2, _ := next.Stand("roughing-2")
	assert.InDelta(t, 117.0, r1.Derived.ExitWidth, 1e-9)
	assert.Equal(t, r1.Derived.ExitArea, r2.Derived.EntryArea)

	for _, id := range []string{"roughing-3", "roughing-4"} {
		before, _ := p.Stand(id)
		after, _ := next.Stand(id)
		assert.NotEqual(t, before.Derived.EntryArea, after.Derived.EntryArea, id)
	}
	before, _ := p.Stand("roughing-4")
	after, _ := next.Stand("roughing-4")
	assert.NotEqual(t, before.Derived.Reduction, after.Derived.Reduction)

	// the bar is re-anchored to the previous gap when it turns into the round
	// of roughing-4, so the finishing train no longer sees the change
	last, _ := next.Final()
	prevLast, _ := p.Final()
	assert.Equal(t, prevLast.Derived.EntryArea, last.Derived.EntryArea)

	unchanged, _ := p.Stand("roughing-1")
	assert.InDelta(t, 110.5, unchanged.Derived.ExitWidth, 1e-9)
}

func TestUpdateStand_Unknown(t *testing.T) {
	_, err := UpdateStand(Default(), "nope", func(*rolling.Tool) {})
	assert.ErrorIs(t, err, ErrUnknownStand)
}

func TestSetRawMaterial_ReseedsCascade(t *testing.T) {
	p := SetRawMaterial(Default(), func(r *RawMaterial) { r.Width = 150 })
	s, _ := p.Stand("roughing-1")
	assert.InDelta(t, 150*130, s.Derived.EntryArea, 1e-9)
	assert.InDelta(t, 150*0.85, s.Derived.ExitWidth, 1e-9)
}

func TestSetRawMaterial_RoundStock(t *testing.T) {
	p, err := SetRawField(Default(), "kind", "round")
	require.NoError(t, err)
	s, _ := p.Stand("roughing-1")
	assert.InDelta(t, 130.0*130, s.Derived.EntryArea, 1e-9)
	assert.False(t, s.Derived.Twisted)
}

func TestSetLosses_TotalOnly(t *testing.T) {
	p := Default()
	next := SetLosses(p, func(l *Losses) { l.Crop = 3 })
	assert.InDelta(t, 5.0, next.Losses.Total, 1e-12)
	assert.Equal(t, p.Stands, next.Stands)

	next, err := SetLossField(next, "oxidation", "0.5")
	require.NoError(t, err)
	assert.InDelta(t, 4.0, next.Losses.Total, 1e-12)
}

func TestAddRemoveStand_RestoresLayout(t *testing.T) {
	p := Default()

	added, id := AddStand(p, rolling.Intermediate)
	s, ok := added.Stand(id)
	require.True(t, ok)
	assert.Equal(t, 5, s.PassNumber)
	assert.Equal(t, caliber.Box, s.Channel)
	assert.Equal(t, 1.0, s.WideningFactor)
	assert.Len(t, added.Stands, len(p.Stands)+1)
	assert.Equal(t, "finishing-1", added.Stands[11].ID)

	removed, err := RemoveStand(added, id)
	require.NoError(t, err)
	assert.Equal(t, standIDs(p), standIDs(removed))
	assert.Equal(t, p.Stands, removed.Stands)
}

func TestRemoveStand_KeepsPassNumbers(t *testing.T) {
	p := Default()
	next, err := RemoveStand(p, "roughing-2")
	require.NoError(t, err)

	roughing := next.StandsIn(rolling.Roughing)
	require.Len(t, roughing, 5)
	passes := make([]int, len(roughing))
	for i, s := range roughing {
		passes[i] = s.PassNumber
	}
	assert.Equal(t, []int{1, 3, 4, 5, 6}, passes)
	assert.Equal(t, "roughing-3", roughing[1].ID)

	r5, _ := next.Stand("roughing-5")
	assert.Equal(t, 5, r5.PassNumber)
	assert.Equal(t, rolling.LoadFactorLateRoughing, r5.Derived.LoadFactor)

	// roughing-3 now takes its entry straight from roughing-1
	r1, _ := next.Stand("roughing-1")
	r3, _ := next.Stand("roughing-3")
	assert.Equal(t, r1.Derived.ExitArea, r3.Derived.EntryArea)

	// count+1 on add lands on a pass number already in use
	added, id := AddStand(next, rolling.Roughing)
	s, _ := added.Stand(id)
	assert.Equal(t, 6, s.PassNumber)
	r6, _ := added.Stand("roughing-6")
	assert.Equal(t, 6, r6.PassNumber)
}

func TestCanRemoveStand(t *testing.T) {
	p := Default()
	assert.True(t, CanRemoveStand(p, "intermediate-1"))
	assert.False(t, CanRemoveStand(p, "missing"))

	for _, id := range []string{"intermediate-1", "intermediate-2", "intermediate-3"} {
		var err error
		p, err = RemoveStand(p, id)
		require.NoError(t, err)
	}
	assert.False(t, CanRemoveStand(p, "intermediate-4"))
}

func TestBlocks_NoRecompute(t *testing.T) {
	p := Default()
	withBlock, id := AddBlock(p)
	require.Len(t, withBlock.Blocks, 1)
	assert.Equal(t, "Block 1", withBlock.Blocks[0].Label)
	assert.Equal(t, p.Stands, withBlock.Stands)

	withBlock, err := SetBlockField(withBlock, id, "passes", "4")
	require.NoError(t, err)
	assert.Equal(t, 4, withBlock.Blocks[0].Passes)

	cleared, err := RemoveBlock(withBlock, id)
	require.NoError(t, err)
	assert.Empty(t, cleared.Blocks)

	_, err = RemoveBlock(cleared, id)
	assert.ErrorIs(t, err, ErrUnknownBlock)
}

func TestRecompute_Idempotent(t *testing.T) {
	p := Default()
	assert.Equal(t, p, Recompute(p))
	assert.Equal(t, Recompute(p), Recompute(Recompute(p)))
}

func TestApply(t *testing.T) {
	p := Default()

	next, err := Apply(p, "stand.roughing-1.luz_proj", "90")
	require.NoError(t, err)
	s, _ := next.Stand("roughing-1")
	assert.Equal(t, 90.0, s.Derived.ExitHeight)

	next, err = Apply(next, "stand.roughing-1.channel", "oval")
	require.NoError(t, err)
	s, _ = next.Stand("roughing-1")
	assert.Equal(t, caliber.Oval, s.Channel)

	next, err = Apply(next, "process.thermal_expansion_factor", "1.02")
	require.NoError(t, err)
	s, _ = next.Stand("roughing-1")
	assert.Equal(t, 1.02, s.Derived.ThermalDilation)

	_, err = Apply(p, "stand.roughing-1.colour", "red")
	assert.ErrorIs(t, err, ErrUnknownField)

	_, err = Apply(p, "stand.roughing-1.luz", "wide")
	assert.ErrorIs(t, err, ErrBadValue)

	for _, v := range []string{"NaN", "Inf", "-inf", "+Infinity"} {
		_, err = Apply(p, "stand.roughing-1.motor_rpm", v)
		assert.ErrorIs(t, err, ErrBadValue, v)
	}

	_, err = Apply(p, "motor.none.power", "1")
	assert.ErrorIs(t, err, ErrUnknownMotor)

	_, err = Apply(p, "raw.steel", "bronze")
	assert.ErrorIs(t, err, thermal.ErrUnknownSteel)

	_, err = Apply(p, "stand.roughing-1.channel", "hexagon")
	assert.ErrorIs(t, err, caliber.ErrUnknownType)
}

func TestFieldNames(t *testing.T) {
	names := FieldNames()
	assert.Contains(t, names["stand"], "widening_factor")
	assert.Contains(t, names["motor"], "gear_ratio")
	assert.Contains(t, names["raw"], "steel")
}
