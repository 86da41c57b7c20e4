package mill

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/alexiusacademia/gorolling/internal/caliber"
	"github.com/alexiusacademia/gorolling/internal/rolling"
)

// Seed returns the bar entering the first stand. Both stock kinds enter with
// area w·h; round stock only differs in the channel it is seen as coming from.
func (r RawMaterial) Seed() rolling.Bar {
	area := r.Width * r.Height
	if area < 0 {
		area = 0
	}
	channel := caliber.Box
	if r.Kind == RoundStock {
		channel = caliber.Round
	}
	return rolling.Bar{Area: area, Width: r.Width, Height: r.Height, Channel: channel}
}

// Environment returns the mill-wide cascade inputs. The first motor of a
// train supplies the gear ratio of all its stands.
func (p Project) Environment() rolling.Environment {
	ratios := make(map[rolling.Train]float64)
	for _, m := range p.Motors {
		if _, ok := ratios[m.Train]; !ok {
			ratios[m.Train] = m.GearRatio
		}
	}
	return rolling.Environment{
		Steel:          p.Raw.Steel,
		CarbonDilation: p.Process.ThermalExpansionFactor,
		GearRatios:     ratios,
	}
}

// Recompute re-runs the full cascade over the stand list and returns the
// resulting snapshot. It is idempotent.
func Recompute(p Project) Project {
	p = p.clone()
	p.Stands = rolling.Cascade(p.Raw.Seed(), p.Stands, p.Environment())
	p.Losses = p.Losses.withTotal()

	fields := logrus.Fields{"stands": len(p.Stands)}
	if last, ok := p.Final(); ok {
		fields["exit_area"] = last.Derived.ExitArea
		fields["exit_speed"] = last.Derived.ExitSpeed
	}
	logrus.WithFields(fields).Debug("cascade recomputed")
	return p
}

// SetRawMaterial applies edit to the raw material and recomputes the cascade
func SetRawMaterial(p Project, edit func(*RawMaterial)) Project {
	p = p.clone()
	edit(&p.Raw)
	return Recompute(p)
}

// SetProcess applies edit to the process config and recomputes the cascade
func SetProcess(p Project, edit func(*ProcessConfig)) Project {
	p = p.clone()
	edit(&p.Process)
	return Recompute(p)
}

// SetLosses applies edit to the losses and refreshes their total.
// Losses do not feed the rolling model, so the cascade is left alone.
func SetLosses(p Project, edit func(*Losses)) Project {
	p = p.clone()
	edit(&p.Losses)
	p.Losses = p.Losses.withTotal()
	return p
}

// UpdateStand applies edit to one stand's tool configuration and recomputes the cascade
func UpdateStand(p Project, id string, edit func(*rolling.Tool)) (Project, error) {
	i := p.standIndex(id)
	if i < 0 {
		return p, fmt.Errorf("%w: %s", ErrUnknownStand, id)
	}
	p = p.clone()
	edit(&p.Stands[i].Tool)
	return Recompute(p), nil
}

// UpdateMotor applies edit to one motor. Torque is refreshed when power or
// nominal speed changed; the cascade is recomputed since gear ratios feed it.
func UpdateMotor(p Project, id string, edit func(*Motor)) (Project, error) {
	i := p.motorIndex(id)
	if i < 0 {
		return p, fmt.Errorf("%w: %s", ErrUnknownMotor, id)
	}
	p = p.clone()
	before := p.Motors[i]
	edit(&p.Motors[i])
	after := p.Motors[i]
	if after.Power != before.Power || after.NominalRPM != before.NominalRPM {
		p.Motors[i] = after.withTorque()
	}
	return Recompute(p), nil
}

// AddStand appends a default stand at the end of a train and returns its ID
func AddStand(p Project, train rolling.Train) (Project, string) {
	p = p.clone()
	s := rolling.Stand{
		ID:         newID(),
		Train:      train,
		PassNumber: len(p.StandsIn(train)) + 1,
		Tool:       rolling.NewTool(),
	}
	p.Stands = rolling.SortCanonical(append(p.Stands, s))
	return Recompute(p), s.ID
}

// RemoveStand drops a stand and recomputes the cascade. The remaining stands
// keep their pass numbers, so a later AddStand may reuse a number still in
// use. Keeping at least one stand per train is left to the caller (see
// CanRemoveStand).
func RemoveStand(p Project, id string) (Project, error) {
	i := p.standIndex(id)
	if i < 0 {
		return p, fmt.Errorf("%w: %s", ErrUnknownStand, id)
	}

	p = p.clone()
	p.Stands = rolling.SortCanonical(append(p.Stands[:i:i], p.Stands[i+1:]...))
	return Recompute(p), nil
}

// CanRemoveStand reports whether removing the stand leaves its train with at least one stand
func CanRemoveStand(p Project, id string) bool {
	s, ok := p.Stand(id)
	if !ok {
		return false
	}
	return len(p.StandsIn(s.Train)) > 1
}

// AddBlock appends an empty block and returns its ID
func AddBlock(p Project) (Project, string) {
	p = p.clone()
	b := Block{
		ID:    newID(),
		Label: fmt.Sprintf("Block %d", len(p.Blocks)+1),
	}
	p.Blocks = append(p.Blocks, b)
	return p, b.ID
}

// RemoveBlock drops a block
func RemoveBlock(p Project, id string) (Project, error) {
	i := p.blockIndex(id)
	if i < 0 {
		return p, fmt.Errorf("%w: %s", ErrUnknownBlock, id)
	}
	p = p.clone()
	p.Blocks = append(p.Blocks[:i:i], p.Blocks[i+1:]...)
	return p, nil
}

// UpdateBlock applies edit to a block
func UpdateBlock(p Project, id string, edit func(*Block)) (Project, error) {
	i := p.blockIndex(id)
	if i < 0 {
		return p, fmt.Errorf("%w: %s", ErrUnknownBlock, id)
	}
	p = p.clone()
	edit(&p.Blocks[i])
	return p, nil
}

func newID() string {
	return uuid.New().String()[:8]
}
