package mill

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/alexiusacademia/gorolling/internal/caliber"
	"github.com/alexiusacademia/gorolling/internal/rolling"
	"github.com/alexiusacademia/gorolling/internal/thermal"
)

// fieldSetter parses a textual value into one field of T
type fieldSetter[T any] func(*T, string) error

func number[T any](field func(*T) *float64) fieldSetter[T] {
	return func(v *T, s string) error {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return fmt.Errorf("%w: %q is not a number", ErrBadValue, s)
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%w: %q is not finite", ErrBadValue, s)
		}
		*field(v) = f
		return nil
	}
}

func text[T any](field func(*T) *string) fieldSetter[T] {
	return func(v *T, s string) error {
		*field(v) = s
		return nil
	}
}

func integer[T any](field func(*T) *int) fieldSetter[T] {
	return func(v *T, s string) error {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("%w: %q is not an integer", ErrBadValue, s)
		}
		*field(v) = n
		return nil
	}
}

var rawFields = map[string]fieldSetter[RawMaterial]{
	"kind": func(r *RawMaterial, s string) error {
		k, err := ParseStock(s)
		if err != nil {
			return err
		}
		r.Kind = k
		return nil
	},
	"width":       number(func(r *RawMaterial) *float64 { return &r.Width }),
	"height":      number(func(r *RawMaterial) *float64 { return &r.Height }),
	"corner":      number(func(r *RawMaterial) *float64 { return &r.Corner }),
	"length":      number(func(r *RawMaterial) *float64 { return &r.Length }),
	"temperature": number(func(r *RawMaterial) *float64 { return &r.Temperature }),
	"steel": func(r *RawMaterial, s string) error {
		st, err := thermal.ParseSteel(s)
		if err != nil {
			return err
		}
		r.Steel = st
		return nil
	},
}

var processFields = map[string]fieldSetter[ProcessConfig]{
	"thermal_expansion_factor": number(func(c *ProcessConfig) *float64 { return &c.ThermalExpansionFactor }),
	"sample_measurement":       number(func(c *ProcessConfig) *float64 { return &c.SampleMeasurement }),
	"finish_diameter":          number(func(c *ProcessConfig) *float64 { return &c.FinishDiameter }),
}

var lossFields = map[string]fieldSetter[Losses]{
	"oxidation": number(func(l *Losses) *float64 { return &l.Oxidation }),
	"crop":      number(func(l *Losses) *float64 { return &l.Crop }),
	"cobble":    number(func(l *Losses) *float64 { return &l.Cobble }),
}

var toolFields = map[string]fieldSetter[rolling.Tool]{
	"channel": func(t *rolling.Tool, s string) error {
		ch, err := caliber.Parse(s)
		if err != nil {
			return err
		}
		t.Channel = ch
		return nil
	},
	"luz":               number(func(t *rolling.Tool) *float64 { return &t.Gap }),
	"luz_proj":          number(func(t *rolling.Tool) *float64 { return &t.ProjectedGap }),
	"radius":            number(func(t *rolling.Tool) *float64 { return &t.Radius }),
	"widening_factor":   number(func(t *rolling.Tool) *float64 { return &t.WideningFactor }),
	"cylinder_diameter": number(func(t *rolling.Tool) *float64 { return &t.CylinderDiameter }),
	"temperature":       number(func(t *rolling.Tool) *float64 { return &t.Temperature }),
	"motor_rpm":         number(func(t *rolling.Tool) *float64 { return &t.MotorRPM }),
	"distance_next":     number(func(t *rolling.Tool) *float64 { return &t.DistanceNext }),
}

var motorFields = map[string]fieldSetter[Motor]{
	"label":       text(func(m *Motor) *string { return &m.Label }),
	"power":       number(func(m *Motor) *float64 { return &m.Power }),
	"nominal_rpm": number(func(m *Motor) *float64 { return &m.NominalRPM }),
	"max_rpm":     number(func(m *Motor) *float64 { return &m.MaxRPM }),
	"gear_ratio":  number(func(m *Motor) *float64 { return &m.GearRatio }),
	"efficiency":  number(func(m *Motor) *float64 { return &m.Efficiency }),
}

var blockFields = map[string]fieldSetter[Block]{
	"label":          text(func(b *Block) *string { return &b.Label }),
	"passes":         integer(func(b *Block) *int { return &b.Passes }),
	"start_diameter": number(func(b *Block) *float64 { return &b.StartDiameter }),
	"end_diameter":   number(func(b *Block) *float64 { return &b.EndDiameter }),
}

// apply parses value into a scratch copy first so a bad value leaves v untouched
func apply[T any](fields map[string]fieldSetter[T], v *T, name, value string) error {
	set, ok := fields[strings.ToLower(name)]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	scratch := *v
	if err := set(&scratch, value); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	*v = scratch
	return nil
}

// SetRawField sets one raw material field from text
func SetRawField(p Project, name, value string) (Project, error) {
	raw := p.Raw
	if err := apply(rawFields, &raw, name, value); err != nil {
		return p, err
	}
	return SetRawMaterial(p, func(r *RawMaterial) { *r = raw }), nil
}

// SetProcessField sets one process field from text
func SetProcessField(p Project, name, value string) (Project, error) {
	cfg := p.Process
	if err := apply(processFields, &cfg, name, value); err != nil {
		return p, err
	}
	return SetProcess(p, func(c *ProcessConfig) { *c = cfg }), nil
}

// SetLossField sets one loss percentage from text
func SetLossField(p Project, name, value string) (Project, error) {
	losses := p.Losses
	if err := apply(lossFields, &losses, name, value); err != nil {
		return p, err
	}
	return SetLosses(p, func(l *Losses) { *l = losses }), nil
}

// SetStandField sets one tool field of a stand from text
func SetStandField(p Project, id, name, value string) (Project, error) {
	s, ok := p.Stand(id)
	if !ok {
		return p, fmt.Errorf("%w: %s", ErrUnknownStand, id)
	}
	tool := s.Tool
	if err := apply(toolFields, &tool, name, value); err != nil {
		return p, err
	}
	return UpdateStand(p, id, func(t *rolling.Tool) { *t = tool })
}

// SetMotorField sets one motor field from text
func SetMotorField(p Project, id, name, value string) (Project, error) {
	m, ok := p.Motor(id)
	if !ok {
		return p, fmt.Errorf("%w: %s", ErrUnknownMotor, id)
	}
	if err := apply(motorFields, &m, name, value); err != nil {
		return p, err
	}
	return UpdateMotor(p, id, func(dst *Motor) { *dst = m })
}

// SetBlockField sets one block field from text
func SetBlockField(p Project, id, name, value string) (Project, error) {
	i := p.blockIndex(id)
	if i < 0 {
		return p, fmt.Errorf("%w: %s", ErrUnknownBlock, id)
	}
	b := p.Blocks[i]
	if err := apply(blockFields, &b, name, value); err != nil {
		return p, err
	}
	return UpdateBlock(p, id, func(dst *Block) { *dst = b })
}

// Apply sets a field addressed by a dotted key:
// raw.<field>, process.<field>, losses.<field>,
// stand.<id>.<field>, motor.<id>.<field> or block.<id>.<field>.
func Apply(p Project, key, value string) (Project, error) {
	scope, rest, _ := strings.Cut(strings.TrimSpace(key), ".")
	switch strings.ToLower(scope) {
	case "raw":
		return SetRawField(p, rest, value)
	case "process":
		return SetProcessField(p, rest, value)
	case "losses":
		return SetLossField(p, rest, value)
	}

	id, name, ok := strings.Cut(rest, ".")
	if !ok {
		return p, fmt.Errorf("%w: %q", ErrUnknownField, key)
	}
	switch strings.ToLower(scope) {
	case "stand":
		return SetStandField(p, id, name, value)
	case "motor":
		return SetMotorField(p, id, name, value)
	case "block":
		return SetBlockField(p, id, name, value)
	}
	return p, fmt.Errorf("%w: %q", ErrUnknownField, key)
}

// FieldNames lists the editable field names per scope (raw, process, losses, stand, motor, block)
func FieldNames() map[string][]string {
	return map[string][]string{
		"raw":     keys(rawFields),
		"process": keys(processFields),
		"losses":  keys(lossFields),
		"stand":   keys(toolFields),
		"motor":   keys(motorFields),
		"block":   keys(blockFields),
	}
}

func keys[T any](m map[string]fieldSetter[T]) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
