package thermal

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Hot-rolling constants

const (
	// CarbonDilation is the fixed thermal dilation factor for carbon and low-alloy steel
	CarbonDilation = 1.013

	// ExpansionCoeff is the approximate linear expansion coefficient of alloy steel (1/°C)
	ExpansionCoeff = 1.2e-5

	// SteelDensity in g/mm³
	SteelDensity = 0.00785
)

// Friction coefficient bands (°C thresholds are exclusive)
const (
	FrictionAbove1000 = 0.35
	FrictionAbove800  = 0.40
	FrictionCold      = 0.45
)

// Base flow resistance of hot steel in MPa
const (
	ResistanceAbove1000 = 80.0
	ResistanceAbove900  = 100.0
	ResistanceCold      = 120.0
)

// Steel is the steel class of the stock being rolled
type Steel int

const (
	Carbon Steel = iota
	HighAlloy
)

// ErrUnknownSteel is returned when a steel class name cannot be parsed
var ErrUnknownSteel = errors.New("unknown steel class")

func (s Steel) String() string {
	switch s {
	case Carbon:
		return "carbon"
	case HighAlloy:
		return "high_alloy"
	}
	return fmt.Sprintf("Steel(%d)", int(s))
}

// ParseSteel converts a steel class name to a Steel
func ParseSteel(name string) (Steel, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "carbon":
		return Carbon, nil
	case "high_alloy", "high-alloy", "alloy":
		return HighAlloy, nil
	}
	return Carbon, fmt.Errorf("%w: %q", ErrUnknownSteel, name)
}

// MarshalText encodes the steel class by name
func (s Steel) MarshalText() ([]byte, error) {
	if s != Carbon && s != HighAlloy {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSteel, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText decodes a steel class name
func (s *Steel) UnmarshalText(text []byte) error {
	parsed, err := ParseSteel(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Dilation returns the thermal dilation factor applied to roll diameters.
// Carbon steel uses a fixed constant; alloy steel grows linearly with temperature.
func Dilation(steel Steel, temperature float64) float64 {
	if steel == Carbon {
		return CarbonDilation
	}
	return 1 + ExpansionCoeff*temperature
}

// Friction returns the roll/bar friction coefficient for a stand temperature
func Friction(temperature float64) float64 {
	if temperature > 1000 {
		return FrictionAbove1000
	}
	if temperature > 800 {
		return FrictionAbove800
	}
	return FrictionCold
}

// FlowResistance returns the base flow resistance of hot steel (MPa)
func FlowResistance(temperature float64) float64 {
	if temperature > 1000 {
		return ResistanceAbove1000
	}
	if temperature > 900 {
		return ResistanceAbove900
	}
	return ResistanceCold
}

// ContactAngle returns the roll bite angle (rad) for a height draft on a working diameter.
// Returns 0 when there is no draft or the diameter is not positive.
func ContactAngle(entryHeight, exitHeight, workDiameter float64) float64 {
	dh := entryHeight - exitHeight
	if dh <= 0 || workDiameter <= 0 {
		return 0
	}
	c := 1 - dh/workDiameter
	if c < -1 {
		// draft larger than the diameter, clamp to the acos domain
		c = -1
	}
	return math.Acos(c)
}

// GripAngle returns the maximum bite angle (rad) the friction allows
func GripAngle(friction float64) float64 {
	return math.Atan(friction)
}

// NeutralPoint returns the angular position (rad) of the no-slip point on the arc of contact
func NeutralPoint(contactAngle, friction float64) float64 {
	if friction <= 0 {
		return 0
	}
	return contactAngle/2 - contactAngle/(4*friction)
}

// FinishDiameter returns the finishing groove diameter (mm) of a round rebar
// with the given nominal linear mass (kg/m), hot dimension included.
func FinishDiameter(linearMass float64) float64 {
	if linearMass <= 0 {
		return 0
	}
	return math.Sqrt(4*linearMass/(math.Pi*SteelDensity)) * CarbonDilation
}
