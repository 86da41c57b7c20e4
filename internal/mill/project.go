package mill

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexiusacademia/gorolling/internal/rolling"
	"github.com/alexiusacademia/gorolling/internal/thermal"
)

// Lookup errors returned by the mutation operations
var (
	ErrUnknownStand = errors.New("mill: unknown stand")
	ErrUnknownMotor = errors.New("mill: unknown motor")
	ErrUnknownBlock = errors.New("mill: unknown block")
	ErrUnknownField = errors.New("mill: unknown field")
	ErrBadValue     = errors.New("mill: invalid field value")
	ErrUnknownStock = errors.New("mill: unknown stock kind")
)

// Stock is the cross-section kind of the raw material
type Stock int

const (
	Billet Stock = iota // square or rectangular
	RoundStock
)

func (s Stock) String() string {
	if s == RoundStock {
		return "round"
	}
	return "billet"
}

// ParseStock converts a stock kind name to a Stock
func ParseStock(name string) (Stock, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "billet", "square", "rectangular":
		return Billet, nil
	case "round":
		return RoundStock, nil
	}
	return Billet, fmt.Errorf("%w: %q", ErrUnknownStock, name)
}

// MarshalText encodes the stock kind by name
func (s Stock) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a stock kind name
func (s *Stock) UnmarshalText(text []byte) error {
	parsed, err := ParseStock(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// RawMaterial is the stock fed to the first roughing stand
type RawMaterial struct {
	Kind        Stock         `yaml:"kind"`
	Width       float64       `yaml:"width"`       // mm
	Height      float64       `yaml:"height"`      // mm
	Corner      float64       `yaml:"corner"`      // corner radius (mm)
	Length      float64       `yaml:"length"`      // mm
	Temperature float64       `yaml:"temperature"` // °C
	Steel       thermal.Steel `yaml:"steel"`
}

// ProcessConfig holds process-wide settings
type ProcessConfig struct {
	ThermalExpansionFactor float64 `yaml:"thermal_expansion_factor"`
	SampleMeasurement      float64 `yaml:"sample_measurement"`
	FinishDiameter         float64 `yaml:"finish_diameter"` // advisory, mm
}

// Losses are metallic yield losses in percent. Total is derived.
type Losses struct {
	Oxidation float64 `yaml:"oxidation"`
	Crop      float64 `yaml:"crop"`
	Cobble    float64 `yaml:"cobble"`
	Total     float64 `yaml:"-"`
}

func (l Losses) withTotal() Losses {
	l.Total = l.Oxidation + l.Crop + l.Cobble
	return l
}

// Motor drives the stands of one train
type Motor struct {
	ID         string        `yaml:"id"`
	Label      string        `yaml:"label"`
	Train      rolling.Train `yaml:"train"`
	Power      float64       `yaml:"power"`       // kW
	NominalRPM float64       `yaml:"nominal_rpm"` // rpm
	MaxRPM     float64       `yaml:"max_rpm"`     // rpm
	GearRatio  float64       `yaml:"gear_ratio"`
	Efficiency float64       `yaml:"efficiency"` // %

	NominalTorque float64 `yaml:"-"` // kNm
	MaxTorque     float64 `yaml:"-"` // kNm
}

// Block groups consecutive stands for bookkeeping only
type Block struct {
	ID            string  `yaml:"id"`
	Label         string  `yaml:"label"`
	Passes        int     `yaml:"passes"`
	StartDiameter float64 `yaml:"start_diameter"` // mm
	EndDiameter   float64 `yaml:"end_diameter"`   // mm
}

// Project is a snapshot of a whole mill. Operations in this package never
// modify a Project they receive; they return a new one.
type Project struct {
	Name    string          `yaml:"name"`
	Raw     RawMaterial     `yaml:"raw_material"`
	Process ProcessConfig   `yaml:"process"`
	Losses  Losses          `yaml:"losses"`
	Stands  []rolling.Stand `yaml:"stands"`
	Motors  []Motor         `yaml:"motors"`
	Blocks  []Block         `yaml:"blocks"`
}

func (p Project) clone() Project {
	p.Stands = append([]rolling.Stand(nil), p.Stands...)
	p.Motors = append([]Motor(nil), p.Motors...)
	p.Blocks = append([]Block(nil), p.Blocks...)
	return p
}

// Stand returns the stand with the given ID
func (p Project) Stand(id string) (rolling.Stand, bool) {
	i := p.standIndex(id)
	if i < 0 {
		return rolling.Stand{}, false
	}
	return p.Stands[i], true
}

// Motor returns the motor with the given ID
func (p Project) Motor(id string) (Motor, bool) {
	i := p.motorIndex(id)
	if i < 0 {
		return Motor{}, false
	}
	return p.Motors[i], true
}

// StandsIn returns the stands of a train in pass order
func (p Project) StandsIn(t rolling.Train) []rolling.Stand {
	var out []rolling.Stand
	for _, s := range p.Stands {
		if s.Train == t {
			out = append(out, s)
		}
	}
	return out
}

// Final returns the last stand of the mill, if any
func (p Project) Final() (rolling.Stand, bool) {
	if len(p.Stands) == 0 {
		return rolling.Stand{}, false
	}
	return p.Stands[len(p.Stands)-1], true
}

func (p Project) standIndex(id string) int {
	for i, s := range p.Stands {
		if s.ID == id {
			return i
		}
	}
	return -1
}

func (p Project) motorIndex(id string) int {
	for i, m := range p.Motors {
		if m.ID == id {
			return i
		}
	}
	return -1
}

func (p Project) blockIndex(id string) int {
	for i, b := range p.Blocks {
		if b.ID == id {
			return i
		}
	}
	return -1
}
