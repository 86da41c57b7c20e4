package rolling

import (
	"github.com/alexiusacademia/gorolling/internal/caliber"
	"github.com/alexiusacademia/gorolling/internal/thermal"
)

// Tool is the user-editable configuration of one stand: groove, gap and drive
type Tool struct {
	Channel          caliber.Type `yaml:"channel"`
	Gap              float64      `yaml:"luz"`               // nominal roll gap (mm)
	ProjectedGap     float64      `yaml:"luz_proj"`          // thermally projected gap (mm), 0 = use Gap
	Radius           float64      `yaml:"radius"`            // radius of concordance (mm)
	WideningFactor   float64      `yaml:"widening_factor"`   // exit width / entry width
	CylinderDiameter float64      `yaml:"cylinder_diameter"` // mm
	Temperature      float64      `yaml:"temperature"`       // °C
	MotorRPM         float64      `yaml:"motor_rpm"`
	DistanceNext     float64      `yaml:"distance_next"` // m
}

// EffectiveGap is the exit height the stand forms
func (t Tool) EffectiveGap() float64 {
	if t.ProjectedGap > 0 {
		return t.ProjectedGap
	}
	return t.Gap
}

// NewTool returns the configuration of a freshly inserted stand
func NewTool() Tool {
	return Tool{Channel: caliber.Box, WideningFactor: 1.0}
}

// Stand is one pass of the mill: its place in the line, its tool
// configuration and the state derived for it by the last cascade.
type Stand struct {
	ID         string `yaml:"id"`
	Train      Train  `yaml:"train"`
	PassNumber int    `yaml:"pass"`
	Tool       `yaml:",inline"`

	Derived Pass `yaml:"-"`
}

// Position locates a stand inside the mill
type Position struct {
	Train      Train
	PassNumber int
}

// Position returns the stand's train and pass number
func (s Stand) Position() Position {
	return Position{Train: s.Train, PassNumber: s.PassNumber}
}

// Bar is the cross-section carried from one stand to the next
type Bar struct {
	Area    float64 // mm²
	Width   float64 // mm
	Height  float64 // mm
	Channel caliber.Type
}

// Conditions holds the mill-wide inputs a single pass needs besides its tool
type Conditions struct {
	GearRatio float64
	Steel     thermal.Steel

	// CarbonDilation overrides thermal.CarbonDilation when positive
	CarbonDilation float64
}

// Pass holds every quantity derived for a stand
type Pass struct {
	// Bar at entry
	EntryWidth   float64 // mm
	EntryHeight  float64 // mm
	EntryArea    float64 // mm²
	EntryGap     float64 // mm
	InitialWidth float64 // mm
	Twisted      bool    // bar turned 90° by the guides before this stand

	// Bar at exit
	ExitWidth  float64 // mm
	ExitHeight float64 // mm
	ExitArea   float64 // mm²

	// Deformation
	Reduction        float64 // %
	Elongation       float64
	Spread           float64 // mm
	DeformationCoeff float64 // ln(A0/A1)
	OccupiedArea     float64 // mm²
	ChannelWidth     float64 // mm
	ChannelArea      float64 // mm²
	HalfWidthHeight  float64 // mm
	HalfBarHeight    float64 // mm
	Perimeter        float64 // mm

	// Pass parameters
	FillRatio         float64 // bar area / channel area
	WidthToChannel    float64 // bar width / channel width
	WidthToHeight     float64 // bar width / bar height
	CylinderRelation  float64 // exit height / cylinder diameter
	GearRatio         float64
	TransmissionRatio float64

	// Diameters (mm)
	GapDepth          float64
	DiameterGapBottom float64
	WorkingDiameter   float64
	ProjectDiameter   float64
	CareerDiameter    float64
	ThermalDilation   float64

	// Bite
	ContactAngle          float64 // rad
	EffectiveAngle        float64 // rad
	EffectiveContactAngle float64 // rad
	FrictionCoeff         float64
	GripAngle             float64 // rad
	NeutralPoint          float64 // rad
	ContactOverGrip       float64 // %
	ContactLength         float64 // mm

	// Kinematics
	NeutralPointSpeed float64 // m/s
	ExitSpeed         float64 // m/s
	TimeToNext        float64 // s

	// Load
	FlowResistance float64 // MPa
	MaxPressure    float64 // MPa
	RollingForce   float64 // MN
	VacuumTorque   float64 // kNm
	LoadFactor     float64
}

// Exit returns the bar leaving the stand
func (p Pass) Exit(channel caliber.Type) Bar {
	return Bar{Area: p.ExitArea, Width: p.ExitWidth, Height: p.ExitHeight, Channel: channel}
}
