package rolling

import (
	"math"

	"github.com/alexiusacademia/gorolling/internal/caliber"
	"github.com/alexiusacademia/gorolling/internal/thermal"
)

// Roll derives the full state of one stand from the bar entering it.
// The incoming bar must already be oriented (see Orient). Roll is pure:
// out-of-domain inputs degrade to zeroed fields, never to NaN or a panic.
func Roll(in Bar, tool Tool, pos Position, cond Conditions) Pass {
	p := Pass{
		EntryWidth:   in.Width,
		EntryHeight:  in.Height,
		EntryArea:    in.Area,
		EntryGap:     in.Height,
		InitialWidth: in.Width,
	}

	p.ThermalDilation = dilation(cond, tool.Temperature)

	// Exit section: height set by the gap, width by the configured spread
	p.ExitHeight = tool.EffectiveGap()
	p.ExitWidth = in.Width * tool.WideningFactor
	p.ExitArea = caliber.Area(tool.Channel, p.ExitWidth, p.ExitHeight)

	// Deformation
	p.Reduction = Reduction(p.EntryArea, p.ExitArea)
	p.Elongation = Elongation(p.EntryArea, p.ExitArea)
	p.Spread = p.ExitWidth - p.EntryWidth
	p.DeformationCoeff = DeformationCoeff(p.EntryArea, p.ExitArea)

	// Groove
	p.ChannelWidth = caliber.ChannelWidth(tool.Channel, p.ExitWidth)
	p.ChannelArea = caliber.Area(tool.Channel, p.ChannelWidth, p.ExitHeight+2*tool.Radius)
	p.OccupiedArea = p.ExitArea
	p.HalfWidthHeight = p.ExitHeight / 2
	p.HalfBarHeight = p.ExitHeight / 2
	p.Perimeter = caliber.Perimeter(tool.Channel, p.ExitWidth, p.ExitHeight)

	p.FillRatio = ratio(p.ExitArea, p.ChannelArea)
	p.WidthToChannel = ratio(p.ExitWidth, p.ChannelWidth)
	p.WidthToHeight = ratio(p.ExitWidth, p.ExitHeight)

	// Diameters
	p.GapDepth = (tool.CylinderDiameter - tool.Gap) / 2
	p.DiameterGapBottom = tool.CylinderDiameter - 2*p.GapDepth
	p.WorkingDiameter = tool.CylinderDiameter - p.ExitHeight
	p.ProjectDiameter = p.WorkingDiameter * p.ThermalDilation
	p.CareerDiameter = tool.CylinderDiameter
	p.CylinderRelation = ratio(p.ExitHeight, tool.CylinderDiameter)

	// Bite
	p.ContactAngle = thermal.ContactAngle(p.EntryHeight, p.ExitHeight, p.WorkingDiameter)
	p.EffectiveAngle = p.ContactAngle
	p.EffectiveContactAngle = p.ContactAngle
	p.FrictionCoeff = thermal.Friction(tool.Temperature)
	p.GripAngle = thermal.GripAngle(p.FrictionCoeff)
	p.NeutralPoint = thermal.NeutralPoint(p.ContactAngle, p.FrictionCoeff)
	if p.GripAngle > 0 {
		p.ContactOverGrip = p.ContactAngle / p.GripAngle * 100
	}
	p.ContactLength = ContactLength(p.WorkingDiameter, p.EntryHeight, p.ExitHeight)

	// Kinematics
	p.GearRatio = cond.GearRatio
	p.TransmissionRatio = cond.GearRatio
	p.NeutralPointSpeed = NeutralPointSpeed(tool.MotorRPM, p.WorkingDiameter, p.GearRatio)
	p.ExitSpeed = ExitSpeed(p.EntryArea, p.ExitArea, p.NeutralPointSpeed)
	if p.ExitSpeed > 0 && tool.DistanceNext > 0 {
		p.TimeToNext = tool.DistanceNext / p.ExitSpeed
	}

	// Load
	p.FlowResistance = thermal.FlowResistance(tool.Temperature)
	p.MaxPressure = p.FlowResistance * (1 + p.FrictionCoeff) * (1 + 0.5*p.DeformationCoeff)
	meanWidth := (p.EntryWidth + p.ExitWidth) / 2
	p.RollingForce = RollingForce(p.MaxPressure, p.ContactLength, meanWidth)
	p.VacuumTorque = VacuumTorque(tool.CylinderDiameter)
	p.LoadFactor = LoadFactor(pos)

	return p
}

func dilation(cond Conditions, temperature float64) float64 {
	if temperature <= 0 || cond.Steel == thermal.Carbon {
		if cond.CarbonDilation > 0 {
			return cond.CarbonDilation
		}
		return thermal.CarbonDilation
	}
	return thermal.Dilation(cond.Steel, temperature)
}

// Reduction returns the area reduction in percent
func Reduction(entryArea, exitArea float64) float64 {
	if entryArea <= 0 {
		return 0
	}
	return (entryArea - exitArea) / entryArea * 100
}

// Elongation returns entry area over exit area
func Elongation(entryArea, exitArea float64) float64 {
	if exitArea <= 0 {
		return 0
	}
	return entryArea / exitArea
}

// DeformationCoeff returns the logarithmic (true) strain of the pass
func DeformationCoeff(entryArea, exitArea float64) float64 {
	if entryArea <= 0 || exitArea <= 0 {
		return 0
	}
	return math.Log(entryArea / exitArea)
}

// NeutralPointSpeed returns the roll surface speed (m/s) at the working diameter
func NeutralPointSpeed(motorRPM, workDiameter, gearRatio float64) float64 {
	if gearRatio <= 0 || workDiameter <= 0 {
		return 0
	}
	rollRPM := motorRPM / gearRatio
	// mm/min to m/s
	return math.Pi * workDiameter * rollRPM / 60000
}

// ExitSpeed applies volume constancy to the neutral point speed
func ExitSpeed(entryArea, exitArea, neutralSpeed float64) float64 {
	if exitArea <= 0 {
		return 0
	}
	return entryArea / exitArea * neutralSpeed
}

// ContactLength returns the projected arc of contact (mm)
func ContactLength(workDiameter, entryHeight, exitHeight float64) float64 {
	dh := entryHeight - exitHeight
	if dh <= 0 || workDiameter <= 0 {
		return 0
	}
	return math.Sqrt(workDiameter / 2 * dh)
}

// RollingForce returns the separating force (MN)
func RollingForce(maxPressure, contactLength, meanWidth float64) float64 {
	// MPa·mm² = N
	return maxPressure * contactLength * meanWidth / 1e6
}

func ratio(num, den float64) float64 {
	if den <= 0 {
		return 0
	}
	return num / den
}
