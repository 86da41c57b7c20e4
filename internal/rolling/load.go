package rolling

// vacuumTorqueTable maps cylinder diameter buckets (upper bound, mm) to no-load torque (kNm)
var vacuumTorqueTable = []struct {
	MaxDiameter float64
	Torque      float64
}{
	{350, 2.0},
	{400, 3.0},
	{450, 4.5},
	{500, 6.0},
	{550, 8.0},
	{600, 10.0},
	{650, 13.0},
	{700, 16.0},
	{750, 20.0},
}

// VacuumTorqueAbove is the no-load torque of cylinders larger than the table
const VacuumTorqueAbove = 25.0

// Load factors by stand position
const (
	LoadFactorEarlyRoughing = 0.20 // roughing passes 1 to 4
	LoadFactorLateRoughing  = 0.15
	LoadFactorOther         = 0.10
)

// VacuumTorque returns the torque (kNm) needed to turn the rolls with no bar in the gap
func VacuumTorque(cylinderDiameter float64) float64 {
	for _, row := range vacuumTorqueTable {
		if cylinderDiameter <= row.MaxDiameter {
			return row.Torque
		}
	}
	return VacuumTorqueAbove
}

// LoadFactor returns the utilisation assumed for a stand position
func LoadFactor(pos Position) float64 {
	if pos.Train == Roughing {
		if pos.PassNumber <= 4 {
			return LoadFactorEarlyRoughing
		}
		return LoadFactorLateRoughing
	}
	return LoadFactorOther
}
