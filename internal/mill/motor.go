package mill

// TorqueConstant converts kW/rpm into kNm (60/2π)
const TorqueConstant = 9.5493

// PeakTorqueRatio is the maximum over nominal torque of a mill motor
const PeakTorqueRatio = 1.5

// MotorTorque returns the shaft torque (kNm) for a power (kW) at a speed (rpm)
func MotorTorque(power, rpm float64) float64 {
	if rpm <= 0 {
		return 0
	}
	return power * TorqueConstant / rpm
}

// withTorque recomputes the derived torque fields
func (m Motor) withTorque() Motor {
	m.NominalTorque = MotorTorque(m.Power, m.NominalRPM)
	m.MaxTorque = m.NominalTorque * PeakTorqueRatio
	return m
}

// NewMotor returns a motor with its torque fields filled in
func NewMotor(m Motor) Motor {
	return m.withTorque()
}
