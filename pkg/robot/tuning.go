package robot

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTuning is returned when a tuning value is out of range.
var ErrInvalidTuning = errors.New("invalid tuning")

// Tuning holds the hardware-specific calibration constants of the robot.
// The defaults are the values the robot competed with.
type Tuning struct {
	CycleMs int `json:"cycle_ms" yaml:"cycle_ms"` // operator control period

	DriveOffsetDeg float64 `json:"drive_offset_deg" yaml:"drive_offset_deg"` // wheel mounting angle
	LiteralMixing  bool    `json:"literal_mixing" yaml:"literal_mixing"`
	LiftButton     Power   `json:"lift_button" yaml:"lift_button"`
	Strafe         Power   `json:"strafe" yaml:"strafe"`
	ClawFast       Power   `json:"claw_fast" yaml:"claw_fast"`
	ClawSlow       Power   `json:"claw_slow" yaml:"claw_slow"`

	AutonDrive   Power `json:"auton_drive" yaml:"auton_drive"`
	AutonDriveMs int   `json:"auton_drive_ms" yaml:"auton_drive_ms"`
	AutonLift    Power `json:"auton_lift" yaml:"auton_lift"`
	AutonLiftMs  int   `json:"auton_lift_ms" yaml:"auton_lift_ms"`
}

// DefaultTuning returns the competition calibration.
func DefaultTuning() Tuning {
	return Tuning{
		CycleMs:        20,
		DriveOffsetDeg: 45,
		LiteralMixing:  true,
		LiftButton:     32,
		Strafe:         52,
		ClawFast:       127,
		ClawSlow:       33,
		AutonDrive:     70,
		AutonDriveMs:   600,
		AutonLift:      70,
		AutonLiftMs:    3000,
	}
}

// Cycle returns the operator control period.
func (t Tuning) Cycle() time.Duration {
	return time.Duration(t.CycleMs) * time.Millisecond
}

// AutonDriveHold returns how long the autonomous routine drives forward.
func (t Tuning) AutonDriveHold() time.Duration {
	return time.Duration(t.AutonDriveMs) * time.Millisecond
}

// AutonLiftHold returns how long the autonomous routine raises the lift.
func (t Tuning) AutonLiftHold() time.Duration {
	return time.Duration(t.AutonLiftMs) * time.Millisecond
}

// Validate checks that every power lies in [0, MaxPower] and every duration
// is usable.
func (t Tuning) Validate() error {
	powers := []struct {
		name string
		p    Power
	}{
		{"lift_button", t.LiftButton},
		{"strafe", t.Strafe},
		{"claw_fast", t.ClawFast},
		{"claw_slow", t.ClawSlow},
		{"auton_drive", t.AutonDrive},
		{"auton_lift", t.AutonLift},
	}
	for _, p := range powers {
		if p.p < 0 || p.p > MaxPower {
			return fmt.Errorf("%w: %s = %d, want 0..%d", ErrInvalidTuning, p.name, p.p, MaxPower)
		}
	}
	if t.CycleMs <= 0 {
		return fmt.Errorf("%w: cycle_ms = %d, want > 0", ErrInvalidTuning, t.CycleMs)
	}
	if t.AutonDriveMs < 0 || t.AutonLiftMs < 0 {
		return fmt.Errorf("%w: autonomous holds must not be negative", ErrInvalidTuning)
	}
	return nil
}
