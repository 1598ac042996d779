// Package arbiter resolves overlapping operator requests into one command
// per mechanism.
package arbiter

import "github.com/gwillem/clawbot/pkg/robot"

// LiftInput is one cycle of lift requests.
type LiftInput struct {
	Analog float64 // stick reading; pulling back raises the lift
	Up     bool
	Down   bool
}

// Lift resolves the lift stick and the up/down override buttons.
type Lift struct {
	ButtonPower robot.Power
}

// Resolve returns the command for both lift motors. Up wins over Down, and
// either button wins over the stick.
func (l Lift) Resolve(in LiftInput) robot.Power {
	switch {
	case in.Up:
		return l.ButtonPower.Clamp()
	case in.Down:
		return (-l.ButtonPower).Clamp()
	}
	return robot.ClampPower(-in.Analog)
}

// ClawInput is one cycle of claw requests.
type ClawInput struct {
	OpenFast  bool
	CloseFast bool
	OpenSlow  bool
	CloseSlow bool
}

// Claw resolves the four claw buttons.
type Claw struct {
	FastPower robot.Power
	SlowPower robot.Power
}

// Resolve returns the command for both claw motors: the first held button
// of open fast, close fast, open slow, close slow. With nothing held the
// claw stops.
func (c Claw) Resolve(in ClawInput) robot.Power {
	switch {
	case in.OpenFast:
		return c.FastPower.Clamp()
	case in.CloseFast:
		return (-c.FastPower).Clamp()
	case in.OpenSlow:
		return c.SlowPower.Clamp()
	case in.CloseSlow:
		return (-c.SlowPower).Clamp()
	}
	return 0
}

// StrafeInput is one cycle of D-pad strafe requests.
type StrafeInput struct {
	Left  bool
	Right bool
}

// Strafe replaces the stick drive with a fixed sideways move while the
// D-pad is held.
type Strafe struct {
	Power robot.Power
}

// Resolve returns base unless a strafe button is held. Left wins over
// Right.
func (s Strafe) Resolve(in StrafeInput, base robot.WheelSet) robot.WheelSet {
	p := s.Power.Clamp()
	switch {
	case in.Left:
		return robot.WheelSet{FrontRight: -p, FrontLeft: -p, RearRight: p, RearLeft: p}
	case in.Right:
		return robot.WheelSet{FrontLeft: p, FrontRight: p, RearLeft: -p, RearRight: -p}
	}
	return base
}

// Set bundles the arbiters of the robot.
type Set struct {
	Lift   Lift
	Claw   Claw
	Strafe Strafe
}

// NewSet returns the arbiters configured by t.
func NewSet(t robot.Tuning) Set {
	return Set{
		Lift:   Lift{ButtonPower: t.LiftButton},
		Claw:   Claw{FastPower: t.ClawFast, SlowPower: t.ClawSlow},
		Strafe: Strafe{Power: t.Strafe},
	}
}
