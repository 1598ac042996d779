package teleop

import (
	"github.com/gwillem/clawbot/pkg/arbiter"
	"github.com/gwillem/clawbot/pkg/drive"
	"github.com/gwillem/clawbot/pkg/gamepad"
	"github.com/gwillem/clawbot/pkg/robot"
)

// Mapping turns one controller snapshot into commands for every channel.
//
// Right stick translates, left stick X rotates, left stick Y drives the
// lift. Up/Down override the lift, Left/Right strafe, and the bumpers and
// triggers run the claw (L1 open fast, R1 close fast, L2 open slow, R2
// close slow).
type Mapping struct {
	Drive    drive.Mecanum
	Arbiters arbiter.Set
}

// NewMapping returns the mapping configured by t.
func NewMapping(t robot.Tuning) Mapping {
	return Mapping{
		Drive:    drive.NewMecanum(t),
		Arbiters: arbiter.NewSet(t),
	}
}

// Commands computes all eight channel commands from s.
func (m Mapping) Commands(s gamepad.Snapshot) robot.PowerMap {
	wheels := m.Drive.Transform(
		s.Analog(gamepad.RightX),
		s.Analog(gamepad.RightY),
		s.Analog(gamepad.LeftX),
	)
	wheels = m.Arbiters.Strafe.Resolve(arbiter.StrafeInput{
		Left:  s.Digital(gamepad.Left),
		Right: s.Digital(gamepad.Right),
	}, wheels)

	lift := m.Arbiters.Lift.Resolve(arbiter.LiftInput{
		Analog: s.Analog(gamepad.LeftY),
		Up:     s.Digital(gamepad.Up),
		Down:   s.Digital(gamepad.Down),
	})

	claw := m.Arbiters.Claw.Resolve(arbiter.ClawInput{
		OpenFast:  s.Digital(gamepad.L1),
		CloseFast: s.Digital(gamepad.R1),
		OpenSlow:  s.Digital(gamepad.L2),
		CloseSlow: s.Digital(gamepad.R2),
	})

	return wheels.PowerMap().
		Set(lift, robot.LiftChannels()...).
		Set(claw, robot.ClawChannels()...)
}
