package teleop

import (
	"testing"

	"github.com/gwillem/clawbot/pkg/gamepad"
	"github.com/gwillem/clawbot/pkg/robot"
)

func snap(axes map[gamepad.Axis]float64, buttons ...gamepad.Button) gamepad.Snapshot {
	var s gamepad.Snapshot
	for a, v := range axes {
		s = s.WithAxis(a, v)
	}
	for _, b := range buttons {
		s = s.WithButton(b, true)
	}
	return s
}

func expectMap(t *testing.T, got, want robot.PowerMap) {
	t.Helper()
	if len(got) != len(robot.AllChannels()) {
		t.Errorf("got %d channels, want %d", len(got), len(robot.AllChannels()))
	}
	for ch, p := range want {
		if got[ch] != p {
			t.Errorf("%s = %d, want %d", ch, got[ch], p)
		}
	}
}

func TestMapping_Idle(t *testing.T) {
	m := NewMapping(robot.DefaultTuning())
	expectMap(t, m.Commands(gamepad.Snapshot{}), robot.Zero())
}

func TestMapping_DriveLiftClaw(t *testing.T) {
	m := NewMapping(robot.DefaultTuning())

	got := m.Commands(snap(map[gamepad.Axis]float64{
		gamepad.RightY: 127,
		gamepad.LeftY:  -64,
	}, gamepad.L2))

	expectMap(t, got, robot.PowerMap{
		robot.FrontRight: -89,
		robot.RearLeft:   -89,
		robot.RearRight:  109,
		robot.FrontLeft:  109,
		robot.LiftLeft:   64,
		robot.LiftRight:  64,
		robot.ClawLeft:   33,
		robot.ClawRight:  33,
	})
}

func TestMapping_Overrides(t *testing.T) {
	m := NewMapping(robot.DefaultTuning())

	got := m.Commands(snap(map[gamepad.Axis]float64{
		gamepad.RightY: 127,
		gamepad.LeftX:  127,
		gamepad.LeftY:  127,
	}, gamepad.Left, gamepad.Up, gamepad.Down, gamepad.R1, gamepad.R2))

	expectMap(t, got, robot.PowerMap{
		robot.FrontRight: -52,
		robot.FrontLeft:  -52,
		robot.RearRight:  52,
		robot.RearLeft:   52,
		robot.LiftLeft:   32,
		robot.LiftRight:  32,
		robot.ClawLeft:   -127,
		robot.ClawRight:  -127,
	})
}

func TestMapping_NoResidualState(t *testing.T) {
	m := NewMapping(robot.DefaultTuning())

	m.Commands(snap(map[gamepad.Axis]float64{gamepad.RightX: 90, gamepad.LeftY: 40}, gamepad.L1, gamepad.Right))
	expectMap(t, m.Commands(gamepad.Snapshot{}), robot.Zero())
}
