package arbiter

import (
	"testing"

	"github.com/gwillem/clawbot/pkg/robot"
)

func defaults() Set {
	return NewSet(robot.DefaultTuning())
}

func TestLift_Resolve(t *testing.T) {
	lift := defaults().Lift

	tests := []struct {
		name     string
		in       LiftInput
		expected robot.Power
	}{
		{"idle", LiftInput{}, 0},
		{"stick back raises", LiftInput{Analog: -100}, 100},
		{"stick forward lowers", LiftInput{Analog: 90}, -90},
		{"stick is truncated", LiftInput{Analog: 12.7}, -12},
		{"up beats stick", LiftInput{Analog: 127, Up: true}, 32},
		{"down beats stick", LiftInput{Analog: -127, Down: true}, -32},
		{"up beats down", LiftInput{Up: true, Down: true}, 32},
		{"stick saturates", LiftInput{Analog: -400}, 127},
	}

	for _, tt := range tests {
		if got := lift.Resolve(tt.in); got != tt.expected {
			t.Errorf("%s: Resolve(%+v) = %d, want %d", tt.name, tt.in, got, tt.expected)
		}
	}
}

func TestLift_UpAlwaysWins(t *testing.T) {
	lift := defaults().Lift
	for analog := -127.0; analog <= 127; analog += 0.5 {
		for _, down := range []bool{false, true} {
			if got := lift.Resolve(LiftInput{Analog: analog, Up: true, Down: down}); got != 32 {
				t.Fatalf("Resolve(analog=%v, up, down=%v) = %d, want 32", analog, down, got)
			}
		}
	}
}

func TestClaw_Resolve(t *testing.T) {
	claw := defaults().Claw

	tests := []struct {
		name     string
		in       ClawInput
		expected robot.Power
	}{
		{"idle holds", ClawInput{}, 0},
		{"open fast", ClawInput{OpenFast: true}, 127},
		{"close fast", ClawInput{CloseFast: true}, -127},
		{"open slow", ClawInput{OpenSlow: true}, 33},
		{"close slow", ClawInput{CloseSlow: true}, -33},
		{"close fast beats slow", ClawInput{CloseFast: true, OpenSlow: true, CloseSlow: true}, -127},
		{"open slow beats close slow", ClawInput{OpenSlow: true, CloseSlow: true}, 33},
	}

	for _, tt := range tests {
		if got := claw.Resolve(tt.in); got != tt.expected {
			t.Errorf("%s: Resolve(%+v) = %d, want %d", tt.name, tt.in, got, tt.expected)
		}
	}
}

func TestClaw_OpenFastAlwaysWins(t *testing.T) {
	claw := defaults().Claw
	// every combination of the three lower priority buttons
	for mask := 0; mask < 8; mask++ {
		in := ClawInput{
			OpenFast:  true,
			CloseFast: mask&1 != 0,
			OpenSlow:  mask&2 != 0,
			CloseSlow: mask&4 != 0,
		}
		if got := claw.Resolve(in); got != 127 {
			t.Errorf("Resolve(%+v) = %d, want 127", in, got)
		}
	}
}

func TestStrafe_Resolve(t *testing.T) {
	strafe := defaults().Strafe
	base := robot.WheelSet{FrontLeft: 10, FrontRight: 20, RearLeft: 30, RearRight: 40}

	if got := strafe.Resolve(StrafeInput{}, base); got != base {
		t.Errorf("idle: Resolve = %+v, want base %+v", got, base)
	}

	left := robot.WheelSet{FrontLeft: -52, FrontRight: -52, RearLeft: 52, RearRight: 52}
	if got := strafe.Resolve(StrafeInput{Left: true}, base); got != left {
		t.Errorf("left: Resolve = %+v, want %+v", got, left)
	}
	if got := strafe.Resolve(StrafeInput{Left: true, Right: true}, base); got != left {
		t.Errorf("left+right: Resolve = %+v, want %+v", got, left)
	}

	right := robot.WheelSet{FrontLeft: 52, FrontRight: 52, RearLeft: -52, RearRight: -52}
	if got := strafe.Resolve(StrafeInput{Right: true}, base); got != right {
		t.Errorf("right: Resolve = %+v, want %+v", got, right)
	}
}

func TestOversizedTuningIsClamped(t *testing.T) {
	claw := Claw{FastPower: 500, SlowPower: 33}
	if got := claw.Resolve(ClawInput{CloseFast: true}); got != -robot.MaxPower {
		t.Errorf("Resolve = %d, want %d", got, -robot.MaxPower)
	}
	lift := Lift{ButtonPower: 200}
	if got := lift.Resolve(LiftInput{Up: true}); got != robot.MaxPower {
		t.Errorf("Resolve = %d, want %d", got, robot.MaxPower)
	}
}
