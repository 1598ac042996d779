package gamepad

import (
	"context"
	"testing"
)

func TestSnapshot_WithAxis(t *testing.T) {
	tests := []struct {
		in       float64
		expected float64
	}{
		{0, 0},
		{64, 64},
		{-127, -127},
		{300, 127}, // clamped
		{-128, -127},
	}

	for _, tt := range tests {
		s := Snapshot{}.WithAxis(RightY, tt.in)
		if got := s.Analog(RightY); got != tt.expected {
			t.Errorf("WithAxis(RightY, %v).Analog = %v, want %v", tt.in, got, tt.expected)
		}
	}
}

func TestSnapshot_UnknownControls(t *testing.T) {
	s := Snapshot{}.WithAxis(Axis(42), 10).WithButton(Button(-1), true)
	if s != (Snapshot{}) {
		t.Errorf("unknown controls changed the snapshot: %+v", s)
	}
	if s.Analog(Axis(42)) != 0 || s.Digital(Button(99)) {
		t.Error("unknown controls should read as idle")
	}
}

func TestSnapshot_IsValue(t *testing.T) {
	a := Snapshot{}.WithButton(L1, true)
	b := a.WithButton(L1, false)
	if !a.Digital(L1) {
		t.Error("WithButton modified the receiver")
	}
	if b.Digital(L1) {
		t.Error("WithButton did not release L1")
	}
}

func TestNames(t *testing.T) {
	if RightX.String() != "right_x" {
		t.Errorf("RightX.String() = %q", RightX.String())
	}
	if R2.String() != "r2" {
		t.Errorf("R2.String() = %q", R2.String())
	}
	if Button(12).String() != "button(12)" {
		t.Errorf("Button(12).String() = %q", Button(12).String())
	}
	if len(AllAxes()) != int(numAxes) || len(AllButtons()) != int(numButtons) {
		t.Error("AllAxes/AllButtons out of sync with the enums")
	}
}

func TestVirtual(t *testing.T) {
	pad := NewVirtual()
	ctx := context.Background()

	pad.SetAxis(LeftY, 50)
	if got := pad.Nudge(LeftY, 100); got != AnalogMax {
		t.Errorf("Nudge = %v, want %v", got, AnalogMax)
	}
	if !pad.Toggle(Up) {
		t.Error("Toggle(Up) = false on first press")
	}

	s, err := pad.Poll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if s.Analog(LeftY) != AnalogMax || !s.Digital(Up) {
		t.Errorf("unexpected snapshot: %+v", s)
	}

	if pad.Toggle(Up) {
		t.Error("Toggle(Up) = true on second press")
	}
	pad.Release()
	if s, _ := pad.Poll(ctx); s != (Snapshot{}) {
		t.Errorf("Release left state behind: %+v", s)
	}
	if pad.Polls() != 2 {
		t.Errorf("Polls() = %d, want 2", pad.Polls())
	}
}

func TestVirtual_CanceledPoll(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewVirtual().Poll(ctx); err == nil {
		t.Error("Poll on a canceled context should fail")
	}
}
