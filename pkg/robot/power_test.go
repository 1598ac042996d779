package robot

import (
	"math"
	"testing"
)

func TestClampPower(t *testing.T) {
	tests := []struct {
		in       float64
		expected Power
	}{
		{0, 0},
		{89.8, 89}, // truncates toward zero
		{-89.8, -89},
		{127, 127},
		{127.9, 127},
		{254, 127},
		{-500, -127},
		{math.Inf(1), 127},
		{math.Inf(-1), -127},
		{math.NaN(), 0},
	}

	for _, tt := range tests {
		if got := ClampPower(tt.in); got != tt.expected {
			t.Errorf("ClampPower(%v) = %d, want %d", tt.in, got, tt.expected)
		}
	}
}

func TestClampPowerTo(t *testing.T) {
	if got := ClampPowerTo(80, 52); got != 52 {
		t.Errorf("ClampPowerTo(80, 52) = %d, want 52", got)
	}
	if got := ClampPowerTo(-80, 52); got != -52 {
		t.Errorf("ClampPowerTo(-80, 52) = %d, want -52", got)
	}
}

func TestPower_Clamp(t *testing.T) {
	tests := []struct {
		in, expected Power
	}{
		{0, 0},
		{-32, -32},
		{128, 127},
		{-128, -127},
	}

	for _, tt := range tests {
		if got := tt.in.Clamp(); got != tt.expected {
			t.Errorf("Power(%d).Clamp() = %d, want %d", tt.in, got, tt.expected)
		}
	}
}

func TestPowerMap_SetMerge(t *testing.T) {
	m := PowerMap{}.Set(33, ClawChannels()...)
	m.Merge(PowerMap{ClawRight: -33, LiftLeft: 70})

	if m[ClawLeft] != 33 || m[ClawRight] != -33 || m[LiftLeft] != 70 {
		t.Errorf("unexpected map after Set/Merge: %v", m)
	}
	if len(m) != 3 {
		t.Errorf("map has %d entries, want 3", len(m))
	}
}

func TestZero(t *testing.T) {
	z := Zero()
	if len(z) != len(AllChannels()) {
		t.Fatalf("Zero() has %d channels, want %d", len(z), len(AllChannels()))
	}
	for ch, p := range z {
		if p != 0 {
			t.Errorf("Zero()[%s] = %d, want 0", ch, p)
		}
	}
}

func TestWheelSet_PowerMap(t *testing.T) {
	w := WheelSet{FrontLeft: 1, FrontRight: 2, RearLeft: 3, RearRight: 4}
	m := w.PowerMap()

	want := PowerMap{FrontLeft: 1, FrontRight: 2, RearLeft: 3, RearRight: 4}
	if len(m) != len(want) {
		t.Fatalf("PowerMap() has %d entries, want %d", len(m), len(want))
	}
	for ch, p := range want {
		if m[ch] != p {
			t.Errorf("PowerMap()[%s] = %d, want %d", ch, m[ch], p)
		}
	}
}
