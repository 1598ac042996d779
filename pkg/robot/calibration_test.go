package robot

import "testing"

func TestChannelCalibration_Velocity(t *testing.T) {
	cal := ChannelCalibration{
		ID:          1,
		MaxVelocity: 1270,
	}

	tests := []struct {
		power    Power
		expected int
	}{
		{0, 0},
		{127, 1270},   // full forward
		{-127, -1270}, // full reverse
		{64, 640},
		{-33, -330},
		{200, 1270}, // clamped
	}

	for _, tt := range tests {
		got := cal.Velocity(tt.power)
		if got != tt.expected {
			t.Errorf("Velocity(%d) = %d, want %d", tt.power, got, tt.expected)
		}
	}
}

func TestChannelCalibration_Reversed(t *testing.T) {
	cal := ChannelCalibration{ID: 2, Reversed: true, MaxVelocity: 1270}

	if got := cal.Velocity(70); got != -700 {
		t.Errorf("Velocity(70) = %d, want -700", got)
	}
	if got := cal.Power(-700); got != 70 {
		t.Errorf("Power(-700) = %d, want 70", got)
	}
}

func TestChannelCalibration_DefaultMaxVelocity(t *testing.T) {
	cal := ChannelCalibration{ID: 3}

	if got := cal.Velocity(MaxPower); got != DefaultMaxVelocity {
		t.Errorf("Velocity(%d) = %d, want %d", MaxPower, got, DefaultMaxVelocity)
	}
}

func TestChannelCalibration_RoundTrip(t *testing.T) {
	cals := []ChannelCalibration{
		{ID: 1},
		{ID: 2, Reversed: true},
		{ID: 3, MaxVelocity: 3400},
	}

	// Test round-trip: power -> velocity -> power
	for _, cal := range cals {
		for p := -MaxPower; p <= MaxPower; p++ {
			v := cal.Velocity(p)
			back := cal.Power(v)
			if back != p {
				t.Errorf("Round-trip failed for %+v: %d -> %d -> %d", cal, p, v, back)
			}
		}
	}
}

func TestCalibration_ServoIDs(t *testing.T) {
	cal := DefaultCalibration()

	ids := cal.ServoIDs()
	expected := []int{9, 6, 8, 7, 4, 5, 1, 2}

	if len(ids) != len(expected) {
		t.Fatalf("ServoIDs returned %d IDs, want %d", len(ids), len(expected))
	}

	for i, id := range ids {
		if id != expected[i] {
			t.Errorf("ServoIDs()[%d] = %d, want %d", i, id, expected[i])
		}
	}
}

func TestCalibration_ByID(t *testing.T) {
	cal := Calibration{
		FrontLeft: ChannelCalibration{ID: 1, MaxVelocity: 100},
		ClawRight: ChannelCalibration{ID: 6, Reversed: true},
	}

	// Test finding existing ID
	ch, cc, ok := cal.ByID(1)
	if !ok {
		t.Fatal("ByID(1) returned false")
	}
	if ch != FrontLeft {
		t.Errorf("ByID(1) returned channel %s, want front_left", ch)
	}
	if cc.MaxVelocity != 100 {
		t.Errorf("ByID(1) returned wrong calibration: %+v", cc)
	}

	// Test non-existing ID
	_, _, ok = cal.ByID(99)
	if ok {
		t.Error("ByID(99) should return false")
	}
}

func TestCalibration_Missing(t *testing.T) {
	if missing := DefaultCalibration().Missing(); len(missing) != 0 {
		t.Errorf("DefaultCalibration().Missing() = %v, want none", missing)
	}

	cal := Calibration{FrontLeft: {ID: 1}, LiftLeft: {ID: 2}}
	missing := cal.Missing()
	if len(missing) != 6 {
		t.Fatalf("Missing() returned %d channels, want 6", len(missing))
	}
	if missing[0] != FrontRight {
		t.Errorf("Missing()[0] = %s, want front_right", missing[0])
	}
}
