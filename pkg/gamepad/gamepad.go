// Package gamepad provides the operator controller readings used by the
// control loop.
package gamepad

import (
	"context"
	"fmt"
)

// AnalogMax is the largest stick deflection reported on an axis.
const AnalogMax = 127

// Axis identifies an analog stick axis.
type Axis int

// Stick axes.
const (
	LeftX Axis = iota
	LeftY
	RightX
	RightY
	numAxes
)

// Button identifies a digital button.
type Button int

// Buttons used by the robot.
const (
	Up Button = iota
	Down
	Left
	Right
	L1
	L2
	R1
	R2
	numButtons
)

var axisNames = [numAxes]string{"left_x", "left_y", "right_x", "right_y"}

var buttonNames = [numButtons]string{"up", "down", "left", "right", "l1", "l2", "r1", "r2"}

func (a Axis) String() string {
	if a < 0 || a >= numAxes {
		return fmt.Sprintf("axis(%d)", int(a))
	}
	return axisNames[a]
}

func (b Button) String() string {
	if b < 0 || b >= numButtons {
		return fmt.Sprintf("button(%d)", int(b))
	}
	return buttonNames[b]
}

// AllAxes returns every axis in order.
func AllAxes() []Axis {
	return []Axis{LeftX, LeftY, RightX, RightY}
}

// AllButtons returns every button in order.
func AllButtons() []Button {
	return []Button{Up, Down, Left, Right, L1, L2, R1, R2}
}

// Snapshot is one poll of every axis and button. All commands of a control
// cycle are computed from a single snapshot.
type Snapshot struct {
	Axes    [numAxes]float64
	Buttons [numButtons]bool
}

// Analog returns the reading of axis a, or 0 for an unknown axis.
func (s Snapshot) Analog(a Axis) float64 {
	if a < 0 || a >= numAxes {
		return 0
	}
	return s.Axes[a]
}

// Digital reports whether button b is held.
func (s Snapshot) Digital(b Button) bool {
	if b < 0 || b >= numButtons {
		return false
	}
	return s.Buttons[b]
}

// WithAxis returns a copy of s with axis a set to v, clamped to
// [-AnalogMax, AnalogMax].
func (s Snapshot) WithAxis(a Axis, v float64) Snapshot {
	if a < 0 || a >= numAxes {
		return s
	}
	s.Axes[a] = clampAxis(v)
	return s
}

// WithButton returns a copy of s with button b set to held.
func (s Snapshot) WithButton(b Button, held bool) Snapshot {
	if b < 0 || b >= numButtons {
		return s
	}
	s.Buttons[b] = held
	return s
}

// Source is polled once per control cycle.
type Source interface {
	Poll(ctx context.Context) (Snapshot, error)
}

func clampAxis(v float64) float64 {
	if v > AnalogMax {
		return AnalogMax
	}
	if v < -AnalogMax {
		return -AnalogMax
	}
	return v
}
