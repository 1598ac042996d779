// Package drive converts stick readings into mecanum wheel commands.
package drive

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gwillem/clawbot/pkg/robot"
)

// Mixing selects how the second diagonal component is computed.
type Mixing int

const (
	// MixingLiteral derives the second component from the already rotated
	// first component and the raw y reading. This is how the competition
	// robot drove; on diagonal inputs it over-weights the front-left /
	// rear-right pair.
	MixingLiteral Mixing = iota
	// MixingRotated rotates the (x, y) vector as a whole.
	MixingRotated
)

func (m Mixing) String() string {
	switch m {
	case MixingLiteral:
		return "literal"
	case MixingRotated:
		return "rotated"
	}
	return "unknown"
}

// Vector is the pair of diagonal drive signals for one cycle.
type Vector struct {
	X, Y float64
}

// Mecanum maps stick readings to wheel commands for a chassis with wheels
// mounted on the diagonals.
type Mecanum struct {
	Offset float64     // rotation applied to the stick angle, radians
	Limit  robot.Power // largest command on any wheel
	Mixing Mixing
}

// NewMecanum returns the transform configured by t.
func NewMecanum(t robot.Tuning) Mecanum {
	m := Mecanum{
		Offset: mgl64.DegToRad(t.DriveOffsetDeg),
		Limit:  robot.MaxPower,
		Mixing: MixingRotated,
	}
	if t.LiteralMixing {
		m.Mixing = MixingLiteral
	}
	return m
}

func (m Mecanum) limit() float64 {
	if m.Limit <= 0 || m.Limit > robot.MaxPower {
		return float64(robot.MaxPower)
	}
	return float64(m.Limit)
}

// Diagonals rotates the translation request (x, y) onto the wheel
// diagonals. The magnitude of (x, y) is capped at the limit.
func (m Mecanum) Diagonals(x, y float64) Vector {
	in := mgl64.Vec2{x, y}
	mag := mgl64.Clamp(in.Len(), 0, m.limit())
	angle := math.Atan2(y, x) + m.Offset

	if m.Mixing == MixingRotated {
		if l := in.Len(); l > 0 {
			in = in.Mul(mag / l)
		}
		out := mgl64.Rotate2D(m.Offset).Mul2x1(in)
		return Vector{X: out.X(), Y: out.Y()}
	}

	xr := mag * math.Cos(angle)
	yr := math.Sqrt(xr*xr+y*y) * math.Sin(angle)
	return Vector{X: xr, Y: yr}
}

// Transform returns the wheel commands for translation (x, y) and
// rotation. Each wheel is saturated to the limit.
func (m Mecanum) Transform(x, y, rotation float64) robot.WheelSet {
	v := m.Diagonals(x, y)
	lim := robot.Power(m.limit())
	return robot.WheelSet{
		FrontRight: robot.ClampPowerTo(v.X+rotation, lim),
		RearLeft:   robot.ClampPowerTo(v.X-rotation, lim),
		RearRight:  robot.ClampPowerTo(v.Y-rotation, lim),
		FrontLeft:  robot.ClampPowerTo(v.Y+rotation, lim),
	}
}
