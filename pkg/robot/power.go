package robot

import "math"

// Power is a signed motor command. Valid commands lie in [-MaxPower, MaxPower].
type Power int

// MaxPower is the largest command a motor accepts in either direction.
const MaxPower Power = 127

// ClampPower saturates v to [-MaxPower, MaxPower] and truncates it toward
// zero.
func ClampPower(v float64) Power {
	return ClampPowerTo(v, MaxPower)
}

// ClampPowerTo saturates v to [-limit, limit] and truncates it toward zero.
// NaN maps to zero.
func ClampPowerTo(v float64, limit Power) Power {
	if math.IsNaN(v) {
		return 0
	}
	l := float64(limit)
	if v > l {
		return limit
	}
	if v < -l {
		return -limit
	}
	return Power(v)
}

// Clamp saturates p to [-MaxPower, MaxPower].
func (p Power) Clamp() Power {
	if p > MaxPower {
		return MaxPower
	}
	if p < -MaxPower {
		return -MaxPower
	}
	return p
}

// PowerMap holds one command per channel.
type PowerMap map[Channel]Power

// Set assigns p to every channel in chs.
func (m PowerMap) Set(p Power, chs ...Channel) PowerMap {
	for _, ch := range chs {
		m[ch] = p
	}
	return m
}

// Merge copies every entry of other into m, overwriting existing entries.
func (m PowerMap) Merge(other PowerMap) PowerMap {
	for ch, p := range other {
		m[ch] = p
	}
	return m
}

// Zero returns a map commanding zero on every channel.
func Zero() PowerMap {
	return make(PowerMap, 8).Set(0, AllChannels()...)
}

// WheelSet is the four drivetrain commands computed in one cycle.
type WheelSet struct {
	FrontLeft  Power
	FrontRight Power
	RearLeft   Power
	RearRight  Power
}

// Uniform returns a wheel set with p on every wheel.
func Uniform(p Power) WheelSet {
	return WheelSet{FrontLeft: p, FrontRight: p, RearLeft: p, RearRight: p}
}

// PowerMap returns the wheel set keyed by channel.
func (w WheelSet) PowerMap() PowerMap {
	return PowerMap{
		FrontLeft:  w.FrontLeft,
		FrontRight: w.FrontRight,
		RearLeft:   w.RearLeft,
		RearRight:  w.RearRight,
	}
}
