package robot

// DefaultMaxVelocity is the servo speed, in steps per second, commanded at
// full power.
const DefaultMaxVelocity = 2400

// ChannelCalibration maps one channel onto a servo on the bus.
type ChannelCalibration struct {
	ID          int  `json:"id" yaml:"id"`
	Reversed    bool `json:"reversed" yaml:"reversed"`
	MaxVelocity int  `json:"max_velocity,omitempty" yaml:"max_velocity,omitempty"`
}

// Calibration holds calibration data for all channels, keyed by channel.
type Calibration map[Channel]ChannelCalibration

func (c ChannelCalibration) maxVelocity() int {
	if c.MaxVelocity <= 0 {
		return DefaultMaxVelocity
	}
	return c.MaxVelocity
}

// Velocity converts a power command to a servo velocity.
func (c ChannelCalibration) Velocity(p Power) int {
	v := int(p.Clamp()) * c.maxVelocity() / int(MaxPower)
	if c.Reversed {
		return -v
	}
	return v
}

// Power converts a servo velocity back to the power command producing it.
// Exact inverse of Velocity when the max velocity is at least MaxPower.
func (c ChannelCalibration) Power(velocity int) Power {
	if c.Reversed {
		velocity = -velocity
	}
	max := c.maxVelocity()
	// round half away from zero so Power(Velocity(p)) == p
	n := velocity * int(MaxPower)
	if n >= 0 {
		n += max / 2
	} else {
		n -= max / 2
	}
	return Power(n / max).Clamp()
}

// ServoIDs returns the servo IDs for all calibrated channels.
func (c Calibration) ServoIDs() []int {
	ids := make([]int, 0, len(c))
	// Use AllChannels() to ensure consistent ordering
	for _, ch := range AllChannels() {
		if cc, ok := c[ch]; ok {
			ids = append(ids, cc.ID)
		}
	}
	return ids
}

// ByID returns channel and calibration for a given servo ID.
func (c Calibration) ByID(id int) (Channel, ChannelCalibration, bool) {
	for _, ch := range AllChannels() {
		if cc, ok := c[ch]; ok && cc.ID == id {
			return ch, cc, true
		}
	}
	return "", ChannelCalibration{}, false
}

// Missing returns the channels without calibration.
func (c Calibration) Missing() []Channel {
	var missing []Channel
	for _, ch := range AllChannels() {
		if _, ok := c[ch]; !ok {
			missing = append(missing, ch)
		}
	}
	return missing
}

// DefaultCalibration returns the servo layout of the reference build: the
// same motor numbering and mounting directions as the competition robot.
func DefaultCalibration() Calibration {
	return Calibration{
		ClawLeft:   {ID: 1},
		ClawRight:  {ID: 2, Reversed: true},
		LiftLeft:   {ID: 4, Reversed: true},
		LiftRight:  {ID: 5},
		FrontRight: {ID: 6},
		RearRight:  {ID: 7, Reversed: true},
		RearLeft:   {ID: 8, Reversed: true},
		FrontLeft:  {ID: 9},
	}
}
