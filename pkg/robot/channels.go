// Package robot provides the actuator channels, power values and
// configuration of the claw robot.
package robot

// Channel identifies one motor on the robot.
type Channel string

// Channels of the claw robot. Lift and claw motors are mounted in pairs and
// always receive the same command.
const (
	FrontLeft  Channel = "front_left"
	FrontRight Channel = "front_right"
	RearLeft   Channel = "rear_left"
	RearRight  Channel = "rear_right"
	LiftLeft   Channel = "lift_left"
	LiftRight  Channel = "lift_right"
	ClawLeft   Channel = "claw_left"
	ClawRight  Channel = "claw_right"
)

// AllChannels returns all channel names in order: wheels, lift, claw.
func AllChannels() []Channel {
	return []Channel{
		FrontLeft,
		FrontRight,
		RearLeft,
		RearRight,
		LiftLeft,
		LiftRight,
		ClawLeft,
		ClawRight,
	}
}

// WheelChannels returns the four drivetrain channels.
func WheelChannels() []Channel {
	return []Channel{FrontLeft, FrontRight, RearLeft, RearRight}
}

// LiftChannels returns the two lift channels.
func LiftChannels() []Channel {
	return []Channel{LiftLeft, LiftRight}
}

// ClawChannels returns the two claw channels.
func ClawChannels() []Channel {
	return []Channel{ClawLeft, ClawRight}
}
