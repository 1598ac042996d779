// Package clawbot provides the control logic of a mecanum-drive robot with a
// lift and a claw.
//
// The robot runs through a competition lifecycle: it is initialized once,
// then switched between disabled, autonomous and operator control by the
// field. In operator control every cycle reads the controller once and
// turns it into eight motor commands; in autonomous a fixed, timed routine
// drives forward and raises the lift.
//
// # Installation
//
//	go install github.com/gwillem/clawbot/cmd/clawbot@latest
//
// # Usage
//
// Map the servos on the bus to robot channels:
//
//	clawbot setup
//
// Then run the robot, switching modes from the keyboard:
//
//	clawbot run
//
// Use --sim on run or auton to drive a simulated robot.
//
// # Packages
//
// The module is organized into the following packages:
//
//   - cmd/clawbot: CLI with setup, run and auton commands
//   - pkg/robot: Channels, power values, configuration and servo bus
//   - pkg/gamepad: Controller snapshots and the virtual pad
//   - pkg/drive: Mecanum drive transform
//   - pkg/arbiter: Lift, claw and strafe arbitration
//   - pkg/teleop: Operator control loop
//   - pkg/auton: Autonomous routine
//   - pkg/competition: Competition lifecycle
//   - pkg/lcd: Status screen and buttons
//   - pkg/bot: Wiring of one robot
package clawbot
