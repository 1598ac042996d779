package main

import (
	"os"

	"github.com/jessevdk/go-flags"
)

type Options struct {
	Setup SetupCommand `command:"setup" description:"Scan the servo bus and map servos to robot channels"`
	Run   RunCommand   `command:"run" description:"Run the robot with a keyboard field switch and controller"`
	Auton AutonCommand `command:"auton" description:"Run the autonomous routine once"`
}

var opts Options
var parser = flags.NewParser(&opts, flags.Default)

func main() {
	parser.LongDescription = "clawbot - mecanum drive, lift and claw robot"

	_, err := parser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				os.Exit(0)
			}
		}
		os.Exit(1)
	}
}
