// Package auton runs the fixed, open-loop autonomous routine.
package auton

import (
	"context"
	"fmt"
	"time"

	"github.com/gwillem/clawbot/pkg/robot"
)

// Step applies Commands and then holds for Hold before the next step.
type Step struct {
	Name     string
	Commands robot.PowerMap
	Hold     time.Duration
}

// Routine is an ordered list of steps with no branching.
type Routine []Step

// Duration returns the total time the routine holds.
func (r Routine) Duration() time.Duration {
	var d time.Duration
	for _, s := range r {
		d += s.Hold
	}
	return d
}

// DefaultRoutine drives forward, stops, then raises the lift.
func DefaultRoutine(t robot.Tuning) Routine {
	fwd := t.AutonDrive
	return Routine{
		{
			Name: "drive forward",
			Commands: robot.WheelSet{
				FrontRight: -fwd,
				RearLeft:   -fwd,
				RearRight:  fwd,
				FrontLeft:  fwd,
			}.PowerMap(),
			Hold: t.AutonDriveHold(),
		},
		{
			Name:     "stop",
			Commands: robot.Uniform(0).PowerMap(),
		},
		{
			Name:     "raise lift",
			Commands: robot.PowerMap{}.Set(t.AutonLift, robot.LiftChannels()...),
			Hold:     t.AutonLiftHold(),
		},
		{
			Name:     "stop lift",
			Commands: robot.PowerMap{}.Set(0, robot.LiftChannels()...),
		},
	}
}

// Sleeper pauses the routine between steps.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// SleeperFunc adapts a function to Sleeper.
type SleeperFunc func(ctx context.Context, d time.Duration) error

// Sleep calls f.
func (f SleeperFunc) Sleep(ctx context.Context, d time.Duration) error {
	return f(ctx, d)
}

// Timer sleeps on the wall clock and wakes early when ctx is canceled.
var Timer Sleeper = SleeperFunc(func(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
})

// Runner executes routines against a sink.
type Runner struct {
	Sink    robot.Sink
	Sleeper Sleeper
	Logf    func(format string, args ...any)
}

// Run applies every step of r in order. It stops with ctx.Err() when ctx
// is canceled during a hold; actuators keep the last applied command.
// Sink errors are logged and the routine continues.
func (rn Runner) Run(ctx context.Context, r Routine) error {
	sleeper := rn.Sleeper
	if sleeper == nil {
		sleeper = Timer
	}
	for i, step := range r {
		if err := ctx.Err(); err != nil {
			return err
		}
		rn.logf("Autonomous step %d/%d: %s", i+1, len(r), step.Name)
		if err := rn.Sink.Apply(ctx, step.Commands); err != nil {
			rn.logf("Write error: %v", err)
		}
		if step.Hold <= 0 {
			continue
		}
		if err := sleeper.Sleep(ctx, step.Hold); err != nil {
			return fmt.Errorf("step %q: %w", step.Name, err)
		}
	}
	return nil
}

// Run executes r against sink on the wall clock.
func Run(ctx context.Context, sink robot.Sink, r Routine) error {
	return Runner{Sink: sink}.Run(ctx, r)
}

func (rn Runner) logf(format string, args ...any) {
	if rn.Logf != nil {
		rn.Logf(format, args...)
	}
}
