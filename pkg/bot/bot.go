// Package bot wires the controller, the autonomous routine and the status
// screen of one robot into competition hooks.
package bot

import (
	"context"
	"fmt"

	"github.com/gwillem/clawbot/pkg/auton"
	"github.com/gwillem/clawbot/pkg/competition"
	"github.com/gwillem/clawbot/pkg/gamepad"
	"github.com/gwillem/clawbot/pkg/lcd"
	"github.com/gwillem/clawbot/pkg/robot"
	"github.com/gwillem/clawbot/pkg/teleop"
)

// Config holds the collaborators of a robot. Source and Sink are required.
type Config struct {
	Source  gamepad.Source
	Sink    robot.Sink
	Tuning  robot.Tuning
	Screen  *lcd.Screen   // optional; a private screen is used when nil
	Sleeper auton.Sleeper // optional; wall clock when nil
	Logf    func(format string, args ...any)
}

// Bot is one robot: a single sink and input source shared by every mode.
type Bot struct {
	sink    robot.Sink
	ctrl    *teleop.Controller
	runner  auton.Runner
	routine auton.Routine
	screen  *lcd.Screen
	toggle  *lcd.Toggle
	logf    func(format string, args ...any)
}

// New creates a robot from cfg.
func New(cfg Config) (*Bot, error) {
	ctrl, err := teleop.NewController(teleop.Config{
		Source: cfg.Source,
		Sink:   cfg.Sink,
		Tuning: cfg.Tuning,
	})
	if err != nil {
		return nil, fmt.Errorf("create bot: %w", err)
	}

	screen := cfg.Screen
	if screen == nil {
		screen = lcd.NewScreen()
	}
	logf := cfg.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}

	return &Bot{
		sink: cfg.Sink,
		ctrl: ctrl,
		runner: auton.Runner{
			Sink:    cfg.Sink,
			Sleeper: cfg.Sleeper,
			Logf:    logf,
		},
		routine: auton.DefaultRoutine(cfg.Tuning),
		screen:  screen,
		toggle:  lcd.NewPressToggle(screen),
		logf:    logf,
	}, nil
}

// Controller returns the operator control loop.
func (b *Bot) Controller() *teleop.Controller {
	return b.ctrl
}

// Routine returns the autonomous routine.
func (b *Bot) Routine() auton.Routine {
	return b.routine
}

// Screen returns the status screen.
func (b *Bot) Screen() *lcd.Screen {
	return b.screen
}

// Hooks returns the competition entry points of the robot.
func (b *Bot) Hooks() competition.Hooks {
	return competition.Hooks{
		Initialize:      b.initialize,
		Autonomous:      b.autonomous,
		OperatorControl: b.ctrl.Start,
	}
}

// Stop commands zero power on every channel.
func (b *Bot) Stop(ctx context.Context) error {
	return b.sink.Apply(ctx, robot.Zero())
}

// Field returns a competition field driving this robot.
func (b *Bot) Field() *competition.Field {
	return competition.NewField(competition.Config{
		Hooks: b.Hooks(),
		Stop:  b.Stop,
		Logf:  b.logf,
	})
}

func (b *Bot) initialize(ctx context.Context) error {
	if err := b.screen.SetText(1, "clawbot ready"); err != nil {
		return err
	}
	b.screen.OnPress(lcd.CenterButton, b.toggle.Press)
	return nil
}

func (b *Bot) autonomous(ctx context.Context) error {
	return b.runner.Run(ctx, b.routine)
}
