package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/gwillem/clawbot/pkg/robot"
)

// RobotOptions are shared by every command that drives the robot.
type RobotOptions struct {
	Config string `long:"config" default:"clawbot.json" description:"Configuration file (.json or .yaml)"`
	Sim    bool   `long:"sim" description:"Simulate the robot instead of opening the servo bus"`
}

// loadConfig reads the configuration, falling back to the defaults in
// simulation when no file exists.
func (o RobotOptions) loadConfig() (*robot.Config, error) {
	cfg, err := robot.LoadConfigFrom(o.Config)
	if err == nil {
		return cfg, nil
	}
	if o.Sim && errors.Is(err, os.ErrNotExist) {
		return robot.DefaultConfig(), nil
	}
	return nil, err
}

// openSink returns a recorder wrapping the servo bus, or a bare recorder in
// simulation. The returned close function releases the bus.
func (o RobotOptions) openSink(ctx context.Context, cfg *robot.Config) (*robot.Recorder, func(), error) {
	if o.Sim {
		return robot.NewRecorder(nil), func() {}, nil
	}

	if cfg.Port == "" {
		return nil, nil, fmt.Errorf("no servo bus configured, run 'clawbot setup' first")
	}
	if !cfg.IsCalibrated() {
		return nil, nil, fmt.Errorf("channels %v not mapped, run 'clawbot setup' first", cfg.Channels.Missing())
	}

	bus, err := robot.OpenServoBus(cfg.Port, cfg.Channels)
	if err != nil {
		return nil, nil, err
	}
	if err := bus.Enable(ctx); err != nil {
		bus.Close()
		return nil, nil, fmt.Errorf("enable servos: %w", err)
	}

	closeFn := func() {
		if err := bus.Disable(context.Background()); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to disable servos: %v\n", err)
		}
		bus.Close()
	}
	return robot.NewRecorder(bus), closeFn, nil
}
