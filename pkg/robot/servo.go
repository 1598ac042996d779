package robot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hipsterbrown/feetech-servo/feetech"
)

// ServoBus drives every channel with a feetech STS servo in velocity mode,
// all on one serial bus.
type ServoBus struct {
	bus         *feetech.Bus
	servos      map[Channel]*feetech.Servo
	calibration Calibration
}

// OpenServoBus opens the serial bus on port and creates one servo per
// calibrated channel.
func OpenServoBus(port string, cal Calibration) (*ServoBus, error) {
	bus, err := feetech.NewBus(feetech.BusConfig{
		Port:     port,
		BaudRate: 1_000_000,
		Protocol: feetech.ProtocolSTS,
		Timeout:  100 * time.Millisecond,
	})
	if err != nil {
		return nil, fmt.Errorf("open bus: %w", err)
	}

	servos := make(map[Channel]*feetech.Servo, len(cal))
	for ch, cc := range cal {
		servos[ch] = feetech.NewServo(bus, cc.ID, nil)
	}

	return &ServoBus{
		bus:         bus,
		servos:      servos,
		calibration: cal,
	}, nil
}

// Close closes the bus connection.
func (s *ServoBus) Close() error {
	return s.bus.Close()
}

// Enable switches every servo to velocity mode and enables torque.
func (s *ServoBus) Enable(ctx context.Context) error {
	for ch, servo := range s.servos {
		// the operating mode can only change with torque off
		if err := servo.Disable(ctx); err != nil {
			return fmt.Errorf("disable %s: %w", ch, err)
		}
		if err := servo.SetOperatingMode(ctx, feetech.ModeVelocity); err != nil {
			return fmt.Errorf("set %s velocity mode: %w", ch, err)
		}
		if err := servo.Enable(ctx); err != nil {
			return fmt.Errorf("enable %s: %w", ch, err)
		}
	}
	return nil
}

// Disable stops every servo and releases torque.
func (s *ServoBus) Disable(ctx context.Context) error {
	var errs []error
	for ch, servo := range s.servos {
		if err := servo.SetVelocity(ctx, 0); err != nil {
			errs = append(errs, fmt.Errorf("stop %s: %w", ch, err))
		}
		if err := servo.Disable(ctx); err != nil {
			errs = append(errs, fmt.Errorf("disable %s: %w", ch, err))
		}
	}
	return errors.Join(errs...)
}

// Apply writes one velocity per commanded channel. Channels without a servo
// are skipped. Every channel is attempted even if an earlier write fails.
func (s *ServoBus) Apply(ctx context.Context, cmds PowerMap) error {
	var errs []error
	for _, ch := range AllChannels() {
		p, ok := cmds[ch]
		if !ok {
			continue
		}
		servo, ok := s.servos[ch]
		if !ok {
			continue
		}
		if err := servo.SetVelocity(ctx, s.calibration[ch].Velocity(p)); err != nil {
			errs = append(errs, fmt.Errorf("write %s: %w", ch, err))
		}
	}
	return errors.Join(errs...)
}
