// Package teleop provides the operator control loop.
package teleop

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gwillem/clawbot/pkg/gamepad"
	"github.com/gwillem/clawbot/pkg/robot"
)

// ErrRunning is returned by Start when the loop is already running.
var ErrRunning = errors.New("already running")

// State is the outcome of one control cycle.
type State struct {
	Input     gamepad.Snapshot
	Commands  robot.PowerMap
	Timestamp time.Time
	Error     error
}

// Controller manages the operator control loop.
type Controller struct {
	source  gamepad.Source
	sink    robot.Sink
	mapping Mapping
	period  time.Duration

	mu      sync.RWMutex
	running bool
	cycles  int
	stateCh chan State
	logCh   chan string
}

// Config holds configuration for the controller.
type Config struct {
	Source gamepad.Source
	Sink   robot.Sink
	Tuning robot.Tuning
}

// NewController creates a new operator control loop.
func NewController(cfg Config) (*Controller, error) {
	if cfg.Source == nil {
		return nil, fmt.Errorf("create controller: no input source")
	}
	if cfg.Sink == nil {
		return nil, fmt.Errorf("create controller: no actuator sink")
	}
	if err := cfg.Tuning.Validate(); err != nil {
		return nil, fmt.Errorf("create controller: %w", err)
	}

	return &Controller{
		source:  cfg.Source,
		sink:    cfg.Sink,
		mapping: NewMapping(cfg.Tuning),
		period:  cfg.Tuning.Cycle(),
		stateCh: make(chan State, 1),
		logCh:   make(chan string, 10),
	}, nil
}

// States returns a channel that receives state updates.
func (c *Controller) States() <-chan State {
	return c.stateCh
}

// Logs returns a channel that receives log messages.
func (c *Controller) Logs() <-chan string {
	return c.logCh
}

// Period returns the control cycle period.
func (c *Controller) Period() time.Duration {
	return c.period
}

// Cycles returns the number of completed control cycles.
func (c *Controller) Cycles() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cycles
}

func (c *Controller) log(format string, args ...any) {
	msg := fmt.Sprintf("[%s] %s", time.Now().Format("15:04:05"), fmt.Sprintf(format, args...))
	select {
	case c.logCh <- msg:
	default:
		// Drop if channel full
	}
}

// Start runs the operator control loop until ctx is canceled. The first
// cycle runs immediately, then one cycle per period. Actuators keep their
// last command when the loop stops.
func (c *Controller) Start(ctx context.Context) error {
	c.mu.Lock()
	if c.running {
		c.mu.Unlock()
		return ErrRunning
	}
	c.running = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.running = false
		c.mu.Unlock()
	}()

	c.log("Operator control started, cycle %s", c.period)

	ticker := time.NewTicker(c.period)
	defer ticker.Stop()

	c.step(ctx)
	for {
		select {
		case <-ctx.Done():
			c.log("Operator control stopped")
			return ctx.Err()
		case <-ticker.C:
			c.step(ctx)
		}
	}
}

func (c *Controller) step(ctx context.Context) {
	// Sample every control once
	snap, err := c.source.Poll(ctx)
	if err != nil {
		if ctx.Err() == nil {
			c.log("Read error: %v", err)
		}
		c.sendState(State{Error: err, Timestamp: time.Now()})
		return
	}

	cmds := c.mapping.Commands(snap)

	err = c.sink.Apply(ctx, cmds)
	if err != nil {
		c.log("Write error: %v", err)
	}

	c.mu.Lock()
	c.cycles++
	c.mu.Unlock()

	c.sendState(State{
		Input:     snap,
		Commands:  cmds,
		Timestamp: time.Now(),
		Error:     err,
	})
}

func (c *Controller) sendState(s State) {
	select {
	case c.stateCh <- s:
	default:
		// Drop old state if channel full, replace with new
		select {
		case <-c.stateCh:
		default:
		}
		select {
		case c.stateCh <- s:
		default:
		}
	}
}
