// Package competition runs the robot through the competition lifecycle:
// one mode task at a time, replaced whenever the field changes mode.
package competition

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
)

// Mode is a competition state.
type Mode int

// Competition modes.
const (
	Disabled Mode = iota
	CompetitionInit
	Autonomous
	OperatorControl
)

func (m Mode) String() string {
	switch m {
	case Disabled:
		return "disabled"
	case CompetitionInit:
		return "competition-init"
	case Autonomous:
		return "autonomous"
	case OperatorControl:
		return "opcontrol"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// Task is the body of one mode. It must return promptly once ctx is done.
type Task func(ctx context.Context) error

// Hooks are the entry points called by the field. Nil hooks do nothing.
type Hooks struct {
	Initialize      Task
	Disabled        Task
	CompetitionInit Task
	Autonomous      Task
	OperatorControl Task
}

func (h Hooks) task(m Mode) Task {
	switch m {
	case Disabled:
		return h.Disabled
	case CompetitionInit:
		return h.CompetitionInit
	case Autonomous:
		return h.Autonomous
	case OperatorControl:
		return h.OperatorControl
	}
	return nil
}

// Config holds configuration for the field.
type Config struct {
	Hooks Hooks
	// Stop puts the actuators in a safe state after a task ends. It runs on
	// every mode change, including a forced stop.
	Stop Task
	Logf func(format string, args ...any)
}

// Field plays the role of the competition control system.
type Field struct {
	hooks Hooks
	stop  Task
	logf  func(format string, args ...any)

	mu   sync.Mutex
	mode Mode
	run  *run
}

// run is one started task.
type run struct {
	cancel context.CancelFunc
	done   chan struct{}
	err    error // valid once done is closed
}

// NewField creates a field in Disabled mode with no task running.
func NewField(cfg Config) *Field {
	logf := cfg.Logf
	if logf == nil {
		logf = log.Printf
	}
	return &Field{
		hooks: cfg.Hooks,
		stop:  cfg.Stop,
		logf:  logf,
		mode:  Disabled,
	}
}

// Initialize runs the Initialize hook to completion. No mode runs while it
// does.
func (f *Field) Initialize(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.hooks.Initialize == nil {
		return nil
	}
	if err := f.hooks.Initialize(ctx); err != nil {
		return fmt.Errorf("initialize: %w", err)
	}
	return nil
}

// Mode returns the current mode.
func (f *Field) Mode() Mode {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mode
}

// Enter stops the running task, applies the stop hook and starts the task
// of mode m in its own goroutine. Entering the current mode restarts it
// from the beginning.
func (f *Field) Enter(ctx context.Context, m Mode) {
	f.mu.Lock()
	defer f.mu.Unlock()

	prev := f.mode
	f.halt(ctx)
	f.mode = m
	f.logf("Mode %s -> %s", prev, m)

	task := f.hooks.task(m)
	if task == nil {
		return
	}

	taskCtx, cancel := context.WithCancel(ctx)
	r := &run{cancel: cancel, done: make(chan struct{})}
	f.run = r

	go func() {
		defer close(r.done)
		r.err = task(taskCtx)
		if r.err != nil && !errors.Is(r.err, context.Canceled) {
			f.logf("%s: %v", m, r.err)
		}
	}()
}

// Wait blocks until the running task returns on its own or is stopped, and
// returns its error.
func (f *Field) Wait() error {
	f.mu.Lock()
	r := f.run
	f.mu.Unlock()
	if r == nil {
		return nil
	}
	<-r.done
	return r.err
}

// Close stops the running task, applies the stop hook and leaves the field
// disabled.
func (f *Field) Close(ctx context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.halt(ctx)
	f.mode = Disabled
}

// halt must be called with f.mu held. Task goroutines never take f.mu.
func (f *Field) halt(ctx context.Context) {
	if f.run != nil {
		f.run.cancel()
		<-f.run.done
		f.run = nil
	}
	if f.stop == nil {
		return
	}
	if err := f.stop(ctx); err != nil {
		f.logf("stop actuators: %v", err)
	}
}
