package gamepad

import (
	"context"
	"sync"
)

// Virtual is a Source whose state is set by hand, for example from keyboard
// input. Buttons latch until released.
type Virtual struct {
	mu    sync.Mutex
	state Snapshot
	polls int
}

// NewVirtual returns a pad with centered sticks and no buttons held.
func NewVirtual() *Virtual {
	return &Virtual{}
}

// Poll returns the current state.
func (v *Virtual) Poll(ctx context.Context) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return Snapshot{}, err
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.polls++
	return v.state, nil
}

// Polls returns how many times the pad was polled.
func (v *Virtual) Polls() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.polls
}

// Set replaces the whole state.
func (v *Virtual) Set(s Snapshot) {
	v.mu.Lock()
	v.state = s
	v.mu.Unlock()
}

// State returns the current state without counting a poll.
func (v *Virtual) State() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// SetAxis sets one axis, clamped to the analog range.
func (v *Virtual) SetAxis(a Axis, value float64) {
	v.mu.Lock()
	v.state = v.state.WithAxis(a, value)
	v.mu.Unlock()
}

// Nudge moves one axis by delta and returns the new reading.
func (v *Virtual) Nudge(a Axis, delta float64) float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state = v.state.WithAxis(a, v.state.Analog(a)+delta)
	return v.state.Analog(a)
}

// SetButton holds or releases one button.
func (v *Virtual) SetButton(b Button, held bool) {
	v.mu.Lock()
	v.state = v.state.WithButton(b, held)
	v.mu.Unlock()
}

// Toggle flips one button and returns whether it is now held.
func (v *Virtual) Toggle(b Button) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	held := !v.state.Digital(b)
	v.state = v.state.WithButton(b, held)
	return held
}

// Release centers both sticks and releases every button.
func (v *Virtual) Release() {
	v.mu.Lock()
	v.state = Snapshot{}
	v.mu.Unlock()
}
