package robot

import (
	"context"
	"sync"
)

// Sink accepts motor commands. Channels missing from a batch keep their
// last applied command.
type Sink interface {
	Apply(ctx context.Context, cmds PowerMap) error
}

// Recorder is a Sink that remembers the last command applied to every
// channel and optionally forwards each batch to another sink.
type Recorder struct {
	next Sink

	mu      sync.RWMutex
	last    PowerMap
	applied int
}

// NewRecorder creates a recorder forwarding to next. A nil next makes the
// recorder a simulated robot.
func NewRecorder(next Sink) *Recorder {
	return &Recorder{
		next: next,
		last: Zero(),
	}
}

// Apply records cmds and forwards them. Commands are clamped before being
// recorded or forwarded.
func (r *Recorder) Apply(ctx context.Context, cmds PowerMap) error {
	clamped := make(PowerMap, len(cmds))
	for ch, p := range cmds {
		clamped[ch] = p.Clamp()
	}

	r.mu.Lock()
	r.last.Merge(clamped)
	r.applied++
	r.mu.Unlock()

	if r.next == nil {
		return nil
	}
	return r.next.Apply(ctx, clamped)
}

// Last returns a copy of the last command applied to every channel.
func (r *Recorder) Last() PowerMap {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(PowerMap, len(r.last))
	for ch, p := range r.last {
		out[ch] = p
	}
	return out
}

// Applied returns the number of batches applied so far.
func (r *Recorder) Applied() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.applied
}
