// Package lcd emulates the robot brain's status screen and its three
// buttons.
package lcd

import (
	"fmt"
	"sync"
)

// Lines is the number of text lines on the screen.
const Lines = 8

// Button is one of the three buttons under the screen.
type Button int

// Screen buttons.
const (
	LeftButton Button = iota
	CenterButton
	RightButton
	numButtons
)

// Screen holds the text shown on the status screen and the callbacks bound
// to its buttons. It is safe for concurrent use.
type Screen struct {
	mu        sync.Mutex
	lines     [Lines]string
	callbacks [numButtons]func()
}

// NewScreen returns a blank screen with no callbacks.
func NewScreen() *Screen {
	return &Screen{}
}

// SetText replaces one line.
func (s *Screen) SetText(line int, text string) error {
	if line < 0 || line >= Lines {
		return fmt.Errorf("set text: line %d out of range", line)
	}
	s.mu.Lock()
	s.lines[line] = text
	s.mu.Unlock()
	return nil
}

// ClearLine blanks one line.
func (s *Screen) ClearLine(line int) error {
	return s.SetText(line, "")
}

// Text returns a copy of every line.
func (s *Screen) Text() [Lines]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lines
}

// OnPress binds fn to button b, replacing any earlier callback.
func (s *Screen) OnPress(b Button, fn func()) {
	if b < 0 || b >= numButtons {
		return
	}
	s.mu.Lock()
	s.callbacks[b] = fn
	s.mu.Unlock()
}

// Press fires the callback bound to b, if any.
func (s *Screen) Press(b Button) {
	if b < 0 || b >= numButtons {
		return
	}
	s.mu.Lock()
	fn := s.callbacks[b]
	s.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// Toggle shows Text on Line on every other press and clears it in between.
type Toggle struct {
	Screen *Screen
	Line   int
	Text   string

	mu      sync.Mutex
	pressed bool
}

// NewPressToggle returns the center button toggle of the status screen.
func NewPressToggle(s *Screen) *Toggle {
	return &Toggle{Screen: s, Line: 2, Text: "I was pressed!"}
}

// Press flips the toggle and updates the screen.
func (t *Toggle) Press() {
	t.mu.Lock()
	t.pressed = !t.pressed
	pressed := t.pressed
	t.mu.Unlock()

	if pressed {
		t.Screen.SetText(t.Line, t.Text)
	} else {
		t.Screen.ClearLine(t.Line)
	}
}

// Pressed reports the toggle state.
func (t *Toggle) Pressed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pressed
}
