package input

import (
	"github.com/spaghettifunk/prism/engine/events"
)

// Poller answers synchronous input queries against a window. It is consulted
// once per frame, outside of event dispatch.
type Poller interface {
	IsKeyPressed(key KeyCode) bool
	IsMouseButtonPressed(button MouseButton) bool
	MousePosition() (x, y float32)
}

type mouseState struct {
	x, y    float32
	buttons [MouseButtonLast + 1]bool
}

type keyboardState struct {
	keys [KeyLast + 1]bool
}

// State keeps the current and previous frame's keyboard and mouse state,
// fed from dispatched events. It satisfies Poller, which makes it usable
// where no native window is available.
type State struct {
	keyboardCurrent  keyboardState
	keyboardPrevious keyboardState
	mouseCurrent     mouseState
	mousePrevious    mouseState
	scroll           float32
}

func NewState() *State {
	return &State{}
}

// Update rolls the current state into the previous one. Call it once per
// frame after game logic has read the state.
func (s *State) Update() {
	s.keyboardPrevious = s.keyboardCurrent
	s.mousePrevious = s.mouseCurrent
	s.scroll = 0
}

// Observe records the input carried by e. Non-input events are ignored.
// It never marks the event handled.
func (s *State) Observe(e events.Event) {
	if !e.IsInCategory(events.CategoryInput) {
		return
	}
	switch ev := e.(type) {
	case *events.KeyPressedEvent:
		s.ProcessKey(KeyCode(ev.KeyCode), true)
	case *events.KeyReleasedEvent:
		s.ProcessKey(KeyCode(ev.KeyCode), false)
	case *events.MouseButtonPressedEvent:
		s.ProcessButton(MouseButton(ev.Button), true)
	case *events.MouseButtonReleasedEvent:
		s.ProcessButton(MouseButton(ev.Button), false)
	case *events.MouseMovedEvent:
		s.ProcessMouseMove(ev.X, ev.Y)
	case *events.MouseScrolledEvent:
		s.scroll += ev.YOffset
	}
}

func (s *State) ProcessKey(key KeyCode, pressed bool) {
	if key < 0 || key > KeyLast {
		return
	}
	s.keyboardCurrent.keys[key] = pressed
}

func (s *State) ProcessButton(button MouseButton, pressed bool) {
	if button < 0 || button > MouseButtonLast {
		return
	}
	s.mouseCurrent.buttons[button] = pressed
}

func (s *State) ProcessMouseMove(x, y float32) {
	s.mouseCurrent.x = x
	s.mouseCurrent.y = y
}

func (s *State) IsKeyPressed(key KeyCode) bool {
	if key < 0 || key > KeyLast {
		return false
	}
	return s.keyboardCurrent.keys[key]
}

func (s *State) WasKeyPressed(key KeyCode) bool {
	if key < 0 || key > KeyLast {
		return false
	}
	return s.keyboardPrevious.keys[key]
}

func (s *State) IsMouseButtonPressed(button MouseButton) bool {
	if button < 0 || button > MouseButtonLast {
		return false
	}
	return s.mouseCurrent.buttons[button]
}

func (s *State) WasMouseButtonPressed(button MouseButton) bool {
	if button < 0 || button > MouseButtonLast {
		return false
	}
	return s.mousePrevious.buttons[button]
}

func (s *State) MousePosition() (float32, float32) {
	return s.mouseCurrent.x, s.mouseCurrent.y
}

func (s *State) PreviousMousePosition() (float32, float32) {
	return s.mousePrevious.x, s.mousePrevious.y
}

// Scroll returns the vertical wheel movement accumulated this frame.
func (s *State) Scroll() float32 {
	return s.scroll
}
