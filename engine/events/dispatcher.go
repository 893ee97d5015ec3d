package events

// EventHandler holds at most one callback per event variant. Registering a
// callback again replaces the previous one. The callback's return value is
// passed to the event's Handle.
type EventHandler struct {
	onWindowClose         func(*WindowCloseEvent) bool
	onWindowResize        func(*WindowResizeEvent) bool
	onWindowFocus         func(*WindowFocusEvent) bool
	onWindowLostFocus     func(*WindowLostFocusEvent) bool
	onWindowMoved         func(*WindowMovedEvent) bool
	onKeyPressed          func(*KeyPressedEvent) bool
	onKeyReleased         func(*KeyReleasedEvent) bool
	onKeyTyped            func(*KeyTypedEvent) bool
	onMouseButtonPressed  func(*MouseButtonPressedEvent) bool
	onMouseButtonReleased func(*MouseButtonReleasedEvent) bool
	onMouseMoved          func(*MouseMovedEvent) bool
	onMouseScrolled       func(*MouseScrolledEvent) bool
}

func NewEventHandler() *EventHandler {
	return &EventHandler{}
}

func (h *EventHandler) SetOnWindowCloseCallback(fn func(*WindowCloseEvent) bool) {
	h.onWindowClose = fn
}

func (h *EventHandler) SetOnWindowResizeCallback(fn func(*WindowResizeEvent) bool) {
	h.onWindowResize = fn
}

func (h *EventHandler) SetOnWindowFocusCallback(fn func(*WindowFocusEvent) bool) {
	h.onWindowFocus = fn
}

func (h *EventHandler) SetOnWindowLostFocusCallback(fn func(*WindowLostFocusEvent) bool) {
	h.onWindowLostFocus = fn
}

func (h *EventHandler) SetOnWindowMovedCallback(fn func(*WindowMovedEvent) bool) {
	h.onWindowMoved = fn
}

func (h *EventHandler) SetOnKeyPressedCallback(fn func(*KeyPressedEvent) bool) {
	h.onKeyPressed = fn
}

func (h *EventHandler) SetOnKeyReleasedCallback(fn func(*KeyReleasedEvent) bool) {
	h.onKeyReleased = fn
}

func (h *EventHandler) SetOnKeyTypedCallback(fn func(*KeyTypedEvent) bool) {
	h.onKeyTyped = fn
}

func (h *EventHandler) SetOnMouseButtonPressedCallback(fn func(*MouseButtonPressedEvent) bool) {
	h.onMouseButtonPressed = fn
}

func (h *EventHandler) SetOnMouseButtonReleasedCallback(fn func(*MouseButtonReleasedEvent) bool) {
	h.onMouseButtonReleased = fn
}

func (h *EventHandler) SetOnMouseMovedCallback(fn func(*MouseMovedEvent) bool) {
	h.onMouseMoved = fn
}

func (h *EventHandler) SetOnMouseWheelCallback(fn func(*MouseScrolledEvent) bool) {
	h.onMouseScrolled = fn
}

// Dispatch runs the callback registered for e's variant on the calling
// goroutine. It reports whether a callback ran; events without one are dropped.
func (h *EventHandler) Dispatch(e Event) bool {
	if h == nil || e == nil {
		return false
	}
	switch ev := e.(type) {
	case *WindowCloseEvent:
		return invoke(h.onWindowClose, ev)
	case *WindowResizeEvent:
		return invoke(h.onWindowResize, ev)
	case *WindowFocusEvent:
		return invoke(h.onWindowFocus, ev)
	case *WindowLostFocusEvent:
		return invoke(h.onWindowLostFocus, ev)
	case *WindowMovedEvent:
		return invoke(h.onWindowMoved, ev)
	case *KeyPressedEvent:
		return invoke(h.onKeyPressed, ev)
	case *KeyReleasedEvent:
		return invoke(h.onKeyReleased, ev)
	case *KeyTypedEvent:
		return invoke(h.onKeyTyped, ev)
	case *MouseButtonPressedEvent:
		return invoke(h.onMouseButtonPressed, ev)
	case *MouseButtonReleasedEvent:
		return invoke(h.onMouseButtonReleased, ev)
	case *MouseMovedEvent:
		return invoke(h.onMouseMoved, ev)
	case *MouseScrolledEvent:
		return invoke(h.onMouseScrolled, ev)
	}
	return false
}

func invoke[E Event](fn func(E) bool, e E) bool {
	if fn == nil {
		return false
	}
	e.Handle(fn(e))
	return true
}
