package events

import "fmt"

type WindowCloseEvent struct {
	base[*WindowCloseEvent]
}

func NewWindowCloseEvent() *WindowCloseEvent {
	return &WindowCloseEvent{}
}

func (*WindowCloseEvent) StaticType() Type { return TypeWindowClose }

func (e *WindowCloseEvent) String() string { return "WindowCloseEvent" }

type WindowResizeEvent struct {
	base[*WindowResizeEvent]
	Width, Height int
}

func NewWindowResizeEvent(width, height int) *WindowResizeEvent {
	return &WindowResizeEvent{Width: width, Height: height}
}

func (*WindowResizeEvent) StaticType() Type { return TypeWindowResize }

func (e *WindowResizeEvent) String() string {
	return fmt.Sprintf("WindowResizeEvent: %d, %d", e.Width, e.Height)
}

type WindowFocusEvent struct {
	base[*WindowFocusEvent]
}

func NewWindowFocusEvent() *WindowFocusEvent {
	return &WindowFocusEvent{}
}

func (*WindowFocusEvent) StaticType() Type { return TypeWindowFocus }

func (e *WindowFocusEvent) String() string { return "WindowFocusEvent" }

type WindowLostFocusEvent struct {
	base[*WindowLostFocusEvent]
}

func NewWindowLostFocusEvent() *WindowLostFocusEvent {
	return &WindowLostFocusEvent{}
}

func (*WindowLostFocusEvent) StaticType() Type { return TypeWindowLostFocus }

func (e *WindowLostFocusEvent) String() string { return "WindowLostFocusEvent" }

type WindowMovedEvent struct {
	base[*WindowMovedEvent]
	X, Y int
}

func NewWindowMovedEvent(x, y int) *WindowMovedEvent {
	return &WindowMovedEvent{X: x, Y: y}
}

func (*WindowMovedEvent) StaticType() Type { return TypeWindowMoved }

func (e *WindowMovedEvent) String() string {
	return fmt.Sprintf("WindowMovedEvent: %d, %d", e.X, e.Y)
}
