package events

import "fmt"

type MouseMovedEvent struct {
	base[*MouseMovedEvent]
	X, Y float32
}

func NewMouseMovedEvent(x, y float32) *MouseMovedEvent {
	return &MouseMovedEvent{X: x, Y: y}
}

func (*MouseMovedEvent) StaticType() Type { return TypeMouseMoved }

func (e *MouseMovedEvent) String() string {
	return fmt.Sprintf("MouseMovedEvent: %g, %g", e.X, e.Y)
}

type MouseScrolledEvent struct {
	base[*MouseScrolledEvent]
	XOffset, YOffset float32
}

func NewMouseScrolledEvent(xOffset, yOffset float32) *MouseScrolledEvent {
	return &MouseScrolledEvent{XOffset: xOffset, YOffset: yOffset}
}

func (*MouseScrolledEvent) StaticType() Type { return TypeMouseScrolled }

func (e *MouseScrolledEvent) String() string {
	return fmt.Sprintf("MouseScrolledEvent: %g, %g", e.XOffset, e.YOffset)
}

type MouseButtonPressedEvent struct {
	base[*MouseButtonPressedEvent]
	Button int
}

func NewMouseButtonPressedEvent(button int) *MouseButtonPressedEvent {
	return &MouseButtonPressedEvent{Button: button}
}

func (*MouseButtonPressedEvent) StaticType() Type { return TypeMouseButtonPressed }

func (e *MouseButtonPressedEvent) String() string {
	return fmt.Sprintf("MouseButtonPressedEvent: %d", e.Button)
}

type MouseButtonReleasedEvent struct {
	base[*MouseButtonReleasedEvent]
	Button int
}

func NewMouseButtonReleasedEvent(button int) *MouseButtonReleasedEvent {
	return &MouseButtonReleasedEvent{Button: button}
}

func (*MouseButtonReleasedEvent) StaticType() Type { return TypeMouseButtonReleased }

func (e *MouseButtonReleasedEvent) String() string {
	return fmt.Sprintf("MouseButtonReleasedEvent: %d", e.Button)
}
