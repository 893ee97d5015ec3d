package events

import "fmt"

type KeyPressedEvent struct {
	base[*KeyPressedEvent]
	KeyCode int
	// RepeatCount is 0 for the initial press.
	RepeatCount int
}

func NewKeyPressedEvent(keyCode, repeatCount int) *KeyPressedEvent {
	return &KeyPressedEvent{KeyCode: keyCode, RepeatCount: repeatCount}
}

func (*KeyPressedEvent) StaticType() Type { return TypeKeyPressed }

func (e *KeyPressedEvent) String() string {
	return fmt.Sprintf("KeyPressedEvent: %d (%d repeats)", e.KeyCode, e.RepeatCount)
}

type KeyReleasedEvent struct {
	base[*KeyReleasedEvent]
	KeyCode int
}

func NewKeyReleasedEvent(keyCode int) *KeyReleasedEvent {
	return &KeyReleasedEvent{KeyCode: keyCode}
}

func (*KeyReleasedEvent) StaticType() Type { return TypeKeyReleased }

func (e *KeyReleasedEvent) String() string {
	return fmt.Sprintf("KeyReleasedEvent: %d", e.KeyCode)
}

type KeyTypedEvent struct {
	base[*KeyTypedEvent]
	KeyCode int
}

func NewKeyTypedEvent(keyCode int) *KeyTypedEvent {
	return &KeyTypedEvent{KeyCode: keyCode}
}

func (*KeyTypedEvent) StaticType() Type { return TypeKeyTyped }

func (e *KeyTypedEvent) String() string {
	return fmt.Sprintf("KeyTypedEvent: %d", e.KeyCode)
}
