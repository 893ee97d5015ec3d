package events

import "fmt"

// Type identifies the concrete event variant.
type Type uint8

const (
	TypeNone Type = iota
	TypeWindowClose
	TypeWindowResize
	TypeWindowFocus
	TypeWindowLostFocus
	TypeWindowMoved
	TypeKeyPressed
	TypeKeyReleased
	TypeKeyTyped
	TypeMouseButtonPressed
	TypeMouseButtonReleased
	TypeMouseMoved
	TypeMouseScrolled
)

var typeNames = [...]string{
	TypeNone:                "None",
	TypeWindowClose:         "WindowClose",
	TypeWindowResize:        "WindowResize",
	TypeWindowFocus:         "WindowFocus",
	TypeWindowLostFocus:     "WindowLostFocus",
	TypeWindowMoved:         "WindowMoved",
	TypeKeyPressed:          "KeyPressed",
	TypeKeyReleased:         "KeyReleased",
	TypeKeyTyped:            "KeyTyped",
	TypeMouseButtonPressed:  "MouseButtonPressed",
	TypeMouseButtonReleased: "MouseButtonReleased",
	TypeMouseMoved:          "MouseMoved",
	TypeMouseScrolled:       "MouseScrolled",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", uint8(t))
}

// Category is a bitmask; a variant may belong to several categories.
type Category uint16

const (
	CategoryNone        Category = 0
	CategoryApplication Category = 1 << 0
	CategoryWindow      Category = 1 << 1
	CategoryInput       Category = 1 << 2
	CategoryKeyboard    Category = 1 << 3
	CategoryMouse       Category = 1 << 4
	CategoryMouseButton Category = 1 << 5
)

// Event is implemented by every concrete variant in this package. The set of
// variants is closed.
type Event interface {
	fmt.Stringer
	Type() Type
	Category() Category
	IsInCategory(c Category) bool
	// Handle marks the event as consumed. Once true the flag never reverts.
	Handle(handled bool)
	Handled() bool
}

// StaticType returns the type of variant E without an instance, for
// example StaticType[*KeyPressedEvent]().
func StaticType[E variant]() Type {
	var e E
	return e.StaticType()
}

// variant is implemented by the pointer type of every event struct.
type variant interface {
	StaticType() Type
}

const (
	windowCategories = CategoryWindow | CategoryApplication
	keyCategories    = CategoryKeyboard | CategoryInput
	mouseCategories  = CategoryMouse | CategoryInput
)

var categories = [...]Category{
	TypeWindowClose:         windowCategories,
	TypeWindowResize:        windowCategories,
	TypeWindowFocus:         windowCategories,
	TypeWindowLostFocus:     windowCategories,
	TypeWindowMoved:         windowCategories,
	TypeKeyPressed:          keyCategories,
	TypeKeyReleased:         keyCategories,
	TypeKeyTyped:            keyCategories,
	TypeMouseButtonPressed:  mouseCategories,
	TypeMouseButtonReleased: mouseCategories,
	TypeMouseMoved:          mouseCategories,
	TypeMouseScrolled:       mouseCategories,
}

// base is embedded by every variant E. Type and category follow from E, so
// a variant built as a struct literal reports them like a constructed one.
type base[E variant] struct {
	handled bool
}

func (*base[E]) Type() Type {
	var e E
	return e.StaticType()
}

func (b *base[E]) Category() Category {
	return categories[b.Type()]
}

func (b *base[E]) IsInCategory(c Category) bool {
	return b.Category()&c != 0
}

func (b *base[E]) Handle(handled bool) {
	b.handled = b.handled || handled
}

func (b *base[E]) Handled() bool {
	return b.handled
}
