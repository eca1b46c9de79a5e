package dom

// ControlType identifies the kind of form control a Control represents.
// The values mirror the DOM `type` property of input elements plus the
// synthetic types reported for select and textarea elements.
type ControlType string

const (
	TypeText           ControlType = "text"
	TypePassword       ControlType = "password"
	TypeCheckbox       ControlType = "checkbox"
	TypeRadio          ControlType = "radio"
	TypeFile           ControlType = "file"
	TypeSelectOne      ControlType = "select-one"
	TypeSelectMultiple ControlType = "select-multiple"
	TypeTextarea       ControlType = "textarea"
	TypeHidden         ControlType = "hidden"
	TypeButton         ControlType = "button"
	TypeImage          ControlType = "image"
	TypeReset          ControlType = "reset"
	TypeSubmit         ControlType = "submit"
)

// Control is a single form control as seen by the validator. Implementations
// expose current state only; the validator never mutates a control beyond
// moving focus to it.
type Control interface {
	// Type reports the control type used for checker dispatch. Unrecognized
	// types are treated as non-validatable and always pass.
	Type() ControlType

	// Name is the control's name attribute.
	Name() string

	// Value is the control's current value. For select controls this is the
	// value of the selected option, or "" when nothing is selected. For file
	// controls it is the chosen filename.
	Value() string

	// Checked reports whether a checkbox or radio control is checked.
	Checked() bool

	// Disabled reports whether the control is disabled.
	Disabled() bool

	// ReadOnly reports whether the control is read-only.
	ReadOnly() bool

	// Focus moves keyboard focus to the control.
	Focus() error
}

// Element is an error-message node: a displayable element tied to one
// logical field through its id and class attributes.
type Element interface {
	// ID is the element's id attribute.
	ID() string

	// Class is the element's space-separated class attribute.
	Class() string

	// Tag is the lowercase element tag name, e.g. "div" or "span".
	Tag() string

	// Display returns the current display mode, "" when unset.
	Display() string

	// SetDisplay sets the display mode; "none" hides the element.
	SetDisplay(mode string)
}

// Form is the document-scope capability surface the validator operates on.
// It abstracts named-control lookup, error-element enumeration, and anchor
// navigation so the core logic runs identically against a live page, parsed
// markup, or an in-memory fake.
type Form interface {
	// Controls returns every control sharing the given name, in document
	// order. An empty slice means no such control exists.
	Controls(name string) []Control

	// Elements returns the candidate error-message elements in document
	// order. Implementations may over-return; the validator filters by
	// class and tag.
	Elements() []Element

	// Navigate moves the page to a URL fragment, e.g. "#errors".
	Navigate(fragment string)
}
