package dom

// MemControl is an in-memory Control implementation. Fields are exported so
// tests and programmatic callers can mutate control state between validation
// runs the way a user would between submits.
type MemControl struct {
	ControlName string
	ControlType ControlType
	Val         string
	IsChecked   bool
	IsDisabled  bool
	IsReadOnly  bool

	// FocusErr, when set, is returned by Focus. Used to exercise the
	// validator's group-fallback focus recovery.
	FocusErr error

	// Focused records whether Focus succeeded on this control.
	Focused bool
}

// NewMemControl creates an in-memory control with the given name, type, and
// current value.
func NewMemControl(name string, typ ControlType, value string) *MemControl {
	return &MemControl{
		ControlName: name,
		ControlType: typ,
		Val:         value,
	}
}

func (c *MemControl) Type() ControlType { return c.ControlType }
func (c *MemControl) Name() string      { return c.ControlName }
func (c *MemControl) Value() string     { return c.Val }
func (c *MemControl) Checked() bool     { return c.IsChecked }
func (c *MemControl) Disabled() bool    { return c.IsDisabled }
func (c *MemControl) ReadOnly() bool    { return c.IsReadOnly }

func (c *MemControl) Focus() error {
	if c.FocusErr != nil {
		return c.FocusErr
	}
	c.Focused = true
	return nil
}

// MemElement is an in-memory error-message element.
type MemElement struct {
	ElemID    string
	ElemClass string
	ElemTag   string
	display   string
}

// NewMemElement creates an in-memory error element with the given id,
// space-separated class string, and tag name.
func NewMemElement(id, class, tag string) *MemElement {
	return &MemElement{ElemID: id, ElemClass: class, ElemTag: tag}
}

func (e *MemElement) ID() string      { return e.ElemID }
func (e *MemElement) Class() string   { return e.ElemClass }
func (e *MemElement) Tag() string     { return e.ElemTag }
func (e *MemElement) Display() string { return e.display }

func (e *MemElement) SetDisplay(mode string) { e.display = mode }

// Hidden reports whether the element is currently hidden.
func (e *MemElement) Hidden() bool { return e.display == "none" }

// MemForm is an in-memory Form implementation. It is useful for testing and
// for callers that assemble form state programmatically rather than from
// markup.
type MemForm struct {
	controls []*MemControl
	elements []*MemElement
	fragment string
}

// NewMemForm creates an in-memory form holding the given controls in
// document order.
func NewMemForm(controls ...*MemControl) *MemForm {
	return &MemForm{controls: controls}
}

// AddControl appends a control to the form.
func (f *MemForm) AddControl(c *MemControl) { f.controls = append(f.controls, c) }

// AddElement appends an error element to the form.
func (f *MemForm) AddElement(e *MemElement) { f.elements = append(f.elements, e) }

// Controls returns every control sharing the given name, in document order.
func (f *MemForm) Controls(name string) []Control {
	var out []Control
	for _, c := range f.controls {
		if c.ControlName == name {
			out = append(out, c)
		}
	}
	return out
}

// Elements returns all error elements in document order.
func (f *MemForm) Elements() []Element {
	out := make([]Element, len(f.elements))
	for i, e := range f.elements {
		out[i] = e
	}
	return out
}

// Navigate records the fragment; MemForm has no page to move.
func (f *MemForm) Navigate(fragment string) { f.fragment = fragment }

// Fragment returns the fragment recorded by the last Navigate call.
func (f *MemForm) Fragment() string { return f.fragment }
