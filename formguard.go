package formguard

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/formguard/formguard/dom"
)

// Validator applies class-token validation rules to a form's fields and
// toggles the visibility of their error-message elements.
//
// Config, Expressions, and FileTypes are read live on every call, never
// snapshotted: mutating any of them between calls changes behavior
// immediately, matching the mutable-property contract of the markup
// convention this package implements.
type Validator struct {
	form dom.Form
	log  *slog.Logger

	// Config holds the class-name conventions and failure behavior.
	Config Config

	// Expressions is the named-pattern table consulted for rule tokens
	// that are not built-in methods. Callers may extend or override it.
	Expressions ExpressionTable

	// FileTypes is the extension-group table consulted by the file rule.
	// Callers may extend or override it.
	FileTypes FileTypeTable
}

// Option configures a Validator at construction time.
type Option func(*Validator)

// WithConfig replaces the default configuration.
func WithConfig(cfg Config) Option {
	return func(v *Validator) { v.Config = cfg }
}

// WithLogger sets the logger used for diagnostics. The default discards
// everything.
func WithLogger(log *slog.Logger) Option {
	return func(v *Validator) {
		if log != nil {
			v.log = log
		}
	}
}

// New creates a Validator bound to the given form, with default
// configuration and the built-in expression and file-type tables.
func New(form dom.Form, opts ...Option) *Validator {
	v := &Validator{
		form:        form,
		log:         slog.New(slog.DiscardHandler),
		Config:      DefaultConfig(),
		Expressions: DefaultExpressions(),
		FileTypes:   DefaultFileTypes(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Bind rebinds the validator to another form. Tables and configuration are
// kept as-is.
func (v *Validator) Bind(form dom.Form) { v.form = form }

// IsValid validates every field that has an error-message element. It first
// hides all error elements, then walks them in document order: each one's
// field name is derived from its id, the field's control type selects a
// checker, and the checker runs the element's rule tokens against the
// field's current value. Failing elements are shown with the configured
// display mode.
//
// An element whose field name equals the most recently failed field name is
// skipped, so a multi-message field is not re-validated once one of its
// messages has fired.
//
// On failure, when the jump flag is set, the page is navigated to the
// configured anchor (if any) and focus moves to the first failing field's
// control, falling back to the next member of the control group when the
// first refuses focus.
//
// The returned error reports configuration problems (an unknown rule name,
// file-type group, or field reference), never a mere validation failure.
func (v *Validator) IsValid() (bool, error) {
	v.HideAllErrors()

	valid := true
	firstField := ""
	lastFailed := ""

	for _, el := range v.errorElements() {
		name := v.fieldName(el.ID(), el.Class())
		if name == lastFailed {
			continue
		}

		ok, err := v.checkField(name, el.Class())
		if err != nil {
			return false, err
		}
		v.log.Debug("field checked", "field", name, "element", el.ID(), "valid", ok)

		if !ok {
			if firstField == "" {
				firstField = name
			}
			el.SetDisplay(v.Config.DisplayMode)
			lastFailed = name
			valid = false
		}
	}

	if !valid && v.Config.Jump {
		if v.Config.Anchor != "" {
			v.form.Navigate(v.Config.Anchor)
		}
		if err := v.focusField(firstField); err != nil {
			return false, err
		}
	}

	return valid, nil
}

// HideAllErrors hides every error-message element matched by the configured
// class and tag filter.
func (v *Validator) HideAllErrors() {
	for _, el := range v.errorElements() {
		el.SetDisplay("none")
	}
}

// errorElements returns the form's error-message elements in document
// order: elements with an id whose class list carries the error class or
// any prefixed token, optionally restricted to the configured tag.
func (v *Validator) errorElements() []dom.Element {
	var out []dom.Element
	for _, el := range v.form.Elements() {
		if el.ID() == "" {
			continue
		}
		if v.Config.ErrorTag != "" && !strings.EqualFold(el.Tag(), v.Config.ErrorTag) {
			continue
		}
		if v.hasErrorClass(el.Class()) {
			out = append(out, el)
		}
	}
	return out
}

func (v *Validator) hasErrorClass(class string) bool {
	for _, token := range strings.Fields(class) {
		if token == v.Config.ErrorClass || strings.HasPrefix(token, v.Config.Prefix) {
			return true
		}
	}
	return false
}

// fieldName derives the logical field name from an error element's id:
// the configured suffix is stripped first, then, only when the element
// carries the multi-class marker, everything from the last hyphen onward
// is dropped to undo the per-message numeric disambiguation
// ("serial-0-err" -> "serial-0" -> "serial"). The order matters.
func (v *Validator) fieldName(id, class string) string {
	name := strings.TrimSuffix(id, v.Config.Suffix)
	if v.isMulti(class) {
		if i := strings.LastIndex(name, "-"); i >= 0 {
			name = name[:i]
		}
	}
	return name
}

func (v *Validator) isMulti(class string) bool {
	for _, token := range strings.Fields(class) {
		if token == v.Config.MultiClass {
			return true
		}
	}
	return false
}

// focusField moves focus to the named field's control group. If the first
// member refuses focus the remaining members are tried in order; when none
// accepts, the failure propagates.
func (v *Validator) focusField(name string) error {
	cs := v.controls(name)
	if len(cs) == 0 {
		return nil
	}

	err := cs[0].Focus()
	if err == nil {
		return nil
	}

	for _, c := range cs[1:] {
		if ferr := c.Focus(); ferr == nil {
			return nil
		}
	}

	return errors.Join(fmt.Errorf("%w: field %q", ErrFocusFailed, name), err)
}
