package formguard

import (
	"fmt"

	"github.com/formguard/formguard/dom"
)

// controls resolves a field name to its control group, falling back to the
// "name[]" convention used for bracket-named array fields.
func (v *Validator) controls(name string) []dom.Control {
	cs := v.form.Controls(name)
	if len(cs) == 0 {
		cs = v.form.Controls(name + "[]")
	}
	return cs
}

// checkField dispatches to the checker for the field's control type. The
// class string is the owning error element's class attribute, carrying the
// rule tokens for value-bearing control types.
func (v *Validator) checkField(name, class string) (bool, error) {
	cs := v.controls(name)
	if len(cs) == 0 {
		return false, fmt.Errorf("%w: %q", ErrNoSuchField, name)
	}

	first := cs[0]
	switch first.Type() {
	case dom.TypeCheckbox:
		return checkCheckboxGroup(cs), nil

	case dom.TypeRadio:
		return checkRadioGroup(cs), nil

	case dom.TypeText, dom.TypePassword:
		if first.Disabled() || first.ReadOnly() {
			return true, nil
		}
		return v.Evaluate(class, first.Value())

	case dom.TypeSelectOne, dom.TypeSelectMultiple:
		if first.Disabled() {
			return true, nil
		}
		return first.Value() != "", nil

	case dom.TypeTextarea:
		if first.Disabled() || first.ReadOnly() {
			return true, nil
		}
		return first.Value() != "", nil

	case dom.TypeFile:
		if first.Disabled() {
			return true, nil
		}
		return v.Evaluate(class, first.Value())

	default:
		// button, hidden, image, reset, submit, or anything unrecognized:
		// not a validatable field type.
		return true, nil
	}
}

// checkCheckboxGroup passes when any enabled member is checked. Disabled
// controls always count as passing, so a fully disabled group passes too.
func checkCheckboxGroup(cs []dom.Control) bool {
	allDisabled := true
	for _, c := range cs {
		if c.Disabled() {
			continue
		}
		allDisabled = false
		if c.Checked() {
			return true
		}
	}
	return allDisabled
}

// checkRadioGroup passes when any member is checked; disabled state is not
// consulted for radios.
func checkRadioGroup(cs []dom.Control) bool {
	for _, c := range cs {
		if c.Checked() {
			return true
		}
	}
	return false
}
