package formguard_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formguard/formguard"
	"github.com/formguard/formguard/dom"
)

// countingForm wraps MemForm and records how many times each field's
// control group is looked up, which is a direct proxy for how many times a
// field gets evaluated.
type countingForm struct {
	*dom.MemForm
	lookups map[string]int
}

func newCountingForm(mem *dom.MemForm) *countingForm {
	return &countingForm{MemForm: mem, lookups: map[string]int{}}
}

func (f *countingForm) Controls(name string) []dom.Control {
	f.lookups[name]++
	return f.MemForm.Controls(name)
}

func signupForm() (*dom.MemForm, map[string]*dom.MemElement) {
	form := dom.NewMemForm(
		dom.NewMemControl("name", dom.TypeText, "Ada"),
		dom.NewMemControl("email", dom.TypeText, "ada@example.com"),
	)
	els := map[string]*dom.MemElement{
		"name":  dom.NewMemElement("name-err", "error v-required", "div"),
		"email": dom.NewMemElement("email-err", "error v-email", "div"),
	}
	form.AddElement(els["name"])
	form.AddElement(els["email"])
	return form, els
}

func TestIsValid(t *testing.T) {
	t.Run("returns true and keeps every message hidden on a valid form", func(t *testing.T) {
		form, els := signupForm()
		v := formguard.New(form)

		v.HideAllErrors()
		ok, err := v.IsValid()
		require.NoError(t, err)
		assert.True(t, ok)
		for name, el := range els {
			assert.True(t, el.Hidden(), "message for %q should stay hidden", name)
		}
	})

	t.Run("shows only the failing field's message", func(t *testing.T) {
		form, els := signupForm()
		form.Controls("email")[0].(*dom.MemControl).Val = "not-an-address"
		v := formguard.New(form)

		ok, err := v.IsValid()
		require.NoError(t, err)
		assert.False(t, ok)
		assert.True(t, els["name"].Hidden())
		assert.Equal(t, "block", els["email"].Display())
	})

	t.Run("is idempotent while values stay unchanged", func(t *testing.T) {
		form, els := signupForm()
		form.Controls("email")[0].(*dom.MemControl).Val = ""
		v := formguard.New(form)

		first, err := v.IsValid()
		require.NoError(t, err)
		second, err := v.IsValid()
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.False(t, second)
		assert.True(t, els["name"].Hidden())
		assert.Equal(t, "block", els["email"].Display())
	})

	t.Run("config changes take effect on the next call", func(t *testing.T) {
		form, els := signupForm()
		form.Controls("email")[0].(*dom.MemControl).Val = ""
		v := formguard.New(form)

		v.Config.DisplayMode = "inline"
		ok, err := v.IsValid()
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, "inline", els["email"].Display())
	})

	t.Run("propagates an unknown rule instead of passing silently", func(t *testing.T) {
		form := dom.NewMemForm(dom.NewMemControl("code", dom.TypeText, "x"))
		form.AddElement(dom.NewMemElement("code-err", "error v-hovercraft", "div"))
		v := formguard.New(form)

		_, err := v.IsValid()
		assert.ErrorIs(t, err, formguard.ErrUnknownRule)
	})

	t.Run("errors when a message resolves to no control", func(t *testing.T) {
		form := dom.NewMemForm()
		form.AddElement(dom.NewMemElement("ghost-err", "error", "div"))
		v := formguard.New(form)

		_, err := v.IsValid()
		assert.ErrorIs(t, err, formguard.ErrNoSuchField)
	})

	t.Run("tag filter restricts the scan", func(t *testing.T) {
		form := dom.NewMemForm(dom.NewMemControl("name", dom.TypeText, ""))
		div := dom.NewMemElement("name-err", "error v-required", "div")
		span := dom.NewMemElement("name-0-err", "error multi v-required", "span")
		form.AddElement(div)
		form.AddElement(span)

		v := formguard.New(form)
		v.Config.ErrorTag = "span"
		v.Config.Jump = false

		ok, err := v.IsValid()
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, "", div.Display(), "div is outside the tag filter")
		assert.Equal(t, "block", span.Display())
	})

	t.Run("elements without an error class are ignored", func(t *testing.T) {
		form := dom.NewMemForm(dom.NewMemControl("name", dom.TypeText, ""))
		hint := dom.NewMemElement("name-err", "hint", "div")
		form.AddElement(hint)
		v := formguard.New(form)

		ok, err := v.IsValid()
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "", hint.Display())
	})
}

func TestMultiMessageFields(t *testing.T) {
	multiForm := func(serial string) (*countingForm, []*dom.MemElement) {
		mem := dom.NewMemForm(dom.NewMemControl("serial", dom.TypeText, serial))
		els := []*dom.MemElement{
			dom.NewMemElement("serial-0-err", "error multi", "div"),
			dom.NewMemElement("serial-1-err", "error multi v-num", "div"),
			dom.NewMemElement("serial-2-err", "error multi v-len-4-8", "div"),
		}
		for _, el := range els {
			mem.AddElement(el)
		}
		return newCountingForm(mem), els
	}

	t.Run("all message ids resolve to the shared field name", func(t *testing.T) {
		form, _ := multiForm("1234")
		v := formguard.New(form)
		v.Config.Jump = false

		ok, err := v.IsValid()
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Zero(t, form.lookups["serial-0"], "the numeric segment must be stripped")
		assert.Zero(t, form.lookups["serial-1"])
		assert.Zero(t, form.lookups["serial-2"])
		assert.NotZero(t, form.lookups["serial"])
	})

	t.Run("later messages are skipped once one has failed", func(t *testing.T) {
		form, els := multiForm("")
		v := formguard.New(form)
		v.Config.Jump = false

		ok, err := v.IsValid()
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, 1, form.lookups["serial"], "exactly one evaluation for the field")
		assert.Equal(t, "block", els[0].Display())
		assert.True(t, els[1].Hidden())
		assert.True(t, els[2].Hidden())
	})

	t.Run("a passing message does not suppress a later failing one", func(t *testing.T) {
		// The loop only skips a field equal to the most recently failed
		// one, so messages keep being evaluated until one fails.
		form, els := multiForm("abc")
		v := formguard.New(form)
		v.Config.Jump = false

		ok, err := v.IsValid()
		require.NoError(t, err)
		assert.False(t, ok)
		assert.True(t, els[0].Hidden(), "presence check passed")
		assert.Equal(t, "block", els[1].Display(), "num rule failed")
		assert.True(t, els[2].Hidden(), "skipped after the failure")
		assert.Equal(t, 2, form.lookups["serial"])
	})
}

func TestCheckerDispatch(t *testing.T) {
	t.Run("checkbox group passes when any enabled member is checked", func(t *testing.T) {
		a := dom.NewMemControl("colors[]", dom.TypeCheckbox, "red")
		b := dom.NewMemControl("colors[]", dom.TypeCheckbox, "blue")
		b.IsChecked = true
		form := dom.NewMemForm(a, b)
		form.AddElement(dom.NewMemElement("colors-err", "error", "div"))
		v := formguard.New(form)

		ok, err := v.IsValid()
		require.NoError(t, err)
		assert.True(t, ok, "bracket-named group resolves via the [] fallback")
	})

	t.Run("checkbox group fails when nothing is checked", func(t *testing.T) {
		form := dom.NewMemForm(
			dom.NewMemControl("colors[]", dom.TypeCheckbox, "red"),
			dom.NewMemControl("colors[]", dom.TypeCheckbox, "blue"),
		)
		form.AddElement(dom.NewMemElement("colors-err", "error", "div"))
		v := formguard.New(form)
		v.Config.Jump = false

		ok, err := v.IsValid()
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("fully disabled checkbox group always passes", func(t *testing.T) {
		a := dom.NewMemControl("tos", dom.TypeCheckbox, "yes")
		a.IsDisabled = true
		form := dom.NewMemForm(a)
		form.AddElement(dom.NewMemElement("tos-err", "error", "div"))
		v := formguard.New(form)

		ok, err := v.IsValid()
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("radio group needs one checked member regardless of disabled state", func(t *testing.T) {
		a := dom.NewMemControl("plan", dom.TypeRadio, "basic")
		b := dom.NewMemControl("plan", dom.TypeRadio, "pro")
		a.IsDisabled = true
		a.IsChecked = true
		form := dom.NewMemForm(a, b)
		form.AddElement(dom.NewMemElement("plan-err", "error", "div"))
		v := formguard.New(form)

		ok, err := v.IsValid()
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("disabled text control skips its rules", func(t *testing.T) {
		c := dom.NewMemControl("nick", dom.TypeText, "")
		c.IsDisabled = true
		form := dom.NewMemForm(c)
		form.AddElement(dom.NewMemElement("nick-err", "error v-required v-alphanum", "div"))
		v := formguard.New(form)

		ok, err := v.IsValid()
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("read-only textarea passes while an empty one fails", func(t *testing.T) {
		empty := dom.NewMemControl("bio", dom.TypeTextarea, "")
		form := dom.NewMemForm(empty)
		form.AddElement(dom.NewMemElement("bio-err", "error", "div"))
		v := formguard.New(form)
		v.Config.Jump = false

		ok, err := v.IsValid()
		require.NoError(t, err)
		assert.False(t, ok)

		empty.IsReadOnly = true
		ok, err = v.IsValid()
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("select needs a non-empty selected value", func(t *testing.T) {
		sel := dom.NewMemControl("country", dom.TypeSelectOne, "")
		form := dom.NewMemForm(sel)
		form.AddElement(dom.NewMemElement("country-err", "error", "div"))
		v := formguard.New(form)
		v.Config.Jump = false

		ok, err := v.IsValid()
		require.NoError(t, err)
		assert.False(t, ok)

		sel.Val = "no"
		ok, err = v.IsValid()
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("file control runs the rule chain against the filename", func(t *testing.T) {
		up := dom.NewMemControl("avatar", dom.TypeFile, "me.exe")
		form := dom.NewMemForm(up)
		form.AddElement(dom.NewMemElement("avatar-err", "error v-file-image", "div"))
		v := formguard.New(form)
		v.Config.Jump = false

		ok, err := v.IsValid()
		require.NoError(t, err)
		assert.False(t, ok)

		up.Val = "me.png"
		ok, err = v.IsValid()
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("non-validatable control types always pass", func(t *testing.T) {
		form := dom.NewMemForm(
			dom.NewMemControl("token", dom.TypeHidden, ""),
			dom.NewMemControl("go", dom.TypeSubmit, ""),
		)
		form.AddElement(dom.NewMemElement("token-err", "error v-required", "div"))
		form.AddElement(dom.NewMemElement("go-err", "error v-required", "div"))
		v := formguard.New(form)

		ok, err := v.IsValid()
		require.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestFailureJump(t *testing.T) {
	t.Run("navigates to the anchor and focuses the first failing field", func(t *testing.T) {
		name := dom.NewMemControl("name", dom.TypeText, "")
		email := dom.NewMemControl("email", dom.TypeText, "")
		form := dom.NewMemForm(name, email)
		form.AddElement(dom.NewMemElement("name-err", "error v-required", "div"))
		form.AddElement(dom.NewMemElement("email-err", "error v-required", "div"))

		v := formguard.New(form)
		v.Config.Anchor = "#errors"

		ok, err := v.IsValid()
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, "#errors", form.Fragment())
		assert.True(t, name.Focused, "first failure wins focus")
		assert.False(t, email.Focused)
	})

	t.Run("jump disabled leaves navigation and focus alone", func(t *testing.T) {
		name := dom.NewMemControl("name", dom.TypeText, "")
		form := dom.NewMemForm(name)
		form.AddElement(dom.NewMemElement("name-err", "error v-required", "div"))

		v := formguard.New(form)
		v.Config.Jump = false
		v.Config.Anchor = "#errors"

		ok, err := v.IsValid()
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, form.Fragment())
		assert.False(t, name.Focused)
	})

	t.Run("falls back to the next group member when focus fails", func(t *testing.T) {
		a := dom.NewMemControl("colors[]", dom.TypeCheckbox, "red")
		b := dom.NewMemControl("colors[]", dom.TypeCheckbox, "blue")
		a.FocusErr = errors.New("detached node")
		form := dom.NewMemForm(a, b)
		form.AddElement(dom.NewMemElement("colors-err", "error", "div"))

		v := formguard.New(form)

		ok, err := v.IsValid()
		require.NoError(t, err)
		assert.False(t, ok)
		assert.True(t, b.Focused)
	})

	t.Run("propagates when no group member accepts focus", func(t *testing.T) {
		a := dom.NewMemControl("name", dom.TypeText, "")
		a.FocusErr = errors.New("detached node")
		form := dom.NewMemForm(a)
		form.AddElement(dom.NewMemElement("name-err", "error v-required", "div"))

		v := formguard.New(form)

		_, err := v.IsValid()
		assert.ErrorIs(t, err, formguard.ErrFocusFailed)
	})
}

func TestHideAllErrors(t *testing.T) {
	form, els := signupForm()
	for _, el := range els {
		el.SetDisplay("block")
	}

	v := formguard.New(form)
	v.HideAllErrors()

	for name, el := range els {
		assert.True(t, el.Hidden(), "message for %q", name)
	}
}
