package htmldom

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"slices"

	"golang.org/x/net/html"

	"github.com/formguard/formguard/dom"
)

// ErrNoForm is returned by Parse when the document contains no form
// element.
var ErrNoForm = errors.New("document contains no form")

// Document is a parsed HTML page scoped to its first form. It implements
// dom.Form, so a formguard.Validator can run directly against it.
type Document struct {
	root     *html.Node
	form     *html.Node
	controls []*control
	elements []*element
	fragment string
	focused  *html.Node
}

// Parse reads an HTML document and binds to its first form element. The
// form's input, select, and textarea descendants become controls; every
// descendant carrying both an id and a class attribute becomes a candidate
// error element, in document order.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	d := &Document{root: root}
	for n := range root.Descendants() {
		if n.Type == html.ElementNode && n.Data == "form" {
			d.form = n
			break
		}
	}
	if d.form == nil {
		return nil, ErrNoForm
	}

	for n := range d.form.Descendants() {
		if n.Type != html.ElementNode {
			continue
		}
		switch n.Data {
		case "input", "select", "textarea":
			d.controls = append(d.controls, &control{doc: d, node: n})
		}
		if getAttr(n, "id") != "" && hasAttr(n, "class") {
			d.elements = append(d.elements, &element{node: n})
		}
	}

	return d, nil
}

// ApplyValues overlays a submitted form body onto the parsed controls.
// Text-like controls take the submitted string for their name; checkboxes
// and radios become checked iff their markup value appears among the
// submitted values; selects adopt the submitted option value. Controls
// whose name is absent from values are left untouched for value-bearing
// types and unchecked for checkable ones, mirroring how browsers omit
// unchecked controls from a submission.
func (d *Document) ApplyValues(values url.Values) {
	for _, c := range d.controls {
		name := c.Name()
		if name == "" {
			continue
		}

		submitted, present := values[name]
		if !present {
			// Bracket-named array fields submit under their literal name.
			submitted, present = values[name+"[]"]
		}

		switch c.Type() {
		case dom.TypeCheckbox, dom.TypeRadio:
			own := getAttr(c.node, "value")
			if own == "" {
				// Value-less checkable controls submit as "on".
				own = "on"
			}
			c.checkedSet = true
			c.checked = present && slices.Contains(submitted, own)
		case dom.TypeSelectOne, dom.TypeSelectMultiple:
			if present && len(submitted) > 0 {
				c.valueSet = true
				c.value = submitted[0]
			}
		default:
			if present && len(submitted) > 0 {
				c.valueSet = true
				c.value = submitted[0]
			}
		}
	}
}

// Controls returns every control sharing the given name, in document order.
func (d *Document) Controls(name string) []dom.Control {
	var out []dom.Control
	for _, c := range d.controls {
		if c.Name() == name {
			out = append(out, c)
		}
	}
	return out
}

// Elements returns the candidate error elements in document order.
func (d *Document) Elements() []dom.Element {
	out := make([]dom.Element, len(d.elements))
	for i, e := range d.elements {
		out[i] = e
	}
	return out
}

// Navigate records the target fragment; a parsed document has no page to
// move, so the caller reads it back via Fragment.
func (d *Document) Navigate(fragment string) { d.fragment = fragment }

// Fragment returns the fragment recorded by the last Navigate call.
func (d *Document) Fragment() string { return d.fragment }

// Render serializes the document, including display toggles and the
// autofocus marker applied during validation.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// element adapts an id-and-class bearing node to dom.Element.
type element struct {
	node *html.Node
}

func (e *element) ID() string    { return getAttr(e.node, "id") }
func (e *element) Class() string { return getAttr(e.node, "class") }
func (e *element) Tag() string   { return e.node.Data }

func (e *element) Display() string {
	return styleDisplay(getAttr(e.node, "style"))
}

func (e *element) SetDisplay(mode string) {
	setAttr(e.node, "style", withStyleDisplay(getAttr(e.node, "style"), mode))
}
