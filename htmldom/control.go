package htmldom

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/formguard/formguard/dom"
)

// control adapts one input, select, or textarea node to dom.Control.
// Submitted values overlay the markup's own state without mutating the
// parsed tree, so the original attributes stay available for rendering.
type control struct {
	doc  *Document
	node *html.Node

	// valueSet/value overlay the markup value after ApplyValues.
	valueSet bool
	value    string

	// checkedSet/checked overlay the checked attribute after ApplyValues.
	checkedSet bool
	checked    bool
}

func (c *control) Type() dom.ControlType {
	switch c.node.Data {
	case "select":
		if hasAttr(c.node, "multiple") {
			return dom.TypeSelectMultiple
		}
		return dom.TypeSelectOne
	case "textarea":
		return dom.TypeTextarea
	default:
		typ := strings.ToLower(getAttr(c.node, "type"))
		if typ == "" {
			return dom.TypeText
		}
		return dom.ControlType(typ)
	}
}

func (c *control) Name() string { return getAttr(c.node, "name") }

func (c *control) Value() string {
	if c.valueSet {
		return c.value
	}
	switch c.node.Data {
	case "select":
		return c.selectedValue()
	case "textarea":
		return textContent(c.node)
	default:
		return getAttr(c.node, "value")
	}
}

func (c *control) Checked() bool {
	if c.checkedSet {
		return c.checked
	}
	return hasAttr(c.node, "checked")
}

func (c *control) Disabled() bool { return hasAttr(c.node, "disabled") }
func (c *control) ReadOnly() bool { return hasAttr(c.node, "readonly") }

// Focus records focus as an autofocus attribute on the node, clearing any
// previous holder so the rendered document has at most one.
func (c *control) Focus() error {
	if c.doc.focused != nil {
		removeAttr(c.doc.focused, "autofocus")
	}
	setAttr(c.node, "autofocus", "")
	c.doc.focused = c.node
	return nil
}

// selectedValue returns the value of the first selected option, falling
// back to the option's text when it carries no value attribute.
func (c *control) selectedValue() string {
	for n := range c.node.Descendants() {
		if n.Type == html.ElementNode && n.Data == "option" && hasAttr(n, "selected") {
			if hasAttr(n, "value") {
				return getAttr(n, "value")
			}
			return strings.TrimSpace(textContent(n))
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	var b strings.Builder
	for d := range n.Descendants() {
		if d.Type == html.TextNode {
			b.WriteString(d.Data)
		}
	}
	return b.String()
}
