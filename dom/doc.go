// Package dom defines the minimal document capability surface the formguard
// validator needs: named-control lookup, error-element enumeration with
// display toggling, focus transfer, and anchor navigation.
//
// The validator core never touches a real document tree directly; it talks to
// the Form, Control, and Element interfaces declared here. That keeps the
// validation logic independently testable and lets the same rules run against
// different backends: the htmldom package adapts parsed HTML markup, and the
// in-memory implementation in this package (NewMemForm) backs tests and
// programmatic use.
//
// # Usage
//
//	form := dom.NewMemForm(
//		dom.NewMemControl("email", dom.TypeText, "user@example.com"),
//	)
//	form.AddElement(dom.NewMemElement("email-err", "error v-email", "div"))
//
//	v := formguard.New(form)
//	ok, err := v.IsValid()
//
// Implementations are expected to return controls and elements in document
// order; the validator's first-error and skip-repeated-field behavior depends
// on it.
package dom
