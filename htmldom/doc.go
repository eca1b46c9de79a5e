// Package htmldom adapts parsed HTML markup to the dom capability
// interfaces consumed by formguard, so the same markup conventions a page
// declares for client-side validation can be re-run on the server.
//
// Parse reads an HTML document, locates its first form, and exposes the
// form's controls and error-message elements. ApplyValues overlays a
// submitted request body onto the parsed controls, which is the typical
// progressive-enhancement flow: render the page, receive the POST, and
// validate the submitted values against the very markup the user saw.
//
//	doc, err := htmldom.Parse(strings.NewReader(page))
//	if err != nil { ... }
//	doc.ApplyValues(r.PostForm)
//
//	v := formguard.New(doc)
//	ok, err := v.IsValid()
//
//	// Re-render with failing messages visible and the first invalid
//	// control carrying autofocus.
//	doc.Render(w)
//
// Display toggles are written back into style attributes and focus is
// recorded as an autofocus attribute, so Render emits a document that
// shows the validation outcome.
package htmldom
