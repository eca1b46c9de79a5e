// Package formguard validates HTML forms by convention: error-message
// elements in the markup declare, through their id and class attributes,
// which field they belong to and which rules that field must satisfy. The
// validator scans those elements, checks each field's current value, and
// toggles message visibility. It is the same contract a client-side helper
// enforces in the page, made runnable anywhere a form can be modeled.
//
// # Markup convention
//
// An error element's id is the field name plus a configured suffix, and its
// class list carries the error marker plus prefixed rule tokens:
//
//	<input name="email" type="text">
//	<div id="email-err" class="error v-email" style="display:none">
//	    Please enter a valid email address.
//	</div>
//
// Rule tokens are the configured prefix followed by a method name and
// hyphen-separated arguments: "v-len-2-8" bounds the length to [2, 8],
// "v-match-password" requires equality with another field, "v-file-image"
// restricts an upload's extension, and any other name resolves against the
// expression table ("v-alphanum", "v-phone", ...).
//
// Fields with several independent messages mark each element with the
// multi-class token and a numeric id segment: "serial-0-err",
// "serial-1-err" both resolve to field "serial".
//
// # Usage
//
//	v := formguard.New(form)
//	ok, err := v.IsValid()
//	if err != nil {
//		// configuration problem: unknown rule, missing field, ...
//	}
//	if !ok {
//		// failing messages are now visible; focus sits on the first
//		// invalid field
//	}
//
// The form itself is abstracted behind the dom package's capability
// interfaces. The htmldom package adapts parsed HTML markup (including
// re-validating a submitted request body against the page the user saw),
// and dom.NewMemForm backs tests and programmatic use.
//
// # Configuration
//
// All conventions live in Config and can be replaced per validator or
// loaded from FORMGUARD_* environment variables via LoadConfig. The
// expression and file-type tables are exported fields and may be extended
// directly or merged from YAML with LoadTables.
package formguard
