package formguard

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// RuleSpec is one parsed class token: a method name selecting a validation
// function and its positional string arguments.
type RuleSpec struct {
	Method string
	Args   []string
}

func (s RuleSpec) firstArg() string {
	if len(s.Args) == 0 {
		return ""
	}
	return s.Args[0]
}

// ParseRuleToken parses a single class token into a RuleSpec. The
// configured prefix is removed when present; an unprefixed token is used
// as-is so it can fall through to named-expression lookup. The remainder is
// split on hyphens with empty segments discarded: zero segments yield the
// empty method (always valid), one segment is a method with no arguments,
// and further segments are positional arguments.
func (v *Validator) ParseRuleToken(token string) RuleSpec {
	token = strings.TrimPrefix(token, v.Config.Prefix)

	var parts []string
	for _, p := range strings.Split(token, "-") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return RuleSpec{}
	}
	return RuleSpec{Method: parts[0], Args: parts[1:]}
}

// ruleToken decides whether one class token encodes a rule. Prefixed tokens
// are parsed into a RuleSpec; the bare error class and the multi-class
// marker are rule tokens in their own right; anything else is styling and
// is ignored.
func (v *Validator) ruleToken(token string) (RuleSpec, bool) {
	if strings.HasPrefix(token, v.Config.Prefix) {
		return v.ParseRuleToken(token), true
	}
	if token == v.Config.ErrorClass || token == v.Config.MultiClass {
		return RuleSpec{Method: token}, true
	}
	return RuleSpec{}, false
}

// Evaluate runs every rule token found in a class string against the value.
// All recognized tokens must pass; evaluation stops at the first failure.
// Unprefixed tokens other than the error class and the multi-class marker
// are treated as styling and skipped.
func (v *Validator) Evaluate(class, value string) (bool, error) {
	for _, token := range strings.Fields(class) {
		spec, ok := v.ruleToken(token)
		if !ok {
			continue
		}
		pass, err := v.applyRule(spec, value)
		if err != nil {
			return false, err
		}
		if !pass {
			return false, nil
		}
	}
	return true, nil
}

// applyRule dispatches a parsed rule against a field value.
func (v *Validator) applyRule(spec RuleSpec, value string) (bool, error) {
	switch spec.Method {
	case "":
		return true, nil

	case "email":
		return v.ValidEmail(value)

	case "file", "upload":
		return v.AllowedFile(value, spec.firstArg())

	case "len":
		return validLengthArgs(value, spec.Args), nil

	case "match", "eq", "equal":
		return v.matchesField(value, spec.firstArg())

	case "required", "error", v.Config.ErrorClass:
		return value != "", nil

	case v.Config.MultiClass:
		// Marker only; carries no constraint of its own.
		return true, nil

	default:
		re, err := v.expression(spec.Method)
		if err != nil {
			return false, err
		}
		return re.MatchString(value), nil
	}
}

// expression resolves a named pattern from the live table.
func (v *Validator) expression(name string) (*regexp.Regexp, error) {
	re, ok := v.Expressions[name]
	if !ok {
		v.log.Warn("validation rule not found", "rule", name)
		return nil, fmt.Errorf("%w: %q", ErrUnknownRule, name)
	}
	return re, nil
}

// ValidEmail validates an address in two stages: the substring after the
// last "@" against the domain pattern, the substring before it against the
// permissive local-part pattern. A domain may not contain "@" but a local
// part syntactically may, hence the split at the last occurrence. A single
// combined pattern cannot reproduce this because the domain pattern must
// anchor the tail on its own.
func (v *Validator) ValidEmail(value string) (bool, error) {
	at := strings.LastIndex(value, "@")
	if at < 0 {
		return false, nil
	}

	domainRe, err := v.expression("domain")
	if err != nil {
		return false, err
	}
	localRe, err := v.expression("email-local")
	if err != nil {
		return false, err
	}

	return domainRe.MatchString(value[at+1:]) && localRe.MatchString(value[:at]), nil
}

// AllowedFile checks a filename's extension against a named group,
// case-insensitively. A trailing literal double quote, left behind by some
// browsers when quoting paths, is stripped first.
func (v *Validator) AllowedFile(value, group string) (bool, error) {
	exts, ok := v.FileTypes[group]
	if !ok {
		v.log.Warn("file-type group not found", "group", group)
		return false, fmt.Errorf("%w: %q", ErrUnknownFileGroup, group)
	}

	if strings.HasSuffix(value, `"`) {
		value = value[:len(value)-1]
	}

	dot := strings.LastIndex(value, ".")
	if dot < 0 {
		return false, nil
	}

	return slices.Contains(exts, strings.ToLower(value[dot+1:])), nil
}

// matchesField passes when the value equals the current value of the
// referenced control.
func (v *Validator) matchesField(value, other string) (bool, error) {
	controls := v.controls(other)
	if len(controls) == 0 {
		return false, fmt.Errorf("%w: %q", ErrNoSuchField, other)
	}
	return value == controls[0].Value(), nil
}

// ValidLength checks the value's length against inclusive bounds. A zero
// max means min-only. A min greater than max can never be satisfied and
// always fails; a misconfigured bound is a false result, not an error.
func ValidLength(value string, min, max int) bool {
	if max == 0 {
		return len(value) >= min
	}
	return min <= max && len(value) >= min && len(value) <= max
}

// validLengthArgs applies the len rule's positional arguments. Missing
// arguments leave the rule unconstrained; non-numeric bounds fail.
func validLengthArgs(value string, args []string) bool {
	if len(args) == 0 {
		return true
	}

	min, err := strconv.Atoi(args[0])
	if err != nil {
		return false
	}

	max := 0
	if len(args) > 1 {
		if max, err = strconv.Atoi(args[1]); err != nil {
			return false
		}
	}

	return ValidLength(value, min, max)
}
