// Package convrules defines the canonical rule codes (CNV-series) enforced by convlint.
// Each rule represents a distinct project-layout or marker-attribute invariant.
//
// Rule numbering scheme:
//
//	000–099  Namespace and folder-layout rules
//	100–199  Marker-attribute requirement rules
package convrules

import "fmt"

// Rule represents a convlint rule code (CNV-series).
type Rule int

const (
	ruleInvalid Rule = iota

	CNV001NamespaceMismatch
	CNV002FileNamespaceMismatch
	CNV100MissingRequiredAttribute
)

// All returns every defined rule. The slice is freshly allocated on each call.
func All() []Rule {
	return []Rule{
		CNV001NamespaceMismatch,
		CNV002FileNamespaceMismatch,
		CNV100MissingRequiredAttribute,
	}
}

// Code returns the bare rule code, e.g. "CNV001".
func (r Rule) Code() string {
	switch r {
	case CNV001NamespaceMismatch:
		return "CNV001"
	case CNV002FileNamespaceMismatch:
		return "CNV002"
	case CNV100MissingRequiredAttribute:
		return "CNV100"
	default:
		return fmt.Sprintf("rule-unknown(%d)", r)
	}
}

// String returns the canonical code and short name of the rule.
// Example: "CNV001: NamespaceMismatch"
func (r Rule) String() string {
	switch r {
	case CNV001NamespaceMismatch:
		return "CNV001: NamespaceMismatch"
	case CNV002FileNamespaceMismatch:
		return "CNV002: FileNamespaceMismatch"
	case CNV100MissingRequiredAttribute:
		return "CNV100: MissingRequiredAttribute"
	default:
		return fmt.Sprintf("rule-unknown(%d)", r)
	}
}

// Description returns the human-readable explanation of the rule.
func (r Rule) Description() string {
	switch r {
	case CNV001NamespaceMismatch:
		return "Declared namespace of a type must match the value derived from the folder structure."
	case CNV002FileNamespaceMismatch:
		return "Declared namespace of a file must match the value derived from the folder structure."
	case CNV100MissingRequiredAttribute:
		return "Types bound at call sites must carry the marker attributes required by the target."
	default:
		return fmt.Sprintf("unknown-rule(%d)", r)
	}
}

// MessageFormat returns the fmt template used to render a diagnostic of this rule.
func (r Rule) MessageFormat() string {
	switch r {
	case CNV001NamespaceMismatch:
		return "Type %s has namespace '%s' but expected '%s'"
	case CNV002FileNamespaceMismatch:
		return "File %s does not match the expected namespace: %s"
	case CNV100MissingRequiredAttribute:
		return "Type %s does not contain required attributes: %s"
	default:
		return "unknown rule violation"
	}
}

// DefaultSeverity returns the severity a rule carries unless overridden by
// configuration. All convention findings are advisory, hence warning.
func (r Rule) DefaultSeverity() Severity {
	return SeverityWarning
}

// ByCode resolves a bare rule code like "CNV001" back to its Rule.
func ByCode(code string) (Rule, bool) {
	for _, r := range All() {
		if r.Code() == code {
			return r, true
		}
	}

	return ruleInvalid, false
}

// Canonical constructors — for readability and stable call sites.

func NamespaceMismatch() Rule        { return CNV001NamespaceMismatch }
func FileNamespaceMismatch() Rule    { return CNV002FileNamespaceMismatch }
func MissingRequiredAttribute() Rule { return CNV100MissingRequiredAttribute }
