package report

import (
	"github.com/convlint/convlint/internal/convrules"
)

// Descriptor is the static description of one rule: its message template and
// effective severity after configuration overrides.
type Descriptor struct {
	Rule     convrules.Rule
	Severity convrules.Severity
	Format   string
}

// Registry is the read-only diagnostic-descriptor lookup table. It is built
// once at startup from the rule set plus configuration overrides and passed
// by reference; there is no process-wide singleton.
type Registry struct {
	desc map[convrules.Rule]Descriptor
}

// NewRegistry builds a registry for every defined rule. Rules listed in
// disabled are left out entirely; severities maps rule codes to overrides.
func NewRegistry(severities map[convrules.Rule]convrules.Severity, disabled []string) *Registry {
	off := make(map[convrules.Rule]struct{}, len(disabled))
	for _, code := range disabled {
		if r, ok := convrules.ByCode(code); ok {
			off[r] = struct{}{}
		}
	}

	desc := make(map[convrules.Rule]Descriptor)
	for _, r := range convrules.All() {
		if _, ok := off[r]; ok {
			continue
		}

		sev := r.DefaultSeverity()
		if s, ok := severities[r]; ok && s != convrules.SeverityInvalid {
			sev = s
		}

		desc[r] = Descriptor{
			Rule:     r,
			Severity: sev,
			Format:   r.MessageFormat(),
		}
	}

	return &Registry{desc: desc}
}

// Lookup returns the descriptor of a rule, reporting false when the rule is
// disabled or unknown.
func (r *Registry) Lookup(rule convrules.Rule) (Descriptor, bool) {
	d, ok := r.desc[rule]
	return d, ok
}
