// Package attrreq evaluates marker-attribute requirements against compile-time
// types. A requirement is an OR-group of acceptable marker types; a slot may
// carry several groups, all of which must hold independently (AND-of-ORs).
// Satisfaction walks the checked type's ancestry chain through the Oracle and
// accepts attributes that are, or derive from, a listed marker.
package attrreq

import (
	"github.com/convlint/convlint/internal/model"
)

// ExtractRequirements turns raw annotation groups, in source order, into the
// Requirement list of a slot. Duplicates within a group are removed keeping
// first occurrence; a group left empty is discarded rather than treated as an
// always-failing requirement.
func ExtractRequirements(groups [][]model.TypeID) []model.Requirement {
	var out []model.Requirement

	for _, group := range groups {
		seen := make(map[model.TypeID]struct{}, len(group))
		var anyOf []model.TypeID
		for _, id := range group {
			if id == "" {
				continue
			}
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			anyOf = append(anyOf, id)
		}

		if len(anyOf) == 0 {
			continue
		}

		out = append(out, model.Requirement{AnyOf: anyOf})
	}

	return out
}

// Unwrap reduces array and optional wrappers down to the checkable type, so
// that []T, [][]T and *T are all evaluated as T.
func Unwrap(t model.Type) model.Type {
	for {
		switch v := t.(type) {
		case model.Array:
			t = v.Elem
		case model.Optional:
			t = v.Elem
		default:
			return t
		}
	}
}

// Satisfies reports whether the type's ancestry carries at least one attribute
// that is, or derives from, a marker listed in the requirement. The first
// match short-circuits; exhausting the ancestry without a match is false.
func Satisfies(oracle model.Oracle, id model.TypeID, req model.Requirement) bool {
	want := make(map[model.TypeID]struct{}, len(req.AnyOf))
	for _, a := range req.AnyOf {
		want[a] = struct{}{}
	}

	// Cycle guard: ill-formed ancestry data must not hang the walk.
	visited := map[model.TypeID]struct{}{}

	cur := id
	for {
		if _, ok := visited[cur]; ok {
			return false
		}
		visited[cur] = struct{}{}

		for _, attr := range oracle.Attributes(cur) {
			if attrMatches(oracle, attr, want) {
				return true
			}
		}

		base, ok := oracle.Base(cur)
		if !ok {
			return false
		}
		cur = base
	}
}

// attrMatches checks an attached attribute against the wanted set, following
// the attribute's own base-type chain for derived markers.
func attrMatches(oracle model.Oracle, attr model.TypeID, want map[model.TypeID]struct{}) bool {
	visited := map[model.TypeID]struct{}{}

	cur := attr
	for {
		if _, ok := want[cur]; ok {
			return true
		}

		if _, ok := visited[cur]; ok {
			return false
		}
		visited[cur] = struct{}{}

		base, ok := oracle.Base(cur)
		if !ok {
			return false
		}
		cur = base
	}
}

// Failing evaluates every requirement against the unwrapped type and returns
// the ones that do not hold, in declaration order. A nil result means the
// full AND-of-ORs constraint is satisfied.
func Failing(oracle model.Oracle, t model.Type, reqs []model.Requirement) []model.Requirement {
	named, ok := Unwrap(t).(model.Named)
	if !ok {
		// Nothing checkable remained after unwrapping. Fail open.
		return nil
	}

	var failing []model.Requirement
	for _, req := range reqs {
		if !Satisfies(oracle, named.ID, req) {
			failing = append(failing, req)
		}
	}

	return failing
}
