package model

import (
	"fmt"
	"go/token"
)

// Ref identifies a declared entity, such as a function or method. It is used
// to attribute call sites to the symbols they resolve to.
type Ref struct {
	// Package is the import path of the package declaring the entity.
	Package string

	// Type is the package-local name of the receiver type for methods.
	// Empty for free functions.
	Type string

	// Name is the declared identifier of the entity within its package.
	Name string
}

func (r Ref) String() string {
	if r.Type != "" {
		return fmt.Sprintf("%s.%s.%s", r.Package, r.Type, r.Name)
	}

	return fmt.Sprintf("%s.%s", r.Package, r.Name)
}

// SlotKind tells whether a constrained slot is a value parameter or a generic
// type parameter of the call target.
type SlotKind int

const (
	SlotInvalid SlotKind = iota

	SlotParam
	SlotTypeParam
)

func (k SlotKind) String() string {
	switch k {
	case SlotParam:
		return "param"
	case SlotTypeParam:
		return "typeparam"
	default:
		return fmt.Sprintf("slot-invalid(%d)", k)
	}
}

// Requirement is one OR-group of acceptable marker attribute types. AnyOf is
// ordered, deduplicated, and never empty: an annotation with an empty list is
// discarded during extraction, not treated as always-failing.
type Requirement struct {
	AnyOf []TypeID
}

// Slot is a parameter or type parameter of a call target together with the
// ordered Requirements declared on it. All Requirements must independently
// hold (AND across groups, OR within each group).
type Slot struct {
	Name         string
	Kind         SlotKind
	Requirements []Requirement
}

// Binding pairs a constrained slot with the compile-time type supplied for it
// at one call site. Pos anchors diagnostics: the type-argument syntax when
// resolvable, else the argument expression, else the call expression.
type Binding struct {
	Slot     Slot
	Supplied Type
	Pos      token.Pos
}

// CallSite is one resolved invocation or construction expression with the
// bindings of its constrained slots. Transient, derived per call expression.
type CallSite struct {
	Target   Ref
	Bindings []Binding
	Pos      token.Pos
}
