// Package model defines the front-end independent symbol model both rule
// engines operate on. The host front end (go/ast + go/types here) translates
// its own symbol graph into these values; the engines never look past them.
package model

import (
	"strings"
)

// TypeID identifies a named type as "<package path>.<name>". Universe-scope
// types such as "int" carry no package prefix. Type names cannot contain
// dots, so the last dot always separates the package path from the name.
type TypeID string

// Name returns the package-local name of the type.
func (id TypeID) Name() string {
	if i := strings.LastIndexByte(string(id), '.'); i >= 0 {
		return string(id[i+1:])
	}

	return string(id)
}

// Package returns the package path of the type, empty for universe types.
func (id TypeID) Package() string {
	if i := strings.LastIndexByte(string(id), '.'); i >= 0 {
		return string(id[:i])
	}

	return ""
}

// Type is the compile-time type bound to a call-site slot, with just enough
// structure to unwrap arrays and optionals down to a checkable named type.
type Type interface {
	isType()
}

// Named is a non-wrapper type identified by its TypeID.
type Named struct {
	ID TypeID
}

// Array wraps an element type, covering both slices and fixed-size arrays.
type Array struct {
	Elem Type
}

// Optional wraps a type that may be absent. In the Go front end this is a
// pointer; other front ends bind their own single-argument option wrapper.
type Optional struct {
	Elem Type
}

func (Named) isType()    {}
func (Array) isType()    {}
func (Optional) isType() {}

// Oracle is the ancestry oracle: given a type identifier it yields the marker
// attributes directly attached to the type and its direct base type, if any.
// Both rule engines are implemented purely against this interface.
type Oracle interface {
	// Attributes returns the marker attribute types directly attached to id.
	Attributes(id TypeID) []TypeID

	// Base returns the direct base type of id, reporting false at a root.
	Base(id TypeID) (TypeID, bool)
}

// TableOracle is a map-backed Oracle used by tests and offline tooling.
type TableOracle struct {
	Attrs map[TypeID][]TypeID
	Bases map[TypeID]TypeID
}

func (o *TableOracle) Attributes(id TypeID) []TypeID {
	return o.Attrs[id]
}

func (o *TableOracle) Base(id TypeID) (TypeID, bool) {
	base, ok := o.Bases[id]
	return base, ok
}
