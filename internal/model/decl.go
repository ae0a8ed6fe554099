package model

import "go/token"

// Span is a half-open source range. Used for the namespace directive value so
// a suggested fix can rewrite exactly the declared name.
type Span struct {
	Pos token.Pos
	End token.Pos
}

// Valid reports whether the span points at real source text.
func (s Span) Valid() bool {
	return s.Pos.IsValid() && s.End.IsValid() && s.Pos < s.End
}

// Location is one physical declaration of a type. A logical type declared in
// several files carries one Location per file, and each is checked against
// that file's own expected namespace.
type Location struct {
	File string

	// NamePos anchors diagnostics at the type's name token. DeclPos is the
	// fallback when the name token is unavailable.
	NamePos token.Pos
	DeclPos token.Pos

	// Namespace is the span of the declared namespace name in this file,
	// invalid when the file carries no namespace declaration to rewrite.
	Namespace Span
}

// Anchor returns the position a diagnostic for this location points at.
func (l Location) Anchor() token.Pos {
	if l.NamePos.IsValid() {
		return l.NamePos
	}

	return l.DeclPos
}

// TypeDecl is one logical top-level type with its declared containing
// namespace and every physical declaration location.
type TypeDecl struct {
	Name      string
	Namespace string
	Locations []Location

	// Nested and Synthesized declarations are skipped by the namespace
	// checker: the rule covers hand-written top-level types only.
	Nested      bool
	Synthesized bool
}

// FileDecl is a file-level namespace declaration for files that declare a
// namespace but contain no checkable types. Checked as a whole-file unit.
type FileDecl struct {
	File      string
	Namespace string
	Span      Span
	TypeCount int
}
