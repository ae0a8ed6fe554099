// Package nspath computes the namespace a file is expected to declare, from a
// configured root namespace and the file's directory position under the
// project root. Resolution is pure: no filesystem access, no environment
// lookups, and every unresolvable input degrades to the root namespace
// instead of failing.
package nspath

import (
	"strings"
	"unicode"
)

// MaxDepth bounds how many directory segments may contribute to the expected
// namespace. The clamp range is [0, MaxDepth]; this constant is the single
// authoritative bound, do not re-derive it elsewhere.
const MaxDepth = 5

// Config is the namespace rule configuration, read once per analyzed package
// and shared read-only afterwards.
type Config struct {
	// Root is the root namespace every expected value starts with.
	Root string

	// Depth is how many directory segments under the project root extend the
	// root namespace. Zero disables path-derived segments.
	Depth int
}

// Normalize trims the root and clamps the depth to [0, MaxDepth]. The second
// result reports whether the namespace rule is enabled at all: a blank root
// disables it entirely rather than producing diagnostics.
func (c Config) Normalize() (Config, bool) {
	c.Root = strings.TrimSpace(c.Root)
	if c.Root == "" {
		return c, false
	}

	if c.Depth < 0 {
		c.Depth = 0
	}
	if c.Depth > MaxDepth {
		c.Depth = MaxDepth
	}

	return c, true
}

// KeywordFunc reports whether an identifier collides with a keyword of the
// host language. The Go front end passes go/token.IsKeyword.
type KeywordFunc func(string) bool

// Sanitize turns an arbitrary path segment into a valid, non-keyword
// identifier. Every character that is not a letter, digit or underscore
// becomes an underscore; a leading character that cannot start an identifier
// gets an underscore prepended, as does a keyword collision. Empty input
// yields empty output, which callers drop. Sanitize is idempotent on inputs
// that are already valid non-keyword identifiers.
func Sanitize(raw string, isKeyword KeywordFunc) string {
	if raw == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(raw) + 1)

	for i, r := range raw {
		switch {
		case unicode.IsLetter(r) || r == '_':
		case unicode.IsDigit(r):
			if i == 0 {
				b.WriteByte('_')
			}
		default:
			r = '_'
		}
		b.WriteRune(r)
	}

	s := b.String()
	if isKeyword != nil && isKeyword(s) {
		s = "_" + s
	}

	return s
}

// Result is the outcome of expected-namespace resolution. Degraded marks the
// fail-open path: the file's directory could not be placed under the project
// root, so the expectation fell back to the bare root namespace.
type Result struct {
	Namespace string
	Degraded  bool
}

// Expected computes the namespace a file at filePath is expected to declare.
// cfg must be normalized and enabled. Both paths are compared after separator
// normalization, case-insensitively; a file outside the project root, or an
// empty project root, degrades to the root namespace without error.
func Expected(cfg Config, filePath, projectRoot string, isKeyword KeywordFunc) Result {
	if cfg.Depth <= 0 || filePath == "" {
		return Result{Namespace: cfg.Root}
	}

	dir := containingDir(normalizePath(filePath))
	root := normalizePath(projectRoot)
	if dir == "" || root == "" {
		return Result{Namespace: cfg.Root, Degraded: true}
	}

	rel, ok := relativeTo(dir, root)
	if !ok {
		return Result{Namespace: cfg.Root, Degraded: true}
	}

	segments := splitSegments(rel)
	if len(segments) > cfg.Depth {
		segments = segments[:cfg.Depth]
	}

	kept := segments[:0]
	for _, seg := range segments {
		if s := Sanitize(seg, isKeyword); s != "" {
			kept = append(kept, s)
		}
	}

	if len(kept) == 0 {
		return Result{Namespace: cfg.Root}
	}

	return Result{Namespace: cfg.Root + "." + strings.Join(kept, ".")}
}

// normalizePath folds both separator conventions into forward slashes and
// strips a trailing separator.
func normalizePath(p string) string {
	p = strings.ReplaceAll(p, `\`, "/")
	return strings.TrimRight(p, "/")
}

func containingDir(p string) string {
	i := strings.LastIndexByte(p, '/')
	if i < 0 {
		return ""
	}

	return p[:i]
}

// relativeTo returns dir's path relative to root, using a case-insensitive
// containment test. dir equal to root yields an empty relative path.
func relativeTo(dir, root string) (string, bool) {
	if strings.EqualFold(dir, root) {
		return "", true
	}

	if len(dir) <= len(root) {
		return "", false
	}

	if !strings.EqualFold(dir[:len(root)], root) || dir[len(root)] != '/' {
		return "", false
	}

	return dir[len(root)+1:], true
}

func splitSegments(rel string) []string {
	return strings.FieldsFunc(rel, func(r rune) bool {
		return r == '/'
	})
}
