// Package scrap is the Go front end of the rule engines: it reads convlint
// directives out of the AST, translates go/types information into the
// front-end independent model, and exposes the ancestry oracle backed by
// analysis facts so marker attributes stay visible across packages.
//
// Directives:
//
//	//convlint:config {root: acme.app, depth: 2}   package configuration
//	//convlint:namespace acme.app.features.auth    declared namespace of a file
//	//convlint:attr MarkerA MarkerB                markers attached to a type
//	//convlint:require slot MarkerA MarkerB        OR-group required on a slot
package scrap

import (
	"strings"

	"golang.org/x/tools/go/analysis"
)

const directivePrefix = "//convlint:"

// Engine scrapes one analysis pass. It holds no state between passes beyond
// the facts exported through the pass itself.
type Engine struct {
	pass   *analysis.Pass
	oracle *Oracle
}

// New builds a scrape engine over the pass.
func New(pass *analysis.Pass) *Engine {
	return &Engine{pass: pass}
}

// Oracle returns the ancestry oracle for this pass, built lazily.
func (e *Engine) Oracle() *Oracle {
	if e.oracle == nil {
		e.oracle = newOracle(e.pass)
	}

	return e.oracle
}

// parseDirective splits a "//convlint:kind args" comment. Reports false for
// any other comment text.
func parseDirective(text string) (kind, args string, ok bool) {
	if !strings.HasPrefix(text, directivePrefix) {
		return "", "", false
	}

	rest := text[len(directivePrefix):]
	if i := strings.IndexAny(rest, " \t"); i >= 0 {
		kind, args = rest[:i], strings.TrimSpace(rest[i+1:])
	} else {
		kind = rest
	}

	if kind == "" {
		return "", "", false
	}

	return kind, args, true
}
