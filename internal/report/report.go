// Package report collects structured findings for the host to report. The
// Engine is safe for concurrent use so per-declaration checks can fan out;
// the collected set is order-independent and the host may sort for display.
package report

import (
	"fmt"
	"go/token"
	"io"
	"sync"

	"github.com/convlint/convlint/internal/convrules"
)

// TextEdit is a single replacement of a source range.
type TextEdit struct {
	Pos     token.Pos
	End     token.Pos
	NewText string
}

// Fix is a suggested code fix attached to a diagnostic.
type Fix struct {
	Description string
	Edits       []TextEdit
}

// Diagnostic is one finding. Never mutated after creation.
type Diagnostic struct {
	Rule     convrules.Rule
	Severity convrules.Severity
	Message  string
	Pos      token.Pos
	Fix      *Fix
}

// Engine collects diagnostics from concurrently running checks.
type Engine struct {
	mu    sync.Mutex
	reg   *Registry
	diags []Diagnostic
}

// NewEngine returns an Engine emitting through the given registry.
func NewEngine(reg *Registry) *Engine {
	return &Engine{reg: reg}
}

// Report adds a fully built diagnostic to the engine.
func (e *Engine) Report(d Diagnostic) {
	e.mu.Lock()
	e.diags = append(e.diags, d)
	e.mu.Unlock()
}

// Emit renders a diagnostic from the rule's registered descriptor and records
// it. Disabled rules are dropped silently.
func (e *Engine) Emit(rule convrules.Rule, pos token.Pos, fix *Fix, args ...any) {
	desc, ok := e.reg.Lookup(rule)
	if !ok {
		return
	}

	e.Report(Diagnostic{
		Rule:     rule,
		Severity: desc.Severity,
		Message:  fmt.Sprintf(desc.Format, args...),
		Pos:      pos,
		Fix:      fix,
	})
}

// Diagnostics returns a snapshot of all collected findings.
func (e *Engine) Diagnostics() []Diagnostic {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]Diagnostic, len(e.diags))
	copy(out, e.diags)
	return out
}

// PrintSummary writes all collected findings in a compact, human-readable
// form, one line per finding with its effective severity.
func (e *Engine) PrintSummary(w io.Writer, fset *token.FileSet) {
	for _, d := range e.Diagnostics() {
		pos := fset.Position(d.Pos)
		fmt.Fprintf(w, "[%s] %s: %s (%s:%d)\n",
			d.Severity,
			d.Rule.Code(),
			d.Message,
			pos.Filename,
			pos.Line,
		)
	}
}
