// Package nscheck compares the namespace each type declaration actually
// carries against the value derived from folder structure, and reports
// divergent declarations. Checks are pure and independent per declaration,
// so they fan out across workers; the sink is concurrency-safe and the
// resulting diagnostic set is order-independent.
package nscheck

import (
	"context"
	"go/token"
	"path"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/convlint/convlint/internal/convrules"
	"github.com/convlint/convlint/internal/model"
	"github.com/convlint/convlint/internal/nspath"
	"github.com/convlint/convlint/internal/report"
)

// Checker evaluates the namespace rule for one analyzed package.
type Checker struct {
	cfg         nspath.Config
	enabled     bool
	projectRoot string
	isKeyword   nspath.KeywordFunc
	sink        *report.Engine
}

// New builds a checker. The configuration is normalized once here; a blank
// root disables the whole rule and Check becomes a no-op. isKeyword supplies
// the host language's keyword set, go/token.IsKeyword for the Go front end.
func New(cfg nspath.Config, projectRoot string, isKeyword nspath.KeywordFunc, sink *report.Engine) *Checker {
	normalized, enabled := cfg.Normalize()

	return &Checker{
		cfg:         normalized,
		enabled:     enabled,
		projectRoot: projectRoot,
		isKeyword:   isKeyword,
		sink:        sink,
	}
}

// Enabled reports whether the namespace rule is active for this package.
func (c *Checker) Enabled() bool {
	return c.enabled
}

// Check evaluates every type declaration and every type-less file
// declaration. Declarations are independent, so they run concurrently; the
// context check between declarations is a courtesy for very large inputs.
func (c *Checker) Check(ctx context.Context, decls []model.TypeDecl, files []model.FileDecl) {
	if !c.enabled {
		return
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for _, decl := range decls {
		if ctx.Err() != nil {
			break
		}

		g.Go(func() error {
			c.checkDecl(decl)
			return nil
		})
	}

	for _, file := range files {
		if ctx.Err() != nil {
			break
		}

		g.Go(func() error {
			c.checkFile(file)
			return nil
		})
	}

	// Workers never return errors: findings go to the sink, and malformed
	// inputs degrade instead of failing.
	_ = g.Wait()
}

// checkDecl compares each physical declaration location against that file's
// own expected namespace. Partial declarations in different files therefore
// produce independent diagnostics.
func (c *Checker) checkDecl(decl model.TypeDecl) {
	if decl.Nested || decl.Synthesized {
		return
	}
	if decl.Namespace == "" {
		// Unnamed namespace: left to a separate rule.
		return
	}

	for _, loc := range decl.Locations {
		expected := nspath.Expected(c.cfg, loc.File, c.projectRoot, c.isKeyword)
		if decl.Namespace == expected.Namespace {
			continue
		}

		c.sink.Emit(
			convrules.NamespaceMismatch(),
			loc.Anchor(),
			rewriteFix(loc.Namespace, expected.Namespace),
			decl.Name,
			decl.Namespace,
			expected.Namespace,
		)
	}
}

// checkFile handles files declaring a namespace without any checkable type:
// one file-scoped diagnostic anchored at the declaration itself.
func (c *Checker) checkFile(file model.FileDecl) {
	if file.TypeCount > 0 || file.Namespace == "" {
		return
	}

	expected := nspath.Expected(c.cfg, file.File, c.projectRoot, c.isKeyword)
	if file.Namespace == expected.Namespace {
		return
	}

	var pos token.Pos
	if file.Span.Valid() {
		pos = file.Span.Pos
	}

	c.sink.Emit(
		convrules.FileNamespaceMismatch(),
		pos,
		rewriteFix(file.Span, expected.Namespace),
		path.Base(file.File),
		expected.Namespace,
	)
}

// rewriteFix builds the suggested fix replacing the declared namespace name
// with the expected one. Returns nil when there is no declaration span to
// rewrite; emitting the fix for an already-correct name cannot happen since
// fixes are only built on mismatch.
func rewriteFix(span model.Span, expected string) *report.Fix {
	if !span.Valid() {
		return nil
	}

	return &report.Fix{
		Description: "set namespace to '" + expected + "'",
		Edits: []report.TextEdit{{
			Pos:     span.Pos,
			End:     span.End,
			NewText: expected,
		}},
	}
}
