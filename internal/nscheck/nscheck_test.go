package nscheck

import (
	"context"
	"go/token"
	"reflect"
	"sort"
	"testing"

	"github.com/sirkon/deepequal"

	"github.com/convlint/convlint/internal/convrules"
	"github.com/convlint/convlint/internal/model"
	"github.com/convlint/convlint/internal/nspath"
	"github.com/convlint/convlint/internal/report"
)

func isKeyword(s string) bool {
	return s == "func" || s == "type"
}

func newSink() *report.Engine {
	return report.NewEngine(report.NewRegistry(nil, nil))
}

func sorted(diags []report.Diagnostic) []report.Diagnostic {
	sort.Slice(diags, func(i, j int) bool {
		if diags[i].Pos != diags[j].Pos {
			return diags[i].Pos < diags[j].Pos
		}
		return diags[i].Message < diags[j].Message
	})

	return diags
}

func TestCheckerDisabled(t *testing.T) {
	sink := newSink()
	c := New(nspath.Config{Root: "  "}, "/r", isKeyword, sink)

	if c.Enabled() {
		t.Fatal("blank root must disable the checker")
	}

	c.Check(context.Background(), []model.TypeDecl{{
		Name:      "Foo",
		Namespace: "whatever",
		Locations: []model.Location{{File: "/r/a/foo.go", NamePos: 1}},
	}}, nil)

	if got := sink.Diagnostics(); len(got) != 0 {
		t.Fatalf("expected no diagnostics from a disabled checker, got %d", len(got))
	}
}

func TestCheckerPartialDeclarations(t *testing.T) {
	sink := newSink()
	c := New(nspath.Config{Root: "acme.app", Depth: 2}, "/r", isKeyword, sink)

	// One logical type declared in two files: each location is checked
	// against its own file's expectation, so both diverge independently.
	decl := model.TypeDecl{
		Name:      "Login",
		Namespace: "acme.app",
		Locations: []model.Location{
			{
				File:      "/r/features/auth/a.go",
				NamePos:   token.Pos(100),
				Namespace: model.Span{Pos: token.Pos(10), End: token.Pos(18)},
			},
			{
				File:    "/r/billing/b.go",
				NamePos: token.Pos(200),
			},
		},
	}

	c.Check(context.Background(), []model.TypeDecl{decl}, nil)

	expected := []report.Diagnostic{
		{
			Rule:     convrules.CNV001NamespaceMismatch,
			Severity: convrules.SeverityWarning,
			Message:  "Type Login has namespace 'acme.app' but expected 'acme.app.features.auth'",
			Pos:      token.Pos(100),
			Fix: &report.Fix{
				Description: "set namespace to 'acme.app.features.auth'",
				Edits: []report.TextEdit{{
					Pos:     token.Pos(10),
					End:     token.Pos(18),
					NewText: "acme.app.features.auth",
				}},
			},
		},
		{
			Rule:     convrules.CNV001NamespaceMismatch,
			Severity: convrules.SeverityWarning,
			Message:  "Type Login has namespace 'acme.app' but expected 'acme.app.billing'",
			Pos:      token.Pos(200),
			// No directive span in the second file, no fix to offer.
		},
	}

	got := sorted(sink.Diagnostics())
	if !reflect.DeepEqual(expected, got) {
		deepequal.SideBySide(t, "diagnostics", expected, got)
	}
}

func TestCheckerSkips(t *testing.T) {
	sink := newSink()
	c := New(nspath.Config{Root: "acme.app", Depth: 2}, "/r", isKeyword, sink)

	decls := []model.TypeDecl{
		{
			Name:      "Nested",
			Namespace: "wrong",
			Nested:    true,
			Locations: []model.Location{{File: "/r/a/x.go", NamePos: 1}},
		},
		{
			Name:        "Generated",
			Namespace:   "wrong",
			Synthesized: true,
			Locations:   []model.Location{{File: "/r/a/x.go", NamePos: 2}},
		},
		{
			// Unnamed namespace is left to a separate rule.
			Name:      "Global",
			Namespace: "",
			Locations: []model.Location{{File: "/r/a/x.go", NamePos: 3}},
		},
		{
			Name:      "Matching",
			Namespace: "acme.app.a",
			Locations: []model.Location{{File: "/r/a/x.go", NamePos: 4}},
		},
	}

	c.Check(context.Background(), decls, nil)

	if got := sink.Diagnostics(); len(got) != 0 {
		t.Fatalf("expected no diagnostics, got %+v", got)
	}
}

func TestCheckerOutsideRootFailsOpen(t *testing.T) {
	sink := newSink()
	c := New(nspath.Config{Root: "acme.app", Depth: 2}, "/r", isKeyword, sink)

	// The file cannot be placed under the project root: the expectation
	// degrades to the bare root and the declaration matches it.
	c.Check(context.Background(), []model.TypeDecl{{
		Name:      "Elsewhere",
		Namespace: "acme.app",
		Locations: []model.Location{{File: "/other/place/x.go", NamePos: 1}},
	}}, nil)

	if got := sink.Diagnostics(); len(got) != 0 {
		t.Fatalf("expected fail-open outside the project root, got %+v", got)
	}
}

func TestCheckerFileDecls(t *testing.T) {
	sink := newSink()
	c := New(nspath.Config{Root: "acme.app", Depth: 1}, "/r", isKeyword, sink)

	files := []model.FileDecl{
		{
			// Holds types: covered per type declaration instead.
			File:      "/r/auth/full.go",
			Namespace: "acme.app",
			TypeCount: 2,
		},
		{
			File:      "/r/auth/empty.go",
			Namespace: "acme.app",
			Span:      model.Span{Pos: token.Pos(5), End: token.Pos(13)},
		},
		{
			File:      "/r/auth/fine.go",
			Namespace: "acme.app.auth",
			Span:      model.Span{Pos: token.Pos(50), End: token.Pos(63)},
		},
	}

	c.Check(context.Background(), nil, files)

	got := sorted(sink.Diagnostics())
	if len(got) != 1 {
		t.Fatalf("expected a single file-scoped diagnostic, got %d", len(got))
	}

	want := "File empty.go does not match the expected namespace: acme.app.auth"
	if got[0].Message != want {
		t.Errorf("message mismatch:\n got %q\nwant %q", got[0].Message, want)
	}
	if got[0].Rule != convrules.CNV002FileNamespaceMismatch {
		t.Errorf("rule mismatch: got %v", got[0].Rule)
	}
	if got[0].Fix == nil || got[0].Fix.Edits[0].NewText != "acme.app.auth" {
		t.Errorf("fix mismatch: %+v", got[0].Fix)
	}
}
