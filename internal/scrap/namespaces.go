package scrap

import (
	"go/ast"
	"go/token"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/convlint/convlint/internal/model"
	"github.com/convlint/convlint/internal/nspath"
)

// ConfigDirective looks for a //convlint:config directive in the package,
// conventionally placed in doc.go. The argument is a YAML flow mapping, e.g.
//
//	//convlint:config {root: acme.app, depth: 2}
//
// The second result reports whether a directive was found at all; a malformed
// body yields a zero configuration, which normalizes to disabled — fail-open,
// never an analysis error.
func (e *Engine) ConfigDirective() (nspath.Config, bool) {
	for _, file := range e.pass.Files {
		for _, group := range file.Comments {
			for _, c := range group.List {
				kind, args, ok := parseDirective(c.Text)
				if !ok || kind != "config" {
					continue
				}

				var body struct {
					Root  string `yaml:"root"`
					Depth int    `yaml:"depth"`
				}
				if err := yaml.Unmarshal([]byte(args), &body); err != nil {
					return nspath.Config{}, true
				}

				return nspath.Config{Root: body.Root, Depth: body.Depth}, true
			}
		}
	}

	return nspath.Config{}, false
}

// Namespaces collects every top-level type declaration together with its
// file's declared namespace, plus the file-level declarations of files that
// declare a namespace but hold no types. Types in files without a namespace
// directive are in the unnamed namespace and reported with an empty
// Namespace, which the checker skips.
func (e *Engine) Namespaces() ([]model.TypeDecl, []model.FileDecl) {
	var (
		decls []model.TypeDecl
		files []model.FileDecl
	)

	for _, file := range e.pass.Files {
		filename := e.pass.Fset.Position(file.Package).Filename
		ns, span := e.namespaceDirective(file)
		generated := ast.IsGenerated(file)

		count := 0
		for _, d := range file.Decls {
			gd, ok := d.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}

			for _, spec := range gd.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}

				count++
				decls = append(decls, model.TypeDecl{
					Name:      ts.Name.Name,
					Namespace: ns,
					Locations: []model.Location{{
						File:      filename,
						NamePos:   ts.Name.Pos(),
						DeclPos:   gd.Pos(),
						Namespace: span,
					}},
					Synthesized: generated,
				})
			}
		}

		if ns != "" && !generated {
			files = append(files, model.FileDecl{
				File:      filename,
				Namespace: ns,
				Span:      span,
				TypeCount: count,
			})
		}
	}

	return decls, files
}

// namespaceDirective finds the first //convlint:namespace directive of a file
// and the span of its value, so a suggested fix can rewrite just the name.
func (e *Engine) namespaceDirective(file *ast.File) (string, model.Span) {
	for _, group := range file.Comments {
		for _, c := range group.List {
			kind, args, ok := parseDirective(c.Text)
			if !ok || kind != "namespace" {
				continue
			}

			fields := strings.Fields(args)
			if len(fields) == 0 {
				continue
			}
			value := fields[0]

			// The value cannot collide with the directive prefix, so the
			// first occurrence after it is the declared name.
			head := len(directivePrefix + kind)
			off := strings.Index(c.Text[head:], value)
			if off < 0 {
				return value, model.Span{}
			}

			start := c.Pos() + token.Pos(head+off)
			return value, model.Span{
				Pos: start,
				End: start + token.Pos(len(value)),
			}
		}
	}

	return "", model.Span{}
}
