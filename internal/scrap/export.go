package scrap

import (
	"go/ast"
	"go/types"
	"strconv"
	"strings"

	"github.com/convlint/convlint/internal/attrreq"
	"github.com/convlint/convlint/internal/model"
)

// ExportFacts reads attr and require directives off the package's
// declarations and exports them as object facts. Must run before CallSites so
// same-package call targets already carry their facts.
func (e *Engine) ExportFacts() {
	for _, file := range e.pass.Files {
		for _, d := range file.Decls {
			switch decl := d.(type) {
			case *ast.GenDecl:
				e.exportTypeAttrs(file, decl)
			case *ast.FuncDecl:
				e.exportRequirements(file, decl)
			}
		}
	}
}

// exportTypeAttrs attaches convlint:attr markers to the declared types.
// Directives on the declaration group apply to every spec in it; a directive
// on an individual spec applies to that spec alone.
func (e *Engine) exportTypeAttrs(file *ast.File, decl *ast.GenDecl) {
	groupAttrs := e.attrsFromDoc(file, decl.Doc)

	for _, spec := range decl.Specs {
		ts, ok := spec.(*ast.TypeSpec)
		if !ok {
			continue
		}

		attrs := append(append([]model.TypeID(nil), groupAttrs...), e.attrsFromDoc(file, ts.Doc)...)
		if len(attrs) == 0 {
			continue
		}

		obj, ok := e.pass.TypesInfo.Defs[ts.Name].(*types.TypeName)
		if !ok {
			continue
		}

		e.pass.ExportObjectFact(obj, &AttrFact{Attrs: attrs})
	}
}

func (e *Engine) attrsFromDoc(file *ast.File, doc *ast.CommentGroup) []model.TypeID {
	if doc == nil {
		return nil
	}

	var attrs []model.TypeID
	for _, c := range doc.List {
		kind, args, ok := parseDirective(c.Text)
		if !ok || kind != "attr" {
			continue
		}

		for _, name := range strings.Fields(args) {
			if id, ok := e.resolveMarker(file, name); ok {
				attrs = append(attrs, id)
			}
		}
	}

	return attrs
}

// exportRequirements reads convlint:require directives off a function
// declaration. One directive per line forms one OR-group; several directives
// naming the same slot compose as AND. Names matching neither a parameter
// nor a type parameter are discarded, as are groups with no resolvable
// markers — malformed annotations never become unsatisfiable constraints.
func (e *Engine) exportRequirements(file *ast.File, decl *ast.FuncDecl) {
	if decl.Doc == nil {
		return
	}

	var order []string
	groups := map[string][][]model.TypeID{}

	for _, c := range decl.Doc.List {
		kind, args, ok := parseDirective(c.Text)
		if !ok || kind != "require" {
			continue
		}

		fields := strings.Fields(args)
		if len(fields) < 1 {
			continue
		}

		slot := fields[0]
		var group []model.TypeID
		for _, name := range fields[1:] {
			if id, ok := e.resolveMarker(file, name); ok {
				group = append(group, id)
			}
		}

		if _, ok := groups[slot]; !ok {
			order = append(order, slot)
		}
		groups[slot] = append(groups[slot], group)
	}

	if len(order) == 0 {
		return
	}

	obj, ok := e.pass.TypesInfo.Defs[decl.Name].(*types.Func)
	if !ok {
		return
	}
	sig, ok := obj.Type().(*types.Signature)
	if !ok {
		return
	}

	var slots []model.Slot
	for _, name := range order {
		kind, ok := slotKind(sig, name)
		if !ok {
			continue
		}

		reqs := attrreq.ExtractRequirements(groups[name])
		if len(reqs) == 0 {
			continue
		}

		slots = append(slots, model.Slot{
			Name:         name,
			Kind:         kind,
			Requirements: reqs,
		})
	}

	if len(slots) == 0 {
		return
	}

	e.pass.ExportObjectFact(obj, &ReqFact{Slots: slots})
}

// slotKind matches a directive slot name against the signature's type
// parameters first, then its value parameters.
func slotKind(sig *types.Signature, name string) (model.SlotKind, bool) {
	if tps := sig.TypeParams(); tps != nil {
		for i := 0; i < tps.Len(); i++ {
			if tps.At(i).Obj().Name() == name {
				return model.SlotTypeParam, true
			}
		}
	}

	params := sig.Params()
	for i := 0; i < params.Len(); i++ {
		if params.At(i).Name() == name {
			return model.SlotParam, true
		}
	}

	return model.SlotInvalid, false
}

// resolveMarker resolves a marker name from a directive to a named type.
// Unqualified names resolve in the package scope; "alias.Name" resolves
// through the file's imports. Unresolvable names are dropped.
func (e *Engine) resolveMarker(file *ast.File, name string) (model.TypeID, bool) {
	var scope *types.Scope

	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		pkg := e.importedPackage(file, name[:i])
		if pkg == nil {
			return "", false
		}
		scope = pkg.Scope()
		name = name[i+1:]
	} else {
		scope = e.pass.Pkg.Scope()
	}

	obj, ok := scope.Lookup(name).(*types.TypeName)
	if !ok {
		return "", false
	}

	return typeIDOf(obj), true
}

// importedPackage finds the package a file refers to under the given alias.
func (e *Engine) importedPackage(file *ast.File, alias string) *types.Package {
	for _, imp := range file.Imports {
		path, err := strconv.Unquote(imp.Path.Value)
		if err != nil {
			continue
		}

		for _, pkg := range e.pass.Pkg.Imports() {
			if pkg.Path() != path {
				continue
			}

			name := pkg.Name()
			if imp.Name != nil {
				name = imp.Name.Name
			}
			if name == alias {
				return pkg
			}
		}
	}

	return nil
}
