package scrap

import (
	"go/types"

	"golang.org/x/tools/go/analysis"

	"github.com/convlint/convlint/internal/model"
)

// Oracle implements model.Oracle over go/types: marker attachments come from
// exported AttrFacts and the base-type chain from struct embedding. The
// direct base of a named struct type is its first embedded named type;
// non-struct types have no base.
type Oracle struct {
	pass *analysis.Pass
	pkgs map[string]*types.Package
}

func newOracle(pass *analysis.Pass) *Oracle {
	o := &Oracle{
		pass: pass,
		pkgs: map[string]*types.Package{},
	}
	o.index(pass.Pkg)

	return o
}

// index memoizes the transitive import graph so TypeIDs resolve back to
// their defining packages without repeated walks.
func (o *Oracle) index(pkg *types.Package) {
	if pkg == nil {
		return
	}
	if _, ok := o.pkgs[pkg.Path()]; ok {
		return
	}
	o.pkgs[pkg.Path()] = pkg

	for _, imp := range pkg.Imports() {
		o.index(imp)
	}
}

func (o *Oracle) find(id model.TypeID) *types.TypeName {
	pkgPath := id.Package()
	if pkgPath == "" {
		// Universe-scope type: no attributes, no base.
		return nil
	}

	pkg, ok := o.pkgs[pkgPath]
	if !ok {
		return nil
	}

	tn, _ := pkg.Scope().Lookup(id.Name()).(*types.TypeName)
	return tn
}

// Attributes returns the markers directly attached to the type.
func (o *Oracle) Attributes(id model.TypeID) []model.TypeID {
	tn := o.find(id)
	if tn == nil {
		return nil
	}

	var fact AttrFact
	if o.pass.ImportObjectFact(tn, &fact) {
		return fact.Attrs
	}

	return nil
}

// Base returns the direct base type of the given type, if any.
func (o *Oracle) Base(id model.TypeID) (model.TypeID, bool) {
	tn := o.find(id)
	if tn == nil {
		return "", false
	}

	named, ok := types.Unalias(tn.Type()).(*types.Named)
	if !ok {
		return "", false
	}

	return baseOf(named)
}

func baseOf(named *types.Named) (model.TypeID, bool) {
	st, ok := named.Underlying().(*types.Struct)
	if !ok {
		return "", false
	}

	for i := 0; i < st.NumFields(); i++ {
		f := st.Field(i)
		if !f.Embedded() {
			continue
		}

		t := types.Unalias(deref(f.Type()))
		if base, ok := t.(*types.Named); ok {
			return typeIDOf(base.Obj()), true
		}
	}

	return "", false
}

// typeIDOf renders a type name as "<package path>.<name>", or the bare name
// for universe-scope types.
func typeIDOf(obj *types.TypeName) model.TypeID {
	if obj.Pkg() == nil {
		return model.TypeID(obj.Name())
	}

	return model.TypeID(obj.Pkg().Path() + "." + obj.Name())
}

// translate reduces a go/types type to the model's wrapper-aware shape:
// slices and arrays become Array, pointers become Optional, named and basic
// types become Named. Anything else has no checkable identity and yields nil.
func translate(t types.Type) model.Type {
	if t == nil {
		return nil
	}

	switch v := types.Unalias(t).(type) {
	case *types.Slice:
		return wrapArray(translate(v.Elem()))
	case *types.Array:
		return wrapArray(translate(v.Elem()))
	case *types.Pointer:
		return wrapOptional(translate(v.Elem()))
	case *types.Named:
		return model.Named{ID: typeIDOf(v.Obj())}
	case *types.Basic:
		return model.Named{ID: model.TypeID(v.Name())}
	default:
		return nil
	}
}

func wrapArray(elem model.Type) model.Type {
	if elem == nil {
		return nil
	}

	return model.Array{Elem: elem}
}

func wrapOptional(elem model.Type) model.Type {
	if elem == nil {
		return nil
	}

	return model.Optional{Elem: elem}
}
