package scrap

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"

	"github.com/convlint/convlint/internal/model"
)

// CallSites collects every resolved invocation whose target carries
// requirements, binding each constrained slot to the compile-time type
// supplied for it. Declaration sites are never collected.
func (e *Engine) CallSites(pector *inspector.Inspector) []model.CallSite {
	var sites []model.CallSite

	nodeFilter := []ast.Node{
		(*ast.CallExpr)(nil),
	}

	pector.Preorder(nodeFilter, func(node ast.Node) {
		call := node.(*ast.CallExpr) // No need to assert check since we only get call exprs.

		if site, ok := e.scrapCall(call); ok {
			sites = append(sites, site)
		}
	})

	return sites
}

func (e *Engine) scrapCall(call *ast.CallExpr) (model.CallSite, bool) {
	fn := typeutil.Callee(e.pass.TypesInfo, call)
	if fn == nil {
		// Conversion, built-in, or a dynamic call through a value.
		return model.CallSite{}, false
	}

	fnType, ok := fn.(*types.Func)
	if !ok {
		return model.CallSite{}, false
	}
	origin := fnType.Origin()

	var fact ReqFact
	if !e.pass.ImportObjectFact(origin, &fact) {
		return model.CallSite{}, false
	}

	sig, ok := origin.Type().(*types.Signature)
	if !ok {
		return model.CallSite{}, false
	}

	typeArgs, indices := e.instantiation(call)
	offset := e.receiverOffset(call)

	var bindings []model.Binding
	for _, slot := range fact.Slots {
		switch slot.Kind {
		case model.SlotTypeParam:
			bindings = append(bindings, e.bindTypeParam(call, sig, slot, typeArgs, indices)...)
		case model.SlotParam:
			bindings = append(bindings, e.bindParam(call, sig, slot, offset)...)
		}
	}

	if len(bindings) == 0 {
		return model.CallSite{}, false
	}

	ref := model.Ref{Name: origin.Name()}
	if pkg := origin.Pkg(); pkg != nil {
		ref.Package = pkg.Path()
	}
	if recv := sig.Recv(); recv != nil {
		if named, ok := types.Unalias(deref(recv.Type())).(*types.Named); ok {
			ref.Type = named.Obj().Name()
		}
	}

	return model.CallSite{
		Target:   ref,
		Bindings: bindings,
		Pos:      call.Pos(),
	}, true
}

// instantiation yields the resolved type-argument list of a generic call and
// the explicit type-argument expressions, when written out.
func (e *Engine) instantiation(call *ast.CallExpr) (*types.TypeList, []ast.Expr) {
	fun := ast.Unparen(call.Fun)

	var indices []ast.Expr
	switch v := fun.(type) {
	case *ast.IndexExpr:
		indices = []ast.Expr{v.Index}
		fun = ast.Unparen(v.X)
	case *ast.IndexListExpr:
		indices = v.Indices
		fun = ast.Unparen(v.X)
	}

	var id *ast.Ident
	switch v := fun.(type) {
	case *ast.Ident:
		id = v
	case *ast.SelectorExpr:
		id = v.Sel
	default:
		return nil, indices
	}

	inst, ok := e.pass.TypesInfo.Instances[id]
	if !ok {
		return nil, indices
	}

	return inst.TypeArgs, indices
}

// bindTypeParam binds a constrained generic type parameter to the resolved
// type argument, matched positionally between the unconstructed definition's
// type-parameter list and the instantiated argument list.
func (e *Engine) bindTypeParam(
	call *ast.CallExpr,
	sig *types.Signature,
	slot model.Slot,
	typeArgs *types.TypeList,
	indices []ast.Expr,
) []model.Binding {
	tps := sig.TypeParams()
	if tps == nil || typeArgs == nil {
		return nil
	}

	idx := -1
	for i := 0; i < tps.Len(); i++ {
		if tps.At(i).Obj().Name() == slot.Name {
			idx = i
			break
		}
	}
	if idx < 0 || idx >= typeArgs.Len() {
		return nil
	}

	supplied := translate(typeArgs.At(idx))
	if supplied == nil {
		return nil
	}

	// Anchor at the written type argument when present, else the call.
	pos := call.Pos()
	if idx < len(indices) {
		pos = indices[idx].Pos()
	}

	return []model.Binding{{
		Slot:     slot,
		Supplied: supplied,
		Pos:      pos,
	}}
}

// bindParam binds a constrained value parameter to the compile-time type of
// the bound argument expression — not its runtime type. The variadic slot
// binds every trailing argument independently. offset skips the leading
// receiver argument of method-expression calls, so parameter index i always
// lands on the argument actually supplied for it.
func (e *Engine) bindParam(call *ast.CallExpr, sig *types.Signature, slot model.Slot, offset int) []model.Binding {
	params := sig.Params()

	idx := -1
	for i := 0; i < params.Len(); i++ {
		if params.At(i).Name() == slot.Name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	last := idx
	if sig.Variadic() && idx == params.Len()-1 && !call.Ellipsis.IsValid() {
		last = len(call.Args) - 1 - offset
	}

	var bindings []model.Binding
	for i := idx; i <= last && i+offset < len(call.Args); i++ {
		arg := call.Args[i+offset]
		supplied := translate(e.pass.TypesInfo.TypeOf(arg))
		if supplied == nil {
			continue
		}

		bindings = append(bindings, model.Binding{
			Slot:     slot,
			Supplied: supplied,
			Pos:      arg.Pos(),
		})
	}

	return bindings
}

// receiverOffset reports how many leading call arguments belong to the
// receiver rather than to the signature's parameters: one for a
// method-expression call such as T.Method(recv, arg), zero for every other
// call form.
func (e *Engine) receiverOffset(call *ast.CallExpr) int {
	sel, ok := ast.Unparen(call.Fun).(*ast.SelectorExpr)
	if !ok {
		return 0
	}

	if s, ok := e.pass.TypesInfo.Selections[sel]; ok && s.Kind() == types.MethodExpr {
		return 1
	}

	return 0
}

func deref(t types.Type) types.Type {
	if p, ok := t.(*types.Pointer); ok {
		return p.Elem()
	}

	return t
}
