package attrreq

import (
	"strings"

	"github.com/convlint/convlint/internal/convrules"
	"github.com/convlint/convlint/internal/model"
	"github.com/convlint/convlint/internal/report"
)

// Scan evaluates every binding of every call site and reports one diagnostic
// per failing requirement, naming the offending unwrapped type and the
// OR-joined list of acceptable marker types. Declaration sites are never
// scanned: the contract binds what flows in at a call, not the declaration.
func Scan(oracle model.Oracle, sites []model.CallSite, sink *report.Engine) {
	for _, site := range sites {
		for _, binding := range site.Bindings {
			scanBinding(oracle, site, binding, sink)
		}
	}
}

func scanBinding(oracle model.Oracle, site model.CallSite, binding model.Binding, sink *report.Engine) {
	if binding.Supplied == nil {
		return
	}

	unwrapped := Unwrap(binding.Supplied)
	named, ok := unwrapped.(model.Named)
	if !ok {
		return
	}

	pos := binding.Pos
	if !pos.IsValid() {
		pos = site.Pos
	}

	for _, req := range Failing(oracle, binding.Supplied, binding.Slot.Requirements) {
		sink.Emit(
			convrules.MissingRequiredAttribute(),
			pos,
			nil,
			named.ID.Name(),
			orJoin(req.AnyOf),
		)
	}
}

// orJoin renders an OR-group as "MarkerA OR MarkerB" using package-local names.
func orJoin(ids []model.TypeID) string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		names = append(names, id.Name())
	}

	return strings.Join(names, " OR ")
}
