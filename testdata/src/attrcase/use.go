package attrcase

func use() {
	NeedsMarked(Tagged{})
	NeedsMarked(Derived{})
	NeedsMarked(&Tagged{})
	NeedsMarked([]Tagged{})
	NeedsMarked(SubTagged{})
	NeedsMarked(Plain{}) // want `Type Plain does not contain required attributes: MarkerA OR MarkerB`

	NeedsGeneric(Tagged{})
	NeedsGeneric[Tagged](Tagged{})
	NeedsGeneric(Plain{}) // want `Type Plain does not contain required attributes: MarkerA`

	NeedsBoth(DoubleTagged{})
	NeedsBoth(Tagged{}) // want `Type Tagged does not contain required attributes: MarkerB`

	NeedsAll(Tagged{}, Plain{}) // want `Type Plain does not contain required attributes: MarkerA`

	var svc Service
	svc.Handle(Tagged{})
	svc.Handle(Plain{}) // want `Type Plain does not contain required attributes: MarkerA`

	// Method expressions shift the receiver into the argument list; the
	// constrained parameter is still the second argument, not the receiver.
	Service.Handle(svc, Tagged{})
	Service.Handle(svc, Plain{}) // want `Type Plain does not contain required attributes: MarkerA`
}
