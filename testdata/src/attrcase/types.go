package attrcase

// Marker types carry no behavior: they exist to tag capabilities.
type MarkerA struct{}

type MarkerB struct{}

// SubMarker derives from MarkerA through embedding.
type SubMarker struct{ MarkerA }

//convlint:attr MarkerA
type Tagged struct{} // want Tagged:`attrs\(MarkerA\)`

//convlint:attr SubMarker
type SubTagged struct{} // want SubTagged:`attrs\(SubMarker\)`

//convlint:attr MarkerA MarkerB
type DoubleTagged struct{} // want DoubleTagged:`attrs\(MarkerA,MarkerB\)`

type Plain struct{}

// Derived inherits Tagged's markers through its base type.
type Derived struct{ Tagged }
