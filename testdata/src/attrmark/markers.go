package attrmark

type MarkerA struct{}

//convlint:attr MarkerA
type Tagged struct{}

type Plain struct{}
