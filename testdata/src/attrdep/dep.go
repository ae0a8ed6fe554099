package attrdep

import "attrmark"

//convlint:require v attrmark.MarkerA
func need(v any) {} // want need:`require\(v\)`

func use() {
	need(attrmark.Tagged{})
	need(attrmark.Plain{}) // want `Type Plain does not contain required attributes: MarkerA`
}
