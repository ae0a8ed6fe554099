package attrcase

//convlint:require v MarkerA MarkerB
func NeedsMarked(v any) {} // want NeedsMarked:`require\(v\)`

//convlint:require T MarkerA
func NeedsGeneric[T any](v T) {} // want NeedsGeneric:`require\(T\)`

//convlint:require v MarkerA
//convlint:require v MarkerB
func NeedsBoth(v any) {} // want NeedsBoth:`require\(v\)`

//convlint:require items MarkerA
func NeedsAll(items ...any) {} // want NeedsAll:`require\(items\)`

type Service struct{}

//convlint:require v MarkerA
func (s Service) Handle(v any) {} // want Handle:`require\(v\)`
