package scrap

import (
	"fmt"
	"strings"

	"github.com/convlint/convlint/internal/model"
)

// AttrFact records the marker attributes attached to a named type via
// convlint:attr directives. Exported as an object fact on the type name so
// importing packages see the attachment.
type AttrFact struct {
	Attrs []model.TypeID
}

func (*AttrFact) AFact() {}

func (f *AttrFact) String() string {
	names := make([]string, 0, len(f.Attrs))
	for _, id := range f.Attrs {
		names = append(names, id.Name())
	}

	return fmt.Sprintf("attrs(%s)", strings.Join(names, ","))
}

// ReqFact records the constrained slots of a function, each with its ordered
// requirement groups. Exported as an object fact on the function so call
// sites in importing packages can be checked.
type ReqFact struct {
	Slots []model.Slot
}

func (*ReqFact) AFact() {}

func (f *ReqFact) String() string {
	names := make([]string, 0, len(f.Slots))
	for _, s := range f.Slots {
		names = append(names, s.Name)
	}

	return fmt.Sprintf("require(%s)", strings.Join(names, ","))
}
