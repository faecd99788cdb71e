package object

import (
	"strings"

	"github.com/arraykit/arraykit/internal/typesystem"
)

// Tuple is an ordered, fixed-size sequence of objects. The normalizer folds
// multiple trailing output arguments into one Tuple under the "out" keyword.
type Tuple struct {
	Elements []Object
}

func (t *Tuple) Type() ObjectType { return TUPLE_OBJ }

func (t *Tuple) Inspect() string {
	parts := make([]string, len(t.Elements))
	for i, el := range t.Elements {
		parts[i] = el.Inspect()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (t *Tuple) RuntimeType() typesystem.TypeID { return typesystem.TupleType }
