// Package ops describes the polymorphic numeric operations the toolkit
// dispatches. An Operation is a descriptor only: the numeric kernels that
// eventually run for non-overridden calls live with the callers, not here.
package ops

import (
	"fmt"
	"sort"
)

// Operation describes one polymorphic numeric operation.
type Operation struct {
	Name string
	NIn  int // number of input operands
	NOut int // number of output operands
}

func (op *Operation) String() string {
	return fmt.Sprintf("%s(nin=%d, nout=%d)", op.Name, op.NIn, op.NOut)
}

// standard holds the built-in element-wise operations, keyed by name.
var standard = map[string]*Operation{}

func register(name string, nin, nout int) *Operation {
	op := &Operation{Name: name, NIn: nin, NOut: nout}
	standard[name] = op
	return op
}

// Built-in element-wise operations
var (
	Add      = register("add", 2, 1)
	Subtract = register("subtract", 2, 1)
	Multiply = register("multiply", 2, 1)
	Divide   = register("divide", 2, 1)
	Power    = register("power", 2, 1)
	Mod      = register("mod", 2, 1)
	Maximum  = register("maximum", 2, 1)
	Minimum  = register("minimum", 2, 1)
	Negative = register("negative", 1, 1)
	Absolute = register("absolute", 1, 1)
)

// Lookup returns the named built-in operation.
func Lookup(name string) (*Operation, bool) {
	op, ok := standard[name]
	return op, ok
}

// Names returns the built-in operation names in sorted order.
func Names() []string {
	names := make([]string, 0, len(standard))
	for name := range standard {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
