package object

import (
	"fmt"
	"strings"

	"github.com/arraykit/arraykit/internal/typesystem"
)

// Array is the base numeric type. Exact Array instances never take part in
// override resolution; only registered subtypes can.
type Array struct {
	Shape []int
	Data  []float64
}

// NewArray builds an array from a shape, zero-filled.
func NewArray(shape ...int) *Array {
	n := 1
	for _, d := range shape {
		n *= d
	}
	return &Array{Shape: shape, Data: make([]float64, n)}
}

// FromSlice builds a one-dimensional array over the given values.
func FromSlice(values []float64) *Array {
	data := make([]float64, len(values))
	copy(data, values)
	return &Array{Shape: []int{len(values)}, Data: data}
}

func (a *Array) Type() ObjectType { return ARRAY_OBJ }

func (a *Array) Inspect() string {
	dims := make([]string, len(a.Shape))
	for i, d := range a.Shape {
		dims[i] = fmt.Sprintf("%d", d)
	}
	return fmt.Sprintf("Array[%s]", strings.Join(dims, "x"))
}

func (a *Array) RuntimeType() typesystem.TypeID { return typesystem.ArrayType }

// Size returns the element count implied by the shape.
func (a *Array) Size() int {
	n := 1
	for _, d := range a.Shape {
		n *= d
	}
	return n
}
