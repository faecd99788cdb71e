package override

import (
	"github.com/arraykit/arraykit/internal/object"
	"github.com/arraykit/arraykit/internal/ops"
	"github.com/arraykit/arraykit/internal/typesystem"
)

// Test fixtures shared by the override tests: a registry with a small
// hierarchy under Array, a value type without the hook, and a scripted
// overrider that records how it was invoked.

const (
	typeA typesystem.TypeID = "TypeA" // direct subtype of Array
	typeB typesystem.TypeID = "TypeB" // subtype of TypeA
	typeC typesystem.TypeID = "TypeC" // subtype of TypeB
	typeX typesystem.TypeID = "TypeX" // direct subtype of Array, unrelated to TypeA
	typeY typesystem.TypeID = "TypeY" // subtype of TypeX
)

func testRegistry() *typesystem.Registry {
	r := typesystem.NewRegistry()
	for _, reg := range []struct {
		name, parent typesystem.TypeID
	}{
		{typeA, typesystem.ArrayType},
		{typeB, typeA},
		{typeC, typeB},
		{typeX, typesystem.ArrayType},
		{typeY, typeX},
	} {
		if err := r.Register(reg.name, reg.parent); err != nil {
			panic(err)
		}
	}
	return r
}

// inert has a runtime type but no override hook.
type inert struct {
	id typesystem.TypeID
}

func (v *inert) Type() object.ObjectType        { return "TEST" }
func (v *inert) Inspect() string                { return string(v.id) }
func (v *inert) RuntimeType() typesystem.TypeID { return v.id }

// scripted is an override-capable value with a fixed response. Every
// invocation is appended to *log (when set) and captured on the value.
type scripted struct {
	id    typesystem.TypeID
	label string
	log   *[]string

	accept bool
	result object.Object
	err    error

	calls      int
	lastOp     *ops.Operation
	lastMethod string
	lastPos    int
	lastInputs []object.Object
	lastKwargs map[string]object.Object
}

func (v *scripted) Type() object.ObjectType        { return "TEST" }
func (v *scripted) Inspect() string                { return string(v.id) }
func (v *scripted) RuntimeType() typesystem.TypeID { return v.id }

func (v *scripted) OverrideOperation(op *ops.Operation, method string, pos int, inputs []object.Object, kwargs map[string]object.Object) (object.Object, bool, error) {
	v.calls++
	v.lastOp = op
	v.lastMethod = method
	v.lastPos = pos
	v.lastInputs = inputs
	v.lastKwargs = kwargs
	if v.log != nil {
		*v.log = append(*v.log, v.label)
	}
	if v.err != nil {
		return nil, false, v.err
	}
	if v.accept {
		return v.result, true, nil
	}
	return nil, false, nil
}

// plainOverrider is an exact-Array value that wrongly implements the hook;
// the scanner must still skip it.
type plainOverrider struct {
	calls int
}

func (v *plainOverrider) Type() object.ObjectType        { return object.ARRAY_OBJ }
func (v *plainOverrider) Inspect() string                { return "plain" }
func (v *plainOverrider) RuntimeType() typesystem.TypeID { return typesystem.ArrayType }

func (v *plainOverrider) OverrideOperation(op *ops.Operation, method string, pos int, inputs []object.Object, kwargs map[string]object.Object) (object.Object, bool, error) {
	v.calls++
	return nil, false, nil
}
