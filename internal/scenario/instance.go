package scenario

import (
	"errors"
	"fmt"

	"github.com/arraykit/arraykit/internal/object"
	"github.com/arraykit/arraykit/internal/ops"
	"github.com/arraykit/arraykit/internal/typesystem"
)

// Handler behavior names accepted in scenario files.
const (
	HandleAccept  = "accept"
	HandleDecline = "decline"
	HandleError   = "error"
)

// Instance is a scenario value of a declared type without the override
// hook. It stands in for arbitrary non-capable values in the call.
type Instance struct {
	typeID typesystem.TypeID
}

func (v *Instance) Type() object.ObjectType        { return "SCENARIO" }
func (v *Instance) Inspect() string                { return fmt.Sprintf("%s instance", v.typeID) }
func (v *Instance) RuntimeType() typesystem.TypeID { return v.typeID }

type behavior struct {
	kind   string
	result string
	errMsg string
}

// HandledInstance is a scenario value whose override hook follows a script:
// accept with a fixed result, decline, or fail.
type HandledInstance struct {
	Instance
	behavior behavior

	// Calls counts hook invocations across the scenario run.
	Calls int
}

func (v *HandledInstance) OverrideOperation(op *ops.Operation, method string, pos int, inputs []object.Object, kwargs map[string]object.Object) (object.Object, bool, error) {
	v.Calls++
	switch v.behavior.kind {
	case HandleAccept:
		return &object.String{Value: v.behavior.result}, true, nil
	case HandleError:
		return nil, false, errors.New(v.behavior.errMsg)
	default:
		return nil, false, nil
	}
}
