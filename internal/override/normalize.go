package override

import (
	"github.com/arraykit/arraykit/internal/config"
	"github.com/arraykit/arraykit/internal/object"
)

// NormalizedCall is the canonical payload every handler invocation receives:
// the first nin arguments as inputs, plus a keyword mapping independent of
// the caller's. Built once per resolution and reused unmodified for every
// attempt.
type NormalizedCall struct {
	Inputs []object.Object
	Kwargs map[string]object.Object
}

// normalizeCall builds the canonical call payload. Arguments past nin are
// output operands: a single one becomes the "out" keyword entry as-is, two
// or more become a tuple under "out", preserving their order. The caller's
// keyword mapping is copied; mutations of the copy never reach the caller.
func normalizeCall(args []object.Object, kwargs map[string]object.Object, nin int) *NormalizedCall {
	inputs := make([]object.Object, nin)
	copy(inputs, args[:nin])

	normalKwargs := make(map[string]object.Object, len(kwargs)+1)
	for k, v := range kwargs {
		normalKwargs[k] = v
	}

	if extra := len(args) - nin; extra == 1 {
		normalKwargs[config.OutKeyword] = args[len(args)-1]
	} else if extra > 1 {
		outs := make([]object.Object, extra)
		copy(outs, args[nin:])
		normalKwargs[config.OutKeyword] = &object.Tuple{Elements: outs}
	}

	return &NormalizedCall{Inputs: inputs, Kwargs: normalKwargs}
}
