// Package override implements the override-resolution engine for polymorphic
// numeric operations. Given a call, it finds the arguments that declare a
// custom handling capability, picks the most specific one (subtypes before
// supertypes, then left to right), and invokes candidate handlers in that
// order until one accepts the call or all decline.
package override

import (
	"github.com/arraykit/arraykit/internal/object"
	"github.com/arraykit/arraykit/internal/ops"
	"github.com/arraykit/arraykit/internal/typesystem"
)

// Overrider is the capability hook. A value takes part in override
// resolution exactly when it implements this interface (and is not plain).
//
// The handler receives the operation descriptor, the method name, the
// value's position in the original call, and the normalized inputs and
// keyword arguments. It returns (result, true, nil) to accept the call,
// (nil, false, nil) to decline it, or a non-nil error to abort the whole
// resolution. A declined call moves on to the next candidate; the handler is
// never asked again within the same resolution.
type Overrider interface {
	OverrideOperation(op *ops.Operation, method string, pos int, inputs []object.Object, kwargs map[string]object.Object) (object.Object, bool, error)
}

// TypeOracle answers the two type questions the engine needs. It is supplied
// by the caller, normally as a *typesystem.Registry.
type TypeOracle interface {
	// IsPlain reports whether the type is the exact base numeric type or a
	// scalar type; plain values never become candidates.
	IsPlain(t typesystem.TypeID) bool
	// IsStrictSubtype reports whether a is a proper descendant of b. Equal
	// types must not count as subtypes of each other.
	IsStrictSubtype(a, b typesystem.TypeID) bool
}

// Candidate is one override-capable argument: its value and its position in
// the original call.
type Candidate struct {
	Value object.Object
	Pos   int
}

// OutcomeKind tags the result of one handler invocation.
type OutcomeKind int

const (
	OutcomeAccepted OutcomeKind = iota
	OutcomeDeclined
	OutcomeFailed
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeAccepted:
		return "accepted"
	case OutcomeDeclined:
		return "declined"
	case OutcomeFailed:
		return "failed"
	}
	return "unknown"
}

// Outcome is the tagged result of one invocation attempt. Result is set only
// for Accepted, Err only for Failed.
type Outcome struct {
	Kind   OutcomeKind
	Result object.Object
	Err    error
}

// Tracer observes one resolution from the inside. Implementations must not
// mutate what they are handed. A nil Tracer on the Resolver disables
// tracing entirely.
type Tracer interface {
	// ResolveStarted fires after scanning, with the candidates in original
	// call order, before any handler runs.
	ResolveStarted(op *ops.Operation, method string, candidates []Candidate)
	// RoundFinished fires after each handler invocation.
	RoundFinished(c Candidate, outcome Outcome)
	// ResolveFinished fires once, just before Resolve returns. Resolutions
	// that never reach the invocation loop (no candidates, malformed call)
	// produce no tracer events at all.
	ResolveFinished(hasOverride bool, result object.Object, err error)
}
