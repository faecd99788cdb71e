package override

import (
	"github.com/arraykit/arraykit/internal/object"
	"github.com/arraykit/arraykit/internal/ops"
)

// Resolver drives override resolution. It holds configuration only; all
// per-call state lives on the stack of Resolve, so a single Resolver may be
// used from multiple goroutines and handlers may recursively resolve.
type Resolver struct {
	Types  TypeOracle
	Tracer Tracer // optional
}

// New returns a Resolver over the given type oracle.
func New(types TypeOracle) *Resolver {
	return &Resolver{Types: types}
}

// Resolve dispatches one operation call through the override protocol.
//
// It scans args for override-capable values. If none participate it returns
// (nil, false, nil) and the caller proceeds with default handling. Otherwise
// it normalizes the call once and invokes candidate handlers in priority
// order, each at most once, until one accepts (its result is returned with
// hasOverride=true), one fails (the handler's error is returned unchanged),
// or all decline (*ExhaustedError).
//
// nin is the operation's input count for this call; arguments past nin are
// output operands and are folded into the "out" keyword entry.
func (r *Resolver) Resolve(op *ops.Operation, method string, args []object.Object, kwargs map[string]object.Object, nin int) (result object.Object, hasOverride bool, err error) {
	if r.Types == nil {
		return nil, false, NewConfigurationError("resolver has no type oracle")
	}
	if op == nil {
		return nil, false, NewConfigurationError("operation descriptor is nil")
	}

	set, err := scanCandidates(args, nin, r.Types)
	if err != nil {
		return nil, false, err
	}
	if set.empty() {
		return nil, false, nil
	}

	call := normalizeCall(args, kwargs, nin)
	if r.Tracer != nil {
		r.Tracer.ResolveStarted(op, method, set.candidates())
	}

	for {
		entry, ok := set.selectNext(r.Types)
		if !ok {
			return r.finish(nil, true, NewExhaustedError(op.Name, method))
		}

		value, handled, err := entry.handler.OverrideOperation(op, method, entry.Pos, call.Inputs, call.Kwargs)
		switch {
		case err != nil:
			// Handler errors pass through unchanged.
			r.traceRound(entry.Candidate, Outcome{Kind: OutcomeFailed, Err: err})
			return r.finish(nil, true, err)
		case handled:
			r.traceRound(entry.Candidate, Outcome{Kind: OutcomeAccepted, Result: value})
			return r.finish(value, true, nil)
		default:
			r.traceRound(entry.Candidate, Outcome{Kind: OutcomeDeclined})
		}
	}
}

func (r *Resolver) traceRound(c Candidate, outcome Outcome) {
	if r.Tracer != nil {
		r.Tracer.RoundFinished(c, outcome)
	}
}

func (r *Resolver) finish(result object.Object, hasOverride bool, err error) (object.Object, bool, error) {
	if r.Tracer != nil {
		r.Tracer.ResolveFinished(hasOverride, result, err)
	}
	return result, hasOverride, err
}
