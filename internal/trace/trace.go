// Package trace records override resolutions for inspection: which arguments
// were candidates, the order they were tried in, and what each handler did.
// Candidate ordering is invisible from the outside, which makes surprising
// dispatch outcomes hard to debug without it.
package trace

import (
	"time"

	"github.com/google/uuid"

	"github.com/arraykit/arraykit/internal/object"
	"github.com/arraykit/arraykit/internal/ops"
	"github.com/arraykit/arraykit/internal/override"
	"github.com/arraykit/arraykit/internal/typesystem"
)

// Candidate is the recorded form of one override-capable argument.
type Candidate struct {
	Pos    int
	TypeID typesystem.TypeID
	Value  string
}

// Round records one priority round: the winning candidate and what its
// handler returned.
type Round struct {
	Pos     int
	TypeID  typesystem.TypeID
	Outcome override.OutcomeKind
	Result  string // inspect form, accepted rounds only
	Err     string // failed rounds only
}

// Trace is the record of one resolution that found at least one candidate.
type Trace struct {
	ID          uuid.UUID
	Op          string
	Method      string
	StartedAt   time.Time
	Candidates  []Candidate
	Rounds      []Round
	HasOverride bool
	Result      string
	Err         string
}

// Recorder implements override.Tracer by accumulating Traces. Nested
// resolutions (a handler resolving through the same Resolver) are kept
// separate via a stack; completed traces land in Traces in finish order, so
// an inner resolution appears before the outer one that triggered it.
//
// A Recorder is not safe for concurrent use; give each goroutine its own.
type Recorder struct {
	stack  []*Trace
	Traces []*Trace
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) ResolveStarted(op *ops.Operation, method string, candidates []override.Candidate) {
	tr := &Trace{
		ID:        uuid.New(),
		Op:        op.Name,
		Method:    method,
		StartedAt: time.Now().UTC(),
	}
	for _, c := range candidates {
		tr.Candidates = append(tr.Candidates, Candidate{
			Pos:    c.Pos,
			TypeID: c.Value.RuntimeType(),
			Value:  c.Value.Inspect(),
		})
	}
	r.stack = append(r.stack, tr)
}

func (r *Recorder) RoundFinished(c override.Candidate, outcome override.Outcome) {
	tr := r.current()
	if tr == nil {
		return
	}
	round := Round{
		Pos:     c.Pos,
		TypeID:  c.Value.RuntimeType(),
		Outcome: outcome.Kind,
	}
	if outcome.Kind == override.OutcomeAccepted && outcome.Result != nil {
		round.Result = outcome.Result.Inspect()
	}
	if outcome.Kind == override.OutcomeFailed && outcome.Err != nil {
		round.Err = outcome.Err.Error()
	}
	tr.Rounds = append(tr.Rounds, round)
}

func (r *Recorder) ResolveFinished(hasOverride bool, result object.Object, err error) {
	tr := r.current()
	if tr == nil {
		return
	}
	r.stack = r.stack[:len(r.stack)-1]

	tr.HasOverride = hasOverride
	if result != nil {
		tr.Result = result.Inspect()
	}
	if err != nil {
		tr.Err = err.Error()
	}
	r.Traces = append(r.Traces, tr)
}

// Last returns the most recently completed trace.
func (r *Recorder) Last() *Trace {
	if len(r.Traces) == 0 {
		return nil
	}
	return r.Traces[len(r.Traces)-1]
}

func (r *Recorder) current() *Trace {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}
