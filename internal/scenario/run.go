package scenario

import (
	"github.com/arraykit/arraykit/internal/object"
	"github.com/arraykit/arraykit/internal/override"
	"github.com/arraykit/arraykit/internal/trace"
)

// Outcome is everything one scenario run produced.
type Outcome struct {
	HasOverride bool
	Result      object.Object
	Err         error        // resolution error, if any
	Trace       *trace.Trace // nil when no argument participated
}

// Run pushes the scenario's call through override resolution with a trace
// recorder attached.
func (s *Scenario) Run() *Outcome {
	recorder := trace.NewRecorder()
	resolver := &override.Resolver{Types: s.Registry, Tracer: recorder}

	result, hasOverride, err := resolver.Resolve(s.Op, s.Method, s.Args, s.Kwargs, s.NIn)
	return &Outcome{
		HasOverride: hasOverride,
		Result:      result,
		Err:         err,
		Trace:       recorder.Last(),
	}
}
