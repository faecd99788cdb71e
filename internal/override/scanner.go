package override

import (
	"fmt"

	"github.com/arraykit/arraykit/internal/config"
	"github.com/arraykit/arraykit/internal/object"
	"github.com/arraykit/arraykit/internal/typesystem"
)

// candidateEntry is one scanned candidate plus its per-resolution state. The
// tried flag is permanent within a resolution: once a candidate is selected
// it is never selected again, whatever its handler returned.
type candidateEntry struct {
	Candidate
	handler Overrider
	typeID  typesystem.TypeID
	tried   bool
}

// candidateSet holds the scanned candidates in original left-to-right order.
// A set is built fresh for every resolution and discarded with it.
type candidateSet struct {
	entries []candidateEntry
}

func (s *candidateSet) empty() bool { return len(s.entries) == 0 }

func (s *candidateSet) candidates() []Candidate {
	out := make([]Candidate, len(s.entries))
	for i := range s.entries {
		out[i] = s.entries[i].Candidate
	}
	return out
}

// scanCandidates classifies each positional argument as plain or
// override-capable. Plain values and values without the Overrider hook are
// skipped; everything else becomes a candidate, in original order.
func scanCandidates(args []object.Object, nin int, types TypeOracle) (*candidateSet, error) {
	if len(args) > config.MaxArity {
		return nil, NewConfigurationError(fmt.Sprintf("too many arguments: %d exceeds the limit of %d", len(args), config.MaxArity))
	}
	if nin < 0 || nin > len(args) {
		return nil, NewConfigurationError(fmt.Sprintf("input count %d out of range for %d arguments", nin, len(args)))
	}

	set := &candidateSet{}
	for i, arg := range args {
		if arg == nil {
			return nil, NewConfigurationError(fmt.Sprintf("argument %d is nil", i))
		}
		t := arg.RuntimeType()
		if types.IsPlain(t) {
			continue
		}
		handler, ok := arg.(Overrider)
		if !ok {
			continue
		}
		set.entries = append(set.entries, candidateEntry{
			Candidate: Candidate{Value: arg, Pos: i},
			handler:   handler,
			typeID:    t,
		})
	}
	return set, nil
}
