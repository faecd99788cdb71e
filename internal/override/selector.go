package override

// selectNext picks the winner of one priority round, or reports exhaustion.
//
// Untried candidates are scanned left to right by original position. A
// candidate is disqualified for the round if some untried candidate to its
// right has a runtime type that is a strict subtype of its own: the subtype
// customizes the operation more specifically and must get its chance first.
// Candidates of exactly the same type never disqualify each other, so among
// equally specific candidates original call order decides.
//
// The first candidate that survives its rightward scan wins and is marked
// tried on the spot; it can never win a later round, whatever its handler
// goes on to return.
//
// This is deliberately a single left-to-right pass per round, not a global
// most-specific computation: a candidate passed over earlier in the same
// round is not revisited when a later one is disqualified. With three or
// more related subtypes in one call the distinction is observable, and
// callers depend on the pass ordering staying as it is.
func (s *candidateSet) selectNext(types TypeOracle) (*candidateEntry, bool) {
	for i := range s.entries {
		entry := &s.entries[i]
		if entry.tried {
			continue
		}

		disqualified := false
		for j := i + 1; j < len(s.entries); j++ {
			other := &s.entries[j]
			if other.tried {
				continue
			}
			if types.IsStrictSubtype(other.typeID, entry.typeID) {
				disqualified = true
				break
			}
		}
		if disqualified {
			continue
		}

		entry.tried = true
		return entry, true
	}
	return nil, false
}
