// File: discard.go
// Role: Dominance/discard tracker with per-invocation deduplication and the
//       two display buffers that implement the temporal offset.
// Buffers:
//   - current: dominated frontier entries, shown in the step that finds them.
//   - carried: infeasible extensions and dead ends found while expanding,
//     shown in the following step.

package ucs

import (
	"strconv"
	"strings"
)

// Reason classifies why a path left the search.
type Reason int

const (
	// Dominated marks a frontier entry beaten by a cheaper known route.
	Dominated Reason = iota

	// Infeasible marks a neighbour extension that could not improve the ledger.
	Infeasible

	// DeadEnd marks a whole selected path whose last node leads only backwards.
	DeadEnd
)

// String returns the reason name.
func (r Reason) String() string {
	switch r {
	case Dominated:
		return "dominated"
	case Infeasible:
		return "infeasible"
	case DeadEnd:
		return "dead-end"
	default:
		return "Reason(" + strconv.Itoa(int(r)) + ")"
	}
}

// MarshalText encodes the reason by name.
func (r Reason) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Discard is a path shown as rejected in a step.
type Discard struct {
	Entry
	Reason Reason `json:"reason"`
}

// signature identifies an entry by value for deduplication.
type signature string

func signatureOf(e Entry) signature {
	return signature(strings.Join(e.Path, "\x1f") + "\x1e" + FormatCost(e.Cost))
}

// tracker is owned by one search invocation; its seen set is never cleared.
type tracker struct {
	seen    map[signature]struct{}
	current []Discard
	carried []Discard
}

func newTracker() *tracker {
	return &tracker{seen: make(map[signature]struct{})}
}

// register records e and reports whether it was new.
func (t *tracker) register(e Entry) bool {
	sig := signatureOf(e)
	if _, dup := t.seen[sig]; dup {
		return false
	}
	t.seen[sig] = struct{}{}

	return true
}

// dominated queues e for display in the current step, once per invocation.
func (t *tracker) dominated(e Entry) {
	if t.register(e) {
		t.current = append(t.current, Discard{Entry: e, Reason: Dominated})
	}
}

// infeasible queues e for display in the next step, once per invocation.
func (t *tracker) infeasible(e Entry) {
	if t.register(e) {
		t.carried = append(t.carried, Discard{Entry: e, Reason: Infeasible})
	}
}

// deadEnd queues the whole selected path for the next step. Not deduplicated:
// a path is selected at most once.
func (t *tracker) deadEnd(e Entry) {
	t.carried = append(t.carried, Discard{Entry: e, Reason: DeadEnd})
}

// drain returns carried then current discards and empties both buffers.
func (t *tracker) drain() []Discard {
	out := make([]Discard, 0, len(t.carried)+len(t.current))
	out = append(out, t.carried...)
	out = append(out, t.current...)
	t.carried, t.current = nil, nil

	return out
}
