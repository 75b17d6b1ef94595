// File: trace.go
// Role: Step snapshots and the replayable Result.

package ucs

import (
	"fmt"
	"strings"
)

// Step is the snapshot recorded for one iteration of the search.
//
// Text is the rendered trace block. Active lists the frontier entries that
// survived filtering, in selection order, Selected first. Discards lists the
// rejected paths printed in this step: carried ones from the previous
// expansion first, then the ones dominated in this step.
//
// SelectedEdges, FrontierEdges and DiscardedEdges are the edges a renderer
// colours for this step. FinalPath and FinalCost are set on the terminal step
// only.
type Step struct {
	Index          int       `json:"index"`
	Text           string    `json:"text"`
	Selected       Entry     `json:"selected"`
	Active         []Entry   `json:"active"`
	Discards       []Discard `json:"discards"`
	Expanded       []string  `json:"expanded"`
	SelectedEdges  []Edge    `json:"selected_edges"`
	FrontierEdges  []Edge    `json:"frontier_edges"`
	DiscardedEdges []Edge    `json:"discarded_edges"`
	Terminal       bool      `json:"terminal"`
	FinalPath      []string  `json:"final_path,omitempty"`
	FinalCost      *float64  `json:"final_cost,omitempty"`
}

// Result is the complete trace of one search.
type Result struct {
	Start string   `json:"start"`
	Goal  string   `json:"goal"`
	Unit  string   `json:"unit,omitempty"`
	State State    `json:"state"`
	Steps []Step   `json:"steps"`
	Path  []string `json:"path,omitempty"`
	Cost  float64  `json:"cost"`
}

// Found reports whether the goal was reached.
func (r *Result) Found() bool {
	return r.State == GoalFound
}

// Err returns nil when the goal was reached and ErrNotFound otherwise.
func (r *Result) Err() error {
	if r.State == GoalFound {
		return nil
	}

	return fmt.Errorf("%w: %s → %s", ErrNotFound, r.Start, r.Goal)
}

// Len returns the number of recorded steps.
func (r *Result) Len() int {
	return len(r.Steps)
}

// Prefix returns the first n steps, clamped to [0, Len()].
// Stepping a replay back and forth is Prefix(i+1) and Prefix(i-1).
func (r *Result) Prefix(n int) []Step {
	n = min(max(n, 0), len(r.Steps))

	return r.Steps[:n:n]
}

// TextUpTo joins the texts of steps 0..i with newlines. i is clamped; a
// negative i yields "".
func (r *Result) TextUpTo(i int) string {
	steps := r.Prefix(i + 1)
	texts := make([]string, len(steps))
	for k, s := range steps {
		texts[k] = s.Text
	}

	return strings.Join(texts, "\n")
}

// Text returns the whole trace.
func (r *Result) Text() string {
	return r.TextUpTo(len(r.Steps) - 1)
}
