package ucs

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Search and Result.Err.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Search.
	ErrNilGraph = errors.New("ucs: graph is nil")

	// ErrInvalidNode indicates that the start or goal vertex does not exist.
	ErrInvalidNode = errors.New("ucs: node not found in graph")

	// ErrNotFound indicates that the frontier emptied before the goal was reached.
	ErrNotFound = errors.New("ucs: goal not reachable from start")

	// ErrHookAborted indicates that a step hook returned an error.
	ErrHookAborted = errors.New("ucs: step hook aborted the search")
)

// DefaultSeparator closes every non-terminal step in the trace text.
const DefaultSeparator = "------------------------------------------------------------------------"

// State is the state of the search state machine.
type State int

const (
	// Searching is the state while iterations remain.
	Searching State = iota

	// GoalFound is terminal: the goal was selected for expansion.
	GoalFound

	// Exhausted is terminal: the frontier emptied without reaching the goal.
	Exhausted
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Searching:
		return "searching"
	case GoalFound:
		return "goal-found"
	case Exhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// MarshalText encodes the state by name.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Options configures a search.
//
// Unit      – suffix printed after every cost in the trace text ("km"); empty prints bare numbers.
// Separator – line appended to every non-terminal step.
// OnStep    – called with each Step right after it is recorded; a non-nil error
// aborts the search with ErrHookAborted.
type Options struct {
	Unit      string
	Separator string
	OnStep    func(Step) error
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns the options used when none are given:
// no unit, DefaultSeparator, no-op OnStep.
func DefaultOptions() Options {
	return Options{
		Unit:      "",
		Separator: DefaultSeparator,
		OnStep:    func(Step) error { return nil },
	}
}

// WithUnit sets the cost unit printed in the trace ("km", "min", ...).
func WithUnit(unit string) Option {
	return func(o *Options) {
		o.Unit = unit
	}
}

// WithSeparator overrides the line that closes each non-terminal step.
func WithSeparator(sep string) Option {
	return func(o *Options) {
		o.Separator = sep
	}
}

// WithOnStep registers a callback run after each step is recorded.
// A nil fn is ignored.
func WithOnStep(fn func(Step) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}
