// File: frontier.go
// Role: Unordered multiset of entries with a freshly sorted view per iteration.
// Determinism:
//   - sorted() uses Entry.Compare, a total order on distinct values.
//   - Duplicates compare equal and are interchangeable.

package ucs

import "slices"

// frontier holds every entry still eligible for selection.
// No uniqueness is enforced: the same node may appear under several paths.
type frontier struct {
	entries []Entry
}

func (f *frontier) push(e Entry) {
	f.entries = append(f.entries, e)
}

func (f *frontier) len() int {
	return len(f.entries)
}

// sorted returns a fresh copy ordered by (cost, path) ascending.
func (f *frontier) sorted() []Entry {
	view := slices.Clone(f.entries)
	slices.SortStableFunc(view, Entry.Compare)

	return view
}

// remove drops every element equal to e.
func (f *frontier) remove(e Entry) {
	f.entries = slices.DeleteFunc(f.entries, e.Equal)
}

// retain replaces the contents with keep.
func (f *frontier) retain(keep []Entry) {
	f.entries = slices.Clone(keep)
}
