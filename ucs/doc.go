// Package ucs implements uniform-cost search (cheapest path first) over a
// core.Graph and records a complete, replayable trace of the search: one Step
// per expansion.
//
// Overview:
//
//   - The frontier holds immutable (cost, path) entries. Each iteration rebuilds
//     the sorted view and selects the cheapest entry; ties on cost are broken by
//     lexicographic comparison of the node sequence, so traces are deterministic.
//   - A best-cost ledger remembers the cheapest cost at which each node has been
//     reached. Frontier entries that a cheaper route already beats are pruned
//     and shown as discarded; neighbour extensions that cannot improve on the
//     ledger are never pushed.
//   - Paths never revisit a node. A node becomes visited (finalized) when the
//     entry ending in it is expanded.
//   - Every iteration appends a Step carrying the rendered trace text, the
//     surviving frontier, the discarded candidates and three edge lists
//     (selected, frontier, discarded) for a renderer to colour.
//
// Temporal offset:
//
//   - Discards found while filtering the frontier are shown in the same Step.
//   - Discards found while expanding neighbours are shown in the next Step,
//     then cleared. A path that reaches a dead end (a node whose only neighbour
//     is already on the path) is discarded whole: its edges are marked in the
//     current Step and its text line appears in the next one.
//
// Termination:
//
//   - GoalFound: the selected entry ends at the goal; the terminal Step carries
//     the final path and cost.
//   - Exhausted: the frontier emptied first; the Result still holds every Step
//     and Result.Err reports ErrNotFound.
//
// Errors (sentinel):
//
//	– ErrNilGraph     if the graph pointer is nil.
//	– ErrInvalidNode  if start or goal is not a vertex (no Step is produced).
//	– ErrHookAborted  if a WithOnStep callback returns an error.
//	– ErrNotFound     reported by Result.Err for an Exhausted search.
//
// Complexity:
//
//	Each iteration sorts the frontier: O(F log F · L) for F entries of path
//	length L. Intended for graphs of tens of nodes; paths are simple, so the
//	number of iterations is finite.
//
// Thread safety:
//
//	A search keeps all of its state in one runner value owned by a single
//	Search call; nothing is shared between calls. The graph is only read.
package ucs
