// File: ledger.go
// Role: Best-cost ledger, node → cheapest cost at which any pushed entry reached it.

package ucs

// ledger values only ever decrease.
type ledger map[string]float64

// lower records cost for node when it improves on the current value.
func (l ledger) lower(node string, cost float64) {
	if cur, ok := l[node]; !ok || cost < cur {
		l[node] = cost
	}
}

// dominates reports whether a strictly cheaper route to e's destination is known.
func (l ledger) dominates(e Entry) bool {
	best, ok := l[e.Dest()]

	return ok && best < e.Cost
}

// blocks reports whether reaching node at cost cannot improve on the ledger.
func (l ledger) blocks(node string, cost float64) bool {
	best, ok := l[node]

	return ok && best <= cost
}
