package ucs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntry_CompareAndExtend(t *testing.T) {
	a := NewEntry(5, "A", "B")
	b := NewEntry(5, "A", "C")
	c := NewEntry(3, "Z")
	prefix := NewEntry(5, "A")

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, a.Compare(c))
	assert.Equal(t, -1, prefix.Compare(a), "a proper prefix sorts first")
	assert.Zero(t, a.Compare(NewEntry(5, "A", "B")))

	ext := a.Extend("D", 2)
	ext2 := a.Extend("E", 1)
	assert.Equal(t, []string{"A", "B"}, a.Path)
	assert.Equal(t, []string{"A", "B", "D"}, ext.Path)
	assert.Equal(t, []string{"A", "B", "E"}, ext2.Path)
	assert.Equal(t, 7.0, ext.Cost)
	assert.Equal(t, "D", ext.Dest())
	assert.Equal(t, "", Entry{}.Dest())
	assert.Equal(t, "7: A, B, D", ext.String())
}

func TestFrontier(t *testing.T) {
	var f frontier
	f.push(NewEntry(3, "A", "C"))
	f.push(NewEntry(1, "A", "B"))
	f.push(NewEntry(3, "A", "B", "C"))
	f.push(NewEntry(1, "A", "B"))

	view := f.sorted()
	assert.Equal(t, []Entry{
		NewEntry(1, "A", "B"),
		NewEntry(1, "A", "B"),
		NewEntry(3, "A", "B", "C"),
		NewEntry(3, "A", "C"),
	}, view)

	f.remove(NewEntry(1, "A", "B"))
	assert.Equal(t, 2, f.len())
	assert.Len(t, view, 4, "sorted view is a copy")

	f.retain(nil)
	assert.Zero(t, f.len())
}

func TestLedger(t *testing.T) {
	l := make(ledger)
	l.lower("A", 10)
	l.lower("A", 12)
	assert.Equal(t, 10.0, l["A"])
	l.lower("A", 7)
	assert.Equal(t, 7.0, l["A"])

	assert.True(t, l.dominates(NewEntry(8, "X", "A")))
	assert.False(t, l.dominates(NewEntry(7, "X", "A")))
	assert.False(t, l.dominates(NewEntry(1, "B")))

	assert.True(t, l.blocks("A", 7))
	assert.False(t, l.blocks("A", 6))
	assert.False(t, l.blocks("B", 100))
}

func TestTracker_DedupAndBuffers(t *testing.T) {
	tr := newTracker()
	dom := NewEntry(9, "A", "B")
	inf := NewEntry(4, "A", "C")

	tr.dominated(dom)
	tr.dominated(dom)
	tr.infeasible(inf)
	tr.infeasible(inf)
	tr.deadEnd(NewEntry(1, "A", "D"))
	tr.deadEnd(NewEntry(1, "A", "D"))

	got := tr.drain()
	assert.Equal(t, []Discard{
		{Entry: inf, Reason: Infeasible},
		{Entry: NewEntry(1, "A", "D"), Reason: DeadEnd},
		{Entry: NewEntry(1, "A", "D"), Reason: DeadEnd},
		{Entry: dom, Reason: Dominated},
	}, got)
	assert.Empty(t, tr.drain())

	// the seen set outlives the buffers
	tr.dominated(dom)
	assert.Empty(t, tr.drain())
	assert.False(t, tr.register(inf))
	assert.True(t, tr.register(NewEntry(4.5, "A", "C")))
}

func TestRecorder(t *testing.T) {
	rc := recorder{unit: "km", sep: "--"}
	sel := NewEntry(2, "A", "B")
	got := rc.body(3, sel, []Entry{sel, NewEntry(4, "A", "C")},
		[]Discard{{Entry: NewEntry(5, "A", "D"), Reason: Dominated}}, []string{"A"})

	assert.Equal(t, "\nStep 3\n\n"+
		"  →[2] km: A, B\n"+
		"    4 km: A, C\n"+
		"    ~5 km: A, D---x\n"+
		"\nExpanded: A\n", got)
	assert.Equal(t, "\n--\n", rc.separator())
	assert.Equal(t, "\nDONE.\n\nPath: A → B\nCost: 2 km\n", rc.done(sel))
}
