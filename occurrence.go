package fastpoly

import "container/list"

// occurrenceEntry is the payload of a node in a variable's OccurrenceList:
// a back-reference to the canonical Monomial currently stored in the
// containing Polynomial's set.
type occurrenceEntry struct {
	mono *Monomial
}

// newOccurrenceLists allocates n empty occurrence lists, one per variable
// index 0..n-1.
func newOccurrenceLists(n int) []*list.List {
	lists := make([]*list.List, n)
	for i := range lists {
		lists[i] = list.New()
	}
	return lists
}

// pushOccurrence appends m to variable v's occurrence list and stores the
// returned handle on m, so it can later be unlinked in O(1).
func pushOccurrence(l *list.List, v VarIndex, m *Monomial) {
	e := l.PushBack(&occurrenceEntry{mono: m})
	if m.handles == nil {
		m.handles = make(map[VarIndex]*list.Element, m.size)
	}
	m.handles[v] = e
}

// unlinkOccurrence removes m's node from variable v's occurrence list, if
// present, clearing the stored handle.
func unlinkOccurrence(l *list.List, v VarIndex, m *Monomial) {
	if m.handles == nil {
		return
	}
	if e, ok := m.handles[v]; ok {
		l.Remove(e)
		delete(m.handles, v)
	}
}
