package layout

import "slices"

// Crossings returns the number of parent-child line crossings over all
// consecutive level pairs. A child line runs from the left parent slot
// (Fam-1) in the level above to the child's slot.
func (l *Layout) Crossings() int {
	total := 0
	for lev := 1; lev < l.Levels(); lev++ {
		total += l.LevelCrossings(lev)
	}
	return total
}

// LevelCrossings counts crossings between level lev-1 and level lev using a
// Fenwick tree over child slots, in O(E log N).
func (l *Layout) LevelCrossings(lev int) int {
	if lev <= 0 || lev >= l.Levels() || l.N[lev-1] == 0 {
		return 0
	}

	type edge struct{ upper, lower int }
	var edges []edge
	for s := range l.N[lev] {
		if f := l.Fam[lev][s]; f > 0 {
			edges = append(edges, edge{f - 1, s})
		}
	}
	if len(edges) < 2 {
		return 0
	}
	slices.SortFunc(edges, func(a, b edge) int {
		if a.upper != b.upper {
			return a.upper - b.upper
		}
		return a.lower - b.lower
	})

	fenwick := make([]int, l.N[lev]+1)
	crossings, total := 0, 0
	for _, e := range edges {
		lessOrEqual := 0
		for q := e.lower + 1; q > 0; q -= q & (-q) {
			lessOrEqual += fenwick[q]
		}
		crossings += total - lessOrEqual

		total++
		for idx := e.lower + 1; idx < len(fenwick); idx += idx & (-idx) {
			fenwick[idx]++
		}
	}
	return crossings
}

// Duplicates returns the number of slots beyond the first occurrence of
// each individual, summed over all levels.
func (l *Layout) Duplicates() int {
	extra := 0
	for lev := range l.Levels() {
		extra += l.N[lev] - len(l.Occurrences(lev))
	}
	return extra
}
