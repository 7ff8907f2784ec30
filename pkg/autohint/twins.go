package autohint

import (
	"slices"

	"github.com/matzehuels/kintree/pkg/pedigree"
	"github.com/matzehuels/kintree/pkg/perm"
)

// twinSets holds the twin clustering of a pedigree.
type twinSets struct {
	set  []int // -1 for non-twins, else the smallest arena index of the set
	ord  []int // birth order within the set, starting at 1
	rels []pedigree.Relation
}

// clusterTwins unions twin relations into sets keyed by their smallest
// member and derives a birth order. The relaxation runs once per twin minus
// one, which is enough for chains of any length to settle.
func clusterTwins(p *pedigree.Pedigree) *twinSets {
	n := p.Len()
	ts := &twinSets{set: make([]int, n), ord: make([]int, n), rels: p.TwinRelations()}
	for i := range n {
		ts.set[i] = -1
		ts.ord[i] = 1
	}
	if len(ts.rels) == 0 {
		return ts
	}

	var twinlist []int
	for _, r := range ts.rels {
		for _, id := range [2]int{r.ID1, r.ID2} {
			if ts.set[id] == -1 {
				ts.set[id] = id
				twinlist = append(twinlist, id)
			}
		}
	}

	for range len(twinlist) - 1 {
		for _, r := range ts.rels {
			id := min(ts.set[r.ID1], ts.set[r.ID2])
			ts.set[r.ID1], ts.set[r.ID2] = id, id
			ts.ord[r.ID2] = max(ts.ord[r.ID2], ts.ord[r.ID1]+1)
		}
	}
	return ts
}

func (ts *twinSets) empty() bool { return len(ts.rels) == 0 }

func (ts *twinSets) inSet(i int) bool { return ts.set[i] >= 0 }

// ids returns the set identifiers in ascending order.
func (ts *twinSets) ids() []int {
	var out []int
	for i, s := range ts.set {
		if s == i {
			out = append(out, s)
		}
	}
	return out
}

// members returns the arena indices of set id in arena order.
func (ts *twinSets) members(id int) []int {
	var out []int
	for i, s := range ts.set {
		if s == id {
			out = append(out, i)
		}
	}
	return out
}

// monoset returns id together with everyone linked to it through a chain of
// monozygotic relations, in ascending order.
func (ts *twinSets) monoset(id int) []int {
	in := map[int]bool{id: true}
	for grew := true; grew; {
		grew = false
		for _, r := range ts.rels {
			if r.Code != pedigree.RelationMZTwin {
				continue
			}
			if in[r.ID1] != in[r.ID2] {
				in[r.ID1], in[r.ID2] = true, true
				grew = true
			}
		}
	}
	out := make([]int, 0, len(in))
	for i := range in {
		out = append(out, i)
	}
	slices.Sort(out)
	return out
}

// arrange places each twin set at the mean of its members' current order,
// offset by birth order, then re-ranks every level to dense integers.
// Members end up adjacent and sorted by birth order. No-op without twins.
func (ts *twinSets) arrange(order []int, levels [][]int) {
	if ts.empty() {
		return
	}

	work := make([]float64, len(order))
	for i, o := range order {
		work[i] = float64(o)
	}
	for _, id := range ts.ids() {
		members := ts.members(id)
		var sum float64
		for _, m := range members {
			sum += float64(order[m])
		}
		mean := sum / float64(len(members))
		for _, m := range members {
			work[m] = mean + float64(ts.ord[m])/100
		}
	}

	for _, members := range levels {
		ranks := perm.Rank(members, func(i int) float64 { return work[i] })
		for k, i := range members {
			order[i] = ranks[k]
		}
	}
}
