// Package basic is a small deterministic pedigree layout engine.
//
// It places every generation on one row, ordered by the order hints, and
// chains partners into blocks: a partner that cannot join an existing
// block end is drawn a second time next to the other partner. Spouse hints
// are honoured first and in their given orientation.
//
// The engine does not optimise positions; Options.Align is accepted and
// ignored. It exists so hint generation can be exercised end to end and so
// the CLI has something to draw with.
package basic

import (
	"slices"

	"github.com/matzehuels/kintree/pkg/errors"
	"github.com/matzehuels/kintree/pkg/layout"
	"github.com/matzehuels/kintree/pkg/pedigree"
	"github.com/matzehuels/kintree/pkg/pedigree/transform"
)

var _ layout.Func = Layout

// Layout computes the slot table for p. It implements [layout.Func].
func Layout(p *pedigree.Pedigree, opts layout.Options) (*layout.Layout, error) {
	n := p.Len()
	if opts.Hints != nil && len(opts.Hints.Order) != n {
		return nil, errors.New(errors.ErrCodeInvalidInput, "order hints cover %d individuals, pedigree has %d", len(opts.Hints.Order), n)
	}

	depth, err := transform.Depths(p)
	if err != nil {
		return nil, err
	}
	levels := transform.GroupByDepth(depth)
	order := orderOf(levels, opts.Hints, n)

	out := &layout.Layout{}
	partners := p.Partners()
	for lev, members := range levels {
		members = slices.Clone(members)
		slices.SortStableFunc(members, func(a, b int) int { return order[a] - order[b] })

		var nid []int
		for _, b := range place(members, pairsIn(p, members, partners, opts.Hints)) {
			nid = append(nid, b...)
		}
		out.N = append(out.N, len(nid))
		out.Nid = append(out.Nid, nid)
		out.Spouse = append(out.Spouse, spouseMarks(p, nid, partners, opts.Hints))
		if lev == 0 {
			out.Fam = append(out.Fam, make([]int, len(nid)))
		} else {
			out.Fam = append(out.Fam, famOf(p, nid, out.Nid[lev-1]))
		}
	}
	out.Pos = positions(out.N, opts.Packed)
	return out, nil
}

// orderOf returns the hinted order, with missing (0) values filled from
// arena order within each level.
func orderOf(levels [][]int, hints *pedigree.Hints, n int) []int {
	order := make([]int, n)
	if hints != nil {
		copy(order, hints.Order)
	}
	for _, members := range levels {
		next := 0
		for _, i := range members {
			next = max(next, order[i])
		}
		for _, i := range members {
			if order[i] == 0 {
				next++
				order[i] = next
			}
		}
	}
	return order
}

// pairsIn returns the partnerships among members as (left, right) pairs:
// spouse hints first, then recorded partnerships with the male partner on
// the left. Each partnership appears once.
func pairsIn(p *pedigree.Pedigree, members []int, partners [][2]int, hints *pedigree.Hints) [][2]int {
	in := make(map[int]bool, len(members))
	for _, m := range members {
		in[m] = true
	}
	seen := make(map[[2]int]bool)
	var out [][2]int
	add := func(a, b int) {
		key := [2]int{min(a, b), max(a, b)}
		if a == b || !in[a] || !in[b] || seen[key] {
			return
		}
		seen[key] = true
		out = append(out, [2]int{a, b})
	}

	if hints != nil {
		for _, h := range hints.Spouse {
			add(h.Left, h.Right)
		}
	}
	for _, pr := range partners {
		a, b := pr[0], pr[1]
		if p.Sex(a) == pedigree.SexFemale && p.Sex(b) == pedigree.SexMale {
			a, b = b, a
		}
		add(a, b)
	}
	return out
}

// place chains members into partner blocks in the order of pairs. Blocks
// start as singletons in member order; a merged block keeps the position of
// the leftmost of its parts.
func place(members []int, pairs [][2]int) [][]int {
	blocks := make([][]int, len(members))
	for i, m := range members {
		blocks[i] = []int{m}
	}
	find := func(x int) int {
		return slices.IndexFunc(blocks, func(b []int) bool { return slices.Contains(b, x) })
	}
	merge := func(ia, ib int, joined []int) {
		lo, hi := min(ia, ib), max(ia, ib)
		blocks[lo] = joined
		blocks = slices.Delete(blocks, hi, hi+1)
	}

	for _, pr := range pairs {
		a, b := pr[0], pr[1]
		ia, ib := find(a), find(b)
		if ia == ib {
			continue
		}
		A, B := blocks[ia], blocks[ib]
		switch {
		case A[len(A)-1] == a && B[0] == b:
			merge(ia, ib, slices.Concat(A, B))
		case B[len(B)-1] == b && A[0] == a:
			merge(ia, ib, slices.Concat(B, A))
		case A[len(A)-1] == a:
			blocks[ia] = append(A, b)
		case A[0] == a:
			blocks[ia] = slices.Concat([]int{b}, A)
		case B[len(B)-1] == b:
			blocks[ib] = append(B, a)
		case B[0] == b:
			blocks[ib] = slices.Concat([]int{a}, B)
		default:
			blocks = append(blocks, []int{a, b})
		}
	}
	return blocks
}

// spouseMarks flags adjacent slots that hold partners.
func spouseMarks(p *pedigree.Pedigree, nid []int, partners [][2]int, hints *pedigree.Hints) []int {
	isPair := make(map[[2]int]bool, len(partners))
	for _, pr := range partners {
		isPair[pr] = true
	}
	if hints != nil {
		for _, h := range hints.Spouse {
			isPair[[2]int{min(h.Left, h.Right), max(h.Left, h.Right)}] = true
		}
	}
	marks := make([]int, len(nid))
	for s := 0; s+1 < len(nid); s++ {
		a, b := nid[s], nid[s+1]
		if isPair[[2]int{min(a, b), max(a, b)}] {
			marks[s] = 1
		}
	}
	return marks
}

// famOf attaches the first occurrence of each individual to its parents in
// the level above: the left slot of an adjacent parent pair if there is
// one, otherwise the leftmost parent slot. Parents drawn elsewhere leave
// the slot unattached.
func famOf(p *pedigree.Pedigree, nid, above []int) []int {
	fam := make([]int, len(nid))
	seen := make(map[int]bool, len(nid))
	for s, i := range nid {
		if seen[i] {
			continue
		}
		seen[i] = true
		ind := p.Individuals[i]
		if !ind.HasParents() {
			continue
		}
		ms, fs := slotsOf(above, ind.Mother), slotsOf(above, ind.Father)
		if len(ms) == 0 || len(fs) == 0 {
			continue
		}
		fam[s] = min(ms[0], fs[0]) + 1
	pair:
		for _, m := range ms {
			for _, f := range fs {
				if m-f == 1 || f-m == 1 {
					fam[s] = min(m, f) + 1
					break pair
				}
			}
		}
	}
	return fam
}

func slotsOf(nid []int, id int) []int {
	var out []int
	for s, x := range nid {
		if x == id {
			out = append(out, s)
		}
	}
	return out
}

// positions returns slot coordinates. Packed rows start at 0; otherwise
// each row is centred under the widest one.
func positions(n []int, packed bool) [][]float64 {
	widest := 0
	if len(n) > 0 {
		widest = slices.Max(n)
	}
	pos := make([][]float64, len(n))
	for lev, k := range n {
		off := 0.0
		if !packed {
			off = float64(widest-k) / 2
		}
		pos[lev] = make([]float64, k)
		for s := range k {
			pos[lev][s] = off + float64(s)
		}
	}
	return pos
}
