package autohint

import (
	"slices"

	"github.com/matzehuels/kintree/pkg/perm"
)

// shift moves id to one end of its sibship in the working order. goLeft
// selects the left end.
//
// Twins move together: the cohort of id (siblings in its twin set plus its
// monozygotic partners) is displaced past every other sibling, keeping
// birth order inside the cohort. Afterwards the sibship is re-ranked onto
// the order values it held before, so the level stays a permutation.
func (h *hinter) shift(id int, sibs []int, goLeft bool) {
	held := make([]int, len(sibs))
	lo, hi := h.order[sibs[0]], h.order[sibs[0]]
	for i, s := range sibs {
		held[i] = h.order[s]
		lo, hi = min(lo, held[i]), max(hi, held[i])
	}

	if h.twins.inSet(id) {
		amt := 1 + hi - lo
		if goLeft {
			amt = -amt
		}
		mono := h.twins.monoset(id)
		for _, s := range sibs {
			if h.twins.set[s] == h.twins.set[id] || slices.Contains(mono, s) {
				h.order[s] += amt
			}
		}
	} else if goLeft {
		h.order[id] = lo - 1
	} else {
		h.order[id] = hi + 1
	}

	ranked := perm.RankOnto(sibs, func(s int) int { return h.order[s] }, held)
	for s, v := range ranked {
		h.order[s] = v
	}
}

// shiftSibship shifts the individual at slot pos within the sibship drawn
// at sibSlots. Single-child sibships are left alone.
func (h *hinter) shiftSibship(nid []int, pos int, sibSlots []int, goLeft bool) {
	var sibs []int
	for _, s := range sibSlots {
		if !slices.Contains(sibs, nid[s]) {
			sibs = append(sibs, nid[s])
		}
	}
	if len(sibs) > 1 {
		h.shift(nid[pos], sibs, goLeft)
	}
}
