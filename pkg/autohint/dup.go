package autohint

import (
	"cmp"
	"slices"

	"github.com/matzehuels/kintree/pkg/errors"
	"github.com/matzehuels/kintree/pkg/layout"
	"github.com/matzehuels/kintree/pkg/pedigree"
)

// dupPair is two adjacent occurrences of the same individual in one level.
type dupPair struct {
	id          int
	left, right int // slots, left < right
	priority    pedigree.Anchor
}

// dupOrder lists the duplicate pairs of level lev in processing order.
//
// An individual drawn k times yields k-1 pairs of consecutive occurrences.
// Pairs in the first half get priority 1 (left anchor), the rest priority 2.
// When there is more than one pair, pairs whose families touch come first,
// then pairs with the smallest slot distance; the sort is stable.
func dupOrder(lay *layout.Layout, lev int) ([]dupPair, error) {
	occ := lay.Occurrences(lev)
	ids := make([]int, 0, len(occ))
	for id, slots := range occ {
		if len(slots) > 1 {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil, nil
	}
	slices.Sort(ids)

	var pairs []dupPair
	for _, id := range ids {
		slots := occ[id]
		k := len(slots)
		for j := 1; j < k; j++ {
			pri := pedigree.AnchorRight
			if 2*j <= k {
				pri = pedigree.AnchorLeft
			}
			pairs = append(pairs, dupPair{id: id, left: slots[j-1], right: slots[j], priority: pri})
		}
	}
	if len(pairs) == 1 {
		return pairs, nil
	}

	touching := make(map[dupPair]bool, len(pairs))
	for _, p := range pairs {
		t, err := touches(lay, lev, p)
		if err != nil {
			return nil, err
		}
		touching[p] = t
	}
	slices.SortStableFunc(pairs, func(a, b dupPair) int {
		if ta, tb := touching[a], touching[b]; ta != tb {
			if ta {
				return -1
			}
			return 1
		}
		return cmp.Compare(a.right-a.left, b.right-b.left)
	})
	return pairs, nil
}

// touches reports whether both occurrences hang from families and the
// left family ends right where the right family begins.
func touches(lay *layout.Layout, lev int, p dupPair) (bool, error) {
	if !lay.Attached(lev, p.left) || !lay.Attached(lev, p.right) {
		return false, nil
	}
	ls, err := findSibs(lay, lev, p.left)
	if err != nil {
		return false, err
	}
	rs, err := findSibs(lay, lev, p.right)
	if err != nil {
		return false, err
	}
	return slices.Max(ls)+1 == slices.Min(rs), nil
}

// findSibs returns the slots in level lev that share the parent family of
// slot pos, in ascending order.
func findSibs(lay *layout.Layout, lev, pos int) ([]int, error) {
	fam := lay.Fam[lev][pos]
	if fam <= 0 {
		return nil, &errors.LayoutInvariantError{Level: lev, Slot: pos, What: "sibling lookup on a slot without parent family"}
	}
	var out []int
	for s := range lay.N[lev] {
		if lay.Fam[lev][s] == fam {
			out = append(out, s)
		}
	}
	return out, nil
}

// findSpouse returns the slot of the partner drawn next to slot pos.
//
// The partner is searched within the contiguous block of slots joined by
// spouse markers around pos, nearest first and left before right, as the
// first occupant whose sex differs from the occupant of pos.
func findSpouse(lay *layout.Layout, p *pedigree.Pedigree, lev, pos int) (int, error) {
	lpos := pos
	for lay.Joined(lev, lpos-1) {
		lpos--
	}
	rpos := pos
	for lay.Joined(lev, rpos) {
		rpos++
	}
	if lpos == rpos {
		return 0, &errors.LayoutInvariantError{Level: lev, Slot: pos, What: "duplicate without a partner next to it"}
	}

	nid := lay.Occupants(lev)
	sex := p.Sex(nid[pos])
	for d := 1; pos-d >= lpos || pos+d <= rpos; d++ {
		if s := pos - d; s >= lpos && p.Sex(nid[s]) != sex {
			return s, nil
		}
		if s := pos + d; s <= rpos && p.Sex(nid[s]) != sex {
			return s, nil
		}
	}
	return 0, &errors.LayoutInvariantError{Level: lev, Slot: pos, What: "no partner of the opposite sex in spouse block"}
}
