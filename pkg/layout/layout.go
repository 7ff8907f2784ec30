package layout

import (
	"slices"

	"github.com/matzehuels/kintree/pkg/pedigree"
)

// DefaultAlign is the alignment weight pair that stands for "align = true".
var DefaultAlign = []float64{1.5, 2}

// Options configures a layout pass.
type Options struct {
	// Packed requests a compact layout where slots are not padded apart.
	Packed bool `json:"packed"`
	// Align holds alignment weights; nil disables alignment.
	Align []float64 `json:"align,omitempty"`
	// Hints guides slot order and partner placement; nil means none.
	Hints *pedigree.Hints `json:"hints,omitempty"`
}

// Func computes a slot table for a pedigree. It must be deterministic:
// identical pedigrees and options yield identical layouts.
type Func func(p *pedigree.Pedigree, opts Options) (*Layout, error)

// Layout is the per-level slot table produced by a layout engine.
type Layout struct {
	N      []int       `json:"n"`
	Nid    [][]int     `json:"nid"`
	Fam    [][]int     `json:"fam"`
	Spouse [][]int     `json:"spouse"`
	Pos    [][]float64 `json:"pos,omitempty"`
}

// Levels returns the number of levels in the table.
func (l *Layout) Levels() int { return len(l.N) }

// Occupants returns the individuals in level lev, one entry per slot.
func (l *Layout) Occupants(lev int) []int { return l.Nid[lev][:l.N[lev]] }

// Attached reports whether slot s of level lev hangs from a parent family.
func (l *Layout) Attached(lev, s int) bool { return l.Fam[lev][s] > 0 }

// Joined reports whether slot s of level lev is drawn as partner of s+1.
func (l *Layout) Joined(lev, s int) bool {
	return s >= 0 && s < l.N[lev]-1 && l.Spouse[lev][s] > 0
}

// Occurrences returns, for each individual drawn in level lev, the slots it
// occupies in ascending order.
func (l *Layout) Occurrences(lev int) map[int][]int {
	occ := make(map[int][]int)
	for s, id := range l.Occupants(lev) {
		occ[id] = append(occ[id], s)
	}
	return occ
}

// Slot returns the first slot of individual id in level lev, or -1.
func (l *Layout) Slot(lev, id int) int {
	return slices.Index(l.Occupants(lev), id)
}

// Equal reports whether two layouts have identical slot tables.
func (l *Layout) Equal(o *Layout) bool {
	if l == nil || o == nil {
		return l == o
	}
	rows := func(a, b [][]int) bool {
		return slices.EqualFunc(a, b, func(x, y []int) bool { return slices.Equal(x, y) })
	}
	pos := slices.EqualFunc(l.Pos, o.Pos, func(x, y []float64) bool { return slices.Equal(x, y) })
	return slices.Equal(l.N, o.N) && rows(l.Nid, o.Nid) && rows(l.Fam, o.Fam) && rows(l.Spouse, o.Spouse) && pos
}
