package autohint

import (
	"testing"

	"github.com/matzehuels/kintree/pkg/layout"
	"github.com/matzehuels/kintree/pkg/pedigree"
)

// person is a builder row: id, sex, mother, father.
type person struct {
	id, mother, father string
	sex                pedigree.Sex
}

func build(t *testing.T, people []person, twins ...pedigree.Relation) *pedigree.Pedigree {
	t.Helper()
	b := pedigree.NewBuilder()
	for _, pp := range people {
		if err := b.Add(pp.id, pp.sex, pp.mother, pp.father); err != nil {
			t.Fatalf("Add(%s) error: %v", pp.id, err)
		}
	}
	p, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	p.Relations = append(p.Relations, twins...)
	if err := p.Validate(); err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	return p
}

// row is one level of a hand-written slot table. Nil fam or spouse means
// all zeros.
type row struct {
	nid, fam, spouse []int
}

func table(rows ...row) *layout.Layout {
	l := &layout.Layout{}
	for _, r := range rows {
		n := len(r.nid)
		fam, spouse := r.fam, r.spouse
		if fam == nil {
			fam = make([]int, n)
		}
		if spouse == nil {
			spouse = make([]int, n)
		}
		l.N = append(l.N, n)
		l.Nid = append(l.Nid, r.nid)
		l.Fam = append(l.Fam, fam)
		l.Spouse = append(l.Spouse, spouse)
	}
	return l
}

// scripted is a layout function that replays fixed tables, repeating the
// last one, and records the options of every call.
type scripted struct {
	tables []*layout.Layout
	seen   []layout.Options
}

func (s *scripted) layout(_ *pedigree.Pedigree, opts layout.Options) (*layout.Layout, error) {
	s.seen = append(s.seen, opts)
	return s.tables[min(len(s.seen), len(s.tables))-1], nil
}

// remarried builds a founder x who married w1 and w2, each drawn with her
// own sibling:
//
//	e + f
//	a + b      c + d
//	w1 s1      w2 s2    x (partner of w1 and w2)
//	k1 (w1,x)  k2 (w2,x)
func remarried(t *testing.T) *pedigree.Pedigree {
	return build(t, []person{
		{id: "e", sex: pedigree.SexMale},
		{id: "f", sex: pedigree.SexFemale},
		{id: "a", sex: pedigree.SexMale, mother: "f", father: "e"},
		{id: "b", sex: pedigree.SexFemale},
		{id: "c", sex: pedigree.SexMale, mother: "f", father: "e"},
		{id: "d", sex: pedigree.SexFemale},
		{id: "w1", sex: pedigree.SexFemale, mother: "b", father: "a"},
		{id: "s1", sex: pedigree.SexMale, mother: "b", father: "a"},
		{id: "w2", sex: pedigree.SexFemale, mother: "d", father: "c"},
		{id: "s2", sex: pedigree.SexMale, mother: "d", father: "c"},
		{id: "x", sex: pedigree.SexMale},
		{id: "k1", sex: pedigree.SexMale, mother: "w1", father: "x"},
		{id: "k2", sex: pedigree.SexFemale, mother: "w2", father: "x"},
	})
}

// remarriedTables draws x twice at the outer ends of level 2 before hints,
// and once between the two wives afterwards.
func remarriedTables() []*layout.Layout {
	before := table(
		row{nid: []int{0, 1}, spouse: []int{1, 0}},
		row{nid: []int{2, 3, 4, 5}, fam: []int{1, 0, 1, 0}, spouse: []int{1, 0, 1, 0}},
		row{nid: []int{10, 6, 7, 9, 8, 10}, fam: []int{0, 1, 1, 3, 3, 0}, spouse: []int{1, 0, 0, 0, 1, 0}},
		row{nid: []int{11, 12}, fam: []int{1, 5}},
	)
	after := table(
		row{nid: []int{0, 1}, spouse: []int{1, 0}},
		row{nid: []int{2, 3, 4, 5}, fam: []int{1, 0, 1, 0}, spouse: []int{1, 0, 1, 0}},
		row{nid: []int{7, 6, 10, 8, 9}, fam: []int{1, 1, 0, 3, 3}, spouse: []int{0, 1, 1, 0, 0}},
		row{nid: []int{11, 12}, fam: []int{2, 3}},
	)
	return []*layout.Layout{before, after}
}

// flat lays every level out in arena order with no duplicates.
func flat(t *testing.T, p *pedigree.Pedigree, levels [][]int) *layout.Layout {
	t.Helper()
	var rows []row
	for _, members := range levels {
		rows = append(rows, row{nid: members})
	}
	return table(rows...)
}

// thriceMarried builds a founder x who married three cousins, each drawn
// with her own brother:
//
//	e + f
//	a + b      c + d      g + h
//	w1 s1      w2 s2      w3 s3    x (partner of w1, w2 and w3)
//	k1 (w1,x)  k2 (w2,x)  k3 (w3,x)
func thriceMarried(t *testing.T) *pedigree.Pedigree {
	return build(t, []person{
		{id: "e", sex: pedigree.SexMale},
		{id: "f", sex: pedigree.SexFemale},
		{id: "a", sex: pedigree.SexMale, mother: "f", father: "e"},
		{id: "b", sex: pedigree.SexFemale},
		{id: "c", sex: pedigree.SexMale, mother: "f", father: "e"},
		{id: "d", sex: pedigree.SexFemale},
		{id: "g", sex: pedigree.SexMale, mother: "f", father: "e"},
		{id: "h", sex: pedigree.SexFemale},
		{id: "w1", sex: pedigree.SexFemale, mother: "b", father: "a"},
		{id: "s1", sex: pedigree.SexMale, mother: "b", father: "a"},
		{id: "w2", sex: pedigree.SexFemale, mother: "d", father: "c"},
		{id: "s2", sex: pedigree.SexMale, mother: "d", father: "c"},
		{id: "w3", sex: pedigree.SexFemale, mother: "h", father: "g"},
		{id: "s3", sex: pedigree.SexMale, mother: "h", father: "g"},
		{id: "x", sex: pedigree.SexMale},
		{id: "k1", sex: pedigree.SexMale, mother: "w1", father: "x"},
		{id: "k2", sex: pedigree.SexFemale, mother: "w2", father: "x"},
		{id: "k3", sex: pedigree.SexMale, mother: "w3", father: "x"},
	})
}
