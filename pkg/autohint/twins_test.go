package autohint

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/kintree/pkg/pedigree"
)

func TestSeedOrder(t *testing.T) {
	tests := []struct {
		name     string
		levels   [][]int
		supplied []int
		want     []int
	}{
		{name: "empty", levels: nil, want: []int{}},
		{name: "arena order", levels: [][]int{{0, 2}, {1, 3, 4}}, want: []int{1, 1, 2, 2, 3}},
		{name: "supplied kept", levels: [][]int{{0, 1, 2}}, supplied: []int{0, 5, 0}, want: []int{1, 5, 2}},
		{name: "gap level", levels: [][]int{{0}, nil, {1}}, want: []int{1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := seedOrder(tt.levels, tt.supplied, len(tt.want))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("seedOrder() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// sibs builds p + q with children a, t1, t2, b where t1 and t2 are twins
// related by code.
func sibs(t *testing.T, code pedigree.RelationCode) *pedigree.Pedigree {
	return build(t, []person{
		{id: "p", sex: pedigree.SexMale},
		{id: "q", sex: pedigree.SexFemale},
		{id: "a", sex: pedigree.SexMale, mother: "q", father: "p"},
		{id: "t1", sex: pedigree.SexFemale, mother: "q", father: "p"},
		{id: "t2", sex: pedigree.SexFemale, mother: "q", father: "p"},
		{id: "b", sex: pedigree.SexMale, mother: "q", father: "p"},
	}, pedigree.Relation{ID1: 3, ID2: 4, Code: code})
}

func TestClusterTwins(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		ts := clusterTwins(sibs(t, pedigree.RelationSpouse))
		if !ts.empty() {
			t.Fatal("spouse relations must not form twin sets")
		}
		for i := range ts.set {
			if ts.inSet(i) {
				t.Errorf("individual %d in a twin set", i)
			}
		}
	})

	t.Run("chain", func(t *testing.T) {
		p := build(t, []person{
			{id: "t1", sex: pedigree.SexMale},
			{id: "t2", sex: pedigree.SexMale},
			{id: "t3", sex: pedigree.SexMale},
			{id: "x", sex: pedigree.SexMale},
		},
			pedigree.Relation{ID1: 2, ID2: 0, Code: pedigree.RelationUnknownTwin},
			pedigree.Relation{ID1: 0, ID2: 1, Code: pedigree.RelationMZTwin},
		)
		ts := clusterTwins(p)
		if diff := cmp.Diff([]int{0, 0, 0, -1}, ts.set); diff != "" {
			t.Errorf("set mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff([]int{2, 3, 1, 1}, ts.ord); diff != "" {
			t.Errorf("ord mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff([]int{0}, ts.ids()); diff != "" {
			t.Errorf("ids mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff([]int{0, 1}, ts.monoset(1)); diff != "" {
			t.Errorf("monoset(1) mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff([]int{2}, ts.monoset(2)); diff != "" {
			t.Errorf("monoset(2) mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestArrangeTwins(t *testing.T) {
	p := sibs(t, pedigree.RelationDZTwin)
	ts := clusterTwins(p)
	levels := [][]int{{0, 1}, {2, 3, 4, 5}}
	// t1 and t2 start apart.
	order := []int{1, 2, 4, 1, 3, 2}

	ts.arrange(order, levels)

	// mean(1,3)=2 puts t1 at 2.01 and t2 at 2.02, just behind b.
	want := []int{1, 2, 4, 2, 3, 1}
	if diff := cmp.Diff(want, order); diff != "" {
		t.Errorf("arrange() mismatch (-want +got):\n%s", diff)
	}
}

func TestShift(t *testing.T) {
	tests := []struct {
		name   string
		code   pedigree.RelationCode
		id     int
		goLeft bool
		want   []int // order of a, t1, t2, b
	}{
		{name: "plain left", code: pedigree.RelationSpouse, id: 5, goLeft: true, want: []int{2, 3, 4, 1}},
		{name: "plain right", code: pedigree.RelationSpouse, id: 2, goLeft: false, want: []int{4, 1, 2, 3}},
		{name: "mz left", code: pedigree.RelationMZTwin, id: 4, goLeft: true, want: []int{3, 1, 2, 4}},
		{name: "mz right", code: pedigree.RelationMZTwin, id: 3, goLeft: false, want: []int{1, 3, 4, 2}},
		{name: "dz right", code: pedigree.RelationDZTwin, id: 4, goLeft: false, want: []int{1, 3, 4, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := sibs(t, tt.code)
			h := &hinter{ped: p, twins: clusterTwins(p), order: []int{1, 2, 1, 2, 3, 4}}

			h.shift(tt.id, []int{2, 3, 4, 5}, tt.goLeft)

			if diff := cmp.Diff(tt.want, h.order[2:]); diff != "" {
				t.Errorf("shift() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestShiftKeepsHeldValues(t *testing.T) {
	p := sibs(t, pedigree.RelationSpouse)
	// The sibship holds 3, 5, 6 and 9 of a wider level.
	h := &hinter{ped: p, twins: clusterTwins(p), order: []int{1, 2, 3, 5, 6, 9}}

	h.shift(2, []int{2, 3, 4, 5}, false)

	want := []int{9, 3, 5, 6}
	if diff := cmp.Diff(want, h.order[2:]); diff != "" {
		t.Errorf("shift() mismatch (-want +got):\n%s", diff)
	}
}
