package pedigree

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/kintree/pkg/errors"
)

// family builds: dad + mum -> kid1, kid2 (twins); kid1 partnered with inlaw.
func family(t *testing.T) *Pedigree {
	t.Helper()
	b := NewBuilder()
	_ = b.Add("dad", SexMale, "", "")
	_ = b.Add("mum", SexFemale, "", "")
	_ = b.Add("kid1", SexMale, "mum", "dad")
	_ = b.Add("kid2", SexMale, "mum", "dad")
	_ = b.Add("inlaw", SexFemale, "", "")
	b.Relate("kid1", "kid2", RelationMZTwin)
	b.Relate("kid1", "inlaw", RelationSpouse)
	p, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	return p
}

func TestBuilder(t *testing.T) {
	p := family(t)

	if p.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", p.Len())
	}
	kid := p.Individuals[2]
	if kid.Mother != 1 || kid.Father != 0 {
		t.Errorf("kid1 parents = (%d,%d), want (1,0)", kid.Mother, kid.Father)
	}
	if p.Individuals[0].HasParents() {
		t.Error("dad should be a founder")
	}
	if i, ok := p.Index("inlaw"); !ok || i != 4 {
		t.Errorf("Index(inlaw) = %d,%v, want 4,true", i, ok)
	}
	if _, ok := p.Index("nobody"); ok {
		t.Error("Index(nobody) should fail")
	}
}

func TestBuilderErrors(t *testing.T) {
	tests := []struct {
		name  string
		build func(b *Builder) error
	}{
		{
			name: "unknown mother",
			build: func(b *Builder) error {
				_ = b.Add("dad", SexMale, "", "")
				_ = b.Add("kid", SexMale, "ghost", "dad")
				_, err := b.Build()
				return err
			},
		},
		{
			name: "duplicate id",
			build: func(b *Builder) error {
				_ = b.Add("a", SexMale, "", "")
				return b.Add("a", SexFemale, "", "")
			},
		},
		{
			name: "single parent",
			build: func(b *Builder) error {
				_ = b.Add("mum", SexFemale, "", "")
				_ = b.Add("kid", SexMale, "mum", "")
				_, err := b.Build()
				return err
			},
		},
		{
			name: "unknown relation member",
			build: func(b *Builder) error {
				_ = b.Add("a", SexMale, "", "")
				b.Relate("a", "b", RelationSpouse)
				_, err := b.Build()
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build(NewBuilder())
			if !errors.Is(err, errors.ErrCodeInvalidPedigree) {
				t.Errorf("error = %v, want code %s", err, errors.ErrCodeInvalidPedigree)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *Pedigree)
		wantErr bool
	}{
		{"valid", func(p *Pedigree) {}, false},
		{"own parent", func(p *Pedigree) { p.Individuals[2].Mother = 2 }, true},
		{"same parents", func(p *Pedigree) { p.Individuals[2].Father = 1 }, true},
		{"parent out of range", func(p *Pedigree) { p.Individuals[2].Father = 9 }, true},
		{"self relation", func(p *Pedigree) { p.Relations[0].ID2 = p.Relations[0].ID1 }, true},
		{"bad relation code", func(p *Pedigree) { p.Relations[0].Code = 9 }, true},
		{"short hints", func(p *Pedigree) { p.Hints = &Hints{Order: []int{1}} }, true},
		{"bad anchor", func(p *Pedigree) {
			p.Hints = &Hints{Order: make([]int, 5), Spouse: []SpouseHint{{Left: 0, Right: 1, Anchor: 5}}}
		}, true},
		{"valid hints", func(p *Pedigree) {
			p.Hints = &Hints{Order: []int{1, 2, 1, 2, 3}, Spouse: []SpouseHint{{Left: 2, Right: 4}}}
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := family(t)
			tt.mutate(p)
			if err := p.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCheckRefs(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *Pedigree)
		wantErr bool
	}{
		{"valid", func(p *Pedigree) {}, false},
		{"single parent", func(p *Pedigree) { p.Individuals[2].Father = None }, false},
		{"mother out of range", func(p *Pedigree) { p.Individuals[3].Mother = 7 }, true},
		{"negative father", func(p *Pedigree) { p.Individuals[3].Father = -2 }, true},
		{"relation out of range", func(p *Pedigree) { p.Relations[1].ID2 = 5 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := family(t)
			tt.mutate(p)
			err := p.CheckRefs()
			if (err != nil) != tt.wantErr {
				t.Fatalf("CheckRefs() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, errors.ErrCodeInvalidPedigree) {
				t.Errorf("CheckRefs() error = %v, want INVALID_PEDIGREE", err)
			}
		})
	}
}

func TestPartners(t *testing.T) {
	p := family(t)
	want := [][2]int{{0, 1}, {2, 4}}
	if diff := cmp.Diff(want, p.Partners()); diff != "" {
		t.Errorf("Partners() mismatch (-want +got):\n%s", diff)
	}
}

func TestChildrenAndTwins(t *testing.T) {
	p := family(t)
	if diff := cmp.Diff([]int{2, 3}, p.Children(1)); diff != "" {
		t.Errorf("Children(mum) mismatch (-want +got):\n%s", diff)
	}
	twins := p.TwinRelations()
	if len(twins) != 1 || twins[0].Code != RelationMZTwin {
		t.Errorf("TwinRelations() = %v, want one MZ relation", twins)
	}
}

func TestParseSex(t *testing.T) {
	tests := []struct {
		in      string
		want    Sex
		wantErr bool
	}{
		{"male", SexMale, false},
		{"F", SexFemale, false},
		{"", SexUnknown, false},
		{"4", SexTerminated, false},
		{"robot", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseSex(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseSex(%q) = %v, %v; want %v, err=%v", tt.in, got, err, tt.want, tt.wantErr)
		}
	}
}

func TestHintsClone(t *testing.T) {
	var nilHints *Hints
	if nilHints.Clone() != nil {
		t.Error("Clone(nil) should be nil")
	}
	h := &Hints{Order: []int{1, 2}, Spouse: []SpouseHint{{Left: 0, Right: 1}}}
	c := h.Clone()
	c.Order[0] = 9
	c.Spouse[0].Anchor = AnchorRight
	if h.Order[0] != 1 || h.Spouse[0].Anchor != AnchorNone {
		t.Error("Clone should not share backing arrays")
	}
}
