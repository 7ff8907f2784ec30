package nodelink

import (
	"strings"
	"testing"

	"github.com/matzehuels/kintree/pkg/errors"
	"github.com/matzehuels/kintree/pkg/pedigree"
)

func family(t *testing.T) *pedigree.Pedigree {
	t.Helper()
	b := pedigree.NewBuilder()
	_ = b.Add("dad", pedigree.SexMale, "", "")
	_ = b.Add("mum", pedigree.SexFemale, "", "")
	_ = b.Add("kid1", pedigree.SexMale, "mum", "dad")
	_ = b.Add("kid2", pedigree.SexUnknown, "mum", "dad")
	b.Relate("kid1", "kid2", pedigree.RelationDZTwin)
	p, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	return p
}

func TestToDOT(t *testing.T) {
	dot, err := ToDOT(family(t), Options{})
	if err != nil {
		t.Fatalf("ToDOT() error: %v", err)
	}

	for _, want := range []string{
		"digraph G {",
		`i0 [label="dad", shape=box];`,
		`i1 [label="mum", shape=ellipse];`,
		`i3 [label="kid2", shape=diamond];`,
		"u1_0 [shape=point",
		"i0 -> u1_0;",
		"u1_0 -> i2;",
		"u1_0 -> i3;",
		"i2 -> i3 [style=dashed",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
	if strings.Contains(dot, "rank=same") {
		t.Error("ranks should only be pinned when hints are given")
	}
}

func TestToDOTHints(t *testing.T) {
	hints := &pedigree.Hints{
		Order:  []int{2, 1, 2, 1},
		Spouse: []pedigree.SpouseHint{{Left: 1, Right: 0}},
	}
	dot, err := ToDOT(family(t), Options{Detailed: true, Hints: hints})
	if err != nil {
		t.Fatalf("ToDOT() error: %v", err)
	}

	for _, want := range []string{
		`label="kid1\ndepth: 1\norder: 2"`,
		"{ rank=same; i1; i0; }",
		"{ rank=same; i3; i2; }",
		"i3 -> i2 [style=invis];",
		"i1 -> i0 [style=dotted",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
}

func TestToDOTCycle(t *testing.T) {
	p := &pedigree.Pedigree{Individuals: []pedigree.Individual{
		{ID: "a", Sex: pedigree.SexFemale, Mother: 2, Father: 1},
		{ID: "b", Sex: pedigree.SexMale, Mother: pedigree.None, Father: pedigree.None},
		{ID: "c", Sex: pedigree.SexFemale, Mother: 0, Father: 1},
	}}
	if _, err := ToDOT(p, Options{}); !errors.Is(err, errors.ErrCodeCycle) {
		t.Errorf("ToDOT() error = %v, want CYCLE", err)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(in))
	if !strings.Contains(out, `viewBox="0 0 100.00 50.00" width="100" height="50"`) {
		t.Errorf("normalizeViewBox() = %s", out)
	}
	if got := normalizeViewBox([]byte("<svg></svg>")); string(got) != "<svg></svg>" {
		t.Error("svg without viewBox should pass through")
	}
}
