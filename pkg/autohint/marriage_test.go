package autohint

import (
	stderrors "errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/kintree/pkg/errors"
	"github.com/matzehuels/kintree/pkg/pedigree"
)

func TestMarriageHints(t *testing.T) {
	const id = 5
	sp := [2]int{3, 7}
	h := func(l, r int, a pedigree.Anchor) pedigree.SpouseHint {
		return pedigree.SpouseHint{Left: l, Right: r, Anchor: a}
	}

	tests := []struct {
		class    [2]anchorClass
		priority pedigree.Anchor
		want     []pedigree.SpouseHint
	}{
		{class: [2]anchorClass{anchorSpousal, anchorFamilial}, priority: pedigree.AnchorRight, want: []pedigree.SpouseHint{h(3, id, 2)}},
		{class: [2]anchorClass{anchorSpousal, anchorSpousal}, want: []pedigree.SpouseHint{h(3, id, 1), h(id, 7, 2)}},
		// The free left partner is hinted, not the spousal right one.
		{class: [2]anchorClass{anchorFree, anchorSpousal}, want: []pedigree.SpouseHint{h(3, id, 0)}},
		{class: [2]anchorClass{anchorSpousal, anchorFree}, want: []pedigree.SpouseHint{h(3, id, 0)}},
		{class: [2]anchorClass{anchorFree, anchorFree}, want: []pedigree.SpouseHint{h(id, 7, 0), h(3, id, 0)}},
		{class: [2]anchorClass{anchorFree, anchorFamilial}, want: []pedigree.SpouseHint{h(3, id, 2)}},
		{class: [2]anchorClass{anchorFamilial, anchorFree}, want: []pedigree.SpouseHint{h(id, 7, 1)}},
	}

	for _, tt := range tests {
		got, err := marriageHints(0, id, tt.class, sp, tt.priority)
		if err != nil {
			t.Errorf("marriageHints(%v) error: %v", tt.class, err)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("marriageHints(%v) mismatch (-want +got):\n%s", tt.class, diff)
		}
	}
}

func TestMarriageHintsUnclassified(t *testing.T) {
	for _, class := range [][2]anchorClass{
		{anchorFamilial, anchorFamilial},
		{anchorFamilial, anchorSpousal},
	} {
		_, err := marriageHints(2, 5, class, [2]int{pedigree.None, pedigree.None}, pedigree.AnchorLeft)
		var ua *errors.UnclassifiedAnchorError
		if !stderrors.As(err, &ua) {
			t.Fatalf("marriageHints(%v) error = %v, want UnclassifiedAnchorError", class, err)
		}
		if ua.ID != 5 || ua.Level != 2 {
			t.Errorf("error detail = %+v", ua)
		}
	}
}

func TestMarriageHintsImpossibleKey(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for an out-of-range anchor class")
		}
	}()
	_, _ = marriageHints(0, 0, [2]anchorClass{3, 0}, [2]int{}, 0)
}
