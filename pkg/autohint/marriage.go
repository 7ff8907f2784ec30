package autohint

import (
	"fmt"

	"github.com/matzehuels/kintree/pkg/errors"
	"github.com/matzehuels/kintree/pkg/pedigree"
)

// anchorClass classifies one occurrence of a duplicated individual.
type anchorClass int

const (
	anchorFree     anchorClass = iota // neither the slot nor its partner has parents drawn
	anchorFamilial                    // the slot hangs from its own parent family
	anchorSpousal                     // the partner next to the slot hangs from a family
)

// marriageHints returns the spouse hints for a resolved duplicate pair.
// sp holds the partners found next to each occurrence (-1 where none was
// looked up) and priority is the pair's anchor priority.
func marriageHints(lev, id int, class [2]anchorClass, sp [2]int, priority pedigree.Anchor) ([]pedigree.SpouseHint, error) {
	key := fmt.Sprintf("%d%d", class[0], class[1])
	hint := func(l, r int, a pedigree.Anchor) pedigree.SpouseHint {
		return pedigree.SpouseHint{Left: l, Right: r, Anchor: a}
	}

	switch key {
	case "21":
		return []pedigree.SpouseHint{hint(sp[0], id, priority)}, nil
	case "22":
		return []pedigree.SpouseHint{
			hint(sp[0], id, pedigree.AnchorLeft),
			hint(id, sp[1], pedigree.AnchorRight),
		}, nil
	case "02", "20":
		// Always the left partner. For 02 that is the free one; the
		// spousal side is held in place by its sibship shift.
		return []pedigree.SpouseHint{hint(sp[0], id, pedigree.AnchorNone)}, nil
	case "00":
		return []pedigree.SpouseHint{
			hint(id, sp[1], pedigree.AnchorNone),
			hint(sp[0], id, pedigree.AnchorNone),
		}, nil
	case "01":
		return []pedigree.SpouseHint{hint(sp[0], id, pedigree.AnchorRight)}, nil
	case "10":
		return []pedigree.SpouseHint{hint(id, sp[1], pedigree.AnchorLeft)}, nil
	case "11", "12":
		return nil, &errors.UnclassifiedAnchorError{Key: key, ID: id, Level: lev}
	default:
		panic("autohint: impossible anchor key " + key)
	}
}
