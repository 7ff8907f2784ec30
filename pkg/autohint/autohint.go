package autohint

import (
	stderrors "errors"
	"io"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/kintree/pkg/errors"
	"github.com/matzehuels/kintree/pkg/layout"
	"github.com/matzehuels/kintree/pkg/pedigree"
	"github.com/matzehuels/kintree/pkg/pedigree/transform"
)

// hinter carries the working state of one Generate call.
type hinter struct {
	ped    *pedigree.Pedigree
	layout layout.Func
	opts   Options
	log    *log.Logger

	levels [][]int
	order  []int
	spouse []pedigree.SpouseHint
	twins  *twinSets
	calls  int
}

// Generate computes layout hints for p, calling fn to lay out intermediate
// results. If p already carries hints they are returned as-is and fn is
// never called.
//
// Parent and relation indices of p, and any supplied opts.Hints, must
// point into the arena; otherwise an error coded INVALID_PEDIGREE is
// returned before any work is done. Other errors are a *errors.CycleError
// when generations cannot be assigned, a *errors.LayoutInvariantError when
// fn returns a table without the expected shape, or whatever fn itself
// returns. An anchor combination without a
// marriage rule is not an error: the refinement is abandoned and a plain
// per-generation ordering without spouse hints is returned.
func Generate(p *pedigree.Pedigree, fn layout.Func, opts Options) (*pedigree.Hints, error) {
	if p.Hints != nil {
		return p.Hints, nil
	}
	if err := p.CheckRefs(); err != nil {
		return nil, err
	}
	if opts.Hints != nil {
		if err := opts.Hints.Validate(p.Len()); err != nil {
			return nil, err
		}
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	depth, err := transform.Depths(p)
	if err != nil {
		return nil, err
	}

	h := &hinter{
		ped:    p,
		layout: fn,
		opts:   opts,
		log:    logger,
		levels: transform.GroupByDepth(depth),
		twins:  clusterTwins(p),
	}
	var supplied []int
	if opts.Hints != nil {
		supplied = opts.Hints.Order
		h.spouse = slices.Clone(opts.Hints.Spouse)
	}
	h.order = seedOrder(h.levels, supplied, p.Len())
	h.twins.arrange(h.order, h.levels)

	hints, err := h.refine()
	var unclassified *errors.UnclassifiedAnchorError
	if stderrors.As(err, &unclassified) {
		logger.Warn("falling back to plain ordering", "reason", unclassified.Error())
		return &pedigree.Hints{Order: seedOrder(h.levels, nil, p.Len())}, nil
	}
	if err != nil {
		return nil, err
	}
	logger.Debug("hints generated", "individuals", p.Len(), "spouse_hints", len(hints.Spouse), "layouts", h.calls)
	return hints, nil
}

// refine runs the duplicate resolution loop over all levels.
func (h *hinter) refine() (*pedigree.Hints, error) {
	plist, err := h.relayout()
	if err != nil {
		return nil, err
	}

	for lev := 0; lev < plist.Levels(); lev++ {
		pairs, err := dupOrder(plist, lev)
		if err != nil {
			return nil, err
		}
		if len(pairs) == 0 {
			continue
		}
		h.log.Debug("resolving duplicates", "level", lev, "pairs", len(pairs))

		for _, pair := range pairs {
			if err := h.resolve(plist, lev, pair); err != nil {
				return nil, err
			}
		}
		if plist, err = h.relayout(); err != nil {
			return nil, err
		}
	}
	return h.hints(), nil
}

// resolve shifts the sibships anchoring both occurrences of pair toward each
// other and records the spouse hints that tie them together.
func (h *hinter) resolve(plist *layout.Layout, lev int, pair dupPair) error {
	nid := plist.Occupants(lev)
	class := [2]anchorClass{anchorFree, anchorFree}
	sp := [2]int{pedigree.None, pedigree.None}

	for j, pos := range [2]int{pair.left, pair.right} {
		goLeft := j == 1
		if plist.Attached(lev, pos) {
			class[j] = anchorFamilial
			sibs, err := findSibs(plist, lev, pos)
			if err != nil {
				return err
			}
			h.shiftSibship(nid, pos, sibs, goLeft)
			continue
		}

		spos, err := findSpouse(plist, h.ped, lev, pos)
		if err != nil {
			return err
		}
		sp[j] = nid[spos]
		if plist.Attached(lev, spos) {
			class[j] = anchorSpousal
			sibs, err := findSibs(plist, lev, spos)
			if err != nil {
				return err
			}
			h.shiftSibship(nid, spos, sibs, goLeft)
		}
	}

	hints, err := marriageHints(lev, pair.id, class, sp, pair.priority)
	if err != nil {
		return err
	}
	h.spouse = append(h.spouse, hints...)
	return nil
}

func (h *hinter) hints() *pedigree.Hints {
	return &pedigree.Hints{Order: slices.Clone(h.order), Spouse: slices.Clone(h.spouse)}
}

func (h *hinter) relayout() (*layout.Layout, error) {
	h.calls++
	return h.layout(h.ped, layout.Options{
		Packed: h.opts.Packed,
		Align:  h.opts.Align,
		Hints:  h.hints(),
	})
}
