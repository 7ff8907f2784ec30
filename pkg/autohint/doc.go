// Package autohint computes layout hints for pedigree drawings.
//
// # Overview
//
// A pedigree layout engine places each generation on a row and needs two
// kinds of guidance to produce a readable drawing: the horizontal order of
// individuals within their generation, and which partners should be drawn
// side by side. [Generate] derives both from the pedigree alone, producing
// a [pedigree.Hints] value.
//
// # Pipeline
//
// Generate runs these stages:
//
//  1. Depths: generations are assigned from parent links and partners are
//     aligned onto a common generation.
//  2. Seeding: every individual without a caller-supplied order value gets
//     the next free rank in its generation, in arena order.
//  3. Twins: twin sets are clustered and placed next to each other in birth
//     order; monozygotic twins are tracked so later shifts move them as one.
//  4. Initial layout: the injected [layout.Func] is called once.
//  5. Per generation: individuals drawn more than once (one slot per
//     partnership) are paired up. For each pair the sibling group anchoring
//     each occurrence is shifted so the occurrences face each other, and
//     spouse hints are emitted from the pair's anchor classification. The
//     layout is recomputed before the next generation is examined.
//
// # Anchors
//
// Each occurrence of a duplicated individual is classified as familial
// (the slot hangs from its own parents), spousal (the slot is free but the
// partner next to it hangs from parents) or free. The two classes of a pair
// select the spouse hints to emit. Combinations with no rule make Generate
// give up on refinement and return a plain per-generation ordering, which
// any layout engine can still draw.
//
// # Concurrency
//
// Generate keeps all working state local to the call and never touches
// package-level state, so independent pedigrees may be processed
// concurrently. A single call is not cancellable.
//
// [layout.Func]: github.com/matzehuels/kintree/pkg/layout.Func
// [pedigree.Hints]: github.com/matzehuels/kintree/pkg/pedigree.Hints
package autohint
