// Package transform derives layout structure from a pedigree.
//
// # Depth Assignment
//
// [AssignDepths] computes the generation of every individual with a
// longest-path pass over parent links (Kahn's algorithm): founders sit at
// depth 0 and every child sits one below its deeper parent. A parent graph
// that is not acyclic is reported as an [errors.CycleError].
//
// [AlignPartners] then moves partners onto a common generation (the deeper
// of the two) and pushes their descendants down accordingly, repeating until
// nothing moves. [Depths] applies both steps.
//
// # Levels
//
// [GroupByDepth] turns a depth vector into per-generation member lists in
// arena order, which is the iteration order every hint pass relies on.
//
// [errors.CycleError]: github.com/matzehuels/kintree/pkg/errors.CycleError
package transform
