// Package perm provides rank and permutation helpers over index arenas.
//
// Hint generation keeps horizontal order as plain integer slices indexed by
// arena slot. The helpers here turn arbitrary (possibly fractional, possibly
// tied) working values back into dense ranks without disturbing the relative
// order callers rely on.
//
// # Stable Ranking
//
// [Rank] assigns 1-based ranks to a set of arena members by ascending value.
// Ties are broken by arena index, so ranking is deterministic and repeated
// calls on unchanged input return identical results.
//
// # Ranking Onto a Slot Set
//
// [RankOnto] sorts members by their new values and hands out a previously
// held set of values in that order. It is used to re-rank one group (a
// sibship) inside a larger permutation (a generation) without colliding with
// values held by members outside the group.
package perm
