package perm

import (
	"cmp"
	"slices"
)

// Rank returns the 1-based rank of each member by ascending key(member).
// The result is parallel to members. Ties are broken by the member value
// itself (the arena index), which makes the ranking stable.
func Rank[T cmp.Ordered](members []int, key func(int) T) []int {
	sorted := slices.Clone(members)
	slices.SortStableFunc(sorted, func(a, b int) int {
		if c := cmp.Compare(key(a), key(b)); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})

	pos := make(map[int]int, len(sorted))
	for r, m := range sorted {
		pos[m] = r + 1
	}
	ranks := make([]int, len(members))
	for i, m := range members {
		ranks[i] = pos[m]
	}
	return ranks
}

// RankOnto reorders members by ascending key (ties by arena index) and
// returns the assignment member -> value that hands out the sorted slots in
// that order. slots must have the same length as members; it is not modified.
func RankOnto[T cmp.Ordered](members []int, key func(int) T, slots []int) map[int]int {
	held := slices.Clone(slots)
	slices.Sort(held)

	ranks := Rank(members, key)
	out := make(map[int]int, len(members))
	for i, m := range members {
		out[m] = held[ranks[i]-1]
	}
	return out
}

// IsDense reports whether values is a permutation of 1..len(values).
func IsDense(values []int) bool {
	seen := make([]bool, len(values)+1)
	for _, v := range values {
		if v < 1 || v > len(values) || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}
