package transform

import (
	"github.com/matzehuels/kintree/pkg/errors"
	"github.com/matzehuels/kintree/pkg/pedigree"
)

// Depths assigns generation depths and aligns partners. It is the
// composition of [AssignDepths] and [AlignPartners].
func Depths(p *pedigree.Pedigree) ([]int, error) {
	depth, err := AssignDepths(p)
	if err != nil {
		return nil, err
	}
	if err := AlignPartners(p, depth); err != nil {
		return nil, err
	}
	return depth, nil
}

// AssignDepths returns the generation depth of every individual.
//
// AssignDepths uses a longest-path algorithm via topological sort (Kahn's
// algorithm) over parent→child links, ensuring that:
//   - Individuals without recorded parents are at depth 0
//   - Every child is at one plus the maximum depth of its parents
//
// If the parent links contain a cycle, the individuals on or below the
// cycle never reach zero in-degree; they are reported in a
// *errors.CycleError and no depths are returned.
//
// Time complexity is O(n), as each individual has at most two parents.
func AssignDepths(p *pedigree.Pedigree) ([]int, error) {
	depth, _, err := kahn(p)
	return depth, err
}

// kahn returns depths plus the topological order in which they were fixed.
func kahn(p *pedigree.Pedigree) ([]int, []int, error) {
	n := p.Len()
	inDegree := make([]int, n)
	children := make([][]int, n)
	queue := make([]int, 0, n)

	for i, ind := range p.Individuals {
		for _, parent := range [2]int{ind.Mother, ind.Father} {
			if parent != pedigree.None {
				inDegree[i]++
				children[parent] = append(children[parent], i)
			}
		}
	}
	for i := range n {
		if inDegree[i] == 0 {
			queue = append(queue, i)
		}
	}

	depth := make([]int, n)
	topo := make([]int, 0, n)
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		topo = append(topo, curr)

		for _, child := range children[curr] {
			if d := depth[curr] + 1; d > depth[child] {
				depth[child] = d
			}
			inDegree[child]--
			if inDegree[child] == 0 {
				queue = append(queue, child)
			}
		}
	}

	if len(topo) < n {
		var members []int
		for i := range n {
			if inDegree[i] > 0 {
				members = append(members, i)
			}
		}
		return nil, nil, &errors.CycleError{Members: members}
	}
	return depth, topo, nil
}

// AlignPartners moves both members of every partnership to the deeper of
// their two depths and re-pushes descendants so each child stays below every
// recorded parent. depth is updated in place.
//
// Depths only ever increase. Without a partner link into one's own line of
// descent no depth can exceed n-1, so reaching n proves such a loop and
// yields a *errors.CycleError with Reason "partner alignment".
func AlignPartners(p *pedigree.Pedigree, depth []int) error {
	_, topo, err := kahn(p)
	if err != nil {
		return err
	}
	partners := p.Partners()
	n := p.Len()

	for {
		changed := false
		for _, pair := range partners {
			a, b := pair[0], pair[1]
			d := max(depth[a], depth[b])
			if depth[a] != d || depth[b] != d {
				depth[a], depth[b] = d, d
				changed = true
			}
		}
		for _, i := range topo {
			ind := p.Individuals[i]
			for _, parent := range [2]int{ind.Mother, ind.Father} {
				if parent == pedigree.None {
					continue
				}
				if d := depth[parent] + 1; d > depth[i] {
					depth[i] = d
					changed = true
				}
			}
		}
		if !changed {
			return nil
		}

		var overflow []int
		for i, d := range depth {
			if d >= n {
				overflow = append(overflow, i)
			}
		}
		if len(overflow) > 0 {
			return &errors.CycleError{Members: overflow, Reason: "partner alignment"}
		}
	}
}

// GroupByDepth returns the members of each depth level in arena order.
// The result has max(depth)+1 entries; levels without members are empty.
func GroupByDepth(depth []int) [][]int {
	maxDepth := -1
	for _, d := range depth {
		maxDepth = max(maxDepth, d)
	}
	levels := make([][]int, maxDepth+1)
	for i, d := range depth {
		levels[d] = append(levels[d], i)
	}
	return levels
}
