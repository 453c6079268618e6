// Cycle enumeration over strands. DetectCycles lists every elementary
// circuit with Johnson's algorithm: for each start strand s, in ascending
// order, it searches only strands not smaller than s, blocking strands that
// cannot currently reach s and unblocking them once a circuit through them
// is closed. Each circuit is folded together with its twin and
// canonicalised by minimal rotation (Booth's algorithm) in O(L) time. The
// final cycle list is sorted for deterministic output.
//
// Complexity:
//
//   - Time:   O((V + E)·(C + 1) + C·L)   (V=#strands, E=#oriented steps, C=#circuits, L=avg circuit length)
//   - Memory: O(V + E)
//
// The number of circuits itself can grow exponentially in dense tangles.
package dfs

import (
	"sort"

	"github.com/katalvlaran/velvet/core"
)

// DetectCycles enumerates every elementary strand cycle of g.
// Returns (true, cycles) if any are found, (false, nil) otherwise; a nil
// graph is cycle-free. A cycle and its twin walk are one entry. Each cycle
// is closed: its first strand is repeated at the end.
func DetectCycles(g *core.Graph) (bool, [][]core.Strand) {
	if g == nil {
		return false, nil
	}

	all := strands(g)
	index := make(map[core.Strand]int, len(all))
	for i, s := range all {
		index[s] = i
	}
	adj := make([][]int, len(all))
	for i, s := range all {
		for _, nb := range next(g, s) {
			adj[i] = append(adj[i], index[nb])
		}
	}

	j := &circuitFinder{
		strands:  all,
		adj:      adj,
		blocked:  make([]bool, len(all)),
		blockMap: make([]map[int]struct{}, len(all)),
		seen:     make(map[string]struct{}),
	}
	for start := range all {
		j.start = start
		for v := start; v < len(all); v++ {
			j.blocked[v] = false
			j.blockMap[v] = nil
		}
		j.circuit(start)
	}

	if len(j.cycles) == 0 {
		return false, nil
	}
	sort.Slice(j.cycles, func(a, b int) bool {
		return lessCycle(j.cycles[a], j.cycles[b])
	})

	return true, j.cycles
}

// circuitFinder is the state of one Johnson enumeration. Strands are
// addressed by their index in strands; only indices >= start take part.
type circuitFinder struct {
	strands  []core.Strand
	adj      [][]int
	start    int
	blocked  []bool
	blockMap []map[int]struct{}
	stack    []int
	seen     map[string]struct{}
	cycles   [][]core.Strand
}

// circuit extends the current path with v and reports whether some circuit
// back to start was closed below it.
func (j *circuitFinder) circuit(v int) bool {
	found := false
	j.stack = append(j.stack, v)
	j.blocked[v] = true

	for _, w := range j.adj[v] {
		switch {
		case w < j.start:
		case w == j.start:
			j.record()
			found = true
		case !j.blocked[w]:
			if j.circuit(w) {
				found = true
			}
		}
	}

	if found {
		j.unblock(v)
	} else {
		for _, w := range j.adj[v] {
			if w < j.start {
				continue
			}
			if j.blockMap[w] == nil {
				j.blockMap[w] = make(map[int]struct{})
			}
			j.blockMap[w][v] = struct{}{}
		}
	}

	j.stack = j.stack[:len(j.stack)-1]
	return found
}

// unblock releases u and, transitively, every strand waiting on it.
func (j *circuitFinder) unblock(u int) {
	j.blocked[u] = false
	waiting := j.blockMap[u]
	j.blockMap[u] = nil
	for w := range waiting {
		if j.blocked[w] {
			j.unblock(w)
		}
	}
}

// record keeps the circuit on the stack unless it or its twin was seen.
// Parallel arcs close the same circuit more than once; it is kept once.
func (j *circuitFinder) record() {
	base := make([]core.Strand, len(j.stack))
	for i, v := range j.stack {
		base[i] = j.strands[v]
	}

	sig, closed := canonical(base)
	if _, ok := j.seen[sig]; ok {
		return
	}
	j.seen[sig] = struct{}{}
	j.cycles = append(j.cycles, closed)
}

// canonical picks the smaller of the minimal rotations of base and of its
// twin walk, and closes it.
func canonical(base []core.Strand) (string, []core.Strand) {
	rotF := MinimalRotation(base)
	rotT := MinimalRotation(TwinWalk(base))

	picker := rotF
	if Compare(rotT, rotF) < 0 {
		picker = rotT
	}
	closed := append(append([]core.Strand(nil), picker...), picker[0])

	return JoinSig(closed), closed
}

func lessCycle(a, b []core.Strand) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return Compare(a, b) < 0
}
