// Helpers shared by DFS, cycle detection and topological sort: strand slice
// operations and Booth's minimal-rotation algorithm.
package dfs

import (
	"strings"

	"github.com/katalvlaran/velvet/core"
)

// IndexOf returns the first index of val in s, or -1 if not found.
func IndexOf(s []core.Strand, val core.Strand) int {
	for i, x := range s {
		if x == val {
			return i
		}
	}

	return -1
}

// TwinWalk returns the walk along the other strands: s reversed, every
// strand replaced by its twin.
func TwinWalk(s []core.Strand) []core.Strand {
	out := make([]core.Strand, len(s))
	for i := range s {
		out[i] = s[len(s)-1-i].Twin()
	}

	return out
}

// Compare lexicographically compares two equal-length strand slices.
// Returns -1 if a < b, 0 if equal, +1 if a > b.
func Compare(a, b []core.Strand) int {
	for i := range a {
		if a[i].Less(b[i]) {
			return -1
		} else if b[i].Less(a[i]) {
			return 1
		}
	}

	return 0
}

// JoinSig concatenates the strands of c with commas.
func JoinSig(c []core.Strand) string {
	parts := make([]string, len(c))
	for i, s := range c {
		parts[i] = s.String()
	}
	return strings.Join(parts, ",")
}

// MinimalRotation implements Booth's algorithm to find the lexicographically
// minimal rotation of s in O(n) time. s is not modified.
func MinimalRotation(s []core.Strand) []core.Strand {
	n := len(s)
	doubled := make([]core.Strand, 0, 2*n)
	doubled = append(append(doubled, s...), s...)
	f := make([]int, 2*n) // failure links
	for i := range f {
		f[i] = -1
	}
	k := 0 // start of the least rotation found so far
	for j := 1; j < 2*n; j++ {
		i := f[j-k-1]
		for i != -1 && doubled[j] != doubled[k+i+1] {
			if doubled[j].Less(doubled[k+i+1]) {
				k = j - i - 1
			}
			i = f[i]
		}
		if doubled[j] != doubled[k+i+1] { // i == -1
			if doubled[j].Less(doubled[k]) {
				k = j
			}
			f[j-k] = -1
		} else {
			f[j-k] = i + 1
		}
	}

	res := make([]core.Strand, n)
	copy(res, doubled[k:k+n])

	return res
}
