// SPDX-License-Identifier: MIT
//
// File: arc_index.go
// Role: Arc catalog indexed by unordered node pair and by single node.
// Invariants:
//   - Every pair bucket is non-empty.
//   - byNode[id] lists each touching pair key exactly once, in first-insert order.
//   - No byNode entry is empty.
// Determinism:
//   - Between/Touching follow insertion order; Each follows ascending pair keys.

package core

import "sort"

// pairKey is the unordered endpoint pair {lo, hi} of an arc.
type pairKey struct {
	lo, hi int
}

func keyOf(a *Arc) pairKey {
	return keyFor(a.FromID, a.ToID)
}

func keyFor(id1, id2 int) pairKey {
	if id1 > id2 {
		id1, id2 = id2, id1
	}
	return pairKey{lo: id1, hi: id2}
}

// ArcIndex stores arcs so that both "arcs between A and B" and "arcs
// touching A" are answered without scanning the whole catalog.
type ArcIndex struct {
	byPair map[pairKey][]*Arc
	byNode map[int][]pairKey
	count  int

	version uint64
}

// NewArcIndex returns an empty index.
func NewArcIndex() *ArcIndex {
	return &ArcIndex{
		byPair: make(map[pairKey][]*Arc),
		byNode: make(map[int][]pairKey),
	}
}

// Insert appends a to its pair bucket. Parallel arcs between the same pair
// are kept as distinct records. A self-loop registers its key once.
//
// Errors:
//   - ErrNilArc: a == nil.
//
// Complexity: O(1) amortized, plus O(deg) when a new pair key is linked.
func (x *ArcIndex) Insert(a *Arc) error {
	if a == nil {
		return ErrNilArc
	}
	k := keyOf(a)
	bucket, seen := x.byPair[k]
	x.byPair[k] = append(bucket, a)
	if !seen {
		x.byNode[k.lo] = append(x.byNode[k.lo], k)
		if k.hi != k.lo {
			x.byNode[k.hi] = append(x.byNode[k.hi], k)
		}
	}
	x.count++
	x.version++

	return nil
}

// Between returns the arcs joining id1 and id2 in either file order.
// The result is a fresh slice; it is empty (not nil) when none exist.
// Complexity: O(bucket)
func (x *ArcIndex) Between(id1, id2 int) []*Arc {
	bucket := x.byPair[keyFor(id1, id2)]
	out := make([]*Arc, len(bucket))
	copy(out, bucket)

	return out
}

// Touching returns every arc with id as an endpoint, each exactly once.
// Order: pair keys in first-insert order, then bucket order.
// Complexity: O(deg(id))
func (x *ArcIndex) Touching(id int) []*Arc {
	keys := x.byNode[id]
	out := make([]*Arc, 0, len(keys))
	for _, k := range keys {
		out = append(out, x.byPair[k]...)
	}

	return out
}

// Delete removes the given arc instance (pointer identity). When its bucket
// empties, the pair key is unlinked from both endpoints and from the primary map.
//
// Errors:
//   - ErrNilArc: a == nil.
//   - ErrArcNotFound: the instance is not indexed.
//
// Complexity: O(bucket + deg(lo) + deg(hi))
func (x *ArcIndex) Delete(a *Arc) error {
	if a == nil {
		return ErrNilArc
	}
	k := keyOf(a)
	bucket := x.byPair[k]
	pos := -1
	for i, b := range bucket {
		if b == a {
			pos = i
			break
		}
	}
	if pos < 0 {
		return ErrArcNotFound
	}

	bucket = append(bucket[:pos:pos], bucket[pos+1:]...)
	x.count--
	x.version++
	if len(bucket) > 0 {
		x.byPair[k] = bucket
		return nil
	}

	delete(x.byPair, k)
	x.unlink(k.lo, k)
	if k.hi != k.lo {
		x.unlink(k.hi, k)
	}

	return nil
}

func (x *ArcIndex) unlink(id int, k pairKey) {
	keys := x.byNode[id]
	for i, kk := range keys {
		if kk == k {
			keys = append(keys[:i:i], keys[i+1:]...)
			break
		}
	}
	if len(keys) == 0 {
		delete(x.byNode, id)
		return
	}
	x.byNode[id] = keys
}

// Has reports whether this exact arc instance is indexed.
func (x *ArcIndex) Has(a *Arc) bool {
	if a == nil {
		return false
	}
	for _, b := range x.byPair[keyOf(a)] {
		if b == a {
			return true
		}
	}
	return false
}

// Len counts arc records, not pair buckets.
func (x *ArcIndex) Len() int { return x.count }

// Each calls fn for every arc, pair keys ascending, until fn returns false.
// fn must not mutate the index.
func (x *ArcIndex) Each(fn func(a *Arc) bool) {
	keys := make([]pairKey, 0, len(x.byPair))
	for k := range x.byPair {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].lo != keys[j].lo {
			return keys[i].lo < keys[j].lo
		}
		return keys[i].hi < keys[j].hi
	})
	for _, k := range keys {
		for _, a := range x.byPair[k] {
			if !fn(a) {
				return
			}
		}
	}
}
