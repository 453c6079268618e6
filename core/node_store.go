// SPDX-License-Identifier: MIT
//
// File: node_store.go
// Role: Sparse node catalog keyed by the file's native node ID.
// Determinism:
//   - Each() and IDs() enumerate in ascending ID order.

package core

import "sort"

// NodeStore maps positive node IDs to nodes. IDs may have holes; there is
// no 0- or 1-based array behind it.
type NodeStore struct {
	byID map[int]*Node

	// sorted caches the ascending ID list; nil when stale.
	sorted []int

	version uint64
}

// NewNodeStore returns an empty store.
func NewNodeStore() *NodeStore {
	return &NodeStore{byID: make(map[int]*Node)}
}

// Insert stores n under id.
//
// Errors:
//   - ErrNilNode: n == nil.
//   - ErrDuplicateNode: id already occupied.
//
// Complexity: O(1) amortized.
func (s *NodeStore) Insert(id int, n *Node) error {
	if n == nil {
		return ErrNilNode
	}
	if _, exists := s.byID[id]; exists {
		return ErrDuplicateNode
	}
	s.byID[id] = n
	s.sorted = nil
	s.version++

	return nil
}

// Get returns the node stored under id, or nil.
func (s *NodeStore) Get(id int) *Node {
	return s.byID[id]
}

// Has reports whether id is occupied.
func (s *NodeStore) Has(id int) bool {
	_, ok := s.byID[id]
	return ok
}

// Delete removes and returns the node stored under id (nil if absent).
func (s *NodeStore) Delete(id int) *Node {
	n, ok := s.byID[id]
	if !ok {
		return nil
	}
	delete(s.byID, id)
	s.sorted = nil
	s.version++

	return n
}

// Len returns the number of stored nodes.
func (s *NodeStore) Len() int { return len(s.byID) }

// IDs returns a fresh ascending slice of the stored IDs.
// Complexity: O(V log V) after a mutation, O(V) otherwise.
func (s *NodeStore) IDs() []int {
	ids := s.ascending()
	out := make([]int, len(ids))
	copy(out, ids)

	return out
}

// Each calls fn for every node in ascending ID order until fn returns false.
// fn must not insert or delete nodes.
func (s *NodeStore) Each(fn func(n *Node) bool) {
	for _, id := range s.ascending() {
		if !fn(s.byID[id]) {
			return
		}
	}
}

func (s *NodeStore) ascending() []int {
	if s.sorted == nil {
		s.sorted = make([]int, 0, len(s.byID))
		for id := range s.byID {
			s.sorted = append(s.sorted, id)
		}
		sort.Ints(s.sorted)
	}

	return s.sorted
}
