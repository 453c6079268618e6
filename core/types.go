// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Arc, NodedRead, Graph declarations, sentinel errors, constructor.
// Policy:
//   - Graph exclusively owns every Node and Arc stored in it.
//   - Node keeps a navigational (non-owning) pointer back to its Graph.
//   - No locking: a Graph is built by one goroutine and read afterwards.

package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrDuplicateNode indicates that a node ID is already present.
	ErrDuplicateNode = errors.New("core: duplicate node id")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrNilNode indicates a nil *Node was supplied.
	ErrNilNode = errors.New("core: node is nil")

	// ErrNilArc indicates a nil *Arc was supplied.
	ErrNilArc = errors.New("core: arc is nil")

	// ErrArcNotFound indicates the arc instance is not indexed.
	ErrArcNotFound = errors.New("core: arc not found")

	// ErrDanglingArc indicates an arc endpoint is missing from the node store.
	ErrDanglingArc = errors.New("core: arc references missing node")

	// ErrDetachedNode indicates a node that was never added to a Graph, or was deleted.
	ErrDetachedNode = errors.New("core: node is not attached to a graph")

	// ErrBadHashLength indicates a hash length that cannot describe k-mers.
	ErrBadHashLength = errors.New("core: hash length must be positive")

	// ErrTailMismatch indicates forward and twin tails of different lengths.
	ErrTailMismatch = errors.New("core: forward and reverse tails differ in length")

	// ErrInsufficientContext indicates a short node whose neighbours are too short as well.
	ErrInsufficientContext = errors.New("core: insufficient neighbouring context to resolve sequence")

	// ErrZeroLength indicates coverage is undefined for a zero-length node.
	ErrZeroLength = errors.New("core: node length is zero")
)

// Node is one double-stranded contig fragment.
//
// The forward tail holds the last bases of each k-mer of the forward strand
// (the "ends of k-mers of node"); the reverse tail holds the same for the twin
// strand. Both have length contig length − hash length + 1.
type Node struct {
	// ID is the velvet node identifier, positive and unique in its Graph.
	ID int

	// Length is the contig length field of the NODE row.
	Length int

	// Coverages holds (coverage, observed coverage) pairs per read category.
	Coverages []int

	// ShortReadCount accumulates the counts of every NR block for this node.
	ShortReadCount int

	// ShortReads lists the tracked reads kept for this node.
	ShortReads []NodedRead

	forwardTail string
	reverseTail string

	graph *Graph // navigational, not owning

	memo sequenceMemo
}

// Arc joins the end of strand From to the start of strand To.
//
// A strand is the forward strand when the matching *Forward flag is true and
// the twin strand otherwise. The same record implicitly describes the mirror
// arc from the twin of To to the twin of From, which is never stored.
type Arc struct {
	FromID      int
	ToID        int
	FromForward bool
	ToForward   bool

	// Multiplicity is the supporting read count, stored as parsed.
	Multiplicity int
}

// NodedRead is one tracked read placed on a node.
type NodedRead struct {
	ReadID          int
	OffsetFromStart int
	StartCoord      int

	// Direction is true when the read lies on the node's forward strand.
	Direction bool
}

// Graph is a velvet assembly graph.
//
// NodeCount, SequenceCount and HashLength come from the header line.
// HashLength (k) sets the k−1 overlap between adjacent node sequences.
type Graph struct {
	NodeCount     int
	SequenceCount int
	HashLength    int

	nodes *NodeStore
	arcs  *ArcIndex

	// tailVersion counts tail rewrites of attached nodes.
	tailVersion uint64
}

// NewGraph creates an empty Graph with the given header values.
// Complexity: O(1)
func NewGraph(nodeCount, sequenceCount, hashLength int) *Graph {
	return &Graph{
		NodeCount:     nodeCount,
		SequenceCount: sequenceCount,
		HashLength:    hashLength,
		nodes:         NewNodeStore(),
		arcs:          NewArcIndex(),
	}
}

// epoch changes whenever nodes, arcs, or tails of attached nodes change.
// Each component only ever increments, so the sum strictly grows.
func (g *Graph) epoch() uint64 {
	return g.nodes.version + g.arcs.version + g.tailVersion
}
