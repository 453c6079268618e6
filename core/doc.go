// Package core defines the in-memory model of a velvet assembly graph:
// double-stranded nodes, side-to-side arcs, read tracking records, and the
// Graph that owns them together with its node store and arc index.
//
// Model:
//
//   - A Node stores two "tails": the last base of every k-mer on its forward
//     strand and on its twin strand. With k = Graph.HashLength, a node with a
//     forward tail of length L spells a contig of L + k − 1 bases.
//   - An Arc "a b" joins the END of strand a to the START of strand b, where a
//     negative sign selects the twin strand. The mirror arc −b → −a is implied
//     and never stored.
//   - Every node has a start side and an end side; NeighboursIntoStart and
//     NeighboursOffEnd report which nodes touch each side.
//
// Storage:
//
//	NodeStore   map[id]*Node + lazily rebuilt ascending ID cache
//	ArcIndex    map[(min,max)][]*Arc in insertion order
//	            + map[id][](min,max) for O(deg) touching queries
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(n *Node) error                         // O(1)
//	Node(id int) *Node                             // O(1)
//	DeleteNode(id int) (*Node, []*Arc, error)      // O(deg)
//	DeleteNodesIf(pred) (nodes []*Node, arcs []*Arc)
//
//	// Arc lifecycle
//	AddArc(a *Arc) error                           // endpoints must exist
//	DeleteArc(a *Arc) error
//	ArcsBetween(id1, id2 int) []*Arc               // either file order
//
//	// Topology
//	NeighboursOffEnd(n) / NeighboursIntoStart(n) []*Node
//	OrientedNeighbours(o OrientedNode) []OrientedNode
//
//	// Sequence
//	(*Node).Sequence() / ReverseSequence() / OrientedSequence(side)
//	(*OrientedTrail).Sequence()
//
//	// Maintenance
//	Clone() / CloneEmpty() / Clear() / InducedSubgraph(g, keep)
//
// Errors:
//
//	ErrDuplicateNode        - a node with the same ID is already stored.
//	ErrNodeNotFound         - the referenced node ID is absent.
//	ErrNilNode              - a nil *Node was passed.
//	ErrNilArc               - a nil *Arc was passed.
//	ErrArcNotFound          - the arc instance is not in the index.
//	ErrDanglingArc          - an arc references a node that is not stored.
//	ErrDetachedNode         - the node does not belong to any Graph.
//	ErrBadHashLength        - the graph's hash length is below 1.
//	ErrTailMismatch         - forward and twin tails differ in length.
//	ErrInsufficientContext  - no single neighbour can supply missing bases.
//	ErrZeroLength           - coverage requested for a node with Length 0.
//
// Concurrency:
//
//	A Graph carries no locks. Build it from one goroutine; afterwards any
//	number of goroutines may read it as long as nobody mutates it. Sequence()
//	writes a per-node memo, so concurrent Sequence calls on the same node
//	need external synchronisation.
package core
