// Package parser reads velvet graph files (Graph, Graph2, LastGraph) into a
// core.Graph with a streaming, row-by-row state machine.
//
// Selective parsing:
//
//	WithSkipReadTracking()        stop before the NR section
//	WithInterestingReadIDs(...)   keep only these reads
//	WithInterestingNodeIDs(...)   keep only reads on these nodes
//	WithPrefilter(ContextFilter{Context: n})
//	                              narrow the NR section grep-style first;
//	                              fails with ErrAmbiguousFilter instead of
//	                              silently dropping a kept read
//
// Files may be plain, gzip or zstd compressed (see Open). ParseFiles parses
// several files concurrently, one Graph per file.
package parser
