// Package sequences reads the read sequence files written by velveth:
// the FASTA-like Sequences file and the CnyUnifiedSeq.names index.
//
// Both files name each read as
//
//	>name<TAB>readID<TAB>category
//
// where readID is the numeric ID used by the NR blocks of a LastGraph.
// Parse maps read IDs to sequences, optionally only for interesting reads
// and optionally behind a parser.Prefilter so that huge files are scanned
// without assembling every record.
package sequences
