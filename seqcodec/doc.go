// SPDX-License-Identifier: MIT

// Package seqcodec holds the nucleotide string primitives shared by the
// graph model and the parsers.
//
// ReverseComplement maps a strand to its twin: the string is reversed and every
// base replaced by its Watson–Crick partner. IUPAC ambiguity codes map to their
// complementary codes, the output is always upper case, and any byte outside the
// alphabet becomes 'N'. Velvet writes upper-case ACGT only, so for graph data the
// transform is an involution: ReverseComplement(ReverseComplement(s)) == s.
//
// Complexity:
//
//   - Time O(n), Space O(n); one allocation per call.
package seqcodec
