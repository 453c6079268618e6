// SPDX-License-Identifier: MIT

package seqcodec

// complement maps each base byte to its partner; zero entries are unknown.
var complement [256]byte

func init() {
	pairs := []struct{ a, b byte }{
		{'A', 'T'}, {'C', 'G'},
		{'R', 'Y'}, {'K', 'M'},
		{'B', 'V'}, {'D', 'H'},
		{'S', 'S'}, {'W', 'W'}, {'N', 'N'},
	}
	for _, p := range pairs {
		complement[p.a], complement[p.b] = p.b, p.a
		// lower-case input complements to upper case
		complement[p.a|0x20], complement[p.b|0x20] = p.b, p.a
	}
}

// Complement returns the partner of a single base, or 'N' when b is unknown.
func Complement(b byte) byte {
	if c := complement[b]; c != 0 {
		return c
	}
	return 'N'
}

// ReverseComplement returns the twin strand of seq, always in upper case.
//
// The empty string maps to the empty string.
func ReverseComplement(seq string) string {
	n := len(seq)
	if n == 0 {
		return ""
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = Complement(seq[n-1-i])
	}

	return string(out)
}

// IsCanonical reports whether seq consists solely of upper-case A, C, G, T.
// Only such strings are guaranteed to survive a double reverse complement.
func IsCanonical(seq string) bool {
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'A', 'C', 'G', 'T':
		default:
			return false
		}
	}
	return true
}
