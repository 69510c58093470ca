// core/seq/rc.go
package seq

import "fmt"

// InvalidSequenceCharacterError reports a character with no defined IUPAC
// complement. Pos is the 0-based index of the character in the input.
type InvalidSequenceCharacterError struct {
	Char byte
	Pos  int
}

func (e *InvalidSequenceCharacterError) Error() string {
	return fmt.Sprintf("invalid sequence character %q at position %d", e.Char, e.Pos)
}

// complement maps IUPAC nucleotide codes to their complements, upper and
// lower case kept separate so case survives the round trip. Zero means the
// byte has no defined complement.
var complement [256]byte

func init() {
	pairs := [][2]byte{
		{'A', 'T'}, {'C', 'G'}, {'G', 'C'}, {'T', 'A'}, {'U', 'A'},
		{'R', 'Y'}, {'Y', 'R'}, {'S', 'S'}, {'W', 'W'},
		{'K', 'M'}, {'M', 'K'}, {'B', 'V'}, {'V', 'B'},
		{'D', 'H'}, {'H', 'D'}, {'N', 'N'},
	}
	for _, p := range pairs {
		complement[p[0]] = p[1]
		complement[p[0]+'a'-'A'] = p[1] + 'a' - 'A'
	}
}

// RevComp returns the reverse complement of s, preserving case. Any byte
// without a defined complement fails the whole call: a guessed or passed
// through character would make the mapping non-reversible and corrupt
// duplicate detection downstream.
func RevComp(s string) (string, error) {
	n := len(s)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		c := complement[s[i]]
		if c == 0 {
			return "", &InvalidSequenceCharacterError{Char: s[i], Pos: i}
		}
		out[n-1-i] = c
	}
	return string(out), nil
}
