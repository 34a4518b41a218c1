package scores

import "github.com/Akron/blockalign/vecops"

const (
	nucAlphabet  = "ACGTN"
	nucNullCode  = byte(len(nucAlphabet)) // one past the real alphabet
	nucNullByte  = 0x00
)

// NucleotideMatrix is a simple match/mismatch scorer over {A,C,G,T}
// plus an ambiguous "N" code, the shape used by the NW1 scenario in
// spec.md §8 (match=1, mismatch=-1). Grounded on
// halfsimd_lookup1_i16's LUT-row lookup (avx2.rs): each reference
// character selects one precomputed row, and the query window is
// widened against that row.
type NucleotideMatrix struct {
	Match, Mismatch, Ambiguous int16

	charToCode [256]byte
	rows       [][]int16 // len(nucAlphabet)+1 rows, each len(nucAlphabet)+1 wide
}

var _ Matrix = (*NucleotideMatrix)(nil)

// NewNucleotideMatrix builds a NucleotideMatrix from the given match,
// mismatch and ambiguous-base scores. Ambiguous applies whenever
// either side is 'N' or an unrecognized character.
func NewNucleotideMatrix(match, mismatch, ambiguous int16) *NucleotideMatrix {
	m := &NucleotideMatrix{Match: match, Mismatch: mismatch, Ambiguous: ambiguous}

	for i := range m.charToCode {
		m.charToCode[i] = nucNullCode - 1 // default to 'N'
	}
	for i := 0; i < len(nucAlphabet); i++ {
		c := nucAlphabet[i]
		m.charToCode[c] = byte(i)
		if c != 'N' {
			m.charToCode[c+('a'-'A')] = byte(i)
		}
	}

	n := int(nucNullCode) + 1
	m.rows = make([][]int16, n)
	for r := 0; r < n; r++ {
		row := make([]int16, n)
		for c := 0; c < n; c++ {
			switch {
			case r == int(nucNullCode) || c == int(nucNullCode):
				row[c] = 0
			case r == len(nucAlphabet)-1 || c == len(nucAlphabet)-1: // 'N' row/col
				row[c] = ambiguous
			case r == c:
				row[c] = match
			default:
				row[c] = mismatch
			}
		}
		m.rows[r] = row
	}
	return m
}

func (m *NucleotideMatrix) NullByte() byte { return nucNullByte }

func (m *NucleotideMatrix) ConvertChar(b byte) byte { return m.charToCode[b] }

func (m *NucleotideMatrix) GetScores(refChar byte, queryHalf vecops.HalfVec, right bool) vecops.Vec {
	row := m.rows[refChar]
	return vecops.LookupRows(row, queryHalf)
}

func (m *NucleotideMatrix) SupportsXDrop() bool { return true }
