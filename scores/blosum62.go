package scores

import "github.com/Akron/blockalign/vecops"

// blosumAlphabet is the standard NCBI BLOSUM62 row/column order.
const blosumAlphabet = "ARNDCQEGHILKMFPSTWYVBZX*"

// blosumNullByte is the padding sentinel; it is never a valid amino
// acid letter.
const blosumNullByte = 0x00

// blosum62Raw is the standard published BLOSUM62 substitution matrix,
// in blosumAlphabet order. Used the way original_source/examples/
// block_img.rs and profile.rs consume AAMatrix/BLOSUM62: one score row
// per reference residue, widened against a query window.
var blosum62Raw = [24][24]int16{
	/* A */ {4, -1, -2, -2, 0, -1, -1, 0, -2, -1, -1, -1, -1, -2, -1, 1, 0, -3, -2, 0, -2, -1, 0, -4},
	/* R */ {-1, 5, 0, -2, -3, 1, 0, -2, 0, -3, -2, 2, -1, -3, -2, -1, -1, -3, -2, -3, -1, 0, -1, -4},
	/* N */ {-2, 0, 6, 1, -3, 0, 0, 0, 1, -3, -3, 0, -2, -3, -2, 1, 0, -4, -2, -3, 3, 0, -1, -4},
	/* D */ {-2, -2, 1, 6, -3, 0, 2, -1, -1, -3, -4, -1, -3, -3, -1, 0, -1, -4, -3, -3, 4, 1, -1, -4},
	/* C */ {0, -3, -3, -3, 9, -3, -4, -3, -3, -1, -1, -3, -1, -2, -3, -1, -1, -2, -2, -1, -3, -3, -2, -4},
	/* Q */ {-1, 1, 0, 0, -3, 5, 2, -2, 0, -3, -2, 1, 0, -3, -1, 0, -1, -2, -1, -2, 0, 3, -1, -4},
	/* E */ {-1, 0, 0, 2, -4, 2, 5, -2, 0, -3, -3, 1, -2, -3, -1, 0, -1, -3, -2, -2, 1, 4, -1, -4},
	/* G */ {0, -2, 0, -1, -3, -2, -2, 6, -2, -4, -4, -2, -3, -3, -2, 0, -2, -2, -3, -3, -1, -2, -1, -4},
	/* H */ {-2, 0, 1, -1, -3, 0, 0, -2, 8, -3, -3, -1, -2, -1, -2, -1, -2, -2, 2, -3, 0, 0, -1, -4},
	/* I */ {-1, -3, -3, -3, -1, -3, -3, -4, -3, 4, 2, -3, 1, 0, -3, -2, -1, -3, -1, 3, -3, -3, -1, -4},
	/* L */ {-1, -2, -3, -4, -1, -2, -3, -4, -3, 2, 4, -2, 2, 0, -3, -2, -1, -2, -1, 1, -4, -3, -1, -4},
	/* K */ {-1, 2, 0, -1, -3, 1, 1, -2, -1, -3, -2, 5, -1, -3, -1, 0, -1, -3, -2, -2, 0, 1, -1, -4},
	/* M */ {-1, -1, -2, -3, -1, 0, -2, -3, -2, 1, 2, -1, 5, 0, -2, -1, -1, -1, -1, 1, -3, -1, -1, -4},
	/* F */ {-2, -3, -3, -3, -2, -3, -3, -3, -1, 0, 0, -3, 0, 6, -4, -2, -2, 1, 3, -1, -3, -3, -1, -4},
	/* P */ {-1, -2, -2, -1, -3, -1, -1, -2, -2, -3, -3, -1, -2, -4, 7, -1, -1, -4, -3, -2, -2, -1, -2, -4},
	/* S */ {1, -1, 1, 0, -1, 0, 0, 0, -1, -2, -2, 0, -1, -2, -1, 4, 1, -3, -2, -2, 0, 0, 0, -4},
	/* T */ {0, -1, 0, -1, -1, -1, -1, -2, -2, -1, -1, -1, -1, -2, -1, 1, 5, -2, -2, 0, -1, -1, 0, -4},
	/* W */ {-3, -3, -4, -4, -2, -2, -3, -2, -2, -3, -2, -3, -1, 1, -4, -3, -2, 11, 2, -3, -4, -3, -2, -4},
	/* Y */ {-2, -2, -2, -3, -2, -1, -2, -3, 2, -1, -1, -2, -1, 3, -3, -2, -2, 2, 7, -1, -3, -2, -1, -4},
	/* V */ {0, -3, -3, -3, -1, -2, -2, -3, -3, 3, 1, -2, 1, -1, -2, -2, 0, -3, -1, 4, -3, -2, -1, -4},
	/* B */ {-2, -1, 3, 4, -3, 0, 1, -1, 0, -3, -4, 0, -3, -3, -2, 0, -1, -4, -3, -3, 4, 1, -1, -4},
	/* Z */ {-1, 0, 0, 1, -3, 3, 4, -2, 0, -3, -3, 1, -1, -3, -1, 0, -1, -3, -2, -2, 1, 4, -1, -4},
	/* X */ {0, -1, -1, -1, -2, -1, -1, -1, -1, -1, -1, -1, -1, -1, -2, 0, 0, -2, -1, -1, -1, -1, -1, -4},
	/* * */ {-4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, 1},
}

// BLOSUM62 is the standard amino acid substitution matrix, resolved
// through a 256-entry character table so lowercase and unrecognized
// residues fall back to 'X' (fully ambiguous) rather than panicking.
type BLOSUM62 struct {
	charToCode [256]byte
	rows       [][]int16
}

var _ Matrix = (*BLOSUM62)(nil)

// NewBLOSUM62 builds the standard BLOSUM62 scorer.
func NewBLOSUM62() *BLOSUM62 {
	m := &BLOSUM62{}

	xCode := byte(indexOf(blosumAlphabet, 'X'))
	for i := range m.charToCode {
		m.charToCode[i] = xCode
	}
	for i := 0; i < len(blosumAlphabet); i++ {
		c := blosumAlphabet[i]
		m.charToCode[c] = byte(i)
		if c >= 'A' && c <= 'Z' {
			m.charToCode[c+('a'-'A')] = byte(i)
		}
	}

	m.rows = make([][]int16, len(blosumAlphabet))
	for i := range blosum62Raw {
		row := make([]int16, len(blosumAlphabet))
		copy(row, blosum62Raw[i][:])
		m.rows[i] = row
	}
	return m
}

func indexOf(s string, c byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			return i
		}
	}
	return -1
}

func (m *BLOSUM62) NullByte() byte { return blosumNullByte }

func (m *BLOSUM62) ConvertChar(b byte) byte { return m.charToCode[b] }

func (m *BLOSUM62) GetScores(refChar byte, queryHalf vecops.HalfVec, right bool) vecops.Vec {
	return vecops.LookupRows(m.rows[refChar], queryHalf)
}

func (m *BLOSUM62) SupportsXDrop() bool { return true }
