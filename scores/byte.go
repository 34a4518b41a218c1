package scores

import "github.com/Akron/blockalign/vecops"

// byteNull is the padding sentinel for ByteMatrix: 0x00 is not
// expected to occur in arbitrary binary input used with this matrix,
// matching the "never produced by real inputs" contract in spec.md
// §6. Callers working with inputs that do contain 0x00 should prefer
// NucleotideMatrix or BLOSUM62, which convert characters through an
// alphabet table first.
const byteNull = 0x00

// ByteMatrix scores raw bytes directly: match if equal, mismatch
// otherwise. It has no notion of an alphabet, so ConvertChar is the
// identity. Grounded on halfsimd_lookup_bytes_i16 (avx2.rs): a
// cmpeq-then-blend between a match-score and mismatch-score broadcast
// vector.
//
// Per spec.md §6, X-drop argmax decoding assumes a bounded, mostly
// positive score range; ByteMatrix does not guarantee this, so
// SupportsXDrop reports false.
type ByteMatrix struct {
	Match    int16
	Mismatch int16
}

var _ Matrix = ByteMatrix{}

func (m ByteMatrix) NullByte() byte        { return byteNull }
func (m ByteMatrix) ConvertChar(b byte) byte { return b }

func (m ByteMatrix) GetScores(refChar byte, queryHalf vecops.HalfVec, right bool) vecops.Vec {
	var ref vecops.HalfVec
	for i := range ref {
		ref[i] = refChar
	}
	return vecops.LookupBytes(m.Match, m.Mismatch, ref, queryHalf)
}

func (m ByteMatrix) SupportsXDrop() bool { return false }
