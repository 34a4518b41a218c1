// Package scores provides the score-matrix capability consumed by the
// block aligner core: given one reference character and a window of
// query characters, produce the per-lane substitution score vector
// the core's placeBlock recurrence adds into the diagonal term.
//
// This package is an external collaborator in the sense of spec.md
// §1/§6 — the core only depends on the narrow Matrix interface below,
// never on a concrete table — but concrete tables are provided here
// because the public end-to-end scenarios (spec.md §8) exercise them
// directly, the same way original_source/examples/block_img.rs and
// profile.rs import AAMatrix/BLOSUM62 from the sibling scores module.
package scores

import "github.com/Akron/blockalign/vecops"

// Matrix is the score-lookup capability the aligner core requires.
type Matrix interface {
	// NullByte is a byte value never produced by real input, used as
	// out-of-bounds padding by the padded byte source.
	NullByte() byte

	// ConvertChar maps a raw input byte to the matrix's internal code.
	ConvertChar(b byte) byte

	// GetScores returns the substitution score for refChar against
	// each of the L query characters in queryHalf, lane l scoring
	// queryHalf[l]. right is true when the block is being extended
	// rightward and false when the caller has swapped the roles of
	// query and reference for a downward extension. The matrices in
	// this package are symmetric and ignore right.
	GetScores(refChar byte, queryHalf vecops.HalfVec, right bool) vecops.Vec

	// SupportsXDrop reports whether this matrix's score range is
	// compatible with X-drop argmax decoding (spec.md §6
	// precondition: X-drop is incompatible with pure-byte matrices).
	SupportsXDrop() bool
}
