// Package padded provides a byte source that guarantees safe reads up
// to maxSize positions past its logical length, returning the score
// matrix's converted NullByte() code there instead of panicking or
// allocating per access. The block aligner core relies on this
// contract so its vectorized loads never need a bounds check inside
// the hot loop.
//
// Grounded on fastpfor's Reader (reader.go): a load-once, not
// concurrency-safe wrapper with a loaded flag that Get checks. The
// leading-null-byte layout below is grounded on PaddedBytes in
// original_source/src/scan_block.rs: one sentinel byte is inserted
// before the real data so that DP index 0 always means "before the
// first character" (the empty-prefix column/row), and real character
// k sits at index k+1.
package padded

import (
	"errors"
	"fmt"

	"github.com/Akron/blockalign/scores"
)

// ErrNegativePadding is returned when maxSize is negative.
var ErrNegativePadding = errors.New("padded: maxSize must be >= 0")

// Bytes wraps raw input converted through a scores.Matrix's alphabet,
// with one leading null code (the empty-prefix sentinel) and maxSize
// trailing null codes so DP-index reads up to Len()+maxSize are
// always safe. A Bytes value is not safe for concurrent use; create
// one per goroutine sharing the same underlying raw slice if
// concurrent access is needed.
type Bytes struct {
	codes  []byte // 1 (leading null) + len(raw) + maxSize, converted codes
	length int    // logical length (len(raw)), excluding the leading null
	loaded bool
}

// New converts raw through matrix and wraps it with a leading null
// code plus maxSize trailing null codes, all converted through
// ConvertChar so GetScores never needs to special-case padding.
func New(raw []byte, matrix scores.Matrix, maxSize int) (*Bytes, error) {
	if maxSize < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativePadding, maxSize)
	}

	nullCode := matrix.ConvertChar(matrix.NullByte())

	codes := make([]byte, 1+len(raw)+maxSize)
	codes[0] = nullCode
	for i, b := range raw {
		codes[1+i] = matrix.ConvertChar(b)
	}
	for i := 1 + len(raw); i < len(codes); i++ {
		codes[i] = nullCode
	}

	return &Bytes{codes: codes, length: len(raw), loaded: true}, nil
}

// Len returns the logical (unpadded) length.
func (b *Bytes) Len() int {
	return b.length
}

// IsLoaded reports whether b was constructed via New.
func (b *Bytes) IsLoaded() bool {
	return b.loaded
}

// AtIndex returns the converted code at DP index i, where index 0 is
// the empty-prefix sentinel and index k (1 <= k <= Len()) is the k-th
// real character. i may range up to Len()+maxSize (the padding
// region) without panicking.
func (b *Bytes) AtIndex(i int) byte {
	return b.codes[i]
}

// Window returns a slice of width converted codes starting at DP
// index i. The caller (the block core) guarantees i+width is within
// the padded range.
func (b *Bytes) Window(i, width int) []byte {
	return b.codes[i : i+width]
}

// Get returns the converted code for the (0-based) real character at
// position i and whether i fell within the logical length, mirroring
// the Reader.GetSafe convenience accessor. This indexes real
// characters directly, unlike AtIndex which operates in the
// DP-shifted index space.
func (b *Bytes) Get(i int) (byte, bool) {
	if !b.loaded {
		return 0, false
	}
	if i < 0 || i >= b.length {
		return 0, false
	}
	return b.codes[1+i], true
}
