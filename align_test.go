package blockalign_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akron/blockalign"
	"github.com/Akron/blockalign/padded"
	"github.com/Akron/blockalign/scores"
)

// mustPad wraps raw through matrix with blockSize of padding, the
// minimum any placeBlock call inside Align could read past the
// logical end of the string.
func mustPad(t *testing.T, raw string, matrix scores.Matrix, blockSize int) *padded.Bytes {
	t.Helper()
	b, err := padded.New([]byte(raw), matrix, blockSize)
	require.NoError(t, err)
	return b
}

func TestAlignBLOSUM62Scenarios(t *testing.T) {
	matrix := scores.NewBLOSUM62()
	gaps := blockalign.Gaps{Open: -11, Extend: -1}
	const size = 16

	cases := []struct {
		name          string
		query, refseq string
		wantScore     int32
		wantCigar     string
	}{
		{"query_has_extra_mismatch", "AARA", "AAAA", 11, "4M"},
		{"query_shorter_by_one", "AAA", "AAAA", 1, "3M1D"},
		{"all_mismatch_forward", "AAAA", "RRRR", -4, ""},
		{"all_mismatch_reverse", "RRRR", "AAAA", -4, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := mustPad(t, tc.query, matrix, size)
			r := mustPad(t, tc.refseq, matrix, size)

			a := blockalign.Align(q, r, matrix, gaps, size, size, 0, true, false)
			res := a.Res()

			assert.Equal(t, tc.wantScore, res.Score)
			if tc.wantCigar != "" {
				cig := a.Trace().Cigar(res.QueryIdx, res.ReferenceIdx)
				assert.Equal(t, tc.wantCigar, cig.String())
			}
		})
	}
}

func TestAlignNW1Scenario(t *testing.T) {
	matrix := scores.NewNucleotideMatrix(1, -1, -1)
	gaps := blockalign.Gaps{Open: -2, Extend: -1}
	const size = 16

	query := "TTTTTTTTAAAAAAATTTTTTTTT"
	refseq := "TTAAAAAAATTTTTTTTTTTT"

	q := mustPad(t, query, matrix, size)
	r := mustPad(t, refseq, matrix, size)

	a := blockalign.Align(q, r, matrix, gaps, size, size, 0, true, false)
	res := a.Res()

	assert.Equal(t, int32(7), res.Score)
	cig := a.Trace().Cigar(res.QueryIdx, res.ReferenceIdx)
	assert.Equal(t, "2M6I16M3D", cig.String())
}

func TestAlignXDropScenario(t *testing.T) {
	matrix := scores.NewBLOSUM62()
	gaps := blockalign.Gaps{Open: -11, Extend: -1}
	const size = 16

	q := mustPad(t, "AAAAAA", matrix, size)
	r := mustPad(t, "AAARRA", matrix, size)

	a := blockalign.Align(q, r, matrix, gaps, size, size, 1, true, true)
	res := a.Res()

	assert.Equal(t, int32(14), res.Score)
	assert.Equal(t, 6, res.QueryIdx)
	assert.Equal(t, 6, res.ReferenceIdx)
}

func TestAlignPanicsOnBadGaps(t *testing.T) {
	matrix := scores.NewBLOSUM62()
	q := mustPad(t, "AAAA", matrix, 16)
	r := mustPad(t, "AAAA", matrix, 16)

	assert.Panics(t, func() {
		blockalign.Align(q, r, matrix, blockalign.Gaps{Open: -1, Extend: -2}, 16, 16, 0, false, false)
	})
	assert.Panics(t, func() {
		blockalign.Align(q, r, matrix, blockalign.Gaps{Open: 1, Extend: -2}, 16, 16, 0, false, false)
	})
}

func TestAlignPanicsOnXDropWithByteMatrix(t *testing.T) {
	matrix := scores.ByteMatrix{Match: 1, Mismatch: -1}
	q, err := padded.New([]byte("AAAA"), matrix, 16)
	require.NoError(t, err)
	r, err := padded.New([]byte("AAAA"), matrix, 16)
	require.NoError(t, err)

	assert.Panics(t, func() {
		blockalign.Align(q, r, matrix, blockalign.Gaps{Open: -2, Extend: -1}, 16, 16, 1, false, true)
	})
}

func TestAlignTraceWithoutRequestPanics(t *testing.T) {
	matrix := scores.NewBLOSUM62()
	q := mustPad(t, "AAAA", matrix, 16)
	r := mustPad(t, "AAAA", matrix, 16)

	a := blockalign.Align(q, r, matrix, blockalign.Gaps{Open: -11, Extend: -1}, 16, 16, 0, false, false)
	assert.Panics(t, func() {
		a.Trace()
	})
}
