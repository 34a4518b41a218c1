package padded

import (
	"testing"

	"github.com/Akron/blockalign/scores"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsNegativePadding(t *testing.T) {
	m := scores.ByteMatrix{Match: 1, Mismatch: -1}
	_, err := New([]byte("ACGT"), m, -1)
	assert.ErrorIs(t, err, ErrNegativePadding)
}

func TestLeadingSentinelAndWindow(t *testing.T) {
	m := scores.ByteMatrix{Match: 1, Mismatch: -1}
	b, err := New([]byte("ACGT"), m, 4)
	require.NoError(t, err)

	assert.Equal(t, 4, b.Len())
	// index 0 is the empty-prefix sentinel, real chars start at 1
	assert.Equal(t, m.NullByte(), b.AtIndex(0))
	assert.Equal(t, byte('A'), b.AtIndex(1))
	assert.Equal(t, byte('T'), b.AtIndex(4))

	w := b.Window(3, 4)
	assert.Equal(t, []byte("GT"), w[:2])
	assert.Equal(t, m.NullByte(), w[2])
	assert.Equal(t, m.NullByte(), w[3])
}

func TestGetReportsLogicalBounds(t *testing.T) {
	m := scores.ByteMatrix{Match: 1, Mismatch: -1}
	b, err := New([]byte("AC"), m, 3)
	require.NoError(t, err)

	v, ok := b.Get(1)
	assert.True(t, ok)
	assert.Equal(t, byte('C'), v)

	_, ok = b.Get(2)
	assert.False(t, ok)

	_, ok = b.Get(-1)
	assert.False(t, ok)
}

func TestNewConvertsThroughMatrixAlphabet(t *testing.T) {
	m := scores.NewNucleotideMatrix(1, -1, -1)
	b, err := New([]byte("ACGTN"), m, 2)
	require.NoError(t, err)

	assert.Equal(t, m.ConvertChar(m.NullByte()), b.AtIndex(0))
	assert.Equal(t, m.ConvertChar('A'), b.AtIndex(1))
	assert.Equal(t, m.ConvertChar('N'), b.AtIndex(5))
	// trailing padding past the logical length is also the converted null
	assert.Equal(t, m.ConvertChar(m.NullByte()), b.AtIndex(6))
	assert.Equal(t, m.ConvertChar(m.NullByte()), b.AtIndex(7))
}
