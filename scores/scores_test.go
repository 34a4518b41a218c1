package scores

import (
	"testing"

	"github.com/Akron/blockalign/vecops"
	"github.com/stretchr/testify/assert"
)

func TestByteMatrixMatchMismatch(t *testing.T) {
	m := ByteMatrix{Match: 2, Mismatch: -3}

	var q vecops.HalfVec
	for i := range q {
		if i%2 == 0 {
			q[i] = 'A'
		} else {
			q[i] = 'C'
		}
	}

	got := m.GetScores('A', q, true)
	for i := range got {
		if i%2 == 0 {
			assert.EqualValues(t, 2, got[i])
		} else {
			assert.EqualValues(t, -3, got[i])
		}
	}
	assert.False(t, m.SupportsXDrop())
	assert.Equal(t, byte('A'), m.ConvertChar('A'))
}

func TestNucleotideMatrixScenarioNW1(t *testing.T) {
	m := NewNucleotideMatrix(1, -1, -1)

	a := m.ConvertChar('A')
	tC := m.ConvertChar('T')

	var q vecops.HalfVec
	for i := range q {
		q[i] = a
	}
	q[1] = tC

	got := m.GetScores(a, q, true)
	for i := range got {
		if i == 1 {
			assert.EqualValues(t, -1, got[i])
		} else {
			assert.EqualValues(t, 1, got[i])
		}
	}
	assert.True(t, m.SupportsXDrop())
}

func TestNucleotideMatrixAmbiguous(t *testing.T) {
	m := NewNucleotideMatrix(1, -1, -2)

	n := m.ConvertChar('N')
	a := m.ConvertChar('A')

	var q vecops.HalfVec
	for i := range q {
		q[i] = a
	}

	got := m.GetScores(n, q, true)
	for i := range got {
		assert.EqualValues(t, -2, got[i])
	}
}

func TestBLOSUM62KnownScores(t *testing.T) {
	m := NewBLOSUM62()

	a := m.ConvertChar('A')
	r := m.ConvertChar('R')

	var q vecops.HalfVec
	for i := range q {
		q[i] = a
	}

	// A-A == 4
	got := m.GetScores(a, q, true)
	assert.EqualValues(t, 4, got[0])

	// R-A == -1
	got = m.GetScores(r, q, true)
	assert.EqualValues(t, -1, got[0])

	assert.True(t, m.SupportsXDrop())
}

func TestBLOSUM62LowercaseAndUnknownFallToX(t *testing.T) {
	m := NewBLOSUM62()

	assert.Equal(t, m.ConvertChar('a'), m.ConvertChar('A'))
	assert.Equal(t, m.ConvertChar('z'), m.ConvertChar('Z'))
	assert.Equal(t, m.ConvertChar('?'), m.ConvertChar('X'))
}
