package blockalign

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestTraceStackDiscipline verifies that save_ckpt/restore_ckpt
// behaves like a stack: appends after a checkpoint are discarded
// wholesale, and the buffer contents before trace_idx are untouched.
func TestTraceStackDiscipline(t *testing.T) {
	tr := newTrace(64, 64)

	tr.addBlock(0, 0, 8, 8, true)
	tr.addTrace(0x1111)
	tr.addTrace(0x2222)

	tr.saveCkpt()
	savedCells := append([]uint32(nil), tr.cells...)
	savedTraceIdx := tr.traceIdx
	savedBlockIdx := tr.blockIdx

	tr.addBlock(0, 8, 8, 8, true)
	tr.addTrace(0x3333)
	tr.addTrace(0x4444)

	tr.restoreCkpt()

	assert.Equal(t, savedTraceIdx, tr.traceIdx)
	assert.Equal(t, savedBlockIdx, tr.blockIdx)
	assert.Equal(t, savedCells, tr.cells)
}

// TestTraceAddTraceIdxMaterializesZeroWords checks the Go-idiomatic
// deviation documented on addTraceIdx: skipped words are appended as
// zero rather than merely bumping a counter, since this port's cells
// slice has no pre-sized capacity to index past.
func TestTraceAddTraceIdxMaterializesZeroWords(t *testing.T) {
	tr := newTrace(8, 8)
	tr.addTrace(0xABCD)
	tr.addTraceIdx(3)

	assert.Equal(t, 4, tr.traceIdx)
	assert.Equal(t, []uint32{0xABCD, 0, 0, 0}, tr.cells)
}

// TestTraceBlocksReportsInsertionOrder checks Blocks() replays the
// rectangles addBlock recorded, in the order they were computed.
func TestTraceBlocksReportsInsertionOrder(t *testing.T) {
	tr := newTrace(16, 16)
	tr.addBlock(0, 0, 4, 4, true)
	tr.addBlock(4, 0, 4, 4, false)

	blocks := tr.Blocks()
	assert.Equal(t, []Rectangle{
		{Row: 0, Col: 0, Width: 4, Height: 4},
		{Row: 4, Col: 0, Width: 4, Height: 4},
	}, blocks)
}

// TestClampOffsetSaturates checks the 32-to-16-bit rebase clamp used
// whenever the running score offset changes between iterations.
func TestClampOffsetSaturates(t *testing.T) {
	assert.Equal(t, int16(32767), clampOffset(1<<20))
	assert.Equal(t, int16(-32768), clampOffset(-(1 << 20)))
	assert.Equal(t, int16(5), clampOffset(5))
}

// TestNewBorderFillsScoreMin checks the border allocator's initial
// sentinel fill, relied on by every border before its first
// placeBlock call writes real deltas.
func TestNewBorderFillsScoreMin(t *testing.T) {
	b := newBorder(16)
	for _, v := range b {
		assert.Equal(t, scoreMin, v)
	}
}
