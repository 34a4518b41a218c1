package blockalign

import "github.com/Akron/blockalign/vecops"

// Rectangle is a single rectangular region of the DP matrix computed
// by one placeBlock call.
type Rectangle struct {
	Row, Col, Width, Height int
}

// Trace is an append-only, checkpointable record of the rectangles
// placeBlock computed and the per-cell 2-bit direction codes within
// them, sufficient to reconstruct a CIGAR from any end position.
//
// Grounded on the Trace struct in scan_block.rs. Where the original
// pre-sizes block_start/block_size/trace as fixed-capacity Vecs (an
// upfront worst-case guess later asserted against with
// debug_assert!), this port grows cells/blockStart/blockSize with
// ordinary Go append — idiomatic here since Go slices already
// amortize growth, and addTraceIdx below still has to materialize the
// skipped words explicitly to keep index bookkeeping correct (see its
// comment).
type Trace struct {
	cells      []uint32 // one word per vector column of a rectangle
	right      []uint64 // bit k set => rectangle k was a "shift right" block
	blockStart []int32  // interleaved (row, col) pairs, one pair per rectangle
	blockSize  []uint16 // interleaved (height, width) pairs, one pair per rectangle

	traceIdx int
	blockIdx int

	ckptTraceIdx int
	ckptBlockIdx int

	queryLen     int
	referenceLen int
}

func newTrace(queryLen, referenceLen int) *Trace {
	return &Trace{queryLen: queryLen, referenceLen: referenceLen}
}

// addBlock records a new rectangle: height x width, starting at (i, j),
// computed while shifting right (right=true) or down (right=false).
func (t *Trace) addBlock(i, j, width, height int, right bool) {
	t.blockStart = append(t.blockStart, int32(i), int32(j))
	t.blockSize = append(t.blockSize, uint16(height), uint16(width))

	idx := t.blockIdx
	for idx/64 >= len(t.right) {
		t.right = append(t.right, 0)
	}
	if right {
		t.right[idx/64] |= 1 << uint(idx%64)
	} else {
		t.right[idx/64] &^= 1 << uint(idx%64)
	}
	t.blockIdx++
}

// addTrace appends one packed trace word (L 2-bit direction codes,
// one per lane) for a single vector column of the current rectangle.
func (t *Trace) addTrace(word uint32) {
	t.cells = append(t.cells, word)
	t.traceIdx = len(t.cells)
}

// addTraceIdx advances the trace index by add words without computing
// them, used when placeBlock breaks out of its column loop early
// because the rest of the rectangle falls past the logical end of
// both strings. Those words are materialized as zero rather than
// merely bumping a counter, since this port's cells slice has no
// fixed pre-allocated length to index past (see the Trace doc
// comment) — they are never read back by Cigar, which only walks
// cells within the real (i, j) bounds.
func (t *Trace) addTraceIdx(add int) {
	for i := 0; i < add; i++ {
		t.cells = append(t.cells, 0)
	}
	t.traceIdx = len(t.cells)
}

// resizeTrace reserves capacity in the cells slice before a grow step,
// estimating the worst-case number of future words the same way
// scan_block.rs's resize_trace does, so the grow's two placeBlock
// calls don't force multiple reallocations mid-call.
func (t *Trace) resizeTrace(i, j, queryLen, referenceLen, blockSize int) {
	need := t.traceIdx + (blockSize/vecops.L)*(queryLen+blockSize-i+referenceLen+blockSize-j)
	if need > cap(t.cells) {
		grown := make([]uint32, len(t.cells), need)
		copy(grown, t.cells)
		t.cells = grown
	}
}

// saveCkpt snapshots the current trace/block indices.
func (t *Trace) saveCkpt() {
	t.ckptTraceIdx = t.traceIdx
	t.ckptBlockIdx = t.blockIdx
}

// restoreCkpt pops the trace back to the last checkpoint. The trace
// behaves as a stack: everything appended after save_ckpt is
// discarded wholesale.
func (t *Trace) restoreCkpt() {
	t.cells = t.cells[:t.ckptTraceIdx]
	t.traceIdx = t.ckptTraceIdx
	t.blockStart = t.blockStart[:t.ckptBlockIdx*2]
	t.blockSize = t.blockSize[:t.ckptBlockIdx*2]
	t.blockIdx = t.ckptBlockIdx
}

// Blocks returns all rectangular regions computed by the alignment,
// in the order they were computed.
func (t *Trace) Blocks() []Rectangle {
	res := make([]Rectangle, t.blockIdx)
	for i := 0; i < t.blockIdx; i++ {
		res[i] = Rectangle{
			Row:    int(t.blockStart[i*2]),
			Col:    int(t.blockStart[i*2+1]),
			Height: int(t.blockSize[i*2]),
			Width:  int(t.blockSize[i*2+1]),
		}
	}
	return res
}

// opLUTEntry is one row of the traceback direction table: the
// operation to emit and how far to step back in (i, j).
type opLUTEntry struct {
	op     Operation
	di, dj int
}

// opLUT maps a 3-bit key (orientation bit << 2 | 2-bit direction code)
// to an operation and step. The ambiguous-tie rows (011, 111) bias
// toward the step that cannot walk out of the current rectangle.
var opLUT = [8]opLUTEntry{
	{OpMatch, 1, 1},     // 0b000
	{OpInsertion, 1, 0}, // 0b001
	{OpDeletion, 0, 1},  // 0b010
	{OpInsertion, 1, 0}, // 0b011, bias towards i-=1
	{OpMatch, 1, 1},     // 0b100
	{OpDeletion, 0, 1},  // 0b101
	{OpInsertion, 1, 0}, // 0b110
	{OpDeletion, 0, 1},  // 0b111, bias towards j-=1
}

// Cigar reconstructs a single traceback path ending at logical
// position (i, j) (0 <= i <= queryLen, 0 <= j <= referenceLen).
func (t *Trace) Cigar(i, j int) *Cigar {
	if i > t.queryLen || j > t.referenceLen {
		panic("blockalign: traceback end position must be in bounds")
	}

	res := newCigar(i + j + 5)
	blockIdx := t.blockIdx
	traceIdx := t.traceIdx
	L := vecops.L

	for i > 0 || j > 0 {
		var blockI, blockJ, blockWidth, blockHeight, right int
		for {
			blockIdx--
			blockI = int(t.blockStart[blockIdx*2])
			blockJ = int(t.blockStart[blockIdx*2+1])
			blockHeight = int(t.blockSize[blockIdx*2])
			blockWidth = int(t.blockSize[blockIdx*2+1])
			traceIdx -= blockWidth * blockHeight / L

			if i >= blockI && j >= blockJ {
				right = int((t.right[blockIdx/64]>>uint(blockIdx%64))&1) << 2
				break
			}
		}

		if right > 0 {
			for i >= blockI && j >= blockJ && (i > 0 || j > 0) {
				currI := i - blockI
				currJ := j - blockJ
				idx := traceIdx + currI/L + currJ*(blockHeight/L)
				code := int((t.cells[idx] >> uint((currI%L)*2)) & 0b11)
				e := opLUT[right|code]
				i -= e.di
				j -= e.dj
				res.add(e.op)
			}
		} else {
			for i >= blockI && j >= blockJ && (i > 0 || j > 0) {
				currI := i - blockI
				currJ := j - blockJ
				idx := traceIdx + currJ/L + currI*(blockWidth/L)
				code := int((t.cells[idx] >> uint((currJ%L)*2)) & 0b11)
				e := opLUT[right|code]
				i -= e.di
				j -= e.dj
				res.add(e.op)
			}
		}
	}

	return res
}
