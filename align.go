package blockalign

import (
	"fmt"

	"github.com/Akron/blockalign/padded"
	"github.com/Akron/blockalign/scores"
	"github.com/Akron/blockalign/vecops"
)

// direction is the control loop's next move: shift the block right,
// shift it down, or grow it.
type direction int

const (
	dirRight direction = iota
	dirDown
	dirGrow
)

// growExp mirrors the original's GROW_EXP: block sizes double rather
// than growing by a fixed additive step. This also gates which of the
// two precondition checks in Align applies (power-of-two vs multiple
// of vecops.L).
const growExp = true

// xDropIterThreshold requires this many consecutive below-threshold
// steps before X-drop terminates, so a single anomalous step doesn't
// end alignment early.
const xDropIterThreshold = 2

// Aligner holds the state of one adaptive block alignment: the
// shifting/growing block position, its border vectors, the running
// score offset, and (optionally) the trace log.
//
// Grounded directly on the Block struct and its align_core method in
// scan_block.rs — there is no teacher analogue in Akron-fastpfor-go
// for this control loop; it is ported from the original algorithm per
// this project's rule of falling back to original_source to resolve
// what a teacher repo doesn't cover, expressed in the teacher's
// idiom (explicit error-free struct, panics at precondition checks).
type Aligner struct {
	res AlignResult

	trace          *Trace
	traceEnabled   bool
	xDrop          bool
	xDropThreshold int32

	query     *padded.Bytes
	reference *padded.Bytes
	i, j      int

	minSize, maxSize int
	matrix           scores.Matrix
	gaps             Gaps
}

// Align runs the adaptive block aligner over query and reference.
//
// If trace is true, the information needed to reconstruct a CIGAR
// traceback is recorded; this slows alignment and uses substantially
// more memory. If xDropMode is true, alignment terminates early once
// the block's score drops xDrop below the best score seen so far;
// otherwise global alignment runs to completion.
//
// minSize and maxSize are raised to vecops.L if smaller, must both be
// below 2^16-1, and must be powers of two; gaps.Open and gaps.Extend
// must both be negative with Open costing strictly more than Extend;
// xDrop must be non-negative when xDropMode is set, and xDropMode
// requires a matrix that supports X-drop argmax decoding. Align
// panics on violation: this package has no runtime error domain, all
// failure modes are programmer errors surfaced at entry, matching
// spec.md §6/§7.
func Align(query, reference *padded.Bytes, matrix scores.Matrix, gaps Gaps, minSize, maxSize int, xDrop int32, trace, xDropMode bool) *Aligner {
	gaps.validate()

	if minSize < vecops.L {
		minSize = vecops.L
	}
	if maxSize < vecops.L {
		maxSize = vecops.L
	}
	if minSize >= 1<<16-1 || maxSize >= 1<<16-1 {
		panic(fmt.Sprintf("blockalign: block sizes must be smaller than 2^16 - 1, got min=%d max=%d", minSize, maxSize))
	}
	if growExp {
		if !isPowerOfTwo(minSize) || !isPowerOfTwo(maxSize) {
			panic(fmt.Sprintf("blockalign: block sizes must be powers of two, got min=%d max=%d", minSize, maxSize))
		}
	} else if minSize%vecops.L != 0 || maxSize%vecops.L != 0 {
		panic(fmt.Sprintf("blockalign: block sizes must be multiples of %d, got min=%d max=%d", vecops.L, minSize, maxSize))
	}
	if xDropMode {
		if xDrop < 0 {
			panic(fmt.Sprintf("blockalign: X-drop threshold must be nonnegative, got %d", xDrop))
		}
		if !matrix.SupportsXDrop() {
			panic("blockalign: X-drop alignment with this matrix is not supported")
		}
	}

	a := &Aligner{
		query:          query,
		reference:      reference,
		minSize:        minSize,
		maxSize:        maxSize,
		matrix:         matrix,
		gaps:           gaps,
		traceEnabled:   trace,
		xDrop:          xDropMode,
		xDropThreshold: xDrop,
	}
	if trace {
		a.trace = newTrace(query.Len(), reference.Len())
	} else {
		a.trace = newTrace(0, 0)
	}

	a.alignCore()
	return a
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Res returns the resulting score and ending location of the
// alignment.
func (a *Aligner) Res() AlignResult {
	return a.res
}

// Trace returns the trace of the alignment. Panics if trace wasn't
// requested when calling Align.
func (a *Aligner) Trace() *Trace {
	if !a.traceEnabled {
		panic("blockalign: trace was not requested")
	}
	return a.trace
}

// alignCore is the main block-shifting/growing control loop.
func (a *Aligner) alignCore() {
	var bestMax int32
	var bestArgmaxI, bestArgmaxJ int

	prevDir := dirGrow
	dir := dirGrow
	prevSize := 0
	blockSize := a.minSize
	step := vecops.Step

	var off, offMax int32
	var prevOff int32

	DCol := newBorder(a.maxSize)
	CCol := newBorder(a.maxSize)
	DRow := newBorder(a.maxSize)
	RRow := newBorder(a.maxSize)

	temp1 := newBorder(vecops.L)
	temp2 := newBorder(vecops.L)

	yDropIter := 0
	xDropIter := 0

	iCkpt, jCkpt := a.i, a.j
	var offCkpt int32
	DColCkpt := newBorder(a.maxSize)
	CColCkpt := newBorder(a.maxSize)
	DRowCkpt := newBorder(a.maxSize)
	RRowCkpt := newBorder(a.maxSize)

	DCorner := vecops.Broadcast(scoreMin)

	for {
		prevOff = off
		growDMax := vecops.Broadcast(scoreMin)
		growDArgmax := vecops.Broadcast(int16(0))

		var DMax, DArgmax vecops.Vec
		var rightMax, downMax int32

		switch dir {
		case dirRight:
			off = offMax
			offAdd := vecops.Broadcast(clampOffset(prevOff - off))

			if a.traceEnabled {
				a.trace.addBlock(a.i, a.j+blockSize-step, step, blockSize, true)
			}

			justOffset(blockSize, DCol, CCol, offAdd)

			corner := vecops.Broadcast(scoreMin)
			if prevDir == dirDown {
				corner = vecops.AddSat(DCorner, offAdd)
			}
			DMax, DArgmax = a.placeBlock(a.query, a.reference, a.i, a.j+blockSize-step, step, blockSize,
				DCol, CCol, temp1, temp2, corner, true)

			rightMax = prefixMax(DCol, step)

			DCorner = shiftAndOffset(blockSize, DRow, RRow, temp1, temp2, offAdd, step)
			downMax = prefixMax(DRow, step)

		case dirDown:
			off = offMax
			offAdd := vecops.Broadcast(clampOffset(prevOff - off))

			if a.traceEnabled {
				a.trace.addBlock(a.i+blockSize-step, a.j, blockSize, step, false)
			}

			justOffset(blockSize, DRow, RRow, offAdd)

			corner := vecops.Broadcast(scoreMin)
			if prevDir == dirRight {
				corner = vecops.AddSat(DCorner, offAdd)
			}
			DMax, DArgmax = a.placeBlock(a.reference, a.query, a.j, a.i+blockSize-step, step, blockSize,
				DRow, RRow, temp1, temp2, corner, false)

			downMax = prefixMax(DRow, step)

			DCorner = shiftAndOffset(blockSize, DCol, CCol, temp1, temp2, offAdd, step)
			rightMax = prefixMax(DCol, step)

		case dirGrow:
			DCorner = vecops.Broadcast(scoreMin)
			growStep := blockSize - prevSize

			if a.traceEnabled {
				a.trace.resizeTrace(a.i, a.j, a.query.Len(), a.reference.Len(), blockSize)
				a.trace.addBlock(a.i+prevSize, a.j, prevSize, growStep, false)
			}

			DMax1, DArgmax1 := a.placeBlock(a.reference, a.query, a.j, a.i+prevSize, growStep, prevSize,
				DRow, RRow, DCol[prevSize:], CCol[prevSize:], vecops.Broadcast(scoreMin), false)

			if a.traceEnabled {
				a.trace.addBlock(a.i, a.j+prevSize, growStep, blockSize, true)
			}

			DMax2, DArgmax2 := a.placeBlock(a.query, a.reference, a.i, a.j+prevSize, growStep, blockSize,
				DCol, CCol, DRow[prevSize:], RRow[prevSize:], vecops.Broadcast(scoreMin), true)

			rightMax = prefixMax(DCol, step)
			downMax = prefixMax(DRow, step)
			growDMax = DMax1
			growDArgmax = DArgmax1

			for i := 0; i < blockSize; i += vecops.L {
				copy(DColCkpt[i:i+vecops.L], DCol[i:i+vecops.L])
				copy(CColCkpt[i:i+vecops.L], CCol[i:i+vecops.L])
				copy(DRowCkpt[i:i+vecops.L], DRow[i:i+vecops.L])
				copy(RRowCkpt[i:i+vecops.L], RRow[i:i+vecops.L])
			}

			if a.traceEnabled {
				a.trace.saveCkpt()
			}

			DMax, DArgmax = DMax2, DArgmax2
		}

		prevDir = dir
		DMaxMax := vecops.HMax(DMax)
		growMax := vecops.HMax(growDMax)
		maxVal := DMaxMax
		if growMax > maxVal {
			maxVal = growMax
		}
		offMax = off + int32(maxVal) - int32(scoreZero)

		yDropIter++
		growNoMax := dir == dirGrow

		if offMax > bestMax {
			if a.xDrop {
				laneIdx := vecops.HArgMax(DMax, DMaxMax)
				idx := int(DArgmax[laneIdx])
				denom := blockSize / vecops.L
				r := (idx%denom)*vecops.L + laneIdx
				c := (blockSize - step) + idx/denom

				switch dir {
				case dirRight:
					bestArgmaxI = a.i + r
					bestArgmaxJ = a.j + c
				case dirDown:
					bestArgmaxI = a.i + c
					bestArgmaxJ = a.j + r
				case dirGrow:
					if DMaxMax >= growMax {
						bestArgmaxI = a.i + (idx%denom)*vecops.L + laneIdx
						bestArgmaxJ = a.j + prevSize + idx/denom
					} else {
						laneIdx2 := vecops.HArgMax(growDMax, growMax)
						idx2 := int(growDArgmax[laneIdx2])
						denom2 := prevSize / vecops.L
						bestArgmaxI = a.i + prevSize + idx2/denom2
						bestArgmaxJ = a.j + (idx2%denom2)*vecops.L + laneIdx2
					}
				}
			}

			if blockSize < a.maxSize {
				iCkpt = a.i
				jCkpt = a.j
				offCkpt = off

				for i := 0; i < blockSize; i += vecops.L {
					copy(DColCkpt[i:i+vecops.L], DCol[i:i+vecops.L])
					copy(CColCkpt[i:i+vecops.L], CCol[i:i+vecops.L])
					copy(DRowCkpt[i:i+vecops.L], DRow[i:i+vecops.L])
					copy(RRowCkpt[i:i+vecops.L], RRow[i:i+vecops.L])
				}

				if a.traceEnabled {
					a.trace.saveCkpt()
				}

				growNoMax = false
			}

			bestMax = offMax
			yDropIter = 0
		}

		if a.xDrop {
			if offMax < bestMax-a.xDropThreshold {
				if xDropIter < xDropIterThreshold-1 {
					xDropIter++
				} else {
					break
				}
			} else {
				xDropIter = 0
			}
		}

		if a.i+blockSize > a.query.Len() && a.j+blockSize > a.reference.Len() {
			break
		}

		if a.j+blockSize > a.reference.Len() {
			a.i += step
			dir = dirDown
			continue
		}
		if a.i+blockSize > a.query.Len() {
			a.j += step
			dir = dirRight
			continue
		}

		nextSize := blockSize * 2
		if !growExp {
			nextSize = blockSize + vecops.L
		}
		if nextSize <= a.maxSize {
			if yDropIter > (blockSize/step)-1 || growNoMax {
				prevSize = blockSize
				blockSize = nextSize
				dir = dirGrow
				if vecops.Step != vecops.LargeStep && blockSize >= (vecops.LargeStep/vecops.Step)*a.minSize {
					step = vecops.LargeStep
				}

				a.i = iCkpt
				a.j = jCkpt
				off = offCkpt

				for i := 0; i < prevSize; i += vecops.L {
					copy(DCol[i:i+vecops.L], DColCkpt[i:i+vecops.L])
					copy(CCol[i:i+vecops.L], CColCkpt[i:i+vecops.L])
					copy(DRow[i:i+vecops.L], DRowCkpt[i:i+vecops.L])
					copy(RRow[i:i+vecops.L], RRowCkpt[i:i+vecops.L])
				}

				if a.traceEnabled {
					a.trace.restoreCkpt()
				}

				yDropIter = 0
				continue
			}
		}

		if downMax > rightMax {
			a.i += step
			dir = dirDown
		} else {
			a.j += step
			dir = dirRight
		}
	}

	if a.xDrop {
		a.res = AlignResult{Score: bestMax, QueryIdx: bestArgmaxI, ReferenceIdx: bestArgmaxJ}
		return
	}

	var score int32
	switch dir {
	case dirRight, dirGrow:
		idx := a.query.Len() - a.i
		score = off + int32(DCol[idx]) - int32(scoreZero)
	case dirDown:
		idx := a.reference.Len() - a.j
		score = off + int32(DRow[idx]) - int32(scoreZero)
	}
	a.res = AlignResult{Score: score, QueryIdx: a.query.Len(), ReferenceIdx: a.reference.Len()}
}
