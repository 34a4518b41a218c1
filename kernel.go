package blockalign

import (
	"github.com/Akron/blockalign/padded"
	"github.com/Akron/blockalign/vecops"
)

// scoreZero is the mid-range bias added to every delta so saturating
// 16-bit arithmetic can represent negative scores without sign-flip
// surprises: true score = offset + delta - scoreZero.
const scoreZero int16 = 1 << 14

// scoreMin is the "never reached" sentinel every border cell starts
// at.
const scoreMin int16 = 0

func clampOffset(x int32) int16 {
	if x > 32767 {
		return 32767
	}
	if x < -32768 {
		return -32768
	}
	return int16(x)
}

// newBorder allocates a border array of the given size, filled with
// scoreMin.
func newBorder(size int) []int16 {
	b := make([]int16, size)
	for i := range b {
		b[i] = scoreMin
	}
	return b
}

// justOffset adds offAdd into every vector of buf1 and buf2, up to
// blockSize lanes. Grounded on Block::just_offset in scan_block.rs:
// rebasing both border arrays after the running offset changes.
func justOffset(blockSize int, buf1, buf2 []int16, offAdd vecops.Vec) {
	for i := 0; i < blockSize; i += vecops.L {
		a := vecops.AddSat(vecops.LoadVec(buf1, i), offAdd)
		b := vecops.AddSat(vecops.LoadVec(buf2, i), offAdd)
		vecops.StoreVec(buf1, i, a)
		vecops.StoreVec(buf2, i, b)
	}
}

// prefixMax sums the first step lanes of buf (already offset-adjusted
// deltas), used as a cheap proxy for "how much improvement potential
// this border has accumulated" when choosing the next shift
// direction. Grounded on Block::prefix_max / simd_prefix_hadd_i16.
func prefixMax(buf []int16, step int) int32 {
	v := vecops.LoadVec(buf, 0)
	var sum int32
	for i := 0; i < step; i++ {
		sum += int32(v[i]) - int32(scoreZero)
	}
	return sum
}

// shiftAndOffset rebases buf1/buf2 by offAdd, then shifts both arrays
// left by step lanes (discarding the first step values, appending the
// step new values from temp1/temp2), returning the corner value that
// falls out of the shift for use as the next block's D_corner seed.
// Grounded on Block::shift_and_offset.
func shiftAndOffset(blockSize int, buf1, buf2 []int16, temp1, temp2 []int16, offAdd vecops.Vec, step int) vecops.Vec {
	curr1 := vecops.AddSat(vecops.LoadVec(buf1, 0), offAdd)
	DCorner := vecops.Broadcast(curr1[step-1])
	curr2 := vecops.AddSat(vecops.LoadVec(buf2, 0), offAdd)

	for i := 0; i < blockSize-vecops.L; i += vecops.L {
		next1 := vecops.AddSat(vecops.LoadVec(buf1, i+vecops.L), offAdd)
		next2 := vecops.AddSat(vecops.LoadVec(buf2, i+vecops.L), offAdd)
		vecops.StoreVec(buf1, i, shiftLeftByStep(next1, curr1, step))
		vecops.StoreVec(buf2, i, shiftLeftByStep(next2, curr2, step))
		curr1 = next1
		curr2 = next2
	}

	next1 := vecops.LoadVec(temp1, 0)
	next2 := vecops.LoadVec(temp2, 0)
	vecops.StoreVec(buf1, blockSize-vecops.L, shiftLeftByStep(next1, curr1, step))
	vecops.StoreVec(buf2, blockSize-vecops.L, shiftLeftByStep(next2, curr2, step))

	return DCorner
}

// shiftLeftByStep discards the low step lanes of curr and appends the
// low step lanes of next, i.e. simd_sr_i16!(next, curr, step): a
// right-shift of the conceptual two-vector window by step.
func shiftLeftByStep(next, curr vecops.Vec, step int) vecops.Vec {
	var r vecops.Vec
	n := vecops.L
	copy(r[:n-step], curr[step:])
	copy(r[n-step:], next[:step])
	return r
}

// placeBlock computes a width x height rectangle of new DP cells
// using the affine recurrence, advancing the D_near/C_near border in
// place and emitting the D_far/R_far border for the perpendicular
// edge. This is the hottest loop in the whole program.
//
// Grounded directly on Block::place_block in scan_block.rs. The
// kernel always behaves as if shifting right by width columns and
// height rows deep; to compute a "down" shift, the caller swaps the
// roles of laneBytes/colBytes (laneBytes supplies the L-wide window
// read every inner iteration, colBytes supplies one scalar character
// per outer column) the same way the original swaps its query/
// reference arguments.
func (a *Aligner) placeBlock(
	laneBytes, colBytes *padded.Bytes,
	startI, startJ, width, height int,
	DNear, CNear, DFar, RFar []int16,
	DCorner vecops.Vec,
	right bool,
) (DMax, DArgmax vecops.Vec) {
	gapOpen := vecops.Broadcast(int16(a.gaps.Open))
	gapExtend := vecops.Broadcast(int16(a.gaps.Extend))
	gapExtendAll := vecops.GapExtendAll(int16(a.gaps.Extend))

	DMax = vecops.Broadcast(scoreMin)
	DArgmax = vecops.Broadcast(0)
	currI := vecops.Broadcast(0)

	if width == 0 || height == 0 {
		return DMax, DArgmax
	}

	L := vecops.L
	var D11, R11 vecops.Vec

	for jc := 0; jc < width; jc++ {
		R01 := vecops.Broadcast(scoreMin)

		c := colBytes.AtIndex(startJ + jc)

		for i := 0; i < height; i += L {
			D10 := vecops.LoadVec(DNear, i)
			C10 := vecops.LoadVec(CNear, i)
			D00 := vecops.ShiftInsertLow(D10, vecops.ExtractLast(DCorner))
			DCorner = D10

			var queryHalf vecops.HalfVec
			copy(queryHalf[:], laneBytes.Window(startI+i, L))
			scoreVec := a.matrix.GetScores(c, queryHalf, right)

			D11 = vecops.AddSat(D00, scoreVec)
			if startI+i == 0 && startJ+jc == 0 {
				D11 = vecops.InsertLane(D11, 0, scoreZero)
			}

			C11 := vecops.Max(vecops.AddSat(C10, gapExtend), vecops.AddSat(D10, gapOpen))
			D11 = vecops.Max(D11, C11)
			// at this point C11 is fully calculated and D11 is partially calculated

			D11Open := vecops.AddSat(D11, vecops.SubSat(gapOpen, gapExtend))
			R11 = vecops.PrefixMaxScan(D11Open, int16(a.gaps.Extend))
			R11 = vecops.Max(R11, vecops.AddSat(vecops.BroadcastHi(R01), gapExtendAll))
			D11 = vecops.Max(D11, R11)
			R01 = R11

			if a.traceEnabled {
				traceDC := vecops.CmpEq(D11, C11)
				traceDR := vecops.CmpEq(D11, R11)
				a.trace.addTrace(vecops.Movemask2Bit(traceDC, traceDR))
			}

			DMax = vecops.Max(DMax, D11)

			if a.xDrop {
				mask := vecops.CmpEq(DMax, D11)
				DArgmax = vecops.Blend(DArgmax, currI, mask)
				currI = vecops.AddSat(currI, vecops.Broadcast(1))
			}

			vecops.StoreVec(DNear, i, D11)
			vecops.StoreVec(CNear, i, C11)
		}

		DCorner = vecops.Broadcast(scoreMin)

		DFar[jc] = vecops.ExtractLast(D11)
		RFar[jc] = vecops.ExtractLast(R11)

		if !a.xDrop && startI+height > laneBytes.Len() && startJ+jc >= colBytes.Len() {
			if a.traceEnabled {
				a.trace.addTraceIdx((width - 1 - jc) * (height / L))
			}
			break
		}
	}

	return DMax, DArgmax
}
