package vecops

// PrefixMaxScan computes, for each lane l, the affine row-gap closure
//
//	R[l] = max_{k<=l} (v[k] + (l-k)*gapExtend)
//
// in O(log L) steps using a Hillis-Steele doubling scan. This is the
// critical-path routine noted in spec.md design note "Row-gap
// intra-vector dependency": a scalar recurrence R[i] = max(R[i-1] +
// gapExtend, D_open[i]) cannot be vectorized directly since each lane
// depends on its predecessor.
//
// avx2.rs's simd_prefix_scan_i16 performs the equivalent scan in two
// stages (three intra-128-bit-lane shifts, then a single cross-lane
// correction) because AVX2 forbids cheap shifts across its 128-bit
// halves. A Go array has no such restriction, so the doubling
// continues all the way to L/2 and no separate correction pass is
// needed.
func PrefixMaxScan(v Vec, gapExtend int16) Vec {
	cur := v
	for shift := 1; shift < L; shift *= 2 {
		shifted := shiftInsertZero(cur, shift)
		shifted = AddSat(shifted, Broadcast(satAdd16(0, int32(gapExtend)*int32(shift))))
		// lanes below shift have no predecessor k >= 0; keep them out of the max
		for i := 0; i < shift; i++ {
			shifted[i] = -32768
		}
		cur = Max(cur, shifted)
	}
	return cur
}

// PrefixMaxScanNaive computes the same closure with a straightforward
// O(L) sequential loop. Kept as a correctness oracle for
// PrefixMaxScan, mirroring avx2.rs's simd_naive_prefix_scan_i16 (there
// marked #[allow(dead_code)], kept for exactly the same reason).
func PrefixMaxScanNaive(v Vec, gapExtend int16) Vec {
	var r Vec
	r[0] = v[0]
	for l := 1; l < L; l++ {
		best := v[l]
		acc := v[l]
		for k := l - 1; k >= 0; k-- {
			acc = satAdd16(int32(v[k]), int32(l-k)*int32(gapExtend))
			if acc > best {
				best = acc
			}
		}
		r[l] = best
	}
	return r
}

// shiftInsertZero shifts every lane up by n positions, zero-filling
// the bottom n lanes and discarding the top n. Mirrors the zero-fill
// behavior of _mm256_slli_si256 used inside simd_prefix_scan_i16.
func shiftInsertZero(v Vec, n int) Vec {
	var r Vec
	for i := n; i < L; i++ {
		r[i] = v[i-n]
	}
	return r
}
