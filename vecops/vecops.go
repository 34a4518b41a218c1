// Package vecops is the SIMD abstraction layer used by the adaptive
// block aligner. It provides a narrow, platform-portable set of
// 16-bit-lane vector operations: saturating add/sub, max, compare,
// blend, broadcast, intra-lane shifts, horizontal reductions and the
// affine row-gap prefix scan.
//
// Lane count L is a compile-time constant (see lanes_generic.go /
// lanes_wide.go) rather than a runtime value, matching the way the
// original block-aligner crate picks its lane width per build feature
// (simd_avx2 vs simd_wasm). There is no assembly backing these
// operations: see DESIGN.md for why a pure-Go array implementation is
// used instead of hand-written kernels.
package vecops

// Vec holds L packed, saturating 16-bit lanes. It is a value type,
// copied the way a hardware SIMD register would be passed between
// pure functions.
type Vec [L]int16

// HalfVec holds L packed bytes, used for query/reference character
// windows (the "half vector" that get_scores consumes).
type HalfVec [L]byte

// Broadcast returns a vector with every lane set to v.
func Broadcast(v int16) Vec {
	var r Vec
	for i := range r {
		r[i] = v
	}
	return r
}

// LoadVec reads L contiguous lanes from buf starting at offset.
func LoadVec(buf []int16, offset int) Vec {
	var r Vec
	copy(r[:], buf[offset:offset+L])
	return r
}

// StoreVec writes v into buf starting at offset.
func StoreVec(buf []int16, offset int, v Vec) {
	copy(buf[offset:offset+L], v[:])
}

func satAdd16(a, b int32) int16 {
	s := a + b
	if s > 32767 {
		return 32767
	}
	if s < -32768 {
		return -32768
	}
	return int16(s)
}

// AddSat computes the lane-wise saturating sum of a and b.
func AddSat(a, b Vec) Vec {
	var r Vec
	for i := range r {
		r[i] = satAdd16(int32(a[i]), int32(b[i]))
	}
	return r
}

// SubSat computes the lane-wise saturating difference a - b.
func SubSat(a, b Vec) Vec {
	var r Vec
	for i := range r {
		r[i] = satAdd16(int32(a[i]), -int32(b[i]))
	}
	return r
}

// Max returns the lane-wise maximum of a and b.
func Max(a, b Vec) Vec {
	var r Vec
	for i := range r {
		if a[i] > b[i] {
			r[i] = a[i]
		} else {
			r[i] = b[i]
		}
	}
	return r
}

// CmpEq returns a mask vector: lane i is all-ones (-1) if a[i] == b[i],
// zero otherwise. Mirrors simd_cmpeq_i16.
func CmpEq(a, b Vec) Vec {
	var r Vec
	for i := range r {
		if a[i] == b[i] {
			r[i] = -1
		}
	}
	return r
}

// Blend selects b[i] where mask[i] is nonzero, a[i] otherwise. Mirrors
// simd_blend_i8 / _mm256_blendv_epi8.
func Blend(a, b, mask Vec) Vec {
	var r Vec
	for i := range r {
		if mask[i] != 0 {
			r[i] = b[i]
		} else {
			r[i] = a[i]
		}
	}
	return r
}

// ShiftInsertLow shifts every lane up by one position and inserts
// insert at lane 0, discarding the top lane. Mirrors simd_sl_i16!(v,
// insertVec, 1) used to build D00 from D10 and the carried-in corner
// value.
func ShiftInsertLow(v Vec, insert int16) Vec {
	var r Vec
	r[0] = insert
	copy(r[1:], v[:L-1])
	return r
}

// ExtractLast returns the highest-indexed lane, i.e. the value that
// becomes the next column's diagonal "corner" seed.
func ExtractLast(v Vec) int16 {
	return v[L-1]
}

// InsertLane returns a copy of v with lane i set to val.
func InsertLane(v Vec, i int, val int16) Vec {
	v[i] = val
	return v
}

// HMax returns the maximum lane value in v. Mirrors simd_hmax_i16.
func HMax(v Vec) int16 {
	m := v[0]
	for i := 1; i < L; i++ {
		if v[i] > m {
			m = v[i]
		}
	}
	return m
}

// HArgMax returns the index of the first lane equal to max. Mirrors
// simd_hargmax_i16 (cmpeq-against-broadcast + movemask + trailing
// zero count, done directly here since Go has no movemask primitive).
func HArgMax(v Vec, max int16) int {
	for i := 0; i < L; i++ {
		if v[i] == max {
			return i
		}
	}
	return 0
}

// BroadcastHi returns a vector with every lane set to the last lane of
// v. Mirrors simd_broadcasthi_i16, used to stitch the row-gap prefix
// scan across consecutive column vectors.
func BroadcastHi(v Vec) Vec {
	return Broadcast(v[L-1])
}

// GapExtendAll returns a vector where lane l holds (l+1)*gapExtend,
// saturating. Mirrors get_gap_extend_all.
func GapExtendAll(gapExtend int16) Vec {
	var r Vec
	for i := range r {
		r[i] = satAdd16(0, int32(gapExtend)*int32(i+1))
	}
	return r
}

// LookupBytes implements the raw-byte substitution lookup: lane i
// scores matchScore if a[i] == b[i], mismatchScore otherwise. Mirrors
// halfsimd_lookup_bytes_i16.
func LookupBytes(matchScore, mismatchScore int16, a, b HalfVec) Vec {
	var r Vec
	for i := 0; i < L; i++ {
		if a[i] == b[i] {
			r[i] = matchScore
		} else {
			r[i] = mismatchScore
		}
	}
	return r
}

// LookupRows widens a byte window into substitution scores using one
// score row per possible reference character. Mirrors
// halfsimd_lookup1_i16 / halfsimd_lookup2_i16 (LUT-row shuffle
// lookup), expressed as direct row indexing since Go has no
// byte-shuffle primitive to piggyback on.
func LookupRows(row []int16, codes HalfVec) Vec {
	var r Vec
	for i := 0; i < L; i++ {
		r[i] = row[codes[i]]
	}
	return r
}

// Movemask2Bit packs, for each lane, the pair (dEqC, dEqR) into two
// bits of the returned word: bit 2*l is set if dEqC[l] is true, bit
// 2*l+1 is set if dEqR[l] is true. Mirrors
// simd_movemask_i8(simd_blend_i8(trace_D_C, trace_D_R, hi-byte-mask)).
func Movemask2Bit(dEqC, dEqR Vec) uint32 {
	var word uint32
	for i := 0; i < L; i++ {
		if dEqC[i] != 0 {
			word |= 1 << uint(2*i)
		}
		if dEqR[i] != 0 {
			word |= 1 << uint(2*i+1)
		}
	}
	return word
}
