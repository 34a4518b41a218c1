//go:build avogen
// +build avogen

package main

import (
	. "github.com/mmcloughlin/avo/build"
	op "github.com/mmcloughlin/avo/operand"
	"github.com/mmcloughlin/avo/reg"
)

// genPrefixScanKernel emits an SSE2 affine row-gap prefix scan over 8
// packed int16 lanes: the shift-by-1/2/4 doubling scan described in
// vecops.PrefixMaxScan, expressed with PSLLDQ shifts and PADDSW/PMAXSW
// so the hot path in placeBlock can eventually call into real SIMD
// without changing its Go call sites. PSLLDQ zero-fills the vacated
// low lanes, whereas vecops.PrefixMaxScan excludes them from the max.
func genPrefixScanKernel() {
	TEXT("prefixMaxScanSSE2", NOSPLIT, "func(v *[8]int16, gapExtend int16) [8]int16")
	Doc("prefixMaxScanSSE2 computes the affine row-gap closure over 8 lanes.")
	Doc("See vecops.PrefixMaxScan for the reference Go implementation this mirrors.")

	vPtr := Load(Param("v"), GP64())
	gap := Load(Param("gapExtend"), GP16())

	cur := XMM()
	MOVOU(op.Mem{Base: vPtr}, cur)

	gapVec := XMM()
	MOVD(gap.As32(), gapVec)
	PSHUFLW(op.Imm(0), gapVec, gapVec)
	PSHUFD(op.Imm(0), gapVec, gapVec)

	for _, shift := range []int{1, 2, 4} {
		shifted := XMM()
		MOVOU(cur, shifted)
		PSLLDQ(op.Imm(uint64(shift*2)), shifted)

		scaled := XMM()
		MOVOU(gapVec, scaled)
		for i := 1; i < shift; i++ {
			PADDSW(gapVec, scaled)
		}
		PADDSW(scaled, shifted)
		PMAXSW(shifted, cur)
	}

	out := GP64()
	Load(ReturnIndex(0), out)
	MOVOU(cur, op.Mem{Base: out})
	RET()
}

// genAddMaxKernel emits the saturating add+max pair used throughout
// placeBlock's affine recurrence (D11/C11 combination).
func genAddMaxKernel() {
	TEXT("addMaxSSE2", NOSPLIT, "func(a, b, c *[8]int16) [8]int16")
	Doc("addMaxSSE2 computes max(a, b + c) over 8 packed int16 lanes.")

	aPtr := Load(Param("a"), GP64())
	bPtr := Load(Param("b"), GP64())
	cPtr := Load(Param("c"), GP64())

	av := XMM()
	MOVOU(op.Mem{Base: aPtr}, av)
	bv := XMM()
	MOVOU(op.Mem{Base: bPtr}, bv)
	cv := XMM()
	MOVOU(op.Mem{Base: cPtr}, cv)

	PADDSW(cv, bv)
	PMAXSW(bv, av)

	out := GP64()
	Load(ReturnIndex(0), out)
	MOVOU(av, op.Mem{Base: out})
	RET()

	var _ reg.VecVirtual
}
