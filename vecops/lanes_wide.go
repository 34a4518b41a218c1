//go:build lanes16

package vecops

// L is the number of 16-bit lanes in a Vec. This build uses the wider
// width (the Go analogue of the block-aligner crate's "simd_avx2"
// 256-bit lane count).
const L = 16
