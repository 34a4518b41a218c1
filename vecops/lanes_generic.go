//go:build !lanes16

package vecops

// L is the number of 16-bit lanes in a Vec. This build uses the
// narrower width (the Go analogue of the block-aligner crate's
// "simd_wasm" 128-bit lane count).
const L = 8
