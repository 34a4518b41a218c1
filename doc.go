// Package blockalign implements an adaptive banded pairwise sequence
// aligner: a square sub-rectangle of the classical Needleman-Wunsch
// dynamic-programming matrix that shifts along the anti-diagonal and
// grows in response to observed score dynamics, using wide SIMD-style
// lanes (see the vecops package) to advance many cells per step.
//
// The algorithm combines three pieces: a vectorized affine-gap
// recurrence whose row-gap term is resolved with an in-register
// prefix-max scan (placeBlock, in kernel.go), a stateful control loop
// choosing between shifting right, shifting down, growing the block,
// or terminating (Align, in align.go), and a compact, checkpointable
// traceback log recording per-cell direction bits across the sequence
// of rectangles the control loop visits (Trace, in trace.go).
//
// References:
//   - Daily, "Parasail: SIMD C library for global, semi-global, and
//     local pairwise sequence alignment"
//   - Suzuki & Kasahara, "Acceleration of Smith-Waterman by banded
//     approach with vectorization"
//   - Lemire, Boytsov & Kurz, "SIMD compression and the intersection
//     of sorted integers" (the vectorized lane layout vecops borrows
//     its add/max/shift shape from traces back to this line of work,
//     by way of the teacher's own FastPFOR codec)
package blockalign
