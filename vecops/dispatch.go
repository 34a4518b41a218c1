package vecops

import "golang.org/x/sys/cpu"

// Step and LargeStep are the block-shift tuning constants used by the
// adaptive control loop. LargeStep equals Step on every CPU, so the
// control loop's
// `if STEP != LARGE_STEP && block_size >= (LARGE_STEP/STEP)*min_size`
// guard never switches the step.
var (
	Step      = minInt(L/2, 8)
	LargeStep = Step
	// WideTuning reports whether AVX2-class CPU features were
	// detected. Exposed for tests/diagnostics only: there is a single
	// pure-Go Vec arithmetic path regardless of its value, so it does
	// not change Vec's logical results or select an alternate kernel.
	WideTuning bool
)

func init() {
	initDispatch()
}

// initDispatch mirrors simdpack.go's initSIMDSelection: a single
// init-time feature check. It records AVX2 support in WideTuning and
// leaves LargeStep equal to Step either way; there is one pure-Go
// kernel (see DESIGN.md).
func initDispatch() {
	if cpu.X86.HasAVX2 {
		LargeStep = Step
		WideTuning = true
		return
	}
	WideTuning = false
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
