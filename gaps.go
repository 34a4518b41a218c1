package blockalign

import "fmt"

// Gaps holds the affine gap penalty pair used by the alignment core:
// a new gap costs Open, every additional residue in that gap costs
// Extend. Both must be negative, and Open must cost strictly more
// than Extend (spec precondition open < extend < 0) — Align panics
// otherwise, since the traceback bias logic depends on this ordering.
type Gaps struct {
	Open   int32
	Extend int32
}

func (g Gaps) validate() {
	if !(g.Open < 0 && g.Extend < 0) {
		panic(fmt.Sprintf("blockalign: gap costs must be negative, got open=%d extend=%d", g.Open, g.Extend))
	}
	if !(g.Open < g.Extend) {
		panic(fmt.Sprintf("blockalign: gap open must cost more than gap extend, got open=%d extend=%d", g.Open, g.Extend))
	}
}
