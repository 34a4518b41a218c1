//go:build avogen
// +build avogen

// Command avogen emits the native amd64 kernels for vecops, the same
// way fastpfor's internal/avo emits its pack/delta/zigzag kernels.
// Gated behind the avogen build tag so it is never part of a normal
// `go build`/`go test` — run explicitly with:
//
//	go run -tags avogen ./internal/avogen -component=all
//
// This is scaffolding for a future native kernel; vecops currently
// ships a pure-Go implementation (see DESIGN.md for why no amd64 .s
// kernel is checked in by default).
package main

import (
	"flag"
	"strings"

	. "github.com/mmcloughlin/avo/build"
)

var component = flag.String("component", "all", "component to generate")

func main() {
	flag.Parse()

	comp := strings.ToLower(*component)

	Package("github.com/Akron/blockalign/vecops")
	ConstraintExpr("amd64")
	ConstraintExpr("!noasm")

	if comp == "scan" || comp == "all" {
		genPrefixScanKernel()
	}
	if comp == "arith" || comp == "all" {
		genAddMaxKernel()
	}

	Generate()
}
