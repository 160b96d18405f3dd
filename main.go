// Package main provides the entry point for gem5-vulcan.
// gem5-vulcan is a cache-priming micro-benchmark for gem5 plus a host-side
// harness that validates the priming property against a cache model.
//
// For the gem5 workload binary, use: go build ./cmd/primecache
// For the host-side validation CLI, use: go run ./cmd/primesim
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("gem5-vulcan - cache priming benchmark")
	fmt.Println("")
	fmt.Println("Binaries:")
	fmt.Println("  cmd/primecache   gem5 workload (cross-compile, run in SE mode)")
	fmt.Println("  cmd/primesim     host-side priming validation harness")
	fmt.Println("")
	fmt.Println("Run 'go run ./cmd/primesim' to replay the workload against")
	fmt.Println("the Vulcan L1 cache model.")

	if len(os.Args) > 1 {
		fmt.Println("\nNote: You provided arguments. Use the cmd/ binaries instead.")
	}
}
