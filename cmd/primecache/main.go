// Command primecache is the gem5 workload that primes a 16KiB, one-level
// cache.
//
// It allocates a cache-sized, cache-aligned buffer, cold-touches every byte,
// then inside the m5ops statistics bracket primes every cache line with a
// read-modify-write and verifies all lines are hot with a checksum pass. A
// properly primed cache shows zero misses for the measured region.
//
// Build for the simulated target, e.g.:
//
//	GOOS=linux GOARCH=amd64 go build ./cmd/primecache
//	GOOS=linux GOARCH=arm64 go build ./cmd/primecache
//
// and run the binary in gem5 SE mode with a matching cache configuration
// (16KiB L1D, 64-byte lines). On real hardware the m5ops signals are inert
// and the program is a functional no-op.
//
// The cache geometry is fixed at compile time; a launching harness is
// responsible for keeping the simulator's cache configuration in sync.
// Exit status is 0 on success, 1 if the aligned buffer cannot be allocated.
package main

import (
	"fmt"
	"os"

	"github.com/eys29/gem5-vulcan/m5ops"
	"github.com/eys29/gem5-vulcan/prime"
)

func main() {
	workload, err := prime.New(
		prime.DefaultGeometry(),
		prime.WithSignaler(m5ops.Signals{}),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "primecache: %v\n", err)
		os.Exit(1)
	}

	if _, err := workload.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "primecache: %v\n", err)
		os.Exit(1)
	}
}
