//go:build !amd64 && !arm64

package m5ops

// No gem5 encoding for this GOARCH. The functions stay non-inlinable so a
// call is still an optimization barrier, matching the assembly variants.

//go:noinline
func resetStats() {}

//go:noinline
func dumpStats() {}
