//go:build arm64

package m5ops

// Implemented in m5ops_arm64.s.

func resetStats()
func dumpStats()
