//go:build amd64

package m5ops

// Implemented in m5ops_amd64.s.

func resetStats()
func dumpStats()
