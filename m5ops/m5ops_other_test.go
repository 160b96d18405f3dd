//go:build !amd64 && !arm64

package m5ops_test

import (
	"testing"

	"github.com/eys29/gem5-vulcan/m5ops"
)

// On architectures without a gem5 encoding the signal operations must be
// plain no-ops: safe to call anywhere, any number of times. The amd64 and
// arm64 variants execute magic encodings and can only run inside gem5, so
// they are deliberately not exercised here.
func TestSignalsAreInert(t *testing.T) {
	for i := 0; i < 3; i++ {
		m5ops.ResetStats()
		m5ops.DumpStats()
	}

	var s m5ops.Signals
	s.ResetStats()
	s.DumpStats()
}
