// Package m5ops emits gem5 pseudo-instructions (m5ops) from Go programs
// running under gem5 simulation.
//
// The simulator decodes a handful of magic instruction encodings that sit
// outside the normal instruction set and reacts to them out of band. This
// package provides the two statistics operations needed to bracket a region
// of interest: reset the collected counters at its start and dump them at
// its end.
//
// Each supported GOARCH carries its own encoding in an assembly file; the
// right one is selected at build time. On architectures without a gem5
// encoding the operations compile to empty functions. Every variant is an
// opaque, non-inlinable call, so the compiler cannot move buffer loads or
// stores across a signal; the call itself is the compile-time barrier the
// region boundary needs. No hardware fence is involved and none is wanted:
// the barrier only pins instruction order, it does not synchronize cores.
//
// The operations are fire-and-forget. Whether a simulator is listening is
// unobservable to the caller.
package m5ops

// ResetStats instructs the simulator to zero all collected statistics.
// Under gem5 this marks the start of the region of interest. Outside a
// simulator that recognizes the encoding it has no architectural effect.
func ResetStats() {
	resetStats()
}

// DumpStats instructs the simulator to snapshot and emit all collected
// statistics. Under gem5 this marks the end of the region of interest.
func DumpStats() {
	dumpStats()
}

// Signals adapts the package-level operations to an interface value, so a
// workload can take the signal source as a dependency.
type Signals struct{}

// ResetStats emits the reset-statistics pseudo-instruction.
func (Signals) ResetStats() { resetStats() }

// DumpStats emits the dump-statistics pseudo-instruction.
func (Signals) DumpStats() { dumpStats() }
