package harness

// StatsRecorder is a prime.StatsSignaler that records signal calls instead
// of emitting pseudo-instructions. It lets tests run the native workload and
// check the bracket was emitted exactly once, in order.
type StatsRecorder struct {
	// Calls lists the signal names in emission order.
	Calls []string
}

// ResetStats records a reset-statistics signal.
func (r *StatsRecorder) ResetStats() {
	r.Calls = append(r.Calls, "reset")
}

// DumpStats records a dump-statistics signal.
func (r *StatsRecorder) DumpStats() {
	r.Calls = append(r.Calls, "dump")
}
