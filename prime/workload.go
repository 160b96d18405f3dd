package prime

import "sync/atomic"

// StatsSignaler brackets the measured region by signaling the host
// simulator. Both operations are side-effect only and cannot fail.
type StatsSignaler interface {
	// ResetStats zeroes the simulator's collected counters.
	ResetStats()
	// DumpStats snapshots and emits the simulator's collected counters.
	DumpStats()
}

// NopSignaler is a StatsSignaler that does nothing. It stands in for the
// simulator bracket in tests and on hosts with no simulator attached.
type NopSignaler struct{}

// ResetStats does nothing.
func (NopSignaler) ResetStats() {}

// DumpStats does nothing.
func (NopSignaler) DumpStats() {}

// sink anchors the verification checksum. Storing through sync/atomic keeps
// the verify pass's loads observable, so the compiler cannot eliminate them.
// Only the low byte is meaningful.
var sink atomic.Uint32

// SinkValue returns the truncated checksum left behind by the most recent
// completed run.
func SinkValue() byte {
	return byte(sink.Load())
}

// Workload primes a cache-sized, cache-aligned buffer and verifies every
// line is resident. The phases are exposed individually for testing; Run
// executes the full protocol in its required order.
type Workload struct {
	geo   Geometry
	sig   StatsSignaler
	alloc Allocator
	buf   *Buffer
}

// Option configures a Workload.
type Option func(*Workload)

// WithSignaler sets the simulator signal source. Defaults to NopSignaler.
func WithSignaler(sig StatsSignaler) Option {
	return func(w *Workload) { w.sig = sig }
}

// WithAllocator sets the raw storage allocator backing the buffer.
func WithAllocator(alloc Allocator) Option {
	return func(w *Workload) { w.alloc = alloc }
}

// New creates a Workload for the given geometry.
func New(geo Geometry, opts ...Option) (*Workload, error) {
	if err := geo.Validate(); err != nil {
		return nil, err
	}

	w := &Workload{
		geo: geo,
		sig: NopSignaler{},
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Geometry returns the workload's cache geometry.
func (w *Workload) Geometry() Geometry {
	return w.geo
}

// Buffer returns the backing buffer, or nil before Allocate or after
// Release.
func (w *Workload) Buffer() *Buffer {
	return w.buf
}

// Allocate obtains the backing buffer: exactly one cache size of bytes,
// aligned to the cache size. The error wraps ErrAllocation on failure.
func (w *Workload) Allocate() error {
	buf, err := AllocAlignedWith(w.alloc, w.geo.CacheSizeBytes, w.geo.CacheSizeBytes)
	if err != nil {
		return err
	}
	w.buf = buf
	return nil
}

// ColdTouch writes every byte of the buffer once, setting buf[i] = byte(i).
// It runs outside the measured region: it resolves any virtual-memory
// backing and establishes the known initial content.
func (w *Workload) ColdTouch() {
	data := w.buf.Bytes()
	for i := range data {
		data[i] = byte(i)
	}
}

// Prime touches the first byte of every cache line with a read-modify-write,
// one line-sized stride apart, in ascending order. The read fetches the
// line; the write moves it to the modified state.
func (w *Workload) Prime() {
	data := w.buf.Bytes()
	for line := 0; line < w.geo.LineCount(); line++ {
		data[w.geo.LineOffset(line)]++
	}
}

// Verify reads the first byte of every cache line in ascending order and
// accumulates it into a checksum. With every line resident from Prime, this
// pass generates zero additional misses when the geometry matches the
// simulator's cache.
func (w *Workload) Verify() uint64 {
	data := w.buf.Bytes()
	var checksum uint64
	for line := 0; line < w.geo.LineCount(); line++ {
		checksum += uint64(data[w.geo.LineOffset(line)])
	}
	return checksum
}

// Release frees the backing buffer.
func (w *Workload) Release() {
	if w.buf != nil {
		w.buf.Release()
		w.buf = nil
	}
}

// Run executes the complete protocol: allocate, cold touch, reset signal,
// prime pass, verify pass, sink store, dump signal, release. The phase
// order is the measurement contract and must not change. Returns the verify
// checksum.
func (w *Workload) Run() (uint64, error) {
	if err := w.Allocate(); err != nil {
		return 0, err
	}

	w.ColdTouch()

	w.sig.ResetStats()
	w.Prime()
	checksum := w.Verify()
	sink.Store(uint32(checksum & 0xFF))
	w.sig.DumpStats()

	w.Release()
	return checksum, nil
}

// ExpectedChecksum returns the checksum Run must produce for the given
// geometry: each line's first byte holds its cold-touch value, offset mod
// 256, plus the single increment from the prime pass.
func ExpectedChecksum(geo Geometry) uint64 {
	var checksum uint64
	for line := 0; line < geo.LineCount(); line++ {
		cold := byte(geo.LineOffset(line))
		checksum += uint64(cold + 1)
	}
	return checksum
}
