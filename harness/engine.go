// Package harness replays the cache-priming protocol against a host-side
// cache model, standing in for the gem5 run so the priming property can be
// checked without a simulator. It also carries a linear traffic generator
// for exercising the cache model independently of the priming pattern.
package harness

import (
	"fmt"
	"time"

	"github.com/eys29/gem5-vulcan/prime"
	"github.com/eys29/gem5-vulcan/sim/cache"
	"github.com/eys29/gem5-vulcan/sim/memory"
)

// EventKind tags an entry in the engine's event trace.
type EventKind int

const (
	// EventAccess is a buffer access.
	EventAccess EventKind = iota
	// EventResetStats marks the reset-statistics signal.
	EventResetStats
	// EventDumpStats marks the dump-statistics signal.
	EventDumpStats
)

// Op distinguishes reads from writes in the event trace.
type Op int

const (
	// OpRead is a load.
	OpRead Op = iota
	// OpWrite is a store.
	OpWrite
)

// Phase identifies which protocol phase issued an access.
type Phase int

const (
	// PhaseColdTouch is the unmeasured initialization pass.
	PhaseColdTouch Phase = iota
	// PhasePrime is the measured read-modify-write pass.
	PhasePrime
	// PhaseVerify is the measured checksum pass.
	PhaseVerify
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseColdTouch:
		return "cold_touch"
	case PhasePrime:
		return "prime"
	case PhaseVerify:
		return "verify"
	default:
		return "unknown"
	}
}

// Event is one entry in the engine's trace: either a buffer access tagged
// with its phase, or a statistics signal marker.
type Event struct {
	Kind  EventKind
	Phase Phase
	Op    Op
	Addr  uint64
}

// Config configures the replay engine.
type Config struct {
	// Geometry is the cache geometry the workload assumes.
	Geometry prime.Geometry

	// Cache is the modeled cache configuration. It does not have to match
	// the geometry; running with a mismatch is how the harness demonstrates
	// the silent-hazard case.
	Cache cache.Config

	// BaseAddr is where the replayed buffer sits in the modeled address
	// space. It must be a multiple of the geometry's cache size, mirroring
	// the native workload's aligned allocation.
	BaseAddr uint64

	// Trace enables event recording. Off by default; the trace grows with
	// every access of every phase.
	Trace bool
}

// DefaultConfig pairs the default workload geometry with the Vulcan L1
// cache configuration.
func DefaultConfig() Config {
	return Config{
		Geometry: prime.DefaultGeometry(),
		Cache:    cache.VulcanL1Config(),
		BaseAddr: 0x100000,
	}
}

// Result holds the outcome of one replayed run.
type Result struct {
	// Checksum is the verify pass checksum.
	Checksum uint64 `json:"checksum"`

	// ExpectedChecksum is the closed-form checksum for the geometry.
	ExpectedChecksum uint64 `json:"expected_checksum"`

	// SinkValue is the truncated checksum stored to the side-effect sink.
	SinkValue byte `json:"sink_value"`

	// WarmupStats are the cache counters for the cold-touch pass, before
	// the reset signal.
	WarmupStats cache.Stats `json:"warmup_stats"`

	// ROIStats are the cache counters between the reset and dump signals.
	ROIStats cache.Stats `json:"roi_stats"`

	// WallTime is the host time the replay took.
	WallTime time.Duration `json:"wall_time_ns"`

	// Events is the recorded trace, when tracing was enabled.
	Events []Event `json:"-"`
}

// Primed reports whether the run demonstrated the priming property: no
// misses inside the region of interest and the expected checksum.
func (r Result) Primed() bool {
	return r.ROIStats.Misses == 0 && r.Checksum == r.ExpectedChecksum
}

// Engine drives the priming protocol through the cache model.
type Engine struct {
	config Config
	cache  *cache.Cache
	events []Event
}

// NewEngine validates the configuration and builds the engine with a fresh
// memory and cache.
func NewEngine(config Config) (*Engine, error) {
	if err := config.Geometry.Validate(); err != nil {
		return nil, fmt.Errorf("invalid geometry: %w", err)
	}
	if err := config.Cache.Validate(); err != nil {
		return nil, fmt.Errorf("invalid cache config: %w", err)
	}
	if config.BaseAddr%uint64(config.Geometry.CacheSizeBytes) != 0 {
		return nil, fmt.Errorf("base address 0x%X is not aligned to cache size %d",
			config.BaseAddr, config.Geometry.CacheSizeBytes)
	}

	mem := memory.New()
	return &Engine{
		config: config,
		cache:  cache.New(config.Cache, cache.NewMemoryBacking(mem)),
	}, nil
}

// Run replays the full protocol once: cold touch, reset signal, prime pass,
// verify pass, dump signal. The phase order matches the native workload and
// is the property the trace lets tests check.
func (e *Engine) Run() Result {
	geo := e.config.Geometry
	base := e.config.BaseAddr
	start := time.Now()

	for i := 0; i < geo.CacheSizeBytes; i++ {
		e.write(PhaseColdTouch, base+uint64(i), uint64(byte(i)))
	}
	warmup := e.cache.Stats()

	e.signal(EventResetStats)
	e.cache.ResetStats()

	for line := 0; line < geo.LineCount(); line++ {
		addr := base + uint64(geo.LineOffset(line))
		value := e.read(PhasePrime, addr)
		e.write(PhasePrime, addr, value+1)
	}

	var checksum uint64
	for line := 0; line < geo.LineCount(); line++ {
		addr := base + uint64(geo.LineOffset(line))
		checksum += e.read(PhaseVerify, addr)
	}

	e.signal(EventDumpStats)
	roi := e.cache.Stats()

	return Result{
		Checksum:         checksum,
		ExpectedChecksum: prime.ExpectedChecksum(geo),
		SinkValue:        byte(checksum),
		WarmupStats:      warmup,
		ROIStats:         roi,
		WallTime:         time.Since(start),
		Events:           e.events,
	}
}

func (e *Engine) read(phase Phase, addr uint64) uint64 {
	if e.config.Trace {
		e.events = append(e.events, Event{Kind: EventAccess, Phase: phase, Op: OpRead, Addr: addr})
	}
	return e.cache.Read(addr, 1).Data
}

func (e *Engine) write(phase Phase, addr uint64, value uint64) {
	if e.config.Trace {
		e.events = append(e.events, Event{Kind: EventAccess, Phase: phase, Op: OpWrite, Addr: addr})
	}
	e.cache.Write(addr, 1, value)
}

func (e *Engine) signal(kind EventKind) {
	if e.config.Trace {
		e.events = append(e.events, Event{Kind: kind})
	}
}
