package harness

import (
	"fmt"

	"github.com/eys29/gem5-vulcan/sim/cache"
	"github.com/eys29/gem5-vulcan/sim/memory"
)

// TrafficConfig configures the linear traffic generator.
type TrafficConfig struct {
	// StartAddr is the first address of the sweep.
	StartAddr uint64

	// MaxAddr is the exclusive upper bound; the sweep wraps back to
	// StartAddr when the next request would cross it.
	MaxAddr uint64

	// Stride is the number of bytes each request covers.
	Stride int

	// ReadPercent is the share of read requests, 0 to 100. The mix is
	// deterministic: request i is a read when i mod 100 < ReadPercent.
	ReadPercent int

	// DataLimit is the total number of bytes to access.
	DataLimit int
}

// DefaultTrafficConfig mirrors the Vulcan traffic-generator setup: a pure
// write stream at one-line stride, capped at one cache's worth of data over
// a 2GiB address range.
func DefaultTrafficConfig() TrafficConfig {
	return TrafficConfig{
		StartAddr:   0,
		MaxAddr:     2 << 30,
		Stride:      64,
		ReadPercent: 0,
		DataLimit:   16384,
	}
}

// Validate checks the traffic configuration.
func (c TrafficConfig) Validate() error {
	if c.Stride <= 0 {
		return fmt.Errorf("stride must be positive, got %d", c.Stride)
	}
	if c.DataLimit <= 0 {
		return fmt.Errorf("data limit must be positive, got %d", c.DataLimit)
	}
	if c.ReadPercent < 0 || c.ReadPercent > 100 {
		return fmt.Errorf("read percent must be in [0,100], got %d", c.ReadPercent)
	}
	if c.MaxAddr <= c.StartAddr {
		return fmt.Errorf("max address 0x%X must be above start address 0x%X",
			c.MaxAddr, c.StartAddr)
	}
	return nil
}

// TrafficGenerator issues a linear request stream through a cache model.
type TrafficGenerator struct {
	config TrafficConfig
	cache  *cache.Cache
}

// NewTrafficGenerator validates the configuration and builds a generator
// with a fresh memory and cache.
func NewTrafficGenerator(config TrafficConfig, cacheConfig cache.Config) (*TrafficGenerator, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid traffic config: %w", err)
	}
	if err := cacheConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid cache config: %w", err)
	}

	mem := memory.New()
	return &TrafficGenerator{
		config: config,
		cache:  cache.New(cacheConfig, cache.NewMemoryBacking(mem)),
	}, nil
}

// Run issues requests until the data limit is reached and returns the cache
// counters for the stream.
func (g *TrafficGenerator) Run() cache.Stats {
	g.cache.ResetStats()

	stride := uint64(g.config.Stride)
	addr := g.config.StartAddr
	requests := g.config.DataLimit / g.config.Stride

	for i := 0; i < requests; i++ {
		if addr+stride > g.config.MaxAddr {
			addr = g.config.StartAddr
		}

		if i%100 < g.config.ReadPercent {
			g.cache.Read(addr, 8)
		} else {
			g.cache.Write(addr, 8, uint64(i))
		}

		addr += stride
	}

	return g.cache.Stats()
}
