package harness_test

import (
	"testing"

	"github.com/eys29/gem5-vulcan/harness"
	"github.com/eys29/gem5-vulcan/sim/cache"
)

func TestTrafficGeneratorLinearWrites(t *testing.T) {
	generator, err := harness.NewTrafficGenerator(
		harness.DefaultTrafficConfig(), cache.VulcanL1Config())
	if err != nil {
		t.Fatal(err)
	}

	stats := generator.Run()

	// 16384 bytes at 64-byte stride: 256 write requests, each to a fresh
	// line, so every one misses.
	if stats.Writes != 256 {
		t.Errorf("writes = %d, want 256", stats.Writes)
	}
	if stats.Reads != 0 {
		t.Errorf("reads = %d, want 0 for a pure write stream", stats.Reads)
	}
	if stats.Misses != 256 {
		t.Errorf("misses = %d, want 256", stats.Misses)
	}
	if stats.Hits != 0 {
		t.Errorf("hits = %d, want 0", stats.Hits)
	}
}

func TestTrafficGeneratorWrapsAtMaxAddr(t *testing.T) {
	config := harness.TrafficConfig{
		StartAddr:   0,
		MaxAddr:     256,
		Stride:      64,
		ReadPercent: 0,
		DataLimit:   512,
	}

	generator, err := harness.NewTrafficGenerator(config, cache.VulcanL1Config())
	if err != nil {
		t.Fatal(err)
	}

	stats := generator.Run()

	// Eight requests over a four-line window: the second sweep hits.
	if stats.Writes != 8 {
		t.Errorf("writes = %d, want 8", stats.Writes)
	}
	if stats.Misses != 4 {
		t.Errorf("misses = %d, want 4", stats.Misses)
	}
	if stats.Hits != 4 {
		t.Errorf("hits = %d, want 4", stats.Hits)
	}
}

func TestTrafficGeneratorReadMix(t *testing.T) {
	config := harness.DefaultTrafficConfig()
	config.ReadPercent = 50

	generator, err := harness.NewTrafficGenerator(config, cache.VulcanL1Config())
	if err != nil {
		t.Fatal(err)
	}

	stats := generator.Run()

	if stats.Reads == 0 || stats.Writes == 0 {
		t.Errorf("expected a mixed stream, got reads=%d writes=%d",
			stats.Reads, stats.Writes)
	}
	if stats.Reads+stats.Writes != 256 {
		t.Errorf("total requests = %d, want 256", stats.Reads+stats.Writes)
	}
}

func TestTrafficConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*harness.TrafficConfig)
	}{
		{"zero stride", func(c *harness.TrafficConfig) { c.Stride = 0 }},
		{"zero data limit", func(c *harness.TrafficConfig) { c.DataLimit = 0 }},
		{"bad read percent", func(c *harness.TrafficConfig) { c.ReadPercent = 101 }},
		{"empty range", func(c *harness.TrafficConfig) { c.MaxAddr = c.StartAddr }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := harness.DefaultTrafficConfig()
			tt.mutate(&config)
			if err := config.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
