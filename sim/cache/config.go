package cache

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds cache model parameters.
type Config struct {
	// Size in bytes.
	Size int `json:"size"`
	// Associativity (number of ways). 1 is direct-mapped.
	Associativity int `json:"associativity"`
	// BlockSize in bytes (cache line size).
	BlockSize int `json:"block_size"`
	// HitLatency in cycles.
	HitLatency uint64 `json:"hit_latency"`
	// MissLatency in cycles, including the next-level access.
	MissLatency uint64 `json:"miss_latency"`
}

// VulcanL1Config returns the Vulcan L1 data cache configuration:
// 16KiB, direct-mapped, 64-byte lines, no prefetcher modeled.
// Tag and data latency are 2 cycles each, so a hit costs 4 cycles.
func VulcanL1Config() Config {
	return Config{
		Size:          16 * 1024,
		Associativity: 1,
		BlockSize:     64,
		HitLatency:    4,
		MissLatency:   100,
	}
}

// Validate checks that the configuration describes a realizable cache.
func (c Config) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("cache size must be positive, got %d", c.Size)
	}
	if c.Associativity <= 0 {
		return fmt.Errorf("associativity must be positive, got %d", c.Associativity)
	}
	if c.BlockSize <= 0 {
		return fmt.Errorf("block size must be positive, got %d", c.BlockSize)
	}
	wayBytes := c.Associativity * c.BlockSize
	if c.Size%wayBytes != 0 {
		return fmt.Errorf("cache size %d is not a multiple of associativity*block size %d",
			c.Size, wayBytes)
	}
	return nil
}

// LoadConfig loads a Config from a JSON file. Fields absent from the file
// keep the Vulcan L1 defaults.
func LoadConfig(path string) (Config, error) {
	config := VulcanL1Config()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read cache config file: %w", err)
	}
	if err := json.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("failed to parse cache config file: %w", err)
	}
	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid cache config %s: %w", path, err)
	}

	return config, nil
}
