// Package prime implements the cache-priming workload: it warms every line
// of a cache-sized buffer so a verification pass can run with zero misses,
// bracketing the measured passes with simulator statistics signals.
package prime

import "fmt"

// Geometry describes the cache the workload targets. The values must match
// the simulator's configured cache parameters; a mismatch is not detectable
// at run time and silently invalidates the priming claim.
type Geometry struct {
	// CacheSizeBytes is the total cache capacity in bytes.
	CacheSizeBytes int `json:"cache_size_bytes"`

	// CacheLineBytes is the size of one cache line in bytes.
	CacheLineBytes int `json:"cache_line_bytes"`
}

// DefaultGeometry returns the geometry of the Vulcan L1 data cache:
// 16KiB with 64-byte lines, 256 lines.
func DefaultGeometry() Geometry {
	return Geometry{
		CacheSizeBytes: 16 * 1024,
		CacheLineBytes: 64,
	}
}

// LineCount returns the number of cache lines the geometry describes.
func (g Geometry) LineCount() int {
	return g.CacheSizeBytes / g.CacheLineBytes
}

// LineOffset returns the buffer offset of the first byte of the given line.
func (g Geometry) LineOffset(line int) int {
	return line * g.CacheLineBytes
}

// Validate checks that the geometry is internally consistent: positive
// sizes and a cache size that is an exact multiple of the line size.
func (g Geometry) Validate() error {
	if g.CacheSizeBytes <= 0 {
		return fmt.Errorf("cache size must be positive, got %d", g.CacheSizeBytes)
	}
	if g.CacheLineBytes <= 0 {
		return fmt.Errorf("cache line size must be positive, got %d", g.CacheLineBytes)
	}
	if g.CacheSizeBytes%g.CacheLineBytes != 0 {
		return fmt.Errorf("cache size %d is not a multiple of line size %d",
			g.CacheSizeBytes, g.CacheLineBytes)
	}
	return nil
}
