// Package cache provides a functional cache model built on Akita cache
// components. The harness replays memory access patterns through it to
// observe the hit/miss behavior a configured simulator cache would exhibit.
package cache

import (
	akitacache "github.com/sarchlab/akita/v4/mem/cache"
)

// AccessResult contains the result of a single cache access.
type AccessResult struct {
	// Hit indicates whether the access was a cache hit.
	Hit bool
	// Latency is the number of cycles this access takes.
	Latency uint64
	// Data is the data read (for load operations).
	Data uint64
	// Evicted is true if a valid block was evicted.
	Evicted bool
	// EvictedAddr is the address of the evicted block (if Evicted is true).
	EvictedAddr uint64
}

// Stats holds cache access counters. ResetStats zeroes them, which is how
// the harness models the simulator's reset-statistics signal.
type Stats struct {
	Reads      uint64 `json:"reads"`
	Writes     uint64 `json:"writes"`
	Hits       uint64 `json:"hits"`
	Misses     uint64 `json:"misses"`
	Evictions  uint64 `json:"evictions"`
	Writebacks uint64 `json:"writebacks"`
}

// BackingStore is the next level in the memory hierarchy.
type BackingStore interface {
	// Read fetches data from the backing store.
	Read(addr uint64, size int) []byte
	// Write stores data to the backing store.
	Write(addr uint64, data []byte)
}

// Cache is a set-associative, write-allocate, write-back cache model. Tag
// and replacement state live in an Akita cache directory; data lives in a
// flat block store indexed by set and way.
type Cache struct {
	config    Config
	directory *akitacache.DirectoryImpl
	dataStore [][]byte
	stats     Stats
	backing   BackingStore
}

// New creates a cache with the given configuration. The configuration
// should be validated first; New trusts it.
func New(config Config, backing BackingStore) *Cache {
	numSets := config.Size / (config.Associativity * config.BlockSize)
	totalBlocks := numSets * config.Associativity

	dataStore := make([][]byte, totalBlocks)
	for i := range dataStore {
		dataStore[i] = make([]byte, config.BlockSize)
	}

	return &Cache{
		config: config,
		directory: akitacache.NewDirectory(
			numSets,
			config.Associativity,
			config.BlockSize,
			akitacache.NewLRUVictimFinder(),
		),
		dataStore: dataStore,
		backing:   backing,
	}
}

// Config returns the cache configuration.
func (c *Cache) Config() Config {
	return c.config
}

// Stats returns a snapshot of the access counters.
func (c *Cache) Stats() Stats {
	return c.stats
}

// ResetStats zeroes the access counters without touching cache content.
func (c *Cache) ResetStats() {
	c.stats = Stats{}
}

func (c *Cache) blockIndex(block *akitacache.Block) int {
	return block.SetID*c.config.Associativity + block.WayID
}

func (c *Cache) blockAddr(addr uint64) uint64 {
	return addr / uint64(c.config.BlockSize) * uint64(c.config.BlockSize)
}

// Read performs a cache read of size bytes at addr.
func (c *Cache) Read(addr uint64, size int) AccessResult {
	c.stats.Reads++

	block := c.directory.Lookup(0, c.blockAddr(addr))
	if block != nil && block.IsValid {
		c.stats.Hits++
		c.directory.Visit(block)

		offset := addr % uint64(c.config.BlockSize)
		data := extractData(c.dataStore[c.blockIndex(block)], offset, size)

		return AccessResult{
			Hit:     true,
			Latency: c.config.HitLatency,
			Data:    data,
		}
	}

	c.stats.Misses++
	return c.handleMiss(addr, size, false, 0)
}

// Write performs a cache write of size bytes at addr. Write-allocate: on a
// miss the block is fetched first, then written, leaving it dirty.
func (c *Cache) Write(addr uint64, size int, data uint64) AccessResult {
	c.stats.Writes++

	block := c.directory.Lookup(0, c.blockAddr(addr))
	if block != nil && block.IsValid {
		c.stats.Hits++
		c.directory.Visit(block)

		offset := addr % uint64(c.config.BlockSize)
		storeData(c.dataStore[c.blockIndex(block)], offset, size, data)
		block.IsDirty = true

		return AccessResult{
			Hit:     true,
			Latency: c.config.HitLatency,
		}
	}

	c.stats.Misses++
	return c.handleMiss(addr, size, true, data)
}

func (c *Cache) handleMiss(addr uint64, size int, isWrite bool, writeData uint64) AccessResult {
	result := AccessResult{
		Hit:     false,
		Latency: c.config.MissLatency,
	}

	blockAddr := c.blockAddr(addr)

	victim := c.directory.FindVictim(blockAddr)
	if victim == nil {
		return result
	}

	victimData := c.dataStore[c.blockIndex(victim)]

	if victim.IsValid {
		c.stats.Evictions++
		result.Evicted = true
		result.EvictedAddr = victim.Tag

		if victim.IsDirty && c.backing != nil {
			c.stats.Writebacks++
			c.backing.Write(victim.Tag, victimData)
		}
	}

	if c.backing != nil {
		copy(victimData, c.backing.Read(blockAddr, c.config.BlockSize))
	} else {
		clear(victimData)
	}

	// Tag stores the block-aligned address.
	victim.Tag = blockAddr
	victim.IsValid = true
	victim.IsDirty = false

	offset := addr % uint64(c.config.BlockSize)
	if isWrite {
		storeData(victimData, offset, size, writeData)
		victim.IsDirty = true
	} else {
		result.Data = extractData(victimData, offset, size)
	}

	c.directory.Visit(victim)

	return result
}

// Invalidate marks the block holding addr invalid without writeback.
func (c *Cache) Invalidate(addr uint64) {
	block := c.directory.Lookup(0, c.blockAddr(addr))
	if block != nil && block.IsValid {
		block.IsValid = false
		block.IsDirty = false
	}
}

// Flush writes back all dirty blocks and invalidates everything.
func (c *Cache) Flush() {
	for _, set := range c.directory.GetSets() {
		for _, block := range set.Blocks {
			if block.IsValid && block.IsDirty && c.backing != nil {
				c.backing.Write(block.Tag, c.dataStore[c.blockIndex(block)])
				c.stats.Writebacks++
			}
			block.IsValid = false
			block.IsDirty = false
		}
	}
}

// Reset invalidates all blocks without writeback and zeroes the counters.
func (c *Cache) Reset() {
	c.directory.Reset()
	c.stats = Stats{}
}

func extractData(data []byte, offset uint64, size int) uint64 {
	if data == nil || int(offset)+size > len(data) {
		return 0
	}

	var result uint64
	for i := 0; i < size; i++ {
		result |= uint64(data[int(offset)+i]) << (i * 8)
	}
	return result
}

func storeData(data []byte, offset uint64, size int, value uint64) {
	if data == nil || int(offset)+size > len(data) {
		return
	}

	for i := 0; i < size; i++ {
		data[int(offset)+i] = byte(value >> (i * 8))
	}
}
