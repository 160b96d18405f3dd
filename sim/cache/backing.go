package cache

import (
	"github.com/eys29/gem5-vulcan/sim/memory"
)

// MemoryBacking wraps memory.Memory as a BackingStore.
type MemoryBacking struct {
	memory *memory.Memory
}

// NewMemoryBacking creates a new MemoryBacking adapter.
func NewMemoryBacking(mem *memory.Memory) *MemoryBacking {
	return &MemoryBacking{memory: mem}
}

// Read fetches data from the backing memory.
func (m *MemoryBacking) Read(addr uint64, size int) []byte {
	return m.memory.Read(addr, size)
}

// Write stores data to the backing memory.
func (m *MemoryBacking) Write(addr uint64, data []byte) {
	m.memory.Write(addr, data)
}
