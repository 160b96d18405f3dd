// Package memory provides a sparse byte-addressable memory used as the
// backing store for host-side cache modeling.
package memory

import "encoding/binary"

const pageSize = 4096

// Memory is a sparse memory backed by 4KiB pages, allocated on first touch.
// Untouched memory reads as zero.
type Memory struct {
	pages map[uint64][]byte
}

// New creates an empty Memory.
func New() *Memory {
	return &Memory{pages: make(map[uint64][]byte)}
}

func (m *Memory) page(addr uint64, allocate bool) []byte {
	pageNum := addr / pageSize
	page, ok := m.pages[pageNum]
	if !ok && allocate {
		page = make([]byte, pageSize)
		m.pages[pageNum] = page
	}
	return page
}

// Read8 reads one byte.
func (m *Memory) Read8(addr uint64) byte {
	page := m.page(addr, false)
	if page == nil {
		return 0
	}
	return page[addr%pageSize]
}

// Write8 writes one byte.
func (m *Memory) Write8(addr uint64, value byte) {
	m.page(addr, true)[addr%pageSize] = value
}

// Read reads size bytes starting at addr.
func (m *Memory) Read(addr uint64, size int) []byte {
	data := make([]byte, size)
	for i := range data {
		data[i] = m.Read8(addr + uint64(i))
	}
	return data
}

// Write writes the given bytes starting at addr.
func (m *Memory) Write(addr uint64, data []byte) {
	for i, b := range data {
		m.Write8(addr+uint64(i), b)
	}
}

// Read64 reads a little-endian 64-bit value.
func (m *Memory) Read64(addr uint64) uint64 {
	return binary.LittleEndian.Uint64(m.Read(addr, 8))
}

// Write64 writes a little-endian 64-bit value.
func (m *Memory) Write64(addr uint64, value uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], value)
	m.Write(addr, buf[:])
}
