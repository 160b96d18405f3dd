package prime

import (
	"errors"
	"fmt"
	"unsafe"
)

// ErrAllocation reports that the backing buffer could not be obtained with
// the required size and alignment. It is the workload's only failure kind
// and is unrecoverable.
var ErrAllocation = errors.New("cannot allocate aligned buffer")

// Allocator obtains raw byte storage. The default allocator uses make; tests
// substitute failing allocators to exercise the allocation-failure path.
type Allocator func(n int) []byte

func defaultAllocator(n int) []byte {
	return make([]byte, n)
}

// Buffer is a byte region whose first byte sits on the requested alignment
// boundary. Aligning the region to the cache size makes its mapping onto the
// simulated cache's sets deterministic.
type Buffer struct {
	raw  []byte
	data []byte
}

// AllocAligned allocates a buffer of exactly size bytes aligned to align
// bytes, using the default allocator.
func AllocAligned(size, align int) (*Buffer, error) {
	return AllocAlignedWith(defaultAllocator, size, align)
}

// AllocAlignedWith allocates through the given allocator. The allocator is
// asked for size+align-1 bytes and the buffer is carved out at the first
// aligned offset. Returns an error wrapping ErrAllocation if the allocator
// cannot satisfy the request.
func AllocAlignedWith(alloc Allocator, size, align int) (*Buffer, error) {
	if alloc == nil {
		alloc = defaultAllocator
	}
	if size <= 0 || align <= 0 {
		return nil, fmt.Errorf("%w: invalid size %d or alignment %d",
			ErrAllocation, size, align)
	}

	raw := alloc(size + align - 1)
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: %d bytes aligned to %d",
			ErrAllocation, size, align)
	}

	addr := uintptr(unsafe.Pointer(&raw[0]))
	pad := int((uintptr(align) - addr%uintptr(align)) % uintptr(align))
	if len(raw) < pad+size {
		return nil, fmt.Errorf("%w: %d bytes aligned to %d",
			ErrAllocation, size, align)
	}

	return &Buffer{
		raw:  raw,
		data: raw[pad : pad+size : pad+size],
	}, nil
}

// Bytes returns the aligned region. Its length is exactly the requested size.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Addr returns the address of the first byte of the aligned region.
func (b *Buffer) Addr() uintptr {
	return uintptr(unsafe.Pointer(&b.data[0]))
}

// Release drops the buffer's references so the region can be reclaimed.
// The buffer must not be used afterwards.
func (b *Buffer) Release() {
	b.raw = nil
	b.data = nil
}
