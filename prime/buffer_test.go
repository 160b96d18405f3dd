package prime_test

import (
	"errors"
	"testing"

	"github.com/eys29/gem5-vulcan/prime"
)

func TestAllocAligned(t *testing.T) {
	sizes := []struct {
		size  int
		align int
	}{
		{64, 64},
		{4096, 4096},
		{16384, 16384},
		{16384, 64},
	}

	for _, tt := range sizes {
		buf, err := prime.AllocAligned(tt.size, tt.align)
		if err != nil {
			t.Fatalf("AllocAligned(%d, %d): %v", tt.size, tt.align, err)
		}
		if len(buf.Bytes()) != tt.size {
			t.Errorf("len = %d, want %d", len(buf.Bytes()), tt.size)
		}
		if buf.Addr()%uintptr(tt.align) != 0 {
			t.Errorf("address 0x%X not aligned to %d", buf.Addr(), tt.align)
		}
		buf.Release()
	}
}

func TestAllocAlignedFailure(t *testing.T) {
	failing := prime.Allocator(func(n int) []byte { return nil })

	_, err := prime.AllocAlignedWith(failing, 16384, 16384)
	if !errors.Is(err, prime.ErrAllocation) {
		t.Fatalf("error = %v, want ErrAllocation", err)
	}
}

func TestAllocAlignedRejectsBadArguments(t *testing.T) {
	for _, tt := range []struct{ size, align int }{
		{0, 64},
		{-1, 64},
		{64, 0},
	} {
		_, err := prime.AllocAligned(tt.size, tt.align)
		if !errors.Is(err, prime.ErrAllocation) {
			t.Errorf("AllocAligned(%d, %d) error = %v, want ErrAllocation",
				tt.size, tt.align, err)
		}
	}
}
