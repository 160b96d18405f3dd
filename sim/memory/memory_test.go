package memory_test

import (
	"testing"

	"github.com/eys29/gem5-vulcan/sim/memory"
)

func TestReadWrite8(t *testing.T) {
	m := memory.New()

	if got := m.Read8(0x1000); got != 0 {
		t.Errorf("untouched memory = %d, want 0", got)
	}

	m.Write8(0x1000, 0xAB)
	if got := m.Read8(0x1000); got != 0xAB {
		t.Errorf("Read8 = 0x%X, want 0xAB", got)
	}
}

func TestReadWriteSpansPages(t *testing.T) {
	m := memory.New()

	// 16 bytes straddling a 4KiB page boundary.
	data := make([]byte, 16)
	for i := range data {
		data[i] = byte(i + 1)
	}
	m.Write(4096-8, data)

	got := m.Read(4096-8, 16)
	for i := range data {
		if got[i] != data[i] {
			t.Fatalf("byte %d = 0x%X, want 0x%X", i, got[i], data[i])
		}
	}
}

func TestReadWrite64(t *testing.T) {
	m := memory.New()

	m.Write64(0x2000, 0xDEADBEEFCAFEBABE)
	if got := m.Read64(0x2000); got != 0xDEADBEEFCAFEBABE {
		t.Errorf("Read64 = 0x%X", got)
	}

	// Little-endian layout.
	if got := m.Read8(0x2000); got != 0xBE {
		t.Errorf("low byte = 0x%X, want 0xBE", got)
	}
}
