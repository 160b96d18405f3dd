package prime_test

import (
	"testing"

	"github.com/eys29/gem5-vulcan/prime"
)

func TestDefaultGeometry(t *testing.T) {
	geo := prime.DefaultGeometry()

	if geo.CacheSizeBytes != 16*1024 {
		t.Errorf("cache size = %d, want 16384", geo.CacheSizeBytes)
	}
	if geo.CacheLineBytes != 64 {
		t.Errorf("line size = %d, want 64", geo.CacheLineBytes)
	}
	if geo.LineCount() != 256 {
		t.Errorf("line count = %d, want 256", geo.LineCount())
	}
	if err := geo.Validate(); err != nil {
		t.Errorf("default geometry invalid: %v", err)
	}
}

func TestGeometryValidate(t *testing.T) {
	tests := []struct {
		name    string
		geo     prime.Geometry
		wantErr bool
	}{
		{"default", prime.Geometry{CacheSizeBytes: 16384, CacheLineBytes: 64}, false},
		{"small direct-mapped", prime.Geometry{CacheSizeBytes: 4096, CacheLineBytes: 32}, false},
		{"size not multiple of line", prime.Geometry{CacheSizeBytes: 1000, CacheLineBytes: 64}, true},
		{"zero size", prime.Geometry{CacheSizeBytes: 0, CacheLineBytes: 64}, true},
		{"zero line", prime.Geometry{CacheSizeBytes: 16384, CacheLineBytes: 0}, true},
		{"negative size", prime.Geometry{CacheSizeBytes: -64, CacheLineBytes: 64}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.geo.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGeometryLineOffsets(t *testing.T) {
	geo := prime.Geometry{CacheSizeBytes: 4096, CacheLineBytes: 64}

	// Offsets must cover 0, 64, 128, ... exactly once each, in order.
	for line := 0; line < geo.LineCount(); line++ {
		if got, want := geo.LineOffset(line), line*64; got != want {
			t.Fatalf("LineOffset(%d) = %d, want %d", line, got, want)
		}
	}

	last := geo.LineOffset(geo.LineCount() - 1)
	if last != geo.CacheSizeBytes-geo.CacheLineBytes {
		t.Errorf("last offset = %d, want %d", last, geo.CacheSizeBytes-geo.CacheLineBytes)
	}
}
