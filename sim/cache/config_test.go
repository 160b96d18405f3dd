package cache_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/eys29/gem5-vulcan/sim/cache"
)

func TestVulcanL1Config(t *testing.T) {
	config := cache.VulcanL1Config()

	if config.Size != 16*1024 {
		t.Errorf("size = %d, want 16384", config.Size)
	}
	if config.Associativity != 1 {
		t.Errorf("associativity = %d, want 1 (direct-mapped)", config.Associativity)
	}
	if config.BlockSize != 64 {
		t.Errorf("block size = %d, want 64", config.BlockSize)
	}
	if err := config.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  cache.Config
		wantErr bool
	}{
		{"vulcan", cache.VulcanL1Config(), false},
		{"four-way", cache.Config{Size: 16384, Associativity: 4, BlockSize: 64}, false},
		{"zero size", cache.Config{Size: 0, Associativity: 1, BlockSize: 64}, true},
		{"zero assoc", cache.Config{Size: 16384, Associativity: 0, BlockSize: 64}, true},
		{"zero block", cache.Config{Size: 16384, Associativity: 1, BlockSize: 0}, true},
		{"odd size", cache.Config{Size: 16384 + 7, Associativity: 1, BlockSize: 64}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "l1.json")
	content := `{"size": 8192, "associativity": 2, "block_size": 32}`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	config, err := cache.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if config.Size != 8192 || config.Associativity != 2 || config.BlockSize != 32 {
		t.Errorf("config = %+v", config)
	}
	// Unset fields keep the Vulcan defaults.
	if config.HitLatency != cache.VulcanL1Config().HitLatency {
		t.Errorf("hit latency = %d, want default", config.HitLatency)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := cache.LoadConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(bad, []byte(`{"size": -1}`), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := cache.LoadConfig(bad); err == nil {
		t.Error("expected error for invalid config")
	}

	garbage := filepath.Join(t.TempDir(), "garbage.json")
	if err := os.WriteFile(garbage, []byte(`not json`), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := cache.LoadConfig(garbage); err == nil {
		t.Error("expected error for malformed JSON")
	}
}
