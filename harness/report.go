package harness

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/eys29/gem5-vulcan/prime"
	"github.com/eys29/gem5-vulcan/sim/cache"
)

// Report is the complete JSON output format for a replayed run.
type Report struct {
	// Metadata about the run.
	Metadata ReportMetadata `json:"metadata"`

	// Result is the replay outcome.
	Result Result `json:"result"`
}

// ReportMetadata records when and against what configuration a replay ran.
type ReportMetadata struct {
	// Timestamp when the replay was run.
	Timestamp string `json:"timestamp"`

	// Geometry is the workload's cache geometry.
	Geometry prime.Geometry `json:"geometry"`

	// Cache is the modeled cache configuration.
	Cache cache.Config `json:"cache"`
}

// WriteHuman prints a run result in human-readable form.
func WriteHuman(w io.Writer, config Config, r Result) {
	_, _ = fmt.Fprintln(w, "=== Cache Priming Replay ===")
	_, _ = fmt.Fprintln(w, "")
	_, _ = fmt.Fprintf(w, "Geometry: %d B cache, %d B lines, %d lines\n",
		config.Geometry.CacheSizeBytes, config.Geometry.CacheLineBytes,
		config.Geometry.LineCount())
	_, _ = fmt.Fprintf(w, "Cache:    %d B, %d-way, %d B blocks\n",
		config.Cache.Size, config.Cache.Associativity, config.Cache.BlockSize)
	_, _ = fmt.Fprintln(w, "")
	_, _ = fmt.Fprintf(w, "Checksum:          %d (expected %d)\n", r.Checksum, r.ExpectedChecksum)
	_, _ = fmt.Fprintf(w, "Sink Value:        %d\n", r.SinkValue)
	_, _ = fmt.Fprintln(w, "  --- Warm-up (unmeasured) ---")
	writeStats(w, r.WarmupStats)
	_, _ = fmt.Fprintln(w, "  --- Region of Interest ---")
	writeStats(w, r.ROIStats)
	_, _ = fmt.Fprintf(w, "Primed: %v\n", r.Primed())
	_, _ = fmt.Fprintf(w, "Wall Time: %v\n", r.WallTime)
}

func writeStats(w io.Writer, s cache.Stats) {
	_, _ = fmt.Fprintf(w, "  Reads:      %d\n", s.Reads)
	_, _ = fmt.Fprintf(w, "  Writes:     %d\n", s.Writes)
	_, _ = fmt.Fprintf(w, "  Hits:       %d\n", s.Hits)
	_, _ = fmt.Fprintf(w, "  Misses:     %d\n", s.Misses)
	_, _ = fmt.Fprintf(w, "  Evictions:  %d\n", s.Evictions)
	_, _ = fmt.Fprintf(w, "  Writebacks: %d\n", s.Writebacks)
}

// WriteCSV prints a run result as a one-line CSV record with a header.
func WriteCSV(w io.Writer, r Result) {
	_, _ = fmt.Fprintln(w,
		"checksum,expected_checksum,sink_value,roi_reads,roi_writes,roi_hits,roi_misses,roi_evictions,roi_writebacks,primed")
	_, _ = fmt.Fprintf(w, "%d,%d,%d,%d,%d,%d,%d,%d,%d,%v\n",
		r.Checksum,
		r.ExpectedChecksum,
		r.SinkValue,
		r.ROIStats.Reads,
		r.ROIStats.Writes,
		r.ROIStats.Hits,
		r.ROIStats.Misses,
		r.ROIStats.Evictions,
		r.ROIStats.Writebacks,
		r.Primed(),
	)
}

// WriteJSON prints a run result as an indented JSON report with metadata.
func WriteJSON(w io.Writer, config Config, r Result) error {
	report := Report{
		Metadata: ReportMetadata{
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Geometry:  config.Geometry,
			Cache:     config.Cache,
		},
		Result: r,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}
