// Package htable_test holds benchmarks comparing the probe strategies of
// htable against each other and against other map implementations.
package htable_test

import (
	"encoding/hex"
	"fmt"
	"math/rand/v2"
	"runtime"
	"testing"

	"github.com/theflywheel/htable"
)

var probes = []htable.Probe{htable.Linear, htable.Quadratic, htable.DoubleHash}

// getMemoryUsage returns the current memory stats as a formatted string
func getMemoryUsage() string {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return fmt.Sprintf("Memory: Alloc=%.1fMB Sys=%.1fMB",
		float64(m.Alloc)/1024/1024,
		float64(m.Sys)/1024/1024)
}

// sequentialKeys returns n keys of the form "key-<i>".
func sequentialKeys(n int) []string {
	keys := make([]string, n)
	for i := range keys {
		keys[i] = fmt.Sprintf("key-%d", i)
	}
	return keys
}

// uuidKeys returns n random version 4 UUIDs in hex form. The generator is
// seeded so runs are comparable.
func uuidKeys(n int) []string {
	r := rand.New(rand.NewPCG(1, 2))
	keys := make([]string, n)
	uuid := make([]byte, 16)
	for i := range keys {
		for j := range uuid {
			uuid[j] = byte(r.Uint32())
		}
		// Set version (4) and variant (RFC4122)
		uuid[6] = (uuid[6] & 0x0F) | 0x40
		uuid[8] = (uuid[8] & 0x3F) | 0x80
		keys[i] = hex.EncodeToString(uuid)
	}
	return keys
}

// fill inserts keys[i] -> i and fails the benchmark on error.
func fill(b *testing.B, tbl *htable.Table[int], keys []string) {
	b.Helper()
	for i, key := range keys {
		if err := tbl.Put(key, i); err != nil {
			b.Fatalf("Failed to insert key %q: %v", key, err)
		}
	}
}

// reportProbeStats attaches the clustering figures of tbl to the benchmark.
func reportProbeStats(b *testing.B, tbl *htable.Table[int]) {
	stats := tbl.Stats()
	if stats.Items > 0 {
		b.ReportMetric(float64(stats.Probes)/float64(stats.Items), "probes/key")
	}
	b.ReportMetric(float64(stats.MaxProbe), "max_probe")
	b.ReportMetric(stats.LoadFactor, "load")
}
