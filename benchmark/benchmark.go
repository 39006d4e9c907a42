// benchmark.go
// A reusable benchmarking module for the seq modeller
// Measures execution time and memory usage for any wrapped function

package benchmark

import (
	"os"
	"runtime"
	"time"

	"go.uber.org/zap"

	"seq_modeller_go/logger"
)

const mb = 1024.0 * 1024.0

// Stats is what a benchmarked run cost.
type Stats struct {
	Elapsed         time.Duration
	MemoryUsedMB    float64 // difference in live heap
	TotalAllocMB    float64 // everything allocated during the run
	PeakHeapMB      float64
	GCCycles        uint32
	StartGoroutines int
	EndGoroutines   int
}

// Run wraps any function to measure its runtime and memory usage.
// Host and OS information is logged as well for repeatability.
func Run(label string, f func()) Stats {
	host, _ := os.Hostname()
	logger.Info("Benchmark started",
		zap.String("label", label),
		zap.String("timestamp", time.Now().Format(time.RFC1123)),
		zap.String("hostname", host),
		zap.String("go_version", runtime.Version()),
		zap.String("os_arch", runtime.GOOS+"/"+runtime.GOARCH),
		zap.Int("cpu_cores", runtime.NumCPU()))

	runtime.GC()
	var memStart, memEnd runtime.MemStats
	runtime.ReadMemStats(&memStart)
	startGoroutines := runtime.NumGoroutine()
	start := time.Now()

	f()

	elapsed := time.Since(start)
	runtime.ReadMemStats(&memEnd)

	stats := Stats{
		Elapsed:         elapsed,
		MemoryUsedMB:    (float64(memEnd.Alloc) - float64(memStart.Alloc)) / mb,
		TotalAllocMB:    float64(memEnd.TotalAlloc-memStart.TotalAlloc) / mb,
		PeakHeapMB:      float64(memEnd.HeapAlloc) / mb,
		GCCycles:        memEnd.NumGC - memStart.NumGC,
		StartGoroutines: startGoroutines,
		EndGoroutines:   runtime.NumGoroutine(),
	}
	logger.Info("Benchmark finished",
		zap.String("label", label),
		zap.Duration("elapsed", stats.Elapsed),
		zap.Float64("memory_used_mb", stats.MemoryUsedMB),
		zap.Float64("total_alloc_mb", stats.TotalAllocMB),
		zap.Float64("peak_heap_mb", stats.PeakHeapMB),
		zap.Uint32("gc_cycles", stats.GCCycles),
		zap.Float64("system_mb", float64(memEnd.Sys)/mb),
		zap.Int("goroutines_start", stats.StartGoroutines),
		zap.Int("goroutines_end", stats.EndGoroutines))
	return stats
}
