// Package profiler records named spans into a lock-free ring and dumps
// them as a speedscope evented profile. Span recording only exists
// under the "profile" build tag; without it Start compiles to a no-op.
// The runtime counters below are always available.
package profiler

import "runtime"

func MemoryUsage() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.Alloc
}

func MemoryAllocs() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.Mallocs
}

func NumGoroutine() int { return runtime.NumGoroutine() }

func NumCPU() int { return runtime.NumCPU() }
