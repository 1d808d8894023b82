// Package profile provides optional runtime profiling for the ditto
// command.
//
// Profiling integrates [github.com/pkg/profile] behind the "pprof" build
// tag. The default build compiles every operation to a no-op with zero
// overhead; building with -tags pprof enables the profiler and its
// command-line flags.
//
// Supported modes when built with the pprof tag: allocs, block, clock,
// cpu, goroutine, heap, mem, mutex, thread, and trace. Use [Modes] to
// retrieve the list programmatically. Profile files are written to the
// configured directory with names matching the mode (cpu.pprof, etc.)
// and can be inspected with:
//
//	go tool pprof ./ditto cpu.pprof
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
