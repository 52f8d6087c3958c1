// SPDX-License-Identifier: MIT

package concurrency

import (
	"fmt"
	"runtime"
	"strings"
	"unsafe"

	"github.com/samber/lo"
	"golang.org/x/sys/cpu"
)

// Environment describes the hardware the default thresholds are derived from.
type Environment struct {
	// Processors is runtime.GOMAXPROCS(0) at detection time.
	Processors int
	// CacheLine is the cache line size in bytes reported by x/sys/cpu.
	CacheLine int
	// Architecture is runtime.GOARCH.
	Architecture string
	// Features lists the vector extensions found (e.g. "avx2", "asimd").
	Features []string
}

// DetectEnvironment samples GOMAXPROCS and the CPU feature flags.
// It never fails: unknown architectures simply report no features.
func DetectEnvironment() Environment {
	env := Environment{
		Processors:   max(runtime.GOMAXPROCS(0), 1),
		CacheLine:    int(unsafe.Sizeof(cpu.CacheLinePad{})),
		Architecture: runtime.GOARCH,
	}
	if env.CacheLine < 8 {
		env.CacheLine = 64
	}

	flags := []struct {
		name string
		ok   bool
	}{
		{"sse4.1", cpu.X86.HasSSE41},
		{"avx", cpu.X86.HasAVX},
		{"avx2", cpu.X86.HasAVX2},
		{"fma", cpu.X86.HasFMA},
		{"avx512f", cpu.X86.HasAVX512F},
		{"asimd", cpu.ARM64.HasASIMD},
		{"sve", cpu.ARM64.HasSVE},
	}
	for _, f := range flags {
		if f.ok {
			env.Features = append(env.Features, f.name)
		}
	}

	return env
}

// HasFeature reports whether name was detected.
func (e Environment) HasFeature(name string) bool {
	return lo.Contains(e.Features, name)
}

// Thresholds derives per-operation split thresholds, in elements (columns for
// Multiply and Substitute), from the cache line size: a leaf of a memory-bound
// kernel should touch a few dozen cache lines before it is worth a goroutine.
func (e Environment) Thresholds() Thresholds {
	perLine := max(e.CacheLine/8, 1) // float64 elements per cache line

	t := Thresholds{
		Fill:       32 * perLine,
		Modify:     16 * perLine,
		Supply:     16 * perLine,
		Aggregate:  32 * perLine,
		Multiply:   DefaultMultiplyThreshold,
		Substitute: DefaultSubstituteThreshold,
		Compose:    512 * perLine,
	}
	// avx512 fills and modifies retire twice the elements per cycle.
	if e.HasFeature("avx512f") {
		t.Fill *= 2
		t.Modify *= 2
	}

	return t
}

// String renders a one-line summary for logs.
func (e Environment) String() string {
	return fmt.Sprintf("%s/%d procs/%dB line/[%s]",
		e.Architecture, e.Processors, e.CacheLine, strings.Join(e.Features, ","))
}
