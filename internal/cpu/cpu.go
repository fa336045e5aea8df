// Package cpu probes the SIMD capabilities that decide which raster kernel
// variant runs on this machine.
//
// Detection happens lazily on the first DetectFeatures call and is cached.
// Tests can pin a feature set with SetForcedFeatures; the ALGO_RGBA_NO_SIMD
// environment variable forces the portable kernels at runtime.
package cpu

import (
	"os"
	"strconv"
	"sync"
)

// NoSIMDEnv is the environment variable that disables every vector variant.
const NoSIMDEnv = "ALGO_RGBA_NO_SIMD"

// SIMDLevel names the instruction set a kernel variant was written for.
// Levels are not comparable across architectures (AVX2 vs NEON).
type SIMDLevel int

const (
	// SIMDNone is the portable scalar path.
	SIMDNone SIMDLevel = iota

	// SIMDSSE2 is x86-64 SSE2, 128-bit lanes (amd64 baseline).
	SIMDSSE2

	// SIMDAVX2 is x86-64 AVX2, 256-bit integer lanes.
	SIMDAVX2

	// SIMDNEON is ARM Advanced SIMD, 128-bit lanes.
	SIMDNEON
)

// String returns a human-readable name for the SIMD level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "None"
	case SIMDSSE2:
		return "SSE2"
	case SIMDAVX2:
		return "AVX2"
	case SIMDNEON:
		return "NEON"
	default:
		return "Unknown"
	}
}

// Features describes the CPU capabilities relevant to kernel selection.
type Features struct {
	HasSSE2 bool
	HasAVX2 bool
	HasNEON bool

	// ForceGeneric disables all vector variants.
	ForceGeneric bool

	// Architecture is runtime.GOARCH.
	Architecture string
}

// state caches the probe result and any test override. A nil probed
// means the hardware has not been queried yet.
var state struct {
	mu     sync.Mutex
	probed *Features
	forced *Features
}

// DetectFeatures returns the capabilities of the current CPU, or the set
// pinned by SetForcedFeatures.
//
// The hardware is probed on the first call and the result is cached.
// Safe for concurrent use.
func DetectFeatures() Features {
	state.mu.Lock()
	defer state.mu.Unlock()

	if state.forced != nil {
		return *state.forced
	}
	if state.probed == nil {
		f := detectFeaturesImpl()
		f.ForceGeneric = f.ForceGeneric || noSIMDFromEnv()
		state.probed = &f
	}
	return *state.probed
}

// HasAVX2 reports whether AVX2 kernels may run.
func HasAVX2() bool {
	return Supports(DetectFeatures(), SIMDAVX2)
}

// HasSSE2 reports whether SSE2 kernels may run.
func HasSSE2() bool {
	return Supports(DetectFeatures(), SIMDSSE2)
}

// HasNEON reports whether NEON kernels may run.
func HasNEON() bool {
	return Supports(DetectFeatures(), SIMDNEON)
}

// SetForcedFeatures pins the result of DetectFeatures to f. Intended for
// tests.
func SetForcedFeatures(f Features) {
	state.mu.Lock()
	state.forced = &f
	state.mu.Unlock()
}

// ResetDetection drops the override and the cached probe, so the next
// DetectFeatures call queries the hardware and environment again.
// Intended for tests.
func ResetDetection() {
	state.mu.Lock()
	state.forced, state.probed = nil, nil
	state.mu.Unlock()
}

// Supports reports whether features allow a kernel written for level.
func Supports(features Features, level SIMDLevel) bool {
	if features.ForceGeneric {
		return level == SIMDNone
	}

	switch level {
	case SIMDNone:
		return true
	case SIMDSSE2:
		return features.HasSSE2
	case SIMDAVX2:
		return features.HasAVX2
	case SIMDNEON:
		return features.HasNEON
	default:
		return false
	}
}

// noSIMDFromEnv reads NoSIMDEnv. Any non-empty value that does not parse
// as a boolean counts as true.
func noSIMDFromEnv() bool {
	val := os.Getenv(NoSIMDEnv)
	if val == "" {
		return false
	}

	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}

	return true
}
