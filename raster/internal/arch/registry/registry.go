// Package registry holds the raster kernel variants available to this build.
//
// Backend packages register an OpEntry from init(); the raster package asks
// for the highest-priority entry the current CPU supports.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-rgba/internal/cpu"
)

// ResizePolicy selects how nearest-neighbour source coordinates are computed.
type ResizePolicy uint8

const (
	// FixedPoint uses an unbiased 16.16 ratio: idx = (x * ((src<<16)/dst)) >> 16.
	FixedPoint ResizePolicy = iota

	// FloatingPoint uses idx = int(x * (float32(src)/float32(dst))) in single
	// precision, clamped to src-1.
	FloatingPoint
)

// String returns the policy name.
func (p ResizePolicy) String() string {
	switch p {
	case FixedPoint:
		return "fixed"
	case FloatingPoint:
		return "float"
	default:
		return "unknown"
	}
}

// FillFn writes one colour to all width*height pixels of pix.
type FillFn func(pix []byte, width, height int, r, g, b, a uint8)

// BlendFn composites ov over bg with ov's top-left corner at (x, y).
type BlendFn func(bg, ov []byte, bgW, bgH, ovW, ovH, x, y int)

// BlitFn copies src into dst at (x, y) without blending.
type BlitFn func(dst []byte, dstW, dstH int, src []byte, srcW, srcH, x, y int)

// ResizeFn resamples src into dst with nearest-neighbour sampling.
type ResizeFn func(dst, src []byte, srcW, srcH, dstW, dstH int, policy ResizePolicy)

// OpEntry is one registered kernel variant. Callers validate buffers and
// dimensions before invoking any of the functions.
type OpEntry struct {
	// Name identifies the variant ("generic", "avx2", "sse2", "neon").
	Name string

	// SIMDLevel is the instruction set the variant is selected for.
	SIMDLevel cpu.SIMDLevel

	// Priority orders compatible entries; higher wins.
	//   generic 0, sse2 10, neon 15, avx2 20
	Priority int

	// Lanes is the number of pixels processed per vector group (1 for generic).
	Lanes int

	Fill   FillFn
	Blend  BlendFn
	Blit   BlitFn
	Resize ResizeFn
}

// OpRegistry stores the registered variants.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Global is the registry populated by the backend packages.
var Global = &OpRegistry{}

// Register adds an entry. All registrations should finish before the first
// Lookup; init() is the intended caller.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority entry supported by features, or nil
// when nothing compatible is registered.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

// ByName returns the entry registered under name.
func (r *OpRegistry) ByName(name string) (OpEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.entries {
		if e.Name == name {
			return e, true
		}
	}

	return OpEntry{}, false
}

// sortByPriority orders entries by descending priority. Caller holds r.mu.
func (r *OpRegistry) sortByPriority() {
	// insertion sort, the registry holds a handful of entries
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of the entries for tooling and tests.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all entries. Intended for tests.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
