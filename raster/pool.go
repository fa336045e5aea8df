package raster

import "sync"

// Pool is an Allocator that recycles buffers by dimensions.
//
// Destroy clears a buffer and keeps it for the next Create of the same
// size, up to a per-size limit. Safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[poolKey][]*Buffer
	maxSize int
	alloc   HeapAllocator
}

type poolKey struct {
	width, height int
}

// NewPool returns a pool that retains at most maxPerBucket buffers per
// size. Zero means unlimited.
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[poolKey][]*Buffer),
		maxSize: maxPerBucket,
	}
}

// Create returns a zeroed buffer, reusing a pooled one when available.
func (p *Pool) Create(width, height int) (*Buffer, error) {
	key := poolKey{width: width, height: height}

	p.mu.Lock()
	bucket := p.buckets[key]
	if n := len(bucket); n > 0 {
		b := bucket[n-1]
		bucket[n-1] = nil
		p.buckets[key] = bucket[:n-1]
		p.mu.Unlock()

		return b, nil
	}
	p.mu.Unlock()

	return p.alloc.Create(width, height)
}

// Destroy clears b and returns it to the pool, or drops it when the bucket
// is full. The caller must not use b afterwards.
func (p *Pool) Destroy(b *Buffer) {
	if b == nil || b.Pix == nil {
		return
	}

	clear(b.Pix)
	key := poolKey{width: b.Width, height: b.Height}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[key]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		b.Release()
		return
	}

	p.buckets[key] = append(bucket, b)
}

// Len returns the number of pooled buffers.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := 0
	for _, bucket := range p.buckets {
		n += len(bucket)
	}
	return n
}
