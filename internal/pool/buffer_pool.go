// Package pool recycles the power-of-two byte buffers that back heap
// string storage.
package pool

import (
	"math/bits"
	"sync"
)

// Pooled size classes. Class exp holds buffers of exactly 1<<exp
// bytes. Requests outside the class range fall back to plain
// allocation.
const (
	// MinClassExp is the smallest pooled class, 32 bytes.
	MinClassExp = 5
	// MaxClassExp is the largest pooled class, 1 MiB.
	MaxClassExp = 20
)

// BufferPool recycles fixed-size byte buffers grouped by size class.
//
// Buffers returned by Get keep whatever bytes previous users wrote;
// callers must overwrite every position they expose.
type BufferPool struct {
	classes [MaxClassExp + 1]sync.Pool
}

// NewBufferPool creates an empty BufferPool.
func NewBufferPool() *BufferPool {
	return &BufferPool{}
}

// Get returns a buffer of exactly 1<<exp bytes.
func (p *BufferPool) Get(exp uint8) []byte {
	if exp < MinClassExp || exp > MaxClassExp {
		return make([]byte, 1<<exp)
	}

	if buf, _ := p.classes[exp].Get().(*[]byte); buf != nil {
		return *buf
	}

	return make([]byte, 1<<exp)
}

// Put returns buf to its size class for reuse.
//
// Buffers whose length is not a pooled class size are dropped: odd
// sizes never match a class, and oversized buffers would pin large
// blocks of memory.
func (p *BufferPool) Put(buf []byte) {
	n := len(buf)
	if n == 0 || n&(n-1) != 0 {
		return
	}

	exp := uint8(bits.TrailingZeros(uint(n)))
	if exp < MinClassExp || exp > MaxClassExp {
		return
	}

	p.classes[exp].Put(&buf)
}

var defaultPool = NewBufferPool()

// GetBuffer retrieves a 1<<exp byte buffer from the shared pool.
func GetBuffer(exp uint8) []byte {
	return defaultPool.Get(exp)
}

// PutBuffer returns buf to the shared pool.
func PutBuffer(buf []byte) {
	defaultPool.Put(buf)
}
