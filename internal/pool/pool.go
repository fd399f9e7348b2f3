// Package pool provides object pooling for go-slic rendering
// Used by help and error formatting to reuse output buffers
package pool

import (
	"bytes"
	"sync"
)

// Pool is a typed wrapper around sync.Pool with an optional reset hook
type Pool[T any] struct {
	pool  sync.Pool
	reset func(*T) // Called on every Get before the object is handed out
}

// NewPool creates a pool that builds new objects with factory
func NewPool[T any](factory func() *T) *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any {
				return factory()
			},
		},
	}
}

// NewPoolWithReset creates a pool whose objects are reset before reuse
func NewPoolWithReset[T any](factory func() *T, reset func(*T)) *Pool[T] {
	p := NewPool(factory)
	p.reset = reset
	return p
}

// Get retrieves an object from the pool or creates a new one
func (p *Pool[T]) Get() *T {
	obj := p.pool.Get().(*T)
	if p.reset != nil {
		p.reset(obj)
	}
	return obj
}

// Put returns an object to the pool. nil is ignored.
func (p *Pool[T]) Put(obj *T) {
	if obj == nil {
		return
	}
	p.pool.Put(obj)
}

const (
	defaultBufferCap = 512
	// Buffers that grew past this are dropped instead of pooled, so one
	// huge help text does not pin memory for the life of the process.
	maxBufferCap = 64 << 10
)

var bufferPool = NewPoolWithReset(
	func() *bytes.Buffer {
		return bytes.NewBuffer(make([]byte, 0, defaultBufferCap))
	},
	func(b *bytes.Buffer) {
		b.Reset()
	},
)

// GetBuffer retrieves an empty buffer for rendering text
func GetBuffer() *bytes.Buffer {
	return bufferPool.Get()
}

// PutBuffer returns a buffer to the global pool
func PutBuffer(b *bytes.Buffer) {
	if b == nil || b.Cap() > maxBufferCap {
		return
	}
	bufferPool.Put(b)
}
