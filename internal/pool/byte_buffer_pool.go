// Package pool provides a pooled growable byte buffer used to
// accumulate the CT row payload before the CRC-16/XMODEM trailer is
// computed, avoiding a seek-back-and-patch write strategy.
package pool

import "sync"

// RowBufferDefaultSize is the initial capacity handed out by the
// default pool; most CT tables have at most a few hundred rows.
const (
	RowBufferDefaultSize  = 4 * 1024   // 4KiB
	RowBufferMaxThreshold = 1024 * 1024 // 1MiB, buffers larger than this are not returned to the pool
)

// ByteBuffer is a growable byte buffer with an amortized growth
// strategy, intended for reuse via a sync.Pool rather than repeated
// allocation.
type ByteBuffer struct {
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the given initial capacity.
func NewByteBuffer(initialSize int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, initialSize)}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Len returns the number of bytes currently written to the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Reset empties the buffer but keeps its backing array for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Grow ensures the buffer can accept at least n more bytes without
// reallocating.
//
// Growth strategy: for small buffers, grow by RowBufferDefaultSize to
// minimize the number of reallocations; for larger buffers, grow by 25%
// of the current capacity so memory usage stays proportional to the
// table size.
func (bb *ByteBuffer) Grow(n int) {
	available := cap(bb.B) - len(bb.B)
	if available >= n {
		return
	}

	growBy := RowBufferDefaultSize
	if cap(bb.B) > 4*RowBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < n {
		growBy = n
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Write appends data to the buffer, growing it as needed. It always
// returns len(data), nil, satisfying io.Writer.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.Grow(len(data))
	bb.B = append(bb.B, data...)

	return len(data), nil
}

// ByteBufferPool pools ByteBuffers to avoid per-table allocation churn.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool handing out buffers of defaultSize.
// Buffers grown past maxThreshold are discarded rather than pooled, to
// avoid retaining a large allocation after one outsized table.
func NewByteBufferPool(defaultSize, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any { return NewByteBuffer(defaultSize) },
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (p *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := p.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (p *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if p.maxThreshold > 0 && cap(bb.B) > p.maxThreshold {
		return
	}

	bb.Reset()
	p.pool.Put(bb)
}

var rowBufferPool = NewByteBufferPool(RowBufferDefaultSize, RowBufferMaxThreshold)

// GetRowBuffer retrieves a ByteBuffer from the default row-payload pool.
func GetRowBuffer() *ByteBuffer {
	return rowBufferPool.Get()
}

// PutRowBuffer returns a ByteBuffer to the default row-payload pool.
func PutRowBuffer(bb *ByteBuffer) {
	rowBufferPool.Put(bb)
}
