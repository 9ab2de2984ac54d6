package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// ByteBuffer Tests
// =============================================================================

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(1024)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len(), "new buffer should have zero length")
	assert.Equal(t, 1024, cap(bb.B), "new buffer should have specified capacity")
}

func TestByteBuffer_WriteAndReset(t *testing.T) {
	bb := NewByteBuffer(16)

	bb.MustWrite([]byte("SFNO"))
	n, err := bb.Write([]byte{0x01, 0x00})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []byte{'S', 'F', 'N', 'O', 0x01, 0x00}, bb.Bytes())

	originalCap := cap(bb.B)
	bb.Reset()
	assert.Equal(t, 0, bb.Len(), "Reset should clear the buffer length")
	assert.Equal(t, originalCap, cap(bb.B), "Reset should preserve capacity")
}

func TestByteBuffer_Grow(t *testing.T) {
	bb := NewByteBuffer(4)
	bb.MustWrite([]byte("abcd"))

	bb.Grow(100)
	assert.GreaterOrEqual(t, cap(bb.B)-bb.Len(), 100)
	assert.Equal(t, []byte("abcd"), bb.Bytes(), "Grow should keep contents")

	before := cap(bb.B)
	bb.Grow(10)
	assert.Equal(t, before, cap(bb.B), "Grow should not reallocate with enough room")
}

func TestByteBuffer_Clone(t *testing.T) {
	bb := NewByteBuffer(8)
	bb.MustWrite([]byte("payload"))

	out := bb.Clone()
	bb.Reset()
	bb.MustWrite([]byte("XXXXXXX"))

	assert.Equal(t, []byte("payload"), out, "Clone must not share memory")
}

func TestByteBuffer_WriteByte(t *testing.T) {
	bb := NewByteBuffer(1)
	for _, c := range []byte("tree") {
		require.NoError(t, bb.WriteByte(c))
	}

	assert.Equal(t, 4, bb.Len())
	assert.Equal(t, []byte("tree"), bb.Bytes())
}

// =============================================================================
// ByteBufferPool Tests
// =============================================================================

func TestByteBufferPool_GetPut(t *testing.T) {
	p := NewByteBufferPool(32, 64)

	bb := p.Get()
	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())

	bb.MustWrite([]byte("data"))
	p.Put(bb)

	again := p.Get()
	assert.Equal(t, 0, again.Len(), "pooled buffers must come back empty")
}

func TestByteBufferPool_DropsOversizedBuffers(t *testing.T) {
	p := NewByteBufferPool(8, 16)

	bb := p.Get()
	bb.Grow(1024)
	require.Greater(t, cap(bb.B), 16)
	p.Put(bb)

	// Oversized buffers are discarded, so a fresh one has the default size.
	fresh := p.Get()
	assert.LessOrEqual(t, cap(fresh.B), 16)
}

func TestByteBufferPool_PutNil(t *testing.T) {
	p := NewByteBufferPool(8, 16)
	require.NotPanics(t, func() { p.Put(nil) })
}

func TestContainerBuffer(t *testing.T) {
	bb := GetContainerBuffer()
	require.NotNil(t, bb)
	assert.GreaterOrEqual(t, cap(bb.B), 0)
	PutContainerBuffer(bb)
}
