package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPool(t *testing.T) {
	tests := []struct {
		name     string
		chunkCap int
		expected int
	}{
		{"default chunk capacity", 0, DefaultChunkCap},
		{"negative chunk capacity", -1, DefaultChunkCap},
		{"custom chunk capacity", 128, 128},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPool[int](tt.chunkCap)
			assert.Equal(t, tt.expected, p.ChunkCapacity())
			assert.Equal(t, 0, p.NumChunks(), "chunks are created lazily")
		})
	}
}

func TestPoolAllocateZero(t *testing.T) {
	p := NewPool[int](10)
	defer p.Release()

	s, err := p.Allocate(0)
	require.NoError(t, err)
	assert.Nil(t, s)

	s, err = p.Allocate(-5)
	require.NoError(t, err)
	assert.Nil(t, s)

	assert.Equal(t, 0, p.NumChunks(), "zero-size requests must not create chunks")
}

func TestPoolChunkCreation(t *testing.T) {
	p := NewPool[int](10)
	defer p.Release()

	// Eleven single-element requests against capacity 10: the first ten
	// fill chunk one, the eleventh forces chunk two.
	for i := 0; i < 11; i++ {
		s, err := p.Allocate(1)
		require.NoError(t, err)
		require.Len(t, s, 1)
	}

	require.Equal(t, 2, p.NumChunks())
	assert.Equal(t, 10, p.chunks[0].used)
	assert.Equal(t, 1, p.chunks[1].used)
}

func TestPoolFirstFit(t *testing.T) {
	p := NewPool[int](10)
	defer p.Release()

	_, err := p.Allocate(9)
	require.NoError(t, err)

	// Does not fit the 1 element left in chunk one, so chunk two appears.
	_, err = p.Allocate(3)
	require.NoError(t, err)
	require.Equal(t, 2, p.NumChunks())

	// The next single-element request goes back to chunk one: the scan
	// starts from the first chunk on every call.
	_, err = p.Allocate(1)
	require.NoError(t, err)
	assert.Equal(t, 2, p.NumChunks())
	assert.Equal(t, 10, p.chunks[0].used)
	assert.Equal(t, 3, p.chunks[1].used)
}

func TestPoolLargeRequest(t *testing.T) {
	p := NewPool[int](10)
	defer p.Release()

	// Requests beyond the chunk capacity get a dedicated chunk of exactly
	// the requested size.
	s, err := p.Allocate(25)
	require.NoError(t, err)
	require.Len(t, s, 25)
	require.Equal(t, 1, p.NumChunks())
	assert.Equal(t, 25, len(p.chunks[0].elems))
	assert.Equal(t, 25, p.chunks[0].used)
}

func TestPoolAllocateTooLarge(t *testing.T) {
	p := NewPool[int64](10)
	defer p.Release()

	_, err := p.Allocate(p.MaxSize() + 1)
	require.ErrorIs(t, err, ErrOutOfMemory)
	assert.Equal(t, 0, p.NumChunks(), "failed requests must not create chunks")
}

func TestPoolNoAliasing(t *testing.T) {
	p := NewPool[int](4)
	defer p.Release()

	var blocks [][]int
	for i := 0; i < 8; i++ {
		s, err := p.Allocate(2)
		require.NoError(t, err)
		s[0] = i * 10
		s[1] = i*10 + 1
		blocks = append(blocks, s)
	}

	// Writing into each block must not have disturbed any other block.
	for i, s := range blocks {
		assert.Equal(t, i*10, s[0])
		assert.Equal(t, i*10+1, s[1])
	}

	// Appending to a handed-out block must not run into a neighbour.
	grown := append(blocks[0], 999)
	assert.Equal(t, 10, blocks[1][0], "append must reallocate, not overwrite")
	assert.Equal(t, 999, grown[2])
}

func TestPoolAddressStability(t *testing.T) {
	p := NewPool[int](2)
	defer p.Release()

	first, err := p.Allocate(1)
	require.NoError(t, err)
	addr := &first[0]
	*addr = 42

	// Force several chunk creations and write through every new block;
	// the earlier address must survive untouched.
	for i := 0; i < 20; i++ {
		s, err := p.Allocate(1)
		require.NoError(t, err)
		s[0] = -1
	}

	assert.Equal(t, 42, *addr)
	require.Equal(t, 11, p.NumChunks())
}

func TestPoolConstructDestroy(t *testing.T) {
	p := NewPool[string](10)
	defer p.Release()

	s, err := p.Allocate(1)
	require.NoError(t, err)

	p.Construct(&s[0], "hello")
	assert.Equal(t, "hello", s[0])

	p.Destroy(&s[0])
	assert.Equal(t, "", s[0], "Destroy zeroes the value in place")
}

func TestPoolDeallocateNoOp(t *testing.T) {
	p := NewPool[int](10)
	defer p.Release()

	s, err := p.Allocate(5)
	require.NoError(t, err)
	p.Deallocate(s)

	// No reuse: the pool keeps the space reserved until Release.
	assert.Equal(t, 5, p.InUse())

	s2, err := p.Allocate(5)
	require.NoError(t, err)
	assert.NotSame(t, &s[0], &s2[0], "deallocated space is never handed out again")
}

func TestPoolMonotonicGrowth(t *testing.T) {
	p := NewPool[int](10)
	defer p.Release()

	prevCap := 0
	for cycle := 0; cycle < 5; cycle++ {
		for i := 0; i < 10; i++ {
			s, err := p.Allocate(1)
			require.NoError(t, err)
			s[0] = i
			p.Destroy(&s[0])
			p.Deallocate(s)
		}
		require.GreaterOrEqual(t, p.Capacity(), prevCap,
			"reserved capacity must never shrink across churn")
		prevCap = p.Capacity()
	}
}

func TestPoolRelease(t *testing.T) {
	p := NewPool[int](10)

	s, err := p.Allocate(3)
	require.NoError(t, err)
	s[0], s[1], s[2] = 1, 2, 3

	p.Release()
	assert.Equal(t, 0, p.NumChunks())
	assert.Equal(t, 0, p.Capacity())

	assert.Panics(t, func() { p.Allocate(1) })

	// Releasing twice is fine.
	assert.NotPanics(t, func() { p.Release() })
}

func TestAllocatorIdentity(t *testing.T) {
	p1 := NewPool[int](10)
	p2 := NewPool[int](10)
	defer p1.Release()
	defer p2.Release()

	var a1 Allocator[int] = p1
	var a2 Allocator[int] = p2

	assert.False(t, a1 == a2, "two fresh pools are never equal")
	assert.True(t, a1 == Allocator[int](p1), "an allocator equals only itself")
}

func TestRebind(t *testing.T) {
	t.Run("pool keeps chunk policy", func(t *testing.T) {
		p := NewPool[int](10)
		defer p.Release()

		r := Rebind[string](Allocator[int](p))
		rp, ok := r.(*Pool[string])
		require.True(t, ok)
		defer rp.Release()
		assert.Equal(t, 10, rp.ChunkCapacity())

		// Same policy, fresh chunks: eleven single requests make two
		// chunks in the rebound pool and touch the source not at all.
		for i := 0; i < 11; i++ {
			_, err := rp.Allocate(1)
			require.NoError(t, err)
		}
		assert.Equal(t, 2, rp.NumChunks())
		assert.Equal(t, 0, p.NumChunks())
	})

	t.Run("system stays system", func(t *testing.T) {
		s := NewSystem[int]()
		r := Rebind[string](Allocator[int](s))
		_, ok := r.(*System[string])
		assert.True(t, ok)
	})
}

func TestSystemAllocator(t *testing.T) {
	s := NewSystem[int]()

	b, err := s.Allocate(4)
	require.NoError(t, err)
	require.Len(t, b, 4)

	s.Construct(&b[0], 7)
	assert.Equal(t, 7, b[0])
	s.Destroy(&b[0])
	assert.Equal(t, 0, b[0])

	b, err = s.Allocate(0)
	require.NoError(t, err)
	assert.Nil(t, b)

	s.Deallocate(b)
}

func TestMaxSize(t *testing.T) {
	pi := NewPool[int64](10)
	pb := NewPool[byte](10)
	defer pi.Release()
	defer pb.Release()

	assert.Greater(t, pi.MaxSize(), 0)
	assert.Equal(t, pb.MaxSize()/8, pi.MaxSize(), "bound scales with element size")
}
