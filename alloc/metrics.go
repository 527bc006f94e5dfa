package alloc

// InUse returns the number of elements currently handed out by the pool.
func (p *Pool[T]) InUse() int {
	sum := 0
	for i := range p.chunks {
		sum += p.chunks[i].used
	}
	return sum
}

// NumChunks returns the number of chunks the pool has created.
func (p *Pool[T]) NumChunks() int {
	return len(p.chunks)
}

// Capacity returns the total element capacity across all chunks.
func (p *Pool[T]) Capacity() int {
	sum := 0
	for i := range p.chunks {
		sum += len(p.chunks[i].elems)
	}
	return sum
}

// Utilization returns the ratio of elements in use to total capacity
// (0.0 to 1.0). Returns 0.0 if the pool has no chunks yet.
func (p *Pool[T]) Utilization() float64 {
	capacity := p.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(p.InUse()) / float64(capacity)
}

// ChunkCapacity returns the default per-chunk element capacity.
func (p *Pool[T]) ChunkCapacity() int {
	return p.chunkCap
}

// Metrics returns a snapshot of pool statistics.
func (p *Pool[T]) Metrics() PoolMetrics {
	return PoolMetrics{
		InUse:       p.InUse(),
		Capacity:    p.Capacity(),
		NumChunks:   p.NumChunks(),
		ChunkCap:    p.ChunkCapacity(),
		Utilization: p.Utilization(),
	}
}

// PoolMetrics contains statistical information about a pool. All counts are
// in elements, not bytes.
type PoolMetrics struct {
	InUse       int     // elements currently handed out
	Capacity    int     // total element capacity of all chunks
	NumChunks   int     // number of chunks
	ChunkCap    int     // default chunk capacity
	Utilization float64 // ratio of used to total capacity (0.0-1.0)
}
