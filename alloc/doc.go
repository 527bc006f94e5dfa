// Package alloc implements a chunk-based pool allocator for typed storage.
//
// # Overview
//
// A pool allocator reserves memory in large fixed-capacity chunks and serves
// smaller requests by carving slices out of those chunks, instead of issuing
// one system allocation per request. This is particularly useful for:
//
//   - Node-based containers that allocate many small same-sized records
//   - Batch workloads where everything is released at once
//   - Reducing garbage collection pressure
//   - Keeping handed-out addresses stable for the allocator's lifetime
//
// # Basic Usage
//
//	pool := alloc.NewPool[int](0) // use the default chunk capacity
//	defer pool.Release()          // destroy elements and drop chunks
//
//	s, err := pool.Allocate(1)
//	if err != nil {
//	    return err
//	}
//	pool.Construct(&s[0], 42)
//
// # Allocator Contract
//
// The Allocator interface is the generic contract consumed by the containers
// in this module (and by any container that wants pluggable storage):
// Allocate, Deallocate, Construct, Destroy, MaxSize and Policy. Two
// strategies implement it:
//
//   - Pool: the chunked pool defined in this package
//   - System: a thin strategy that delegates to the Go runtime
//
// Rebind derives an allocator for a different element type with the same
// policy, which is how containers obtain storage for their internal node
// types while being configured with an element-typed allocator.
//
// # Allocation Strategy
//
// Allocate scans chunks in creation order and takes the first chunk with
// enough remaining capacity (first-fit). When no chunk fits, a new chunk of
// max(chunk capacity, n) elements is created. Chunks are never resized,
// moved or compacted, so every address handed out stays valid until
// Release.
//
// Deallocate is deliberately a no-op: the pool never reclaims sub-chunk
// space, trading monotonically growing reserved memory for allocation speed
// and address stability. Space is reclaimed in bulk by Release only.
//
// # Equality
//
// Allocator equality is identity. Instances are held as pointers, so
// comparing two Allocator interface values with == tells whether they are
// the same object; two freshly constructed pools are never equal.
//
// # Thread Safety
//
// Allocators are not safe for concurrent use. Each instance owns its chunks
// exclusively and expects a single goroutine.
//
// # Metrics
//
// The pool reports element-level statistics for monitoring:
//
//	m := pool.Metrics()
//	fmt.Printf("in use: %d of %d elements across %d chunks\n",
//	    m.InUse, m.Capacity, m.NumChunks)
package alloc
