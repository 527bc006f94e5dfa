package alloc

import "errors"

// ErrOutOfMemory indicates that raw chunk memory could not be obtained for
// an allocation request. It is the only failure an allocator can report;
// Deallocate, Destroy and Release never fail.
var ErrOutOfMemory = errors.New("alloc: out of memory")
