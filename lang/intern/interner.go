// Package intern implements a canonicalizing string store: two string
// literals with identical bytes always produce the same *value.ObjString.
// The backing map is github.com/dolthub/swiss.Map, used here as the
// interner's lookup table.
package intern

import (
	"github.com/dolthub/swiss"

	"github.com/mna/lumen/lang/value"
)

// Interner canonicalizes byte strings into shared *value.ObjString heap
// values, linking newly-seen strings onto a caller-owned value.Heap.
type Interner struct {
	heap *value.Heap
	strs *swiss.Map[string, *value.ObjString]
}

// New returns an interner that links strings it allocates onto heap.
func New(heap *value.Heap) *Interner {
	return &Interner{
		heap: heap,
		strs: swiss.NewMap[string, *value.ObjString](0),
	}
}

// CopyString returns the canonical *value.ObjString for s. On a cache hit it
// copies nothing and returns the existing reference; on a miss it records a
// fresh *value.ObjString (computing its hash), links it onto the heap, and
// caches it.
func (in *Interner) CopyString(s string) *value.ObjString {
	h := FNV1a(s)
	if obj, ok := in.lookup(s, h); ok {
		return obj
	}
	obj := &value.ObjString{Chars: s, Hash: h}
	in.heap.Link(obj)
	in.strs.Put(s, obj)
	return obj
}

// TakeString is provided for symmetry with runtime string concatenation: it
// performs the same lookup as CopyString, but s is
// understood to be caller-owned and freshly built (e.g. the result of a
// concatenation) rather than a literal slice of the source buffer. Go's
// garbage collector makes the "release the caller-owned buffer on a hit"
// step of the original a no-op — there is nothing to free — but the lookup
// and adopt-on-miss semantics are preserved so callers keep a single call to
// make when a string may or may not already be interned.
func (in *Interner) TakeString(s string) *value.ObjString {
	return in.CopyString(s)
}

func (in *Interner) lookup(s string, hash uint32) (*value.ObjString, bool) {
	obj, ok := in.strs.Get(s)
	if ok && obj.Hash == hash {
		return obj, true
	}
	return nil, false
}

// FNV-1a hashing constants, matching clox's hashString.
const (
	fnvOffsetBasis uint32 = 0x811c9dc5
	fnvPrime       uint32 = 0x01000193
)

// FNV1a computes the 32-bit FNV-1a hash of s, matching clox's hashString.
func FNV1a(s string) uint32 {
	hash := fnvOffsetBasis
	for i := 0; i < len(s); i++ {
		hash ^= uint32(s[i])
		hash *= fnvPrime
	}
	return hash
}
