package value

// ObjString is the sole heap-object variant lumen needs. It is a canonical,
// interned string: two ObjString values with identical Chars are always the
// same *ObjString, so equality is pointer identity (see Equal in value.go).
type ObjString struct {
	Chars string
	Hash  uint32

	next *ObjString // intrusive link, see Heap
}

var _ Value = (*ObjString)(nil)

func (s *ObjString) String() string { return s.Chars }
func (s *ObjString) Type() string   { return "string" }

// Heap is the intrusive singly-linked list of every heap object allocated
// during a compile, standing in for the VM's object list (clox's
// vm.objects). Go's GC makes the original's freeObjects walk unnecessary;
// the list survives here only so a caller can enumerate what was allocated.
type Heap struct {
	head *ObjString
}

// NewHeap returns an empty object heap.
func NewHeap() *Heap { return &Heap{} }

// link threads s onto the heap's object list. It is the Go analogue of
// object.c's allocateObject, minus the allocation (Go already owns that):
// newly allocated heap objects are always linked here before being handed
// back to a caller.
func (h *Heap) link(s *ObjString) {
	s.next = h.head
	h.head = s
}

// Link is the exported form of link, for allocators outside this package
// (the string interner).
func (h *Heap) Link(s *ObjString) { h.link(s) }

// Objects returns every heap object currently linked, oldest-last (mirrors
// the VM's object list traversal order, newest-first from the head).
func (h *Heap) Objects() []*ObjString {
	var out []*ObjString
	for o := h.head; o != nil; o = o.next {
		out = append(out, o)
	}
	return out
}
