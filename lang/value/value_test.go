package value

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEqual(t *testing.T) {
	require.True(t, Equal(Nil, Nil))
	require.True(t, Equal(True, True))
	require.False(t, Equal(True, False))
	require.True(t, Equal(Number(1), Number(1)))
	require.False(t, Equal(Number(1), Number(2)))
	require.False(t, Equal(Nil, False))
	require.False(t, Equal(Number(0), False))

	a := &ObjString{Chars: "x"}
	b := &ObjString{Chars: "x"}
	require.True(t, Equal(a, a))
	require.False(t, Equal(a, b), "distinct *ObjString are not equal even with identical Chars: identity only coincides with content after interning")
}

func TestHeapLinksObjects(t *testing.T) {
	h := NewHeap()
	require.Empty(t, h.Objects())

	a := &ObjString{Chars: "a"}
	b := &ObjString{Chars: "b"}
	h.link(a)
	h.link(b)

	got := h.Objects()
	require.Equal(t, []*ObjString{b, a}, got)
}
