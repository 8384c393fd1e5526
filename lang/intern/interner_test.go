package intern

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mna/lumen/lang/value"
)

func TestCopyStringInterns(t *testing.T) {
	heap := value.NewHeap()
	in := New(heap)

	a := in.CopyString("hello")
	b := in.CopyString("hello")
	require.Same(t, a, b, "two literals with identical bytes must share one *ObjString")

	c := in.CopyString("world")
	require.NotSame(t, a, c)

	require.Len(t, heap.Objects(), 2)
}

func TestTakeStringInterns(t *testing.T) {
	heap := value.NewHeap()
	in := New(heap)

	a := in.CopyString("concat")
	b := in.TakeString("concat")
	require.Same(t, a, b)
	require.Len(t, heap.Objects(), 1)
}

func TestFNV1a(t *testing.T) {
	// Empty input reduces to the bare offset basis.
	require.Equal(t, fnvOffsetBasis, FNV1a(""))
	require.NotZero(t, FNV1a("a"))
	require.NotEqual(t, FNV1a("a"), FNV1a("b"))
}
