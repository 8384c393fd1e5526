package chunk

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mna/lumen/lang/value"
)

func TestWriteKeepsCodeAndLinesInSync(t *testing.T) {
	c := New()
	c.Write(byte(OP_NIL), 1)
	c.Write(byte(OP_RETURN), 1)
	c.Write(byte(OP_POP), 2)
	require.Len(t, c.Code, len(c.Lines))
	require.Equal(t, []int{1, 1, 2}, c.Lines)
}

func TestAddConstantStableIndices(t *testing.T) {
	c := New()
	i0 := c.AddConstant(value.Number(1))
	i1 := c.AddConstant(value.Number(2))
	require.Equal(t, 0, i0)
	require.Equal(t, 1, i1)
	require.Equal(t, value.Number(1), c.Constants[i0])
}

func TestFull(t *testing.T) {
	c := New()
	for i := 0; i < maxConstants; i++ {
		require.False(t, c.Full())
		c.AddConstant(value.Number(float64(i)))
	}
	require.True(t, c.Full())
}

func TestDisassembleByteOperand(t *testing.T) {
	c := New()
	idx := c.AddConstant(value.Number(3))
	c.Write(byte(OP_CONSTANT), 1)
	c.Write(byte(idx), 1)
	c.Write(byte(OP_RETURN), 1)

	out := c.Disassemble("test")
	require.Contains(t, out, "== test ==")
	require.Contains(t, out, "OP_CONSTANT")
	require.Contains(t, out, "OP_RETURN")
}

func TestFree(t *testing.T) {
	c := New()
	c.Write(byte(OP_RETURN), 1)
	c.Free()
	require.Empty(t, c.Code)
	require.Empty(t, c.Lines)
	require.Empty(t, c.Constants)
}
