// Package chunk implements an append-only bytecode container: a byte
// stream, a parallel per-byte source-line table, and a constants pool with
// stable indices.
package chunk

import (
	"fmt"

	"github.com/mna/lumen/lang/value"
)

// maxConstants is the largest number of entries addressable by the
// single-byte OP_CONSTANT operand.
const maxConstants = 256

// Chunk is an ordered sequence of bytecode bytes, the source line that
// produced each byte, and the constants pool those bytes reference.
// Instances are caller-owned: the compiler appends to a Chunk the caller
// supplies, and the caller hands it to a VM once compilation succeeds.
// There is no internal growth-tracking; Go's append already amortizes it,
// so Chunk leans on the slice built-in rather than a hand-rolled growable
// buffer.
type Chunk struct {
	Code      []byte
	Lines     []int
	Constants []value.Value
}

// New returns an empty Chunk.
func New() *Chunk {
	return &Chunk{}
}

// Write appends one byte to the chunk's code, recording the source line it
// came from.
func (c *Chunk) Write(b byte, line int) {
	c.Code = append(c.Code, b)
	c.Lines = append(c.Lines, line)
}

// AddConstant appends v to the constants pool and returns its index.
// Indices are stable: once assigned, a constant never relocates. The caller
// (the compiler) is responsible for refusing to emit an OP_CONSTANT/
// OP_DEFINE_GLOBAL/etc. operand above 255, since those opcodes encode the
// index in a single byte.
func (c *Chunk) AddConstant(v value.Value) int {
	c.Constants = append(c.Constants, v)
	return len(c.Constants) - 1
}

// Full reports whether the constants pool already holds the maximum number
// of entries a single-byte operand can index.
func (c *Chunk) Full() bool {
	return len(c.Constants) >= maxConstants
}

// Free releases the chunk's storage. Unlike clox's freeChunk it frees
// nothing itself: it drops the three slices, leaving the chunk empty, and
// Go's GC reclaims the backing arrays once nothing else references them.
func (c *Chunk) Free() {
	c.Code = nil
	c.Lines = nil
	c.Constants = nil
}

// Disassemble writes a human-readable listing of the chunk to the returned
// string. This is the minimal interface the CLI driver needs to show what a
// compile produced, not a general debugger.
func (c *Chunk) Disassemble(name string) string {
	return c.disassemble(name, true)
}

// DisassembleCompact is Disassemble without the per-instruction source-line
// column, for callers that already show line information elsewhere (the
// CLI's `--with-lines=false` mode).
func (c *Chunk) DisassembleCompact(name string) string {
	return c.disassemble(name, false)
}

func (c *Chunk) disassemble(name string, withLines bool) string {
	var out []byte
	out = append(out, fmt.Sprintf("== %s ==\n", name)...)
	for offset := 0; offset < len(c.Code); {
		offset = c.disassembleInstruction(&out, offset, withLines)
	}
	return string(out)
}

func (c *Chunk) disassembleInstruction(out *[]byte, offset int, withLines bool) int {
	op := Op(c.Code[offset])
	lineCol := ""
	if withLines {
		line := c.Lines[offset]
		lineCol = fmt.Sprintf("%4d", line)
		if offset > 0 && c.Lines[offset-1] == line {
			lineCol = "   |"
		}
	}

	switch {
	case byteOperandOps[op]:
		idx := c.Code[offset+1]
		extra := ""
		if int(idx) < len(c.Constants) {
			extra = fmt.Sprintf(" ; %v", c.Constants[idx])
		}
		*out = append(*out, fmt.Sprintf("%04d %s %-16s %4d%s\n", offset, lineCol, op, idx, extra)...)
		return offset + 2
	case jumpOps[op]:
		jump := int(c.Code[offset+1])<<8 | int(c.Code[offset+2])
		*out = append(*out, fmt.Sprintf("%04d %s %-16s %4d\n", offset, lineCol, op, jump)...)
		return offset + 1 + jumpOperandWidth
	default:
		*out = append(*out, fmt.Sprintf("%04d %s %s\n", offset, lineCol, op)...)
		return offset + 1
	}
}
