package chunk

import "fmt"

// Op is a single bytecode instruction. Every opcode is one byte; the
// operands, if any, are documented alongside each constant with a "stack
// picture" comment.
type Op uint8

//nolint:revive
const (
	OP_RETURN Op = iota // -                  0 operands

	OP_CONSTANT // - OP_CONSTANT<idx:u8>      push constants[idx]
	OP_NIL      // - OP_NIL                   push Nil
	OP_TRUE     // - OP_TRUE                  push True
	OP_FALSE    // - OP_FALSE                 push False

	OP_NEGATE // x NEGATE -x
	OP_NOT    // x NOT    !x

	OP_ADD      // a b ADD      a+b
	OP_SUBTRACT // a b SUBTRACT a-b
	OP_MULTIPLY // a b MULTIPLY a*b
	OP_DIVIDE   // a b DIVIDE   a/b

	OP_EQUAL   // a b EQUAL   a==b
	OP_GREATER // a b GREATER a>b
	OP_LESS    // a b LESS    a<b

	OP_PRINT // x PRINT -
	OP_POP   // x POP   -

	OP_DEFINE_GLOBAL // x OP_DEFINE_GLOBAL<idx:u8>  -       names[idx] = x
	OP_GET_GLOBAL     // - OP_GET_GLOBAL<idx:u8>     value   value = names[idx]
	OP_SET_GLOBAL     // x OP_SET_GLOBAL<idx:u8>     x       names[idx] = x (x left on stack)

	OP_GET_LOCAL // - OP_GET_LOCAL<slot:u8>  value   value = locals[slot]
	OP_SET_LOCAL // x OP_SET_LOCAL<slot:u8>  x       locals[slot] = x (x left on stack)

	OP_JUMP          // - OP_JUMP<offset:u16 BE>          -  ip += offset
	OP_JUMP_IF_FALSE // cond OP_JUMP_IF_FALSE<offset:u16 BE> cond  ip += offset if !truthy(cond); does not pop
	OP_LOOP          // - OP_LOOP<offset:u16 BE>          -  ip -= offset

	maxOp
)

// jumpOperandWidth is the width, in bytes, of a forward/backward jump
// operand: all jumps are 16-bit big-endian.
const jumpOperandWidth = 2

// byteOperandOps take a single unsigned byte operand (a constants-pool
// index, a global-name index, or a local slot).
var byteOperandOps = map[Op]bool{
	OP_CONSTANT:      true,
	OP_DEFINE_GLOBAL: true,
	OP_GET_GLOBAL:    true,
	OP_SET_GLOBAL:    true,
	OP_GET_LOCAL:     true,
	OP_SET_LOCAL:     true,
}

// jumpOps take a 16-bit big-endian operand.
var jumpOps = map[Op]bool{
	OP_JUMP:          true,
	OP_JUMP_IF_FALSE: true,
	OP_LOOP:          true,
}

func (op Op) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	return fmt.Sprintf("OP_<unknown %d>", byte(op))
}

var opNames = [...]string{
	OP_RETURN:         "OP_RETURN",
	OP_CONSTANT:       "OP_CONSTANT",
	OP_NIL:            "OP_NIL",
	OP_TRUE:           "OP_TRUE",
	OP_FALSE:          "OP_FALSE",
	OP_NEGATE:         "OP_NEGATE",
	OP_NOT:            "OP_NOT",
	OP_ADD:            "OP_ADD",
	OP_SUBTRACT:       "OP_SUBTRACT",
	OP_MULTIPLY:       "OP_MULTIPLY",
	OP_DIVIDE:         "OP_DIVIDE",
	OP_EQUAL:          "OP_EQUAL",
	OP_GREATER:        "OP_GREATER",
	OP_LESS:           "OP_LESS",
	OP_PRINT:          "OP_PRINT",
	OP_POP:            "OP_POP",
	OP_DEFINE_GLOBAL:  "OP_DEFINE_GLOBAL",
	OP_GET_GLOBAL:     "OP_GET_GLOBAL",
	OP_SET_GLOBAL:     "OP_SET_GLOBAL",
	OP_GET_LOCAL:      "OP_GET_LOCAL",
	OP_SET_LOCAL:      "OP_SET_LOCAL",
	OP_JUMP:           "OP_JUMP",
	OP_JUMP_IF_FALSE:  "OP_JUMP_IF_FALSE",
	OP_LOOP:           "OP_LOOP",
}
