package compiler

import (
	"github.com/mna/lumen/lang/chunk"
	"github.com/mna/lumen/lang/token"
)

// identifierConstant interns name's lexeme and returns its constants-pool
// index, for use as an OP_DEFINE_GLOBAL/OP_GET_GLOBAL/OP_SET_GLOBAL operand.
func (c *Compiler) identifierConstant(name token.Value) byte {
	return c.makeConstant(c.interner.CopyString(name.Lexeme))
}

// resolveLocal scans locals top-down for the first one named name, the way
// inner scopes shadow outer ones. It returns -1 if no local matches, meaning
// the caller should fall back to a global.
func (c *Compiler) resolveLocal(name token.Value) int {
	for i := len(c.locals) - 1; i >= 0; i-- {
		if c.locals[i].name.Lexeme == name.Lexeme {
			if c.locals[i].depth == -1 {
				c.error("Cannot read local variable in its own initializer.")
			}
			return i
		}
	}
	return -1
}

func (c *Compiler) addLocal(name token.Value) {
	if len(c.locals) >= maxLocals {
		c.error("Too many local variables in function.")
		return
	}
	c.locals = append(c.locals, local{name: name, depth: -1})
}

// declareVariable records a local for the variable named by c.previous,
// rejecting a duplicate name already declared in the current scope. It scans
// from len(c.locals)-1 downward (see DESIGN.md: this does not reproduce the
// off-by-one in clox's `localCount` start index), stopping at the first
// local belonging to an enclosing scope.
func (c *Compiler) declareVariable() {
	if c.scopeDepth == 0 {
		return
	}

	name := c.previous
	for i := len(c.locals) - 1; i >= 0; i-- {
		l := c.locals[i]
		if l.depth != -1 && l.depth < c.scopeDepth {
			break
		}
		if l.name.Lexeme == name.Lexeme {
			c.error("Already a variable with this name in this scope.")
		}
	}
	c.addLocal(name)
}

func (c *Compiler) parseVariable(msg string) byte {
	c.consume(token.IDENTIFIER, msg)
	c.declareVariable()
	if c.scopeDepth > 0 {
		return 0
	}
	return c.identifierConstant(c.previous)
}

func (c *Compiler) markInitialized() {
	if c.scopeDepth == 0 {
		return
	}
	c.locals[len(c.locals)-1].depth = c.scopeDepth
}

func (c *Compiler) defineVariable(global byte) {
	if c.scopeDepth > 0 {
		c.markInitialized()
		return
	}
	c.emitBytes(byte(chunk.OP_DEFINE_GLOBAL), global)
}

// namedVariable compiles a read, or — if canAssign and an '=' follows — a
// write, of the variable named by name.
func (c *Compiler) namedVariable(name token.Value, canAssign bool) {
	var getOp, setOp chunk.Op
	arg := c.resolveLocal(name)
	if arg != -1 {
		getOp, setOp = chunk.OP_GET_LOCAL, chunk.OP_SET_LOCAL
	} else {
		arg = int(c.identifierConstant(name))
		getOp, setOp = chunk.OP_GET_GLOBAL, chunk.OP_SET_GLOBAL
	}

	if canAssign && c.match(token.EQUAL) {
		c.expression()
		c.emitBytes(byte(setOp), byte(arg))
	} else {
		c.emitBytes(byte(getOp), byte(arg))
	}
}
