// Package compiler implements a single-pass compiler: a hand-written
// recursive-descent parser for declarations and statements, bottoming out
// into a Pratt (precedence-climbing) parser for expressions, that emits
// bytecode directly into a lang/chunk.Chunk as it parses — there is no
// intermediate AST. This mirrors clox's compiler.c.
package compiler

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/exp/slices"

	"github.com/mna/lumen/lang/chunk"
	"github.com/mna/lumen/lang/intern"
	"github.com/mna/lumen/lang/scanner"
	"github.com/mna/lumen/lang/token"
	"github.com/mna/lumen/lang/value"
)

// maxLocals bounds the number of locals live at once, since OP_GET_LOCAL and
// OP_SET_LOCAL address a slot with a single unsigned byte.
const maxLocals = 256

// local is one entry of the compiler's locals stack: the token that declared
// it, and the scope depth at which it became readable. depth == -1 marks a
// local whose initializer is still being compiled.
type local struct {
	name  token.Value
	depth int
}

// Compiler holds the parser and emitter state for compiling one source
// buffer. It is caller-owned and not safe for concurrent use.
type Compiler struct {
	scan     *scanner.Scanner
	chunk    *chunk.Chunk
	interner *intern.Interner
	errw     io.Writer

	current  token.Value
	previous token.Value
	hadError bool
	panicMode bool

	locals     []local
	scopeDepth int
}

// Compile compiles source into c, interning any string literals onto heap,
// and writes diagnostics to os.Stderr. It returns true iff the compile
// produced no diagnostics.
func Compile(source string, c *chunk.Chunk, heap *value.Heap) bool {
	return newCompiler(source, c, heap, os.Stderr).run()
}

// CompileTo is Compile with an explicit diagnostics sink, so tests can
// capture error output instead of writing to the real stderr.
func CompileTo(source string, c *chunk.Chunk, heap *value.Heap, errw io.Writer) bool {
	return newCompiler(source, c, heap, errw).run()
}

func newCompiler(source string, c *chunk.Chunk, heap *value.Heap, errw io.Writer) *Compiler {
	return &Compiler{
		scan:     scanner.New(source),
		chunk:    c,
		interner: intern.New(heap),
		errw:     errw,
	}
}

func (c *Compiler) run() bool {
	c.advance()
	for !c.match(token.EOF) {
		c.declaration()
	}
	c.emitReturn()
	return !c.hadError
}

// --- token-stream utilities ---

func (c *Compiler) advance() {
	c.previous = c.current
	for {
		c.current = c.scan.ScanToken()
		if c.current.Kind != token.ERROR {
			break
		}
		c.errorAtCurrent(c.current.Lexeme)
	}
}

func (c *Compiler) consume(kind token.Token, msg string) {
	if c.current.Kind == kind {
		c.advance()
		return
	}
	c.errorAtCurrent(msg)
}

func (c *Compiler) check(kind token.Token) bool { return c.current.Kind == kind }

func (c *Compiler) match(kind token.Token) bool {
	if !c.check(kind) {
		return false
	}
	c.advance()
	return true
}

// --- bytecode emission ---

func (c *Compiler) emitByte(b byte) {
	c.chunk.Write(b, c.previous.Line())
}

func (c *Compiler) emitBytes(b1, b2 byte) {
	c.emitByte(b1)
	c.emitByte(b2)
}

func (c *Compiler) emitReturn() {
	c.emitByte(byte(chunk.OP_RETURN))
}

func (c *Compiler) makeConstant(v value.Value) byte {
	if c.chunk.Full() {
		c.error("Too many constants in one chunk.")
		return 0
	}
	return byte(c.chunk.AddConstant(v))
}

func (c *Compiler) emitConstant(v value.Value) {
	c.emitBytes(byte(chunk.OP_CONSTANT), c.makeConstant(v))
}

// emitJump writes op followed by a two-byte placeholder operand and returns
// the offset of its first byte, for a later patchJump.
func (c *Compiler) emitJump(op chunk.Op) int {
	c.emitByte(byte(op))
	c.emitByte(0xff)
	c.emitByte(0xff)
	return len(c.chunk.Code) - 2
}

func (c *Compiler) patchJump(offset int) {
	jump := len(c.chunk.Code) - offset - 2
	if jump > 0xffff {
		c.error("Too much code to jump over.")
	}
	c.chunk.Code[offset] = byte((jump >> 8) & 0xff)
	c.chunk.Code[offset+1] = byte(jump & 0xff)
}

func (c *Compiler) emitLoop(loopStart int) {
	c.emitByte(byte(chunk.OP_LOOP))
	offset := len(c.chunk.Code) - loopStart + 2
	if offset > 0xffff {
		c.error("Loop body too large.")
	}
	c.emitByte(byte((offset >> 8) & 0xff))
	c.emitByte(byte(offset & 0xff))
}

// --- scope management ---

func (c *Compiler) beginScope() { c.scopeDepth++ }

func (c *Compiler) endScope() {
	c.scopeDepth--
	for len(c.locals) > 0 && c.locals[len(c.locals)-1].depth > c.scopeDepth {
		c.emitByte(byte(chunk.OP_POP))
		c.locals = c.locals[:len(c.locals)-1]
	}
}

// --- declarations and statements ---

func (c *Compiler) declaration() {
	if c.match(token.VAR) {
		c.varDeclaration()
	} else {
		c.statement()
	}
	if c.panicMode {
		c.synchronize()
	}
}

func (c *Compiler) varDeclaration() {
	global := c.parseVariable("Expect variable name.")
	if c.match(token.EQUAL) {
		c.expression()
	} else {
		c.emitByte(byte(chunk.OP_NIL))
	}
	c.consume(token.SEMICOLON, "Expect ';' after variable declaration.")
	c.defineVariable(global)
}

func (c *Compiler) statement() {
	switch {
	case c.match(token.PRINT):
		c.printStatement()
	case c.match(token.LEFT_BRACE):
		c.beginScope()
		c.block()
		c.endScope()
	case c.match(token.WHILE):
		c.whileStatement()
	case c.match(token.FOR):
		c.forStatement()
	case c.match(token.IF):
		c.ifStatement()
	default:
		c.expressionStatement()
	}
}

func (c *Compiler) printStatement() {
	c.expression()
	c.consume(token.SEMICOLON, "Expect ';' after value.")
	c.emitByte(byte(chunk.OP_PRINT))
}

func (c *Compiler) expressionStatement() {
	c.expression()
	c.emitByte(byte(chunk.OP_POP))
	c.consume(token.SEMICOLON, "Expect ';' after expression.")
}

func (c *Compiler) block() {
	for !c.check(token.RIGHT_BRACE) && !c.check(token.EOF) {
		c.declaration()
	}
	c.consume(token.RIGHT_BRACE, "Expect '}' after block.")
}

func (c *Compiler) ifStatement() {
	c.consume(token.LEFT_PAREN, "Expect '(' after 'if'.")
	c.expression()
	c.consume(token.RIGHT_PAREN, "Expect ')' after condition.")

	thenJump := c.emitJump(chunk.OP_JUMP_IF_FALSE)
	c.emitByte(byte(chunk.OP_POP))
	c.statement()

	elseJump := c.emitJump(chunk.OP_JUMP)

	c.patchJump(thenJump)
	c.emitByte(byte(chunk.OP_POP))

	if c.match(token.ELSE) {
		c.statement()
	}
	c.patchJump(elseJump)
}

func (c *Compiler) whileStatement() {
	loopStart := len(c.chunk.Code)

	c.consume(token.LEFT_PAREN, "Expect '(' after 'while'.")
	c.expression()
	c.consume(token.RIGHT_PAREN, "Expect ')' after condition.")

	exitJump := c.emitJump(chunk.OP_JUMP_IF_FALSE)
	c.emitByte(byte(chunk.OP_POP))
	c.statement()
	c.emitLoop(loopStart)

	c.patchJump(exitJump)
	c.emitByte(byte(chunk.OP_POP))
}

func (c *Compiler) forStatement() {
	c.beginScope()
	c.consume(token.LEFT_PAREN, "Expect '(' after 'for'.")

	switch {
	case c.match(token.SEMICOLON):
		// no initializer
	case c.match(token.VAR):
		c.varDeclaration()
	default:
		c.expressionStatement()
	}

	loopStart := len(c.chunk.Code)
	exitJump := -1
	if !c.match(token.SEMICOLON) {
		c.expression()
		c.consume(token.SEMICOLON, "Expect ';' after loop condition.")

		exitJump = c.emitJump(chunk.OP_JUMP_IF_FALSE)
		c.emitByte(byte(chunk.OP_POP))
	}

	if !c.match(token.RIGHT_PAREN) {
		bodyJump := c.emitJump(chunk.OP_JUMP)

		incrStart := len(c.chunk.Code)
		c.expression()
		c.emitByte(byte(chunk.OP_POP))
		c.consume(token.RIGHT_PAREN, "Expect ')' after for clauses.")

		c.emitLoop(loopStart)
		loopStart = incrStart
		c.patchJump(bodyJump)
	}

	c.statement()
	c.emitLoop(loopStart)

	if exitJump != -1 {
		c.patchJump(exitJump)
		c.emitByte(byte(chunk.OP_POP))
	}

	c.endScope()
}

// --- error reporting ---

// syncSet is the set of tokens synchronize() treats as the start of a new
// statement, reproduced exactly from clox's synchronize().
var syncSet = []token.Token{
	token.CLASS, token.FUN, token.VAR, token.FOR,
	token.IF, token.WHILE, token.PRINT, token.RETURN,
}

func (c *Compiler) synchronize() {
	c.panicMode = false

	for c.current.Kind != token.EOF {
		if c.previous.Kind == token.SEMICOLON {
			return
		}
		if slices.Contains(syncSet, c.current.Kind) {
			return
		}
		c.advance()
	}
}

func (c *Compiler) errorAtCurrent(msg string) { c.errorAt(c.current, msg) }
func (c *Compiler) error(msg string)          { c.errorAt(c.previous, msg) }

// errorAt reports msg anchored at tok, unless the parser is already in panic
// mode, using the "[line N] error" format (see DESIGN.md for why this
// departs from one retrieved copy of clox's compiler.c).
func (c *Compiler) errorAt(tok token.Value, msg string) {
	if c.panicMode {
		return
	}
	c.panicMode = true
	c.hadError = true

	fmt.Fprintf(c.errw, "[line %d] error", tok.Line())
	switch tok.Kind {
	case token.EOF:
		fmt.Fprint(c.errw, " at end")
	case token.ERROR:
		// the lexeme IS the message; no anchor to print
	default:
		fmt.Fprintf(c.errw, " at '%s'", tok.Lexeme)
	}
	fmt.Fprintf(c.errw, ": %s\n", msg)
}
