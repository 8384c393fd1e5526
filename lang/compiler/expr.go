package compiler

import (
	"strconv"

	"github.com/mna/lumen/lang/chunk"
	"github.com/mna/lumen/lang/token"
	"github.com/mna/lumen/lang/value"
)

// precedence is an operator precedence level, lowest to highest.
type precedence int

const (
	precNone precedence = iota
	precAssign
	precOr
	precAnd
	precEq
	precCmp
	precTerm
	precFactor
	precUnary
	precCall
	precPrimary
)

// parseFn is a prefix or infix parsing action: a table of these, keyed by
// token kind, is the Go rendition of clox's mutually-recursive rule table.
// canAssign flows through every invocation even though only variable()
// consults it, preserving one function type for every table entry.
type parseFn func(c *Compiler, canAssign bool)

type parseRule struct {
	prefix     parseFn
	infix      parseFn
	precedence precedence
}

// rules is the Pratt table. A token absent from the map has the zero
// parseRule: no prefix, no infix, precNone — the rule for every token with
// no dedicated entry. It is filled in init, since its entries refer to
// methods that themselves read rules through getRule.
var rules map[token.Token]parseRule

func init() {
	rules = map[token.Token]parseRule{
	token.LEFT_PAREN:    {prefix: (*Compiler).grouping, precedence: precCall},
	token.MINUS:         {prefix: (*Compiler).unary, infix: (*Compiler).binary, precedence: precTerm},
	token.PLUS:          {infix: (*Compiler).binary, precedence: precTerm},
	token.SLASH:         {infix: (*Compiler).binary, precedence: precFactor},
	token.STAR:          {infix: (*Compiler).binary, precedence: precFactor},
	token.BANG:          {prefix: (*Compiler).unary},
	token.BANG_EQUAL:    {infix: (*Compiler).binary, precedence: precEq},
	token.EQUAL_EQUAL:   {infix: (*Compiler).binary, precedence: precEq},
	token.GREATER:       {infix: (*Compiler).binary, precedence: precCmp},
	token.GREATER_EQUAL: {infix: (*Compiler).binary, precedence: precCmp},
	token.LESS:          {infix: (*Compiler).binary, precedence: precCmp},
	token.LESS_EQUAL:    {infix: (*Compiler).binary, precedence: precCmp},
	token.IDENTIFIER:    {prefix: (*Compiler).variable},
	token.STRING:        {prefix: (*Compiler).str},
	token.NUMBER:        {prefix: (*Compiler).number},
	token.AND:           {infix: (*Compiler).and_, precedence: precAnd},
	token.OR:            {infix: (*Compiler).or_, precedence: precOr},
	token.FALSE:         {prefix: (*Compiler).literal},
	token.NIL:           {prefix: (*Compiler).literal},
	token.TRUE:          {prefix: (*Compiler).literal},
}
}

func getRule(kind token.Token) parseRule {
	return rules[kind]
}

func (c *Compiler) expression() {
	c.parsePrecedence(precAssign)
}

// parsePrecedence is the core Pratt loop.
func (c *Compiler) parsePrecedence(prec precedence) {
	c.advance()
	prefix := getRule(c.previous.Kind).prefix
	if prefix == nil {
		c.error("Expect expression.")
		return
	}

	canAssign := prec <= precAssign
	prefix(c, canAssign)

	for prec <= getRule(c.current.Kind).precedence {
		c.advance()
		infix := getRule(c.previous.Kind).infix
		infix(c, canAssign)
	}

	if canAssign && c.match(token.EQUAL) {
		c.error("Invalid assignment target.")
		c.expression()
	}
}

func (c *Compiler) grouping(bool) {
	c.expression()
	c.consume(token.RIGHT_PAREN, "Expect ')' after expression.")
}

func (c *Compiler) unary(bool) {
	opKind := c.previous.Kind
	c.parsePrecedence(precUnary)

	switch opKind {
	case token.MINUS:
		c.emitByte(byte(chunk.OP_NEGATE))
	case token.BANG:
		c.emitByte(byte(chunk.OP_NOT))
	}
}

func (c *Compiler) binary(bool) {
	opKind := c.previous.Kind
	rule := getRule(opKind)
	c.parsePrecedence(rule.precedence + 1)

	switch opKind {
	case token.PLUS:
		c.emitByte(byte(chunk.OP_ADD))
	case token.MINUS:
		c.emitByte(byte(chunk.OP_SUBTRACT))
	case token.STAR:
		c.emitByte(byte(chunk.OP_MULTIPLY))
	case token.SLASH:
		c.emitByte(byte(chunk.OP_DIVIDE))
	case token.BANG_EQUAL:
		c.emitBytes(byte(chunk.OP_EQUAL), byte(chunk.OP_NOT))
	case token.EQUAL_EQUAL:
		c.emitByte(byte(chunk.OP_EQUAL))
	case token.GREATER:
		c.emitByte(byte(chunk.OP_GREATER))
	case token.GREATER_EQUAL:
		c.emitBytes(byte(chunk.OP_LESS), byte(chunk.OP_NOT))
	case token.LESS:
		c.emitByte(byte(chunk.OP_LESS))
	case token.LESS_EQUAL:
		c.emitBytes(byte(chunk.OP_GREATER), byte(chunk.OP_NOT))
	}
}

func (c *Compiler) number(bool) {
	n, _ := strconv.ParseFloat(c.previous.Lexeme, 64)
	c.emitConstant(value.Number(n))
}

// str interns the token's lexeme minus its surrounding quotes. Named str,
// not string, to avoid shadowing the builtin type within this file.
func (c *Compiler) str(bool) {
	lit := c.previous.Lexeme
	c.emitConstant(c.interner.CopyString(lit[1 : len(lit)-1]))
}

func (c *Compiler) literal(bool) {
	switch c.previous.Kind {
	case token.NIL:
		c.emitByte(byte(chunk.OP_NIL))
	case token.TRUE:
		c.emitByte(byte(chunk.OP_TRUE))
	case token.FALSE:
		c.emitByte(byte(chunk.OP_FALSE))
	}
}

func (c *Compiler) variable(canAssign bool) {
	c.namedVariable(c.previous, canAssign)
}

// and_ implements short-circuiting `and`: the left operand is already on
// the stack; if it's falsey, skip the right operand entirely.
func (c *Compiler) and_(bool) {
	endJump := c.emitJump(chunk.OP_JUMP_IF_FALSE)
	c.emitByte(byte(chunk.OP_POP))
	c.parsePrecedence(precAnd)
	c.patchJump(endJump)
}

// or_ implements short-circuiting `or`: if the left operand is truthy, skip
// the right operand.
func (c *Compiler) or_(bool) {
	elseJump := c.emitJump(chunk.OP_JUMP_IF_FALSE)
	endJump := c.emitJump(chunk.OP_JUMP)

	c.patchJump(elseJump)
	c.emitByte(byte(chunk.OP_POP))

	c.parsePrecedence(precOr)
	c.patchJump(endJump)
}
