// Package scanner implements a lexical scanner: a byte-addressed,
// ASCII-only cursor over a source string that produces one token at a time
// on demand. The classification switch follows clox's scanner.c; there is
// no UTF-8 decoding, since the language is ASCII-only.
package scanner

import (
	"github.com/mna/lumen/lang/token"
)

// Scanner tokenizes a single source buffer for the compiler to consume. It
// holds a non-owning reference to source; the caller must keep it alive for
// as long as any Token.Value.Lexeme derived from it is in use.
type Scanner struct {
	src     string
	start   int // byte offset of the token currently being scanned
	current int // byte offset of the next unread byte
	line    int
}

// Init resets s to scan source from the beginning.
func (s *Scanner) Init(source string) {
	s.src = source
	s.start = 0
	s.current = 0
	s.line = 1
}

// New returns a Scanner already initialized to scan source.
func New(source string) *Scanner {
	s := &Scanner{}
	s.Init(source)
	return s
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.src)
}

func (s *Scanner) advance() byte {
	b := s.src[s.current]
	s.current++
	return b
}

func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.src[s.current]
}

func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.src) {
		return 0
	}
	return s.src[s.current+1]
}

// match advances and returns true if the next byte is expect; otherwise it
// leaves the cursor untouched and returns false.
func (s *Scanner) match(expect byte) bool {
	if s.isAtEnd() || s.src[s.current] != expect {
		return false
	}
	s.current++
	return true
}

func (s *Scanner) makeToken(kind token.Token) token.Value {
	return token.Value{
		Kind:   kind,
		Lexeme: s.src[s.start:s.current],
		Pos:    token.MakePos(s.line, 1),
	}
}

func (s *Scanner) errorToken(msg string) token.Value {
	return token.Value{
		Kind:   token.ERROR,
		Lexeme: msg,
		Pos:    token.MakePos(s.line, 1),
	}
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isAlpha(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b == '_'
}

// skipWhitespace consumes spaces, tabs, carriage returns, newlines (each
// incrementing the line counter) and `//` line comments.
func (s *Scanner) skipWhitespace() {
	for {
		switch s.peek() {
		case ' ', '\t', '\r':
			s.advance()
		case '\n':
			s.line++
			s.advance()
		case '/':
			if s.peekNext() == '/' {
				for s.peek() != '\n' && !s.isAtEnd() {
					s.advance()
				}
			} else {
				return
			}
		default:
			return
		}
	}
}

// ScanToken returns the next token in the source. It never blocks or
// returns an error value: lex errors surface as ERROR tokens whose Lexeme
// carries the message.
func (s *Scanner) ScanToken() token.Value {
	s.skipWhitespace()
	s.start = s.current

	if s.isAtEnd() {
		return s.makeToken(token.EOF)
	}

	c := s.advance()
	if isDigit(c) {
		return s.number()
	}
	if isAlpha(c) {
		return s.identifier()
	}

	switch c {
	case '(':
		return s.makeToken(token.LEFT_PAREN)
	case ')':
		return s.makeToken(token.RIGHT_PAREN)
	case '{':
		return s.makeToken(token.LEFT_BRACE)
	case '}':
		return s.makeToken(token.RIGHT_BRACE)
	case ';':
		return s.makeToken(token.SEMICOLON)
	case ',':
		return s.makeToken(token.COMMA)
	case '.':
		return s.makeToken(token.DOT)
	case '-':
		return s.makeToken(token.MINUS)
	case '+':
		return s.makeToken(token.PLUS)
	case '/':
		return s.makeToken(token.SLASH)
	case '*':
		return s.makeToken(token.STAR)
	case '!':
		if s.match('=') {
			return s.makeToken(token.BANG_EQUAL)
		}
		return s.makeToken(token.BANG)
	case '=':
		if s.match('=') {
			return s.makeToken(token.EQUAL_EQUAL)
		}
		return s.makeToken(token.EQUAL)
	case '<':
		if s.match('=') {
			return s.makeToken(token.LESS_EQUAL)
		}
		return s.makeToken(token.LESS)
	case '>':
		if s.match('=') {
			return s.makeToken(token.GREATER_EQUAL)
		}
		return s.makeToken(token.GREATER)
	case '"':
		return s.string()
	}

	return s.errorToken("Unexpected character.")
}

func (s *Scanner) identifier() token.Value {
	for isAlpha(s.peek()) || isDigit(s.peek()) {
		s.advance()
	}
	lit := s.src[s.start:s.current]
	kind := token.IDENTIFIER
	if len(lit) > 1 {
		// keywords are at least two bytes long; skip the lookup otherwise, the
		// way clox's identifierType short-circuits on scanner.start[0].
		kind = token.LookupKw(lit)
	}
	return s.makeToken(kind)
}
