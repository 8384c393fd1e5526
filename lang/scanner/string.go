package scanner

import "github.com/mna/lumen/lang/token"

// string scans a short string literal: the opening '"' has already been
// consumed. It consumes through the matching closing quote, tracking
// embedded newlines, and reports an error token if the source ends first.
// The surrounding quotes are included in the resulting token's Lexeme; the
// compiler strips them.
func (s *Scanner) string() token.Value {
	for s.peek() != '"' && !s.isAtEnd() {
		if s.peek() == '\n' {
			s.line++
		}
		s.advance()
	}

	if s.isAtEnd() {
		return s.errorToken("Unterminated string.")
	}

	s.advance() // the closing quote
	return s.makeToken(token.STRING)
}
