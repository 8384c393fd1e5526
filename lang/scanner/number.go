package scanner

import "github.com/mna/lumen/lang/token"

// number scans `digit+ ( '.' digit+ )?`. The fractional part requires at
// least one digit after the '.', so a trailing '.' with no following digit
// (e.g. a method-call dot on a number literal) is left unconsumed for the
// parser. Numeric conversion to float64 happens later, in the compiler.
func (s *Scanner) number() token.Value {
	for isDigit(s.peek()) {
		s.advance()
	}

	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance() // the '.'
		for isDigit(s.peek()) {
			s.advance()
		}
	}

	return s.makeToken(token.NUMBER)
}
