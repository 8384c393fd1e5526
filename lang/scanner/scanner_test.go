package scanner_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mna/lumen/lang/scanner"
	"github.com/mna/lumen/lang/token"
)

func scanAll(src string) []token.Value {
	s := scanner.New(src)
	var toks []token.Value
	for {
		tv := s.ScanToken()
		toks = append(toks, tv)
		if tv.Kind == token.EOF {
			return toks
		}
	}
}

func kindsOf(toks []token.Value) []token.Token {
	out := make([]token.Token, len(toks))
	for i, tv := range toks {
		out[i] = tv.Kind
	}
	return out
}

func TestScanPunctuationAndOperators(t *testing.T) {
	toks := scanAll(`(){};,.-+*/! != = == < <= > >=`)
	require.Equal(t, []token.Token{
		token.LEFT_PAREN, token.RIGHT_PAREN, token.LEFT_BRACE, token.RIGHT_BRACE,
		token.SEMICOLON, token.COMMA, token.DOT, token.MINUS, token.PLUS,
		token.STAR, token.SLASH, token.BANG, token.BANG_EQUAL, token.EQUAL,
		token.EQUAL_EQUAL, token.LESS, token.LESS_EQUAL, token.GREATER,
		token.GREATER_EQUAL, token.EOF,
	}, kindsOf(toks))
}

func TestScanKeywordsAndIdentifiers(t *testing.T) {
	toks := scanAll("var x = foo and bar or baz")
	require.Equal(t, []token.Token{
		token.VAR, token.IDENTIFIER, token.EQUAL, token.IDENTIFIER, token.AND,
		token.IDENTIFIER, token.OR, token.IDENTIFIER, token.EOF,
	}, kindsOf(toks))
	require.Equal(t, "x", toks[1].Lexeme)
}

func TestScanNumber(t *testing.T) {
	toks := scanAll("123 1.5 1.")
	require.Equal(t, token.NUMBER, toks[0].Kind)
	require.Equal(t, "123", toks[0].Lexeme)
	require.Equal(t, token.NUMBER, toks[1].Kind)
	require.Equal(t, "1.5", toks[1].Lexeme)
	// trailing '.' with no following digit is not consumed as a fraction.
	require.Equal(t, token.NUMBER, toks[2].Kind)
	require.Equal(t, "1", toks[2].Lexeme)
	require.Equal(t, token.DOT, toks[3].Kind)
}

func TestScanString(t *testing.T) {
	toks := scanAll(`"hello world"`)
	require.Equal(t, token.STRING, toks[0].Kind)
	require.Equal(t, `"hello world"`, toks[0].Lexeme)
}

func TestScanUnterminatedString(t *testing.T) {
	toks := scanAll(`"hello`)
	require.Equal(t, token.ERROR, toks[0].Kind)
	require.Equal(t, "Unterminated string.", toks[0].Lexeme)
}

func TestScanStringSpansLines(t *testing.T) {
	toks := scanAll("\"line1\nline2\"\nvar")
	require.Equal(t, token.STRING, toks[0].Kind)
	require.Equal(t, token.VAR, toks[1].Kind)
	line, _ := toks[1].Pos.LineCol()
	require.Equal(t, 3, line)
}

func TestSkipLineComments(t *testing.T) {
	toks := scanAll("var x; // a comment\nvar y;")
	require.Equal(t, []token.Token{
		token.VAR, token.IDENTIFIER, token.SEMICOLON,
		token.VAR, token.IDENTIFIER, token.SEMICOLON, token.EOF,
	}, kindsOf(toks))
}

func TestUnexpectedCharacter(t *testing.T) {
	toks := scanAll("@")
	require.Equal(t, token.ERROR, toks[0].Kind)
	require.Equal(t, "Unexpected character.", toks[0].Lexeme)
}

func TestEOFAtEnd(t *testing.T) {
	toks := scanAll("")
	require.Len(t, toks, 1)
	require.Equal(t, token.EOF, toks[0].Kind)
}
