package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenString(t *testing.T) {
	for tok := Token(0); tok < maxToken; tok++ {
		if tok == punctStart || tok == punctEnd || tok == kwStart || tok == kwEnd {
			continue // sentinel markers, not real tokens
		}
		require.NotEmpty(t, tok.String(), "token %d has no string form", tok)
	}
}

func TestLookupKw(t *testing.T) {
	for tok := kwStart + 1; tok < kwEnd; tok++ {
		require.Equal(t, tok, LookupKw(tok.String()))
	}
	require.Equal(t, IDENTIFIER, LookupKw("printf"))
	require.Equal(t, IDENTIFIER, LookupKw("classroom"))
	require.Equal(t, IDENTIFIER, LookupKw(""))
}

func TestGoStringQuotesPunctAndKeywords(t *testing.T) {
	require.Equal(t, "'+'", PLUS.GoString())
	require.Equal(t, "'var'", VAR.GoString())
	require.Equal(t, "identifier", IDENTIFIER.GoString())
	require.Equal(t, "end of file", EOF.GoString())
}

func TestValueLine(t *testing.T) {
	v := Value{Kind: NUMBER, Lexeme: "3", Pos: MakePos(7, 1)}
	require.Equal(t, 7, v.Line())
}
