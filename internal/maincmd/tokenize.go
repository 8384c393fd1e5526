package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/mna/lumen/lang/scanner"
	"github.com/mna/lumen/lang/token"
)

func (c *Cmd) Tokenize(_ context.Context, stdio mainer.Stdio, args []string) error {
	return TokenizeFiles(stdio, args...)
}

// TokenizeFiles runs the scanner over each file in turn and prints its
// tokens, one per line, to stdio.Stdout.
func TokenizeFiles(stdio mainer.Stdio, files ...string) error {
	var failed bool
	for _, name := range files {
		src, err := os.ReadFile(name)
		if err != nil {
			fmt.Fprintln(stdio.Stderr, err)
			failed = true
			continue
		}

		s := scanner.New(string(src))
		for {
			tok := s.ScanToken()
			line, col := tok.Pos.LineCol()
			fmt.Fprintf(stdio.Stdout, "%s:%d:%d: %s", name, line, col, tok.Kind)
			switch tok.Kind {
			case token.STRING, token.NUMBER, token.IDENTIFIER, token.ERROR:
				fmt.Fprintf(stdio.Stdout, " %q", tok.Lexeme)
			}
			fmt.Fprintln(stdio.Stdout)
			if tok.Kind == token.EOF {
				break
			}
		}
	}
	if failed {
		return fmt.Errorf("tokenize: one or more files could not be read")
	}
	return nil
}
