package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/mna/lumen/lang/chunk"
	"github.com/mna/lumen/lang/compiler"
	"github.com/mna/lumen/lang/value"
)

func (c *Cmd) Compile(_ context.Context, stdio mainer.Stdio, args []string) error {
	return CompileFiles(stdio, c.Dump, c.WithLines, args...)
}

// CompileFiles compiles each file independently (a fresh Chunk and heap per
// file — this module has no notion of linking multiple compilation units),
// reporting diagnostics to stdio.Stderr. When dump is set, a disassembly of
// each successfully compiled chunk is printed to stdio.Stdout.
func CompileFiles(stdio mainer.Stdio, dump, withLines bool, files ...string) error {
	var failed bool
	for _, name := range files {
		src, err := os.ReadFile(name)
		if err != nil {
			fmt.Fprintln(stdio.Stderr, err)
			failed = true
			continue
		}

		ch := chunk.New()
		heap := value.NewHeap()
		if ok := compiler.CompileTo(string(src), ch, heap, stdio.Stderr); !ok {
			failed = true
			continue
		}
		if dump {
			if withLines {
				fmt.Fprint(stdio.Stdout, ch.Disassemble(name))
			} else {
				fmt.Fprint(stdio.Stdout, ch.DisassembleCompact(name))
			}
		}
	}
	if failed {
		return fmt.Errorf("compile: one or more files failed")
	}
	return nil
}
