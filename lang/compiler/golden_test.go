package compiler_test

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mna/lumen/internal/filetest"
	"github.com/mna/lumen/lang/chunk"
	"github.com/mna/lumen/lang/compiler"
	"github.com/mna/lumen/lang/value"
)

var updateGolden = flag.Bool("test.update-compiler-tests", false, "update the compiler's golden disassembly files")

// TestDisassembleGolden compiles every testdata/*.lumen fixture and diffs
// its disassembly against the matching testdata/*.lumen.want file, using
// the filetest golden-file diffing helper.
func TestDisassembleGolden(t *testing.T) {
	const dir = "testdata"
	for _, fi := range filetest.SourceFiles(t, dir, ".lumen") {
		fi := fi
		t.Run(fi.Name(), func(t *testing.T) {
			src, err := os.ReadFile(filepath.Join(dir, fi.Name()))
			require.NoError(t, err)

			c := chunk.New()
			heap := value.NewHeap()
			var errs bytes.Buffer
			ok := compiler.CompileTo(string(src), c, heap, &errs)
			require.True(t, ok, errs.String())

			filetest.DiffOutput(t, fi, c.Disassemble(fi.Name()), dir, updateGolden)
		})
	}
}
