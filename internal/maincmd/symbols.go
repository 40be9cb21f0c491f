package maincmd

import (
	"context"
	"fmt"

	"github.com/mna/mainer"
	"github.com/mna/roitelet/lang/scanner"
	"github.com/mna/roitelet/lang/symbol"
	"github.com/mna/roitelet/lang/token"
)

func (c *Cmd) Symbols(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return SymbolizeFiles(ctx, stdio, args...)
}

// SymbolizeFiles scans the source files, interns every identifier into a
// symbol table shared across the files, and prints the symbols to
// stdio.Stdout in interning order, one "number: name" pair per line.
// Scanning errors are printed to stdio.Stderr and returned.
func SymbolizeFiles(ctx context.Context, stdio mainer.Stdio, files ...string) error {
	toksByFile, err := scanner.ScanFiles(ctx, files...)

	syms := symbol.NewTable(0)
	for _, toks := range toksByFile {
		for _, tok := range toks {
			if tok.Token == token.IDENT {
				syms.Intern(tok.Value.Raw)
			}
		}
	}
	for i := 0; i < syms.Len(); i++ {
		name, _ := syms.Name(uint32(i))
		fmt.Fprintf(stdio.Stdout, "%d: %s\n", i, name)
	}

	if err != nil {
		scanner.PrintError(stdio.Stderr, err)
	}
	return err
}
