package maincmd

import (
	"context"
	"fmt"

	"github.com/mna/mainer"
	"github.com/mna/roitelet/lang/scanner"
	"github.com/mna/roitelet/lang/token"
)

func (c *Cmd) Tokenize(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return TokenizeFiles(ctx, stdio, c.posMode, args...)
}

// TokenizeFiles scans the source files and prints the resulting tokens to
// stdio.Stdout, one per line, with their position rendered according to
// mode. Scanning errors are printed to stdio.Stderr and returned.
func TokenizeFiles(ctx context.Context, stdio mainer.Stdio, mode token.PosMode, files ...string) error {
	toksByFile, err := scanner.ScanFiles(ctx, files...)
	for i, toks := range toksByFile {
		for _, tok := range toks {
			pos := token.MakePosition(files[i], tok.Value.Off, tok.Value.Pos)
			fmt.Fprintf(stdio.Stdout, "%s: %s", pos.Format(mode), tok.Token)
			if lit := tok.Token.Literal(tok.Value); lit != "" {
				fmt.Fprintf(stdio.Stdout, " %s", lit)
			}
			fmt.Fprintln(stdio.Stdout)
		}
	}
	if err != nil {
		scanner.PrintError(stdio.Stderr, err)
	}
	return err
}
