package maincmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mna/mainer"
	"github.com/stretchr/testify/require"
)

func testStdio() (mainer.Stdio, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return mainer.Stdio{Stdout: &out, Stderr: &errOut}, &out, &errOut
}

func TestMainHelpVersion(t *testing.T) {
	stdio, out, _ := testStdio()
	c := Cmd{BuildVersion: "1.0", BuildDate: "2026-01-01"}
	require.Equal(t, mainer.Success, c.Main([]string{binName, "--help"}, stdio))
	require.Contains(t, out.String(), "usage: "+binName)

	stdio, out, _ = testStdio()
	c = Cmd{BuildVersion: "1.0", BuildDate: "2026-01-01"}
	require.Equal(t, mainer.Success, c.Main([]string{binName, "-v"}, stdio))
	require.Equal(t, binName+" 1.0 2026-01-01\n", out.String())
}

func TestMainInvalidArgs(t *testing.T) {
	cases := [][]string{
		// no command, unknown command, no file, invalid mode, and a flag
		// that is not valid for the symbols command
		{binName},
		{binName, "frobnicate", "x"},
		{binName, "tokenize"},
		{binName, "--positions=bogus", "tokenize", "x.roi"},
		{binName, "--positions=none", "symbols", "x.roi"},
	}
	for _, args := range cases {
		stdio, _, errOut := testStdio()
		var c Cmd
		require.Equal(t, mainer.InvalidArgs, c.Main(args, stdio), "%v", args)
		require.NotEmpty(t, errOut.String())
	}
}

func TestTokenizeFiles(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "t.roi")
	require.NoError(t, os.WriteFile(file, []byte("var n = 1\n"), 0600))

	stdio, out, errOut := testStdio()
	err := TokenizeFiles(context.Background(), stdio, 0, file)
	require.NoError(t, err)
	require.Empty(t, errOut.String())
	require.Equal(t, file+`: var
`+file+`: identifier n
`+file+`: =
`+file+`: number literal 1
`+file+`: newline
`+file+`: end of file
`, out.String())
}

func TestTokenizeFilesMissing(t *testing.T) {
	stdio, _, errOut := testStdio()
	err := TokenizeFiles(context.Background(), stdio, 0, filepath.Join(t.TempDir(), "nope.roi"))
	require.Error(t, err)
	require.NotEmpty(t, errOut.String())
}

func TestSymbolizeFiles(t *testing.T) {
	dir := t.TempDir()
	f1 := filepath.Join(dir, "a.roi")
	f2 := filepath.Join(dir, "b.roi")
	require.NoError(t, os.WriteFile(f1, []byte("var x = y + x\n"), 0600))
	require.NoError(t, os.WriteFile(f2, []byte("y.z\n"), 0600))

	stdio, out, errOut := testStdio()
	err := SymbolizeFiles(context.Background(), stdio, f1, f2)
	require.NoError(t, err)
	require.Empty(t, errOut.String())
	// first-seen order across both files, duplicates collapsed
	require.Equal(t, "0: x\n1: y\n2: z\n", out.String())
}
