package token

import (
	"fmt"
	"testing"
)

func TestPosRoundTrip(t *testing.T) {
	cases := []struct{ line, col int }{
		{1, 1},
		{1, 80},
		{12345, 1},
		{MaxLines, MaxCols},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("%d:%d", c.line, c.col), func(t *testing.T) {
			p := MakePos(c.line, c.col)
			l, col := p.LineCol()
			if l != c.line || col != c.col {
				t.Errorf("want %d:%d, got %d:%d", c.line, c.col, l, col)
			}
			if p.Unknown() {
				t.Error("position should be known")
			}
		})
	}
}

func TestPosUnknown(t *testing.T) {
	if !MakePos(0, 1).Unknown() || !MakePos(1, 0).Unknown() {
		t.Error("zero line or col should be unknown")
	}
}

func TestPositionFormat(t *testing.T) {
	pos := MakePosition("x.roi", 42, MakePos(3, 7))
	cases := []struct {
		mode PosMode
		want string
	}{
		{PosNone, "x.roi"},
		{PosOffsets, "x.roi:#42"},
		{PosLineCol, "x.roi:3:7"},
	}
	for _, c := range cases {
		if got := pos.Format(c.mode); got != c.want {
			t.Errorf("mode %d: want %q, got %q", c.mode, c.want, got)
		}
	}
}
