package takugo

import (
	"strings"
	"testing"
)

// Shared fixtures. solved4 is the only completion of puzzle4; puzzle6 and
// solved8 were built from known-good grids; the invalid boards each break
// exactly one rule.
const (
	solved4 = "1010010111000011"
	puzzle4 = " 0 00 0  1    1 "
	puzzle6 = "1  1   0  1   0  00  1    1 0  1   1"
	solved8 = "1101001000101101011010011001011010101100010100110110011010011001"

	dupColsPartial = "00  11  00  11  "
	dupRowsFull    = "1010101001010101"
)

var (
	blank2      = strings.Repeat(" ", 4)
	blank4      = strings.Repeat(" ", 16)
	blank8      = strings.Repeat(" ", 64)
	unbalanced4 = "11 1" + strings.Repeat(" ", 12)
	triplet6    = "000" + strings.Repeat(" ", 33)
	dupRows4    = "10101010" + strings.Repeat(" ", 8)
)

func mustBoard(t *testing.T, s string) Board {
	t.Helper()
	b, err := BoardFromString(s)
	if err != nil {
		t.Fatalf("BoardFromString(%q): %v", s, err)
	}
	return b
}

func TestNewBoard(t *testing.T) {
	b, err := NewBoard(4)
	if err != nil {
		t.Fatalf("NewBoard(4): %v", err)
	}
	if b.Size != 4 || b.Cells() != 16 {
		t.Errorf("got size %d with %d cells, want 4 and 16", b.Size, b.Cells())
	}
	if b.UnknownCount() != 16 || b.Complete() {
		t.Errorf("fresh board should be fully undetermined")
	}
	for _, size := range []int{-2, 0, 1, 3, 5, 7, 9, 10} {
		if _, err := NewBoard(size); err == nil {
			t.Errorf("NewBoard(%d) should fail", size)
		}
	}
}

func TestSetGet(t *testing.T) {
	b, _ := NewBoard(4)
	b = b.Set(1, 2, ONE)
	if got := b.Get(1, 2); got != ONE {
		t.Errorf("Get(1, 2) = %d, want ONE", got)
	}
	if !b.Known(1, 2) || b.KnownCount() != 1 {
		t.Errorf("cell (1, 2) should be the only known cell")
	}
	b = b.Set(1, 2, ZERO)
	if got := b.Get(1, 2); got != ZERO {
		t.Errorf("Get(1, 2) = %d after reassignment, want ZERO", got)
	}
	b = b.Set(1, 2, EMPTY)
	if b.Known(1, 2) || b.Grid != 0 {
		t.Errorf("clearing a cell should reset both planes, got grid %b", b.Grid)
	}
}

func TestSetCopies(t *testing.T) {
	orig := mustBoard(t, puzzle4)
	mod := orig.Set(0, 0, ONE)
	if orig.Known(0, 0) {
		t.Errorf("Set modified the receiver")
	}
	if !mod.Known(0, 0) {
		t.Errorf("Set did not modify the copy")
	}
	if orig.UnknownCount() != mod.UnknownCount()+1 {
		t.Errorf("unknown counts %d and %d should differ by one", orig.UnknownCount(), mod.UnknownCount())
	}
}

func TestFirstUnknown(t *testing.T) {
	b := mustBoard(t, puzzle4)
	if i, ok := b.FirstUnknown(); !ok || i != 0 {
		t.Errorf("FirstUnknown = %d, %v, want 0, true", i, ok)
	}
	b = b.Set(0, 0, ONE)
	if i, ok := b.FirstUnknown(); !ok || i != 2 {
		t.Errorf("FirstUnknown = %d, %v, want 2, true", i, ok)
	}
	full := mustBoard(t, solved4)
	if _, ok := full.FirstUnknown(); ok {
		t.Errorf("complete board reported an unknown cell")
	}
}

func TestRowExtraction(t *testing.T) {
	b := mustBoard(t, solved4)
	want := []uint8{5, 10, 3, 12}
	for i, bits := range want {
		row := b.Row(i)
		if row.Bits != bits || row.Unknown != 0 || row.Size != 4 {
			t.Errorf("Row(%d) = {%d %d %d}, want {%d 0 4}", i, row.Bits, row.Unknown, row.Size, bits)
		}
	}
}

func TestColExtraction(t *testing.T) {
	b := mustBoard(t, solved4)
	want := []uint8{10, 6, 9, 5}
	for i, bits := range want {
		col := b.Col(i)
		if col.Bits != bits || col.Unknown != 0 {
			t.Errorf("Col(%d) = {%d %d}, want {%d 0}", i, col.Bits, col.Unknown, bits)
		}
	}
}

func TestExtractionSize6(t *testing.T) {
	b := mustBoard(t, puzzle6)
	cases := []struct {
		name          string
		line          Line
		bits, unknown uint8
	}{
		{"row 0", b.Row(0), 0b001001, 0b110110},
		{"row 3", b.Row(3), 0b001000, 0b110110},
		{"col 0", b.Col(0), 0b100000, 0b011011},
		{"col 5", b.Col(5), 0b000001, 0b110110},
	}
	for _, c := range cases {
		if c.line.Bits != c.bits || c.line.Unknown != c.unknown {
			t.Errorf("%s = {%06b %06b}, want {%06b %06b}", c.name, c.line.Bits, c.line.Unknown, c.bits, c.unknown)
		}
	}
}

func TestExtractionPartial(t *testing.T) {
	b := mustBoard(t, "1"+strings.Repeat(" ", 15))
	row := b.Row(0)
	if row.Bits != 1 || row.Unknown != 14 {
		t.Errorf("Row(0) = {%d %d}, want {1 14}", row.Bits, row.Unknown)
	}
	col := b.Col(0)
	if col.Bits != 8 || col.Unknown != 7 {
		t.Errorf("Col(0) = {%d %d}, want {8 7}", col.Bits, col.Unknown)
	}
	col = b.Col(1)
	if col.Bits != 0 || col.Unknown != 15 {
		t.Errorf("Col(1) = {%d %d}, want {0 15}", col.Bits, col.Unknown)
	}
}

func TestSize8Boundary(t *testing.T) {
	b, err := NewBoard(8)
	if err != nil {
		t.Fatalf("NewBoard(8): %v", err)
	}
	if b.UnknownCount() != 64 {
		t.Fatalf("UnknownCount = %d, want 64", b.UnknownCount())
	}
	b = b.Set(7, 7, ONE)
	if b.Get(7, 7) != ONE || b.KnownCount() != 1 {
		t.Errorf("highest cell did not survive assignment")
	}
	if i, ok := b.FirstUnknown(); !ok || i != 0 {
		t.Errorf("FirstUnknown = %d, %v, want 0, true", i, ok)
	}
}

func TestStringRender(t *testing.T) {
	b := mustBoard(t, "10  ")
	want := " 1 | 0 \n---+---\n   |   \n"
	if got := b.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestPuzzleString(t *testing.T) {
	for _, s := range []string{puzzle4, solved4, puzzle6, blank2} {
		if got := mustBoard(t, s).PuzzleString(); got != s {
			t.Errorf("PuzzleString() = %q, want %q", got, s)
		}
	}
}
