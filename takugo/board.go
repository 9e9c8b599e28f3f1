package takugo

import (
	"fmt"
	"math/bits"
	"strings"
)

type Cell int

const EMPTY = -1
const ZERO = 0
const ONE = 1

type Coordinate struct {
	Row int
	Col int
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(r%d, c%d)", c.Row, c.Col)
}

// Board is a square Takuzu grid packed into two bit planes. Cells are
// flattened row-major, so cell (r, c) is bit r*Size+c of each plane. A set
// Unknown bit means the cell is undetermined; Grid bits for unknown cells
// are kept zero, so two Boards holding the same position compare equal
// with ==. Size is even and Size*Size never exceeds 64.
type Board struct {
	Grid    uint64
	Unknown uint64
	Size    int
}

func NewBoard(size int) (Board, error) {
	if size < 2 || size > 8 || size%2 != 0 {
		return Board{}, fmt.Errorf("%w: %d", ErrBoardSize, size)
	}
	return Board{Unknown: boardMask(size), Size: size}, nil
}

func boardMask(size int) uint64 {
	cells := uint(size * size)
	if cells == 64 {
		return ^uint64(0)
	}
	return uint64(1)<<cells - 1
}

func lineMask(size int) uint8 {
	return uint8(1<<uint(size) - 1)
}

func (b Board) Cells() int {
	return b.Size * b.Size
}

func (b Board) index(r int, c int) int {
	return r*b.Size + c
}

func (b Board) coordinate(i int) Coordinate {
	return Coordinate{i / b.Size, i % b.Size}
}

func (b Board) Get(r int, c int) Cell {
	i := uint(b.index(r, c))
	if b.Unknown>>i&1 == 1 {
		return EMPTY
	}
	return Cell(b.Grid >> i & 1)
}

func (b Board) Known(r int, c int) bool {
	return b.Unknown>>uint(b.index(r, c))&1 == 0
}

// Set returns a copy of b with the cell at (r, c) assigned. Assigning EMPTY
// clears the cell back to undetermined. b itself is never modified; every
// branch of a search works on its own copy.
func (b Board) Set(r int, c int, cell Cell) Board {
	return b.set(b.index(r, c), cell)
}

func (b Board) set(i int, cell Cell) Board {
	bit := uint64(1) << uint(i)
	b.Grid &^= bit
	b.Unknown &^= bit
	switch cell {
	case ONE:
		b.Grid |= bit
	case EMPTY:
		b.Unknown |= bit
	}
	return b
}

func (b Board) UnknownCount() int {
	return bits.OnesCount64(b.Unknown)
}

func (b Board) KnownCount() int {
	return b.Cells() - b.UnknownCount()
}

func (b Board) Complete() bool {
	return b.Unknown == 0
}

// FirstUnknown returns the lowest flattened index of an undetermined cell.
func (b Board) FirstUnknown() (int, bool) {
	if b.Unknown == 0 {
		return 0, false
	}
	return bits.TrailingZeros64(b.Unknown), true
}

// Line is a row or column sliced out of both planes, at most 8 bits wide.
// The bit order differs by orientation (see Row and Col) but each
// orientation is consistent with itself, which is all the adjacency and
// uniqueness rules need.
type Line struct {
	Bits    uint8
	Unknown uint8
	Size    int
}

// Row slices row i out of the board. Column c of the row sits at bit c.
func (b Board) Row(i int) Line {
	shift := uint(i * b.Size)
	mask := lineMask(b.Size)
	return Line{
		Bits:    uint8(b.Grid>>shift) & mask,
		Unknown: uint8(b.Unknown>>shift) & mask,
		Size:    b.Size,
	}
}

// Col slices column i out of the board, gathering one bit per row from top
// to bottom. Row 0 lands in the highest bit.
func (b Board) Col(i int) Line {
	l := Line{Size: b.Size}
	for k := 0; k < b.Size; k++ {
		bit := uint(i + k*b.Size)
		l.Bits = l.Bits<<1 | uint8(b.Grid>>bit&1)
		l.Unknown = l.Unknown<<1 | uint8(b.Unknown>>bit&1)
	}
	return l
}

func (b Board) CharAt(r int, c int) string {
	switch b.Get(r, c) {
	case ZERO:
		return "0"
	case ONE:
		return "1"
	}
	return " "
}

// String renders the grid for a terminal: one glyph per cell with |
// dividers, rows separated by ---+--- rules, blank where undetermined.
func (b Board) String() string {
	sep := strings.Repeat("---+", b.Size-1) + "---\n"
	s := ""
	for r := 0; r < b.Size; r++ {
		if r > 0 {
			s += sep
		}
		for c := 0; c < b.Size; c++ {
			if c > 0 {
				s += "|"
			}
			s += " " + b.CharAt(r, c) + " "
		}
		s += "\n"
	}
	return s
}

// PuzzleString flattens the board back into the row-major character form
// accepted by BoardFromString.
func (b Board) PuzzleString() string {
	s := ""
	for r := 0; r < b.Size; r++ {
		for c := 0; c < b.Size; c++ {
			s += b.CharAt(r, c)
		}
	}
	return s
}
