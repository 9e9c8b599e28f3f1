package takugo

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

var ErrBoardSize = errors.New("invalid board size")
var ErrPuzzleLength = errors.New("invalid puzzle length")
var ErrPuzzleCharacter = errors.New("invalid puzzle character")

var sizeForLength = map[int]int{4: 2, 16: 4, 36: 6, 64: 8}

// BoardFromString parses a row-major puzzle string: '0' and '1' are known
// cells, ' ' is undetermined, and the length must be k*k for an even k up
// to 8. The parsed board is not checked against the puzzle rules; a
// contradictory board parses fine and simply has no solution.
func BoardFromString(input string) (Board, error) {
	size, ok := sizeForLength[len(input)]
	if !ok {
		return Board{}, fmt.Errorf("%w: %d characters is not an even square up to 64", ErrPuzzleLength, len(input))
	}
	b, err := NewBoard(size)
	if err != nil {
		return Board{}, err
	}
	for i := 0; i < len(input); i++ {
		switch input[i] {
		case ' ':
		case '0':
			b = b.set(i, ZERO)
		case '1':
			b = b.set(i, ONE)
		default:
			return Board{}, fmt.Errorf("%w: %q at offset %d", ErrPuzzleCharacter, input[i], i)
		}
	}
	return b, nil
}

// GetBoardFromFile reads a puzzle string from f. Only trailing newlines are
// trimmed; spaces are cell content and survive.
func GetBoardFromFile(f string) (Board, error) {
	data, err := os.ReadFile(f)
	if err != nil {
		return Board{}, err
	}
	return BoardFromString(strings.TrimRight(string(data), "\r\n"))
}
