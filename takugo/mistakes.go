package takugo

import "fmt"

// ContainsError returns a description of the first broken rule, or nil if
// the board is still viable. It answers the same question as Valid but
// builds a reason; the search sticks to Valid.
func (b Board) ContainsError() error {
	var rows, cols [8]uint8
	var rowAt, colAt [8]int
	nr, nc := 0, 0
	for i := 0; i < b.Size; i++ {
		row := b.Row(i)
		if !row.Balanced() {
			return fmt.Errorf("row %d is unbalanced", i)
		}
		if !row.TripletFree() {
			return fmt.Errorf("row %d contains a triplet", i)
		}
		col := b.Col(i)
		if !col.Balanced() {
			return fmt.Errorf("column %d is unbalanced", i)
		}
		if !col.TripletFree() {
			return fmt.Errorf("column %d contains a triplet", i)
		}
		if row.Full() {
			for j := 0; j < nr; j++ {
				if rows[j] == row.Bits {
					return fmt.Errorf("rows %d and %d are identical", rowAt[j], i)
				}
			}
			rows[nr], rowAt[nr] = row.Bits, i
			nr++
		}
		if col.Full() {
			for j := 0; j < nc; j++ {
				if cols[j] == col.Bits {
					return fmt.Errorf("columns %d and %d are identical", colAt[j], i)
				}
			}
			cols[nc], colAt[nc] = col.Bits, i
			nc++
		}
	}
	return nil
}

func (b Board) IsSolved() (bool, error) {
	if i, ok := b.FirstUnknown(); ok {
		return false, fmt.Errorf("cell %v is unknown", b.coordinate(i))
	}
	if err := b.ContainsError(); err != nil {
		return false, err
	}
	return true, nil
}
