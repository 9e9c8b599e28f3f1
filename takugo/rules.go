package takugo

import "math/bits"

func (l Line) knownMask() uint8 {
	return ^l.Unknown & lineMask(l.Size)
}

// Ones counts the known cells of the line holding a 1.
func (l Line) Ones() int {
	return bits.OnesCount8(l.Bits & l.knownMask())
}

// Zeros counts the known cells of the line holding a 0.
func (l Line) Zeros() int {
	return bits.OnesCount8(l.knownMask()) - l.Ones()
}

func (l Line) Full() bool {
	return l.Unknown == 0
}

// Balanced reports whether the line can still end up with Size/2 of each
// symbol: neither count among the known cells may exceed half the line.
// On a full line this collapses to exact equality.
func (l Line) Balanced() bool {
	half := l.Size / 2
	return l.Ones() <= half && l.Zeros() <= half
}

// TripletFree reports whether no window of three consecutive known cells
// holds the same symbol. Windows touching an unknown cell cannot be judged
// yet and are skipped.
func (l Line) TripletFree() bool {
	for i := 0; i+3 <= l.Size; i++ {
		window := uint8(7) << uint(i)
		if l.Unknown&window != 0 {
			continue
		}
		v := l.Bits & window
		if v == 0 || v == window {
			return false
		}
	}
	return true
}

// Valid reports whether b can still be completed into a solution. It checks
// every row and column for balance and triplets, and compares fully-known
// lines of the same orientation for duplicates, stopping at the first
// violation. An incomplete board passes as long as nothing rules it out;
// the search prunes any branch where Valid turns false.
func (b Board) Valid() bool {
	var rows, cols [8]uint8
	nr, nc := 0, 0
	for i := 0; i < b.Size; i++ {
		row := b.Row(i)
		if !row.Balanced() || !row.TripletFree() {
			return false
		}
		col := b.Col(i)
		if !col.Balanced() || !col.TripletFree() {
			return false
		}
		if row.Full() {
			for j := 0; j < nr; j++ {
				if rows[j] == row.Bits {
					return false
				}
			}
			rows[nr] = row.Bits
			nr++
		}
		if col.Full() {
			for j := 0; j < nc; j++ {
				if cols[j] == col.Bits {
					return false
				}
			}
			cols[nc] = col.Bits
			nc++
		}
	}
	return true
}
