// Package engine implements the deductive Sudoku core: a candidate-bitset
// board state, fixed-point constraint propagation over singles and naked
// subsets, and an iterative-deepening depth-limited search that guesses on
// the most-constrained cells first.
package engine

import (
	"fmt"
	"hash/fnv"
	"math/bits"
	"strings"
)

// Grid is a plain 9x9 value grid, Grid[row][col], 0 = blank.
type Grid [9][9]uint8

// Cell identifies one board position.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

const fullMask uint16 = 0x1FF // bits 0..8 stand for values 1..9

func bit(v uint8) uint16 { return 1 << (v - 1) }

// boxOf maps a cell to its 3x3 block index 0..8.
func boxOf(r, c int) int { return (r/3)*3 + c/3 }

// Board is one in-progress puzzle state. Candidate sets are one uint16
// bitset per cell; rows/cols/boxes hold the values already assigned in each
// unit and are maintained incrementally by Assign. A cell whose candidate
// set has a single bit is not solved until it has been explicitly assigned.
type Board struct {
	cands    [9][9]uint16
	assigned [9][9]bool
	rows     [9]uint16
	cols     [9]uint16
	boxes    [9]uint16
	unplayed int
}

// NewBoard builds a root state from the initial grid. Values outside 0..9
// are rejected. A given that contradicts an earlier given (same value twice
// in a unit) is not an error here: the affected cell is left unassigned
// with an empty candidate set, so validity checking rejects the state the
// same way propagation rejects any other contradiction.
func NewBoard(g Grid) (*Board, error) {
	b := &Board{unplayed: 81}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			b.cands[r][c] = fullMask
		}
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			v := g[r][c]
			if v == 0 {
				continue
			}
			if v > 9 {
				return nil, fmt.Errorf("cell (%d,%d): invalid given %d", r, c, v)
			}
			if b.cands[r][c]&bit(v) == 0 {
				// Contradictory given: poison the cell instead of assigning.
				b.cands[r][c] = 0
				continue
			}
			if err := b.Assign(r, c, v); err != nil {
				return nil, err
			}
		}
	}
	return b, nil
}

// Assign places value v at (r,c): eliminates v from the rest of the row,
// column and block, locks the cell's candidate set to v, records v in the
// unit bitmaps and decrements the unplayed counter. This is the single
// mutation primitive; every deduction and every guess goes through it.
// Precondition violations return ErrInvalidMove and indicate an engine bug.
func (b *Board) Assign(r, c int, v uint8) error {
	switch {
	case r < 0 || r > 8 || c < 0 || c > 8 || v < 1 || v > 9:
		return fmt.Errorf("%w: out of range (%d,%d)=%d", ErrInvalidMove, r, c, v)
	case b.assigned[r][c]:
		return fmt.Errorf("%w: cell (%d,%d) already assigned", ErrInvalidMove, r, c)
	case b.cands[r][c]&bit(v) == 0:
		return fmt.Errorf("%w: %d precluded at (%d,%d)", ErrInvalidMove, v, r, c)
	}

	m := bit(v)
	for i := 0; i < 9; i++ {
		b.cands[r][i] &^= m
		b.cands[i][c] &^= m
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			b.cands[br+dr][bc+dc] &^= m
		}
	}

	b.cands[r][c] = m
	b.assigned[r][c] = true
	b.rows[r] |= m
	b.cols[c] |= m
	b.boxes[boxOf(r, c)] |= m
	b.unplayed--
	return nil
}

// Clone returns a fully independent copy; the receiver is all value types,
// so a shallow copy is a deep one.
func (b *Board) Clone() *Board {
	cp := *b
	return &cp
}

// Equal reports structural equality: counter, candidate grid, assignment
// flags and unit bitmaps. Used to deduplicate search branches that
// different move orders collapse to the same state.
func (b *Board) Equal(other *Board) bool {
	return b.unplayed == other.unplayed &&
		b.cands == other.cands &&
		b.assigned == other.assigned &&
		b.rows == other.rows &&
		b.cols == other.cols &&
		b.boxes == other.boxes
}

// Fingerprint is a cheap structural hash used to bucket candidate
// duplicates before the exact Equal check.
func (b *Board) Fingerprint() uint64 {
	h := fnv.New64a()
	var buf [2]byte
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			m := b.cands[r][c]
			if b.assigned[r][c] {
				m |= 1 << 15
			}
			buf[0] = byte(m)
			buf[1] = byte(m >> 8)
			h.Write(buf[:])
		}
	}
	buf[0] = byte(b.unplayed)
	h.Write(buf[:1])
	return h.Sum64()
}

// ConstraintMap returns the remaining-candidate count per cell: 0 means a
// contradiction on an unassigned cell, 1 a solved or forced cell. It is
// recomputed on demand, never cached.
func (b *Board) ConstraintMap() [9][9]int {
	var m [9][9]int
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			m[r][c] = bits.OnesCount16(b.cands[r][c])
		}
	}
	return m
}

// Valid reports whether every unassigned cell still has at least one
// candidate.
func (b *Board) Valid() bool {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if !b.assigned[r][c] && b.cands[r][c] == 0 {
				return false
			}
		}
	}
	return true
}

// Complete reports whether every cell has been assigned.
func (b *Board) Complete() bool { return b.unplayed == 0 }

// Unplayed returns the number of cells not yet assigned. A negative value
// indicates a broken counter invariant.
func (b *Board) Unplayed() int { return b.unplayed }

// Correct checks a complete board: every row, column and block must contain
// all of 1..9. The unit bitmaps track exactly the assigned values, so on a
// complete board each must be full.
func (b *Board) Correct() bool {
	for i := 0; i < 9; i++ {
		if b.rows[i] != fullMask || b.cols[i] != fullMask || b.boxes[i] != fullMask {
			return false
		}
	}
	return true
}

// Value returns the assigned value at (r,c), if any.
func (b *Board) Value(r, c int) (uint8, bool) {
	if !b.assigned[r][c] {
		return 0, false
	}
	return uint8(bits.TrailingZeros16(b.cands[r][c])) + 1, true
}

// Candidates returns the remaining candidate values at (r,c) in increasing
// order.
func (b *Board) Candidates(r, c int) []uint8 {
	out := make([]uint8, 0, bits.OnesCount16(b.cands[r][c]))
	for v := uint8(1); v <= 9; v++ {
		if b.cands[r][c]&bit(v) != 0 {
			out = append(out, v)
		}
	}
	return out
}

// Grid extracts the assigned values; unassigned cells stay 0.
func (b *Board) Grid() Grid {
	var g Grid
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v, ok := b.Value(r, c); ok {
				g[r][c] = v
			}
		}
	}
	return g
}

// String renders the board for diagnostics: assigned values as digits,
// open cells as underscores, blocks separated by extra whitespace.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < 9; r++ {
		if r == 3 || r == 6 {
			sb.WriteByte('\n')
		}
		for c := 0; c < 9; c++ {
			if v, ok := b.Value(r, c); ok {
				sb.WriteByte('0' + v)
			} else {
				sb.WriteByte('_')
			}
			if c == 2 || c == 5 {
				sb.WriteString("  ")
			} else if c < 8 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
