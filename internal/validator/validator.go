// Package validator performs fast duplicate detection over rows, columns
// and blocks using per-unit value bitmasks.
package validator

import (
	"context"

	"svw.info/dedoku/internal/domain"
)

type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

// unitCells returns the cells of unit u (0..8) within kind k:
// 0 = rows, 1 = columns, 2 = blocks.
func unitCells(k, u, i int) (r, c int) {
	switch k {
	case 0:
		return u, i
	case 1:
		return i, u
	default:
		return (u/3)*3 + i/3, (u%3)*3 + i%3
	}
}

// Validate scans every unit for repeated values. Blanks are ignored; each
// repeat is reported at the coordinate of the later occurrence.
func (v *FastValidator) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	conflicts := make([]domain.CellCoord, 0, 8)
	for k := 0; k < 3; k++ {
		for u := 0; u < 9; u++ {
			var seen uint16
			for i := 0; i < 9; i++ {
				r, c := unitCells(k, u, i)
				val := b.Values[r][c]
				if val == 0 {
					continue
				}
				m := uint16(1) << val
				if seen&m != 0 {
					conflicts = append(conflicts, domain.CellCoord{Row: r, Col: c})
				}
				seen |= m
			}
		}
	}
	return len(conflicts) == 0, conflicts, nil
}
