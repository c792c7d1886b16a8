// Package hint suggests the next logical step using the same rule battery
// the deductive engine propagates with.
package hint

import (
	"context"
	"fmt"
	"strings"

	"svw.info/dedoku/internal/domain"
	"svw.info/dedoku/internal/engine"
)

// RuleHinter surfaces the first deduction the engine would make, capped by
// a strategy tier so easy hints stay easy.
type RuleHinter struct{}

func New() *RuleHinter { return &RuleHinter{} }

// tierOf maps engine rules onto the strategy tiers exposed to clients.
func tierOf(r engine.Rule) domain.StrategyTier {
	switch r {
	case engine.RuleNakedPair:
		return domain.StrategyPairs
	case engine.RuleNakedTriple:
		return domain.StrategyAdvanced
	default:
		return domain.StrategySingles
	}
}

func (h *RuleHinter) Hint(ctx context.Context, b *domain.Board, max domain.StrategyTier) (domain.Hint, bool, error) {
	board, err := engine.NewBoard(engine.Grid(b.Values))
	if err != nil {
		return domain.Hint{}, false, err
	}
	if !board.Valid() {
		return domain.Hint{}, false, nil // contradictory board, nothing to suggest
	}

	d, ok := engine.NextDeduction(board, func(r engine.Rule) bool {
		return tierOf(r) <= max
	})
	if !ok {
		return domain.Hint{}, false, nil
	}

	cells := make([]domain.CellCoord, len(d.Cells))
	for i, cl := range d.Cells {
		cells[i] = domain.CellCoord{Row: cl.Row, Col: cl.Col}
	}
	return domain.Hint{
		Message:  message(d),
		Cells:    cells,
		Strategy: tierOf(d.Rule),
	}, true, nil
}

func message(d engine.Deduction) string {
	switch d.Rule {
	case engine.RuleLoneSingle:
		return fmt.Sprintf("Lone single: only %d fits here", d.Values[0])
	case engine.RuleHiddenSingle:
		return fmt.Sprintf("Hidden single: %d has no other place in its unit", d.Values[0])
	default:
		vals := make([]string, len(d.Values))
		for i, v := range d.Values {
			vals[i] = fmt.Sprintf("%d", v)
		}
		return fmt.Sprintf("%s: %s are locked into these cells",
			strings.ToUpper(d.Rule.String()[:1])+d.Rule.String()[1:],
			strings.Join(vals, ", "))
	}
}
