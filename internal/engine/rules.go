package engine

import "math/bits"

// Rule identifies a deduction technique, in propagation priority order.
type Rule int

const (
	RuleLoneSingle Rule = iota
	RuleHiddenSingle
	RuleNakedTriple
	RuleNakedPair
)

func (r Rule) String() string {
	switch r {
	case RuleLoneSingle:
		return "lone single"
	case RuleHiddenSingle:
		return "hidden single"
	case RuleNakedTriple:
		return "naked triple"
	case RuleNakedPair:
		return "naked pair"
	default:
		return "unknown"
	}
}

// Unit cell tables, fixed scan order: unit index 0..8, cells within a unit
// in increasing position order.
var (
	rowUnits [9][9]Cell
	colUnits [9][9]Cell
	boxUnits [9][9]Cell
)

func init() {
	for u := 0; u < 9; u++ {
		for i := 0; i < 9; i++ {
			rowUnits[u][i] = Cell{Row: u, Col: i}
			colUnits[u][i] = Cell{Row: i, Col: u}
			boxUnits[u][i] = Cell{Row: (u/3)*3 + i/3, Col: (u%3)*3 + i%3}
		}
	}
}

// Propagate applies the rule battery to a fixed point: each pass tries the
// rules in priority order and restarts from the top as soon as one makes
// progress. It stops when a full pass changes nothing, the state becomes
// invalid, or the state becomes complete. Contradictions are not errors
// here; the caller inspects validity. Errors are engine faults only.
func Propagate(b *Board, st *Stats) error {
	for {
		if b.unplayed < 0 {
			return faultf(b, nil, "negative unplayed counter (%d)", b.unplayed)
		}
		if !b.Valid() || b.Complete() {
			return nil
		}
		changed, err := applyOne(b, st)
		if err != nil {
			return err
		}
		if !changed {
			return nil
		}
	}
}

// applyOne makes at most one unit of progress: the first rule that fires,
// cheapest first. Naked-subset rules sweep one whole unit family at a time,
// as a single unit of progress.
func applyOne(b *Board, st *Stats) (bool, error) {
	if cell, v, ok := findLoneSingle(b); ok {
		if err := b.Assign(cell.Row, cell.Col, v); err != nil {
			return false, faultf(b, err, "lone single assignment rejected")
		}
		st.LoneSingles++
		return true, nil
	}
	if cell, v, ok := findHiddenSingle(b); ok {
		if err := b.Assign(cell.Row, cell.Col, v); err != nil {
			return false, faultf(b, err, "hidden single assignment rejected")
		}
		st.HiddenSingles++
		return true, nil
	}
	for _, units := range []*[9][9]Cell{&rowUnits, &colUnits, &boxUnits} {
		if applyNakedSubsets(b, units, 3) {
			st.NakedTriples++
			return true, nil
		}
	}
	for _, units := range []*[9][9]Cell{&rowUnits, &colUnits, &boxUnits} {
		if applyNakedSubsets(b, units, 2) {
			st.NakedPairs++
			return true, nil
		}
	}
	return false, nil
}

// findLoneSingle scans cells in increasing order for an unassigned cell
// with exactly one remaining candidate.
func findLoneSingle(b *Board) (Cell, uint8, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if !b.assigned[r][c] && bits.OnesCount16(b.cands[r][c]) == 1 {
				v := uint8(bits.TrailingZeros16(b.cands[r][c])) + 1
				return Cell{Row: r, Col: c}, v, true
			}
		}
	}
	return Cell{}, 0, false
}

// findHiddenSingle looks for a value that, within a unit, only one cell can
// still hold. Columns are scanned first, then rows, then blocks.
func findHiddenSingle(b *Board) (Cell, uint8, bool) {
	scans := []struct {
		units  *[9][9]Cell
		placed *[9]uint16
	}{
		{&colUnits, &b.cols},
		{&rowUnits, &b.rows},
		{&boxUnits, &b.boxes},
	}
	for _, scan := range scans {
		for u := 0; u < 9; u++ {
			for v := uint8(1); v <= 9; v++ {
				if scan.placed[u]&bit(v) != 0 {
					continue // already assigned somewhere in this unit
				}
				count := 0
				var hit Cell
				for _, cl := range scan.units[u] {
					if b.cands[cl.Row][cl.Col]&bit(v) != 0 {
						count++
						hit = cl
					}
				}
				if count == 1 && !b.assigned[hit.Row][hit.Col] {
					return hit, v, true
				}
			}
		}
	}
	return Cell{}, 0, false
}

// applyNakedSubsets finds naked subsets of the given size (2 = pairs,
// 3 = triples) in one unit family and eliminates the subset values from
// every other cell of the unit, all member cells excluded. Every
// qualifying combination found in the sweep is applied; the sweep only
// counts as progress if some elimination actually changed state.
func applyNakedSubsets(b *Board, units *[9][9]Cell, size int) bool {
	changed := false
	for u := 0; u < 9; u++ {
		cells := &units[u]

		// Member cells have 2..size remaining candidates and no assignment.
		var members []int
		for i, cl := range cells {
			n := bits.OnesCount16(b.cands[cl.Row][cl.Col])
			if !b.assigned[cl.Row][cl.Col] && n >= 2 && n <= size {
				members = append(members, i)
			}
		}
		if len(members) < size {
			continue
		}

		for _, combo := range combinations(members, size) {
			var union uint16
			var inCombo [9]bool
			for _, i := range combo {
				union |= b.cands[cells[i].Row][cells[i].Col]
				inCombo[i] = true
			}
			if bits.OnesCount16(union) != size {
				continue
			}
			for i, cl := range cells {
				if inCombo[i] || b.assigned[cl.Row][cl.Col] {
					continue
				}
				if b.cands[cl.Row][cl.Col]&union != 0 {
					b.cands[cl.Row][cl.Col] &^= union
					changed = true
				}
			}
		}
	}
	return changed
}

// combinations enumerates size-2 or size-3 index combinations in increasing
// order.
func combinations(members []int, size int) [][]int {
	var out [][]int
	switch size {
	case 2:
		for i := 0; i < len(members)-1; i++ {
			for j := i + 1; j < len(members); j++ {
				out = append(out, []int{members[i], members[j]})
			}
		}
	case 3:
		for i := 0; i < len(members)-2; i++ {
			for j := i + 1; j < len(members)-1; j++ {
				for k := j + 1; k < len(members); k++ {
					out = append(out, []int{members[i], members[j], members[k]})
				}
			}
		}
	}
	return out
}

// Deduction describes one applicable rule instance without applying it.
type Deduction struct {
	Rule   Rule
	Cells  []Cell
	Values []uint8
}

// NextDeduction returns the first deduction the engine would make, trying
// rules in priority order and skipping any the filter rejects. Used by the
// hinter; Propagate applies rules directly.
func NextDeduction(b *Board, allowed func(Rule) bool) (Deduction, bool) {
	if allowed == nil {
		allowed = func(Rule) bool { return true }
	}
	if allowed(RuleLoneSingle) {
		if cell, v, ok := findLoneSingle(b); ok {
			return Deduction{Rule: RuleLoneSingle, Cells: []Cell{cell}, Values: []uint8{v}}, true
		}
	}
	if allowed(RuleHiddenSingle) {
		if cell, v, ok := findHiddenSingle(b); ok {
			return Deduction{Rule: RuleHiddenSingle, Cells: []Cell{cell}, Values: []uint8{v}}, true
		}
	}
	if allowed(RuleNakedTriple) {
		if d, ok := findNakedSubset(b, 3); ok {
			return d, true
		}
	}
	if allowed(RuleNakedPair) {
		if d, ok := findNakedSubset(b, 2); ok {
			return d, true
		}
	}
	return Deduction{}, false
}

// findNakedSubset returns the first naked subset that would eliminate at
// least one candidate somewhere in its unit.
func findNakedSubset(b *Board, size int) (Deduction, bool) {
	rule := RuleNakedPair
	if size == 3 {
		rule = RuleNakedTriple
	}
	for _, units := range []*[9][9]Cell{&rowUnits, &colUnits, &boxUnits} {
		for u := 0; u < 9; u++ {
			cells := &units[u]
			var members []int
			for i, cl := range cells {
				n := bits.OnesCount16(b.cands[cl.Row][cl.Col])
				if !b.assigned[cl.Row][cl.Col] && n >= 2 && n <= size {
					members = append(members, i)
				}
			}
			if len(members) < size {
				continue
			}
			for _, combo := range combinations(members, size) {
				var union uint16
				var inCombo [9]bool
				for _, i := range combo {
					union |= b.cands[cells[i].Row][cells[i].Col]
					inCombo[i] = true
				}
				if bits.OnesCount16(union) != size {
					continue
				}
				effective := false
				for i, cl := range cells {
					if !inCombo[i] && !b.assigned[cl.Row][cl.Col] && b.cands[cl.Row][cl.Col]&union != 0 {
						effective = true
						break
					}
				}
				if !effective {
					continue
				}
				d := Deduction{Rule: rule}
				for _, i := range combo {
					d.Cells = append(d.Cells, cells[i])
				}
				for v := uint8(1); v <= 9; v++ {
					if union&bit(v) != 0 {
						d.Values = append(d.Values, v)
					}
				}
				return d, true
			}
		}
	}
	return Deduction{}, false
}
