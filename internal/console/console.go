// Package console renders grids and solve statistics for terminal output.
package console

import (
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"

	"svw.info/dedoku/internal/engine"
)

// Printer writes grids in the classic layout: blocks separated by extra
// whitespace, blanks as underscores. Givens and deduced values are colored
// differently when colors are enabled.
type Printer struct {
	au aurora.Aurora
}

func NewPrinter(colors bool) *Printer {
	return &Printer{au: aurora.NewAurora(colors)}
}

// Grid prints g; cells set in givens are highlighted as original clues.
func (p *Printer) Grid(w io.Writer, g engine.Grid, givens engine.Grid) {
	for r := 0; r < 9; r++ {
		if r == 3 || r == 6 {
			fmt.Fprintln(w)
		}
		for c := 0; c < 9; c++ {
			var cell aurora.Value
			switch {
			case g[r][c] == 0:
				cell = p.au.Gray(12, "_")
			case givens[r][c] != 0:
				cell = p.au.Bold(p.au.Cyan(g[r][c]))
			default:
				cell = p.au.Green(g[r][c])
			}
			fmt.Fprint(w, cell)
			if c == 2 || c == 5 {
				fmt.Fprint(w, "  ")
			} else if c < 8 {
				fmt.Fprint(w, " ")
			}
		}
		fmt.Fprintln(w)
	}
}

// Stats prints the technique-usage summary for one solve.
func (p *Printer) Stats(w io.Writer, st engine.Stats) {
	fmt.Fprintf(w, "Times used  LS: %d  HS: %d  NP: %d  NT: %d\n",
		st.LoneSingles, st.HiddenSingles, st.NakedPairs, st.NakedTriples)
	fmt.Fprintf(w, "States visited: %d  Contradictions: %d  Time: %v\n",
		st.Visited, st.Contradictions, st.Duration)
}
