package console

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"svw.info/dedoku/internal/engine"
)

func TestGridLayoutWithoutColors(t *testing.T) {
	var g engine.Grid
	g[0][0] = 5
	g[8][8] = 9

	var sb strings.Builder
	NewPrinter(false).Grid(&sb, g, g)
	out := sb.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 11, "9 rows plus 2 block separators")
	assert.True(t, strings.HasPrefix(lines[0], "5 _ _"))
	assert.True(t, strings.HasSuffix(lines[10], "9"))
	assert.Contains(t, lines[0], "_  _", "blocks separated by double space")
}

func TestStatsSummary(t *testing.T) {
	var sb strings.Builder
	NewPrinter(false).Stats(&sb, engine.Stats{LoneSingles: 3, Visited: 7})
	assert.Contains(t, sb.String(), "LS: 3")
	assert.Contains(t, sb.String(), "States visited: 7")
}
