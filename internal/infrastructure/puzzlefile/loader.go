// Package puzzlefile reads puzzles from the comma-separated text format:
// nine lines of nine values each, 0 standing for a blank cell.
package puzzlefile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Load reads a puzzle grid from the file at path.
func Load(path string) ([9][9]uint8, error) {
	f, err := os.Open(path)
	if err != nil {
		return [9][9]uint8{}, fmt.Errorf("open puzzle: %w", err)
	}
	defer f.Close()
	g, err := Read(f)
	if err != nil {
		return g, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Read parses a grid from r. Exactly nine data lines of nine comma-
// separated values in 0..9 are required; blank lines are skipped.
func Read(r io.Reader) ([9][9]uint8, error) {
	var g [9][9]uint8
	sc := bufio.NewScanner(r)
	row := 0
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		if row >= 9 {
			return g, fmt.Errorf("line %d: more than 9 rows", line)
		}
		fields := strings.Split(text, ",")
		if len(fields) != 9 {
			return g, fmt.Errorf("line %d: expected 9 values, got %d", line, len(fields))
		}
		for col, field := range fields {
			v, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return g, fmt.Errorf("line %d: value %d: %w", line, col+1, err)
			}
			if v < 0 || v > 9 {
				return g, fmt.Errorf("line %d: value %d out of range: %d", line, col+1, v)
			}
			g[row][col] = uint8(v)
		}
		row++
	}
	if err := sc.Err(); err != nil {
		return g, err
	}
	if row != 9 {
		return g, fmt.Errorf("expected 9 rows, got %d", row)
	}
	return g, nil
}

// Write emits g in the same comma-separated format Read accepts.
func Write(w io.Writer, g [9][9]uint8) error {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if c > 0 {
				if _, err := io.WriteString(w, ","); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w, "%d", g[r][c]); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
