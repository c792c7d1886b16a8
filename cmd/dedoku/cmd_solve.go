package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"svw.info/dedoku/internal/console"
	"svw.info/dedoku/internal/engine"
	"svw.info/dedoku/internal/infrastructure/puzzlefile"
	"svw.info/dedoku/internal/solver"
)

var (
	solveLimit   int
	solveNoColor bool
)

var commandSolve = &cobra.Command{
	Use:   "solve <puzzle.txt>",
	Short: "Solve a puzzle from a comma-separated grid file",
	Args:  cobra.ExactArgs(1),
	RunE:  runSolve,
}

func init() {
	commandSolve.Flags().IntVar(&solveLimit, "limit", solver.DefaultDepthLimit, "maximum guesses on any solution path")
	commandSolve.Flags().BoolVar(&solveNoColor, "no-color", false, "disable colored output")
	mainCommand.AddCommand(commandSolve)
}

func runSolve(cmd *cobra.Command, args []string) error {
	log := newLogger()
	grid, err := puzzlefile.Load(args[0])
	if err != nil {
		return err
	}

	givens := engine.Grid(grid)
	p := console.NewPrinter(!solveNoColor)
	p.Grid(os.Stdout, givens, givens)
	fmt.Println()

	sol, st, err := engine.Solve(cmd.Context(), givens, solveLimit)
	if err != nil {
		if errors.Is(err, engine.ErrNoSolution) {
			p.Stats(os.Stdout, st)
			return fmt.Errorf("failed to find a solution within %d guesses", solveLimit)
		}
		return err
	}
	log.Debug("solved", "visited", st.Visited, "dur", st.Duration)

	p.Grid(os.Stdout, *sol, givens)
	fmt.Println()
	p.Stats(os.Stdout, st)
	return nil
}
