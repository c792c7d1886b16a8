package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"svw.info/dedoku/internal/console"
	"svw.info/dedoku/internal/domain"
	"svw.info/dedoku/internal/engine"
	"svw.info/dedoku/internal/generator"
	"svw.info/dedoku/internal/infrastructure/puzzlefile"
	"svw.info/dedoku/internal/solver"
)

var (
	genDifficulty string
	genSeed       int64
	genOut        string
	genNoColor    bool
)

var commandGenerate = &cobra.Command{
	Use:   "generate",
	Short: "Generate a puzzle with a unique solution",
	RunE:  runGenerate,
}

func init() {
	commandGenerate.Flags().StringVar(&genDifficulty, "difficulty", "medium", "easy|medium|hard|expert")
	commandGenerate.Flags().Int64Var(&genSeed, "seed", 0, "RNG seed, 0 picks one from the clock")
	commandGenerate.Flags().StringVar(&genOut, "out", "", "write the puzzle as a grid file readable by solve")
	commandGenerate.Flags().BoolVar(&genNoColor, "no-color", false, "disable colored output")
	mainCommand.AddCommand(commandGenerate)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	log := newLogger()
	seed := genSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	gen := generator.NewUniqueGenerator(solver.NewDeduceSolver(solver.DefaultDepthLimit))
	puz, st, err := gen.Generate(cmd.Context(), seed, domain.ParseDifficulty(genDifficulty))
	if err != nil {
		return err
	}
	log.Info("generated", "difficulty", puz.Difficulty.String(), "seed", seed, "dur", st.Duration)

	givens := engine.Grid(puz.Board.Values)
	console.NewPrinter(!genNoColor).Grid(os.Stdout, givens, givens)

	if genOut != "" {
		f, err := os.Create(genOut)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := puzzlefile.Write(f, puz.Board.Values); err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, "wrote", genOut)
	}
	return nil
}
