package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var logLevel string

var mainCommand = &cobra.Command{
	Use:          "dedoku",
	Short:        "Deductive Sudoku solver",
	SilenceUsage: true,
}

func init() {
	mainCommand.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug|info|warn|error")
}

func newLogger() *slog.Logger {
	lvl := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

func main() {
	if err := mainCommand.Execute(); err != nil {
		os.Exit(1)
	}
}
