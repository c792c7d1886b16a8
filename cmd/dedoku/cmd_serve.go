package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"svw.info/dedoku/internal/adapters/api"
	"svw.info/dedoku/internal/generator"
	"svw.info/dedoku/internal/hint"
	"svw.info/dedoku/internal/infrastructure/storage"
	"svw.info/dedoku/internal/ports"
	"svw.info/dedoku/internal/solver"
	"svw.info/dedoku/internal/usecase"
	"svw.info/dedoku/internal/validator"
)

var (
	serveAddr    string
	servePersist string
	serveStore   string
	serveLimit   int
)

var commandServe = &cobra.Command{
	Use:   "serve",
	Short: "Run the JSON HTTP API",
	RunE:  runServe,
}

func init() {
	commandServe.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	commandServe.Flags().StringVar(&servePersist, "persist", "./data", "puzzle store location (directory or bolt file)")
	commandServe.Flags().StringVar(&serveStore, "store", "fs", "puzzle store backend: fs|bolt")
	commandServe.Flags().IntVar(&serveLimit, "limit", solver.DefaultDepthLimit, "maximum guesses on any solution path")
	mainCommand.AddCommand(commandServe)
}

func runServe(cmd *cobra.Command, args []string) error {
	log := newLogger()

	var store ports.Storage
	switch serveStore {
	case "fs":
		store = storage.NewFS(servePersist)
	case "bolt":
		db, err := storage.NewBolt(servePersist)
		if err != nil {
			return fmt.Errorf("open bolt store: %w", err)
		}
		defer db.Close()
		store = db
	default:
		return fmt.Errorf("unknown store backend %q", serveStore)
	}

	deduce := solver.NewDeduceSolver(serveLimit)
	uc := usecase.NewService(deduce, generator.NewUniqueGenerator(deduce), validator.New(), hint.New(), store)

	srv := &http.Server{
		Addr:              serveAddr,
		Handler:           api.NewServer(uc, log).Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", serveAddr, "store", serveStore)
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case sig := <-stop:
		log.Info("shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}
}
