package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog"

	"timecard-verify/internal/config"
	"timecard-verify/internal/gateway"
	"timecard-verify/internal/usecase"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if err := run(logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(logger zerolog.Logger) error {
	cfg := config.Load()

	// Both connections are scoped to the run and closed on every exit
	// path, including aborted comparisons.
	reference, err := sql.Open("mysql", cfg.Reference.DSN())
	if err != nil {
		return fmt.Errorf("could not open reference database: %w", err)
	}
	defer reference.Close()

	candidate, err := sql.Open("mysql", cfg.Candidate.DSN())
	if err != nil {
		return fmt.Errorf("could not open candidate database: %w", err)
	}
	defer candidate.Close()

	// Wiring is done manually here; the tool is small enough that a DI
	// container would add nothing.
	store := gateway.NewTimecardStore(reference, candidate)
	uc := usecase.NewVerificationUseCase(store)

	ctx := logger.WithContext(context.Background())
	return newRootCmd(uc).ExecuteContext(ctx)
}
