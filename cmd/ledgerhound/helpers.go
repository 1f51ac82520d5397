package main

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/PBSGlenn/ledgerhound/internal/config"
	"github.com/PBSGlenn/ledgerhound/internal/database"
	"github.com/PBSGlenn/ledgerhound/internal/ledger/store"
	"github.com/PBSGlenn/ledgerhound/internal/reconcile"
)

// openService wires the matching engine against the configured database.
// Callers own closing the returned handle.
func openService() (*sql.DB, *reconcile.Service, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to database: %w", err)
	}

	svc := reconcile.NewService(store.New(db), reconcile.Config{
		ExtraPhrases: cfg.Matching.ExtraPhrases,
		MinScore:     cfg.Matching.MinScore,
	})

	return db, svc, nil
}

// windowFlags adds --from/--to flags and returns a parser for them.
func windowFlags(cmd *cobra.Command) func() (*reconcile.DateRange, error) {
	cmd.Flags().String("from", "", "start of the date window (YYYY-MM-DD)")
	cmd.Flags().String("to", "", "end of the date window (YYYY-MM-DD)")

	return func() (*reconcile.DateRange, error) {
		fromStr, _ := cmd.Flags().GetString("from")
		toStr, _ := cmd.Flags().GetString("to")

		if fromStr == "" && toStr == "" {
			return nil, nil
		}

		from, err := time.Parse(time.DateOnly, fromStr)
		if err != nil {
			return nil, fmt.Errorf("invalid --from date: %w", err)
		}

		to, err := time.Parse(time.DateOnly, toStr)
		if err != nil {
			return nil, fmt.Errorf("invalid --to date: %w", err)
		}

		return &reconcile.DateRange{Start: from, End: to}, nil
	}
}
