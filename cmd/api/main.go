package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/PBSGlenn/ledgerhound/internal/config"
	"github.com/PBSGlenn/ledgerhound/internal/database"
	ledgerHttp "github.com/PBSGlenn/ledgerhound/internal/http"
	accountHandler "github.com/PBSGlenn/ledgerhound/internal/http/account"
	reconcileHandler "github.com/PBSGlenn/ledgerhound/internal/http/reconcile"
	"github.com/PBSGlenn/ledgerhound/internal/ledger/store"
	"github.com/PBSGlenn/ledgerhound/internal/reconcile"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	reconcileService := reconcile.NewService(store.New(db), reconcile.Config{
		ExtraPhrases: cfg.Matching.ExtraPhrases,
		MinScore:     cfg.Matching.MinScore,
	})

	var (
		accountH   = accountHandler.NewHandler(reconcileService)
		reconcileH = reconcileHandler.NewHandler(reconcileService)
	)

	router := ledgerHttp.New(accountH, reconcileH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
