package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/PBSGlenn/ledgerhound/cmd/tui/internal/view"
	"github.com/PBSGlenn/ledgerhound/internal/config"
	"github.com/PBSGlenn/ledgerhound/internal/database"
	"github.com/PBSGlenn/ledgerhound/internal/ledger/store"
	"github.com/PBSGlenn/ledgerhound/internal/reconcile"
)

type model struct {
	svc *reconcile.Service

	currentView View

	matchView view.MatchModel
}

type View int

const (
	ViewMenu  View = 0
	ViewMatch View = 1
)

func initialModel() model {
	_ = godotenv.Load()

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

	svc := reconcile.NewService(store.New(db), reconcile.Config{
		ExtraPhrases: cfg.Matching.ExtraPhrases,
		MinScore:     cfg.Matching.MinScore,
	})

	return model{
		svc:         svc,
		currentView: ViewMenu,
		matchView:   view.NewMatchModel(svc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewMatch
				m.matchView = view.NewMatchModel(m.svc)

				return m, m.matchView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	if m.currentView == ViewMatch {
		var newModel tea.Model
		newModel, cmd = m.matchView.Update(msg)
		m.matchView = newModel.(view.MatchModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Ledgerhound\n\n" +
				"1. Match Transfers\n\n" +
				"q. Quit",
		)
	case ViewMatch:
		return m.matchView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
