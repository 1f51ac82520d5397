package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/PBSGlenn/ledgerhound/internal/ledger"
	"github.com/PBSGlenn/ledgerhound/internal/reconcile"
)

type matchState int

const (
	matchStateSelect matchState = iota
	matchStatePreview
)

type MatchModel struct {
	CommonModel
	svc *reconcile.Service

	state matchState
	form  *huh.Form
	table table.Model

	// Form bindings
	accountA string
	accountB string
	fromStr  string
	toStr    string

	preview  *reconcile.MatchPreview
	selected map[int]bool

	loading bool
	status  string
	err     error
}

func NewMatchModel(svc *reconcile.Service) MatchModel {
	columns := []table.Column{
		{Title: "Sel", Width: 3},
		{Title: "Score", Width: 5},
		{Title: "Tier", Width: 8},
		{Title: "Date A", Width: 10},
		{Title: "Amount A", Width: 10},
		{Title: "Date B", Width: 10},
		{Title: "Amount B", Width: 10},
		{Title: "Payee A", Width: 30},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return MatchModel{
		svc:      svc,
		table:    t,
		selected: map[int]bool{},
		loading:  true,
		status:   "Loading accounts...",
	}
}

func (m MatchModel) Title() string { return "Match Transfers" }
func (m MatchModel) ShortHelp() string {
	if m.state == matchStateSelect {
		return "Navigate form | Esc: back"
	}

	return "Esc: back | space: toggle pair | a: all | n: none | c: commit selected | r: refresh"
}

func (m MatchModel) Init() tea.Cmd {
	return m.loadAccountsCmd()
}

func (m MatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadAccountsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.buildForm(msg.accounts)
		m.status = ""

		return m, m.form.Init()

	case loadPreviewMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.preview = msg.preview
		m.state = matchStatePreview
		m.selected = map[int]bool{}

		// Everything the solver admitted starts selected.
		for i := range m.preview.Matches {
			m.selected[i] = true
		}

		m.status = fmt.Sprintf("%d exact, %d probable, %d possible; %d / %d unmatched",
			m.preview.Summary.Exact,
			m.preview.Summary.Probable,
			m.preview.Summary.Possible,
			len(m.preview.UnmatchedA),
			len(m.preview.UnmatchedB),
		)
		m.refreshTable()

		return m, nil

	case commitResultMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.status = fmt.Sprintf("Merged %d, skipped %d", msg.result.Merged, msg.result.Skipped)
		if len(msg.result.Errors) > 0 {
			m.status += " | " + strings.Join(msg.result.Errors, " | ")
		}

		// Reload: merged pairs are no longer candidates.
		m.loading = true

		return m, m.loadPreviewCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case matchStateSelect:
		return m.updateSelect(msg)
	case matchStatePreview:
		return m.updatePreview(msg)
	}

	return m, nil
}

func (m *MatchModel) buildForm(accounts []*ledger.Account) {
	options := make([]huh.Option[string], len(accounts))
	for i, a := range accounts {
		options[i] = huh.NewOption(a.Name, a.ID.String())
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("account_a").
				Title("Account A (survivor side)").
				Options(options...).
				Value(&m.accountA),

			huh.NewSelect[string]().
				Key("account_b").
				Title("Account B (absorbed side)").
				Options(options...).
				Value(&m.accountB),

			huh.NewInput().
				Key("from").
				Title("From (YYYY-MM-DD, optional)").
				Value(&m.fromStr).
				Validate(validateOptionalDate),

			huh.NewInput().
				Key("to").
				Title("To (YYYY-MM-DD, optional)").
				Value(&m.toStr).
				Validate(validateOptionalDate),
		),
	).WithWidth(50).WithShowHelp(false)
}

func validateOptionalDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	if _, err := time.Parse(time.DateOnly, s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}

	return nil
}

func (m MatchModel) updateSelect(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			return m, Back
		}
	}

	if m.form == nil {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	if m.accountA == m.accountB {
		m.status = "Pick two different accounts"
		m.loading = true

		return m, m.loadAccountsCmd()
	}

	m.loading = true
	m.status = "Matching..."

	return m, m.loadPreviewCmd()
}

func (m MatchModel) updatePreview(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case " ":
			idx := m.table.Cursor()
			if m.preview != nil && idx >= 0 && idx < len(m.preview.Matches) {
				m.selected[idx] = !m.selected[idx]
				m.refreshTable()
			}

			return m, nil
		case "a":
			for i := range m.preview.Matches {
				m.selected[i] = true
			}

			m.refreshTable()

			return m, nil
		case "n":
			m.selected = map[int]bool{}
			m.refreshTable()

			return m, nil
		case "r":
			m.loading = true
			return m, m.loadPreviewCmd()
		case "c":
			pairs := m.selectedPairs()
			if len(pairs) == 0 {
				m.status = "Nothing selected"
				return m, nil
			}

			m.loading = true
			m.status = "Committing..."

			return m, m.commitCmd(pairs)
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m MatchModel) selectedPairs() []reconcile.MergePair {
	if m.preview == nil {
		return nil
	}

	var pairs []reconcile.MergePair

	for i, match := range m.preview.Matches {
		if !m.selected[i] {
			continue
		}

		pairs = append(pairs, reconcile.MergePair{
			KeepID: match.A.Transaction.ID,
			DropID: match.B.Transaction.ID,
		})
	}

	return pairs
}

func (m *MatchModel) refreshTable() {
	rows := make([]table.Row, len(m.preview.Matches))

	for i, match := range m.preview.Matches {
		sel := " "
		if m.selected[i] {
			sel = "x"
		}

		rows[i] = table.Row{
			sel,
			fmt.Sprintf("%d", match.Score),
			string(match.Tier),
			FormatDate(match.A.Date),
			FormatAmount(match.A.Amount),
			FormatDate(match.B.Date),
			FormatAmount(match.B.Amount),
			match.A.Payee,
		}
	}

	m.table.SetRows(rows)
}

func (m MatchModel) View() string {
	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v\n\n(Esc to back)", m.err))
	}

	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render(m.status)
	}

	if m.state == matchStateSelect {
		content := "Match Transfers\n\n" + m.form.View()
		if m.status != "" {
			content += "\n" + m.status
		}

		return lipgloss.NewStyle().Padding(2).Render(content)
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	return lipgloss.NewStyle().Padding(1, 2).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.status,
			tableView,
			lipgloss.NewStyle().PaddingTop(1).Render(m.ShortHelp()),
		),
	)
}

type loadAccountsMsg struct {
	accounts []*ledger.Account
	err      error
}

func (m MatchModel) loadAccountsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		kind := ledger.KindTransfer
		accounts, err := m.svc.Accounts(ctx, &kind)

		return loadAccountsMsg{accounts: accounts, err: err}
	}
}

type loadPreviewMsg struct {
	preview *reconcile.MatchPreview
	err     error
}

func (m MatchModel) loadPreviewCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		accountA, err := uuid.Parse(m.accountA)
		if err != nil {
			return loadPreviewMsg{err: err}
		}

		accountB, err := uuid.Parse(m.accountB)
		if err != nil {
			return loadPreviewMsg{err: err}
		}

		var window *reconcile.DateRange

		if strings.TrimSpace(m.fromStr) != "" && strings.TrimSpace(m.toStr) != "" {
			from, _ := time.Parse(time.DateOnly, m.fromStr)
			to, _ := time.Parse(time.DateOnly, m.toStr)
			window = &reconcile.DateRange{Start: from, End: to}
		}

		preview, err := m.svc.MatchAccounts(ctx, accountA, accountB, window)

		return loadPreviewMsg{preview: preview, err: err}
	}
}

type commitResultMsg struct {
	result reconcile.CommitResult
	err    error
}

func (m MatchModel) commitCmd(pairs []reconcile.MergePair) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		return commitResultMsg{result: m.svc.Commit(ctx, pairs)}
	}
}
