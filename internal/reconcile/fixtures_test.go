package reconcile_test

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/PBSGlenn/ledgerhound/internal/ledger"
	"github.com/PBSGlenn/ledgerhound/internal/reconcile"
)

func transferAccount(name string) *ledger.Account {
	return &ledger.Account{ID: uuid.New(), Name: name, Kind: ledger.KindTransfer}
}

func categoryAccount(name string) *ledger.Account {
	return &ledger.Account{ID: uuid.New(), Name: name, Kind: ledger.KindCategory}
}

func day(date string) time.Time {
	d, err := time.Parse(time.DateOnly, date)
	if err != nil {
		panic(err)
	}

	return d
}

// twoLegTx builds a balanced candidate-shaped transaction: amount on the real
// account, the negation on the category account.
func twoLegTx(date, payee string, real *ledger.Account, amount float64, category *ledger.Account) *ledger.Transaction {
	txID := uuid.New()
	amt := decimal.NewFromFloat(amount)

	return &ledger.Transaction{
		ID:    txID,
		Date:  day(date),
		Payee: payee,
		Postings: []ledger.Posting{
			{
				ID:            uuid.New(),
				TransactionID: txID,
				AccountID:     real.ID,
				Account:       real,
				Amount:        amt,
			},
			{
				ID:            uuid.New(),
				TransactionID: txID,
				AccountID:     category.ID,
				Account:       category,
				Amount:        amt.Neg(),
			},
		},
	}
}

// fakeLedger is an in-memory Repository/MergeTx used to verify whole-ledger
// invariants across merges, where gomock expectations would obscure the math.
type fakeLedger struct {
	accounts map[uuid.UUID]*ledger.Account
	txs      map[uuid.UUID]*ledger.Transaction
	merges   map[uuid.UUID]*ledger.MergeRecord
}

func newFakeLedger(accounts []*ledger.Account, txs []*ledger.Transaction) *fakeLedger {
	f := &fakeLedger{
		accounts: map[uuid.UUID]*ledger.Account{},
		txs:      map[uuid.UUID]*ledger.Transaction{},
		merges:   map[uuid.UUID]*ledger.MergeRecord{},
	}

	for _, a := range accounts {
		f.accounts[a.ID] = a
	}

	for _, tx := range txs {
		f.txs[tx.ID] = tx
	}

	return f
}

func (f *fakeLedger) GetAccount(_ context.Context, id uuid.UUID) (*ledger.Account, error) {
	a, ok := f.accounts[id]
	if !ok {
		return nil, ledger.ErrNotFound
	}

	return a, nil
}

func (f *fakeLedger) ListAccounts(_ context.Context, kind *ledger.AccountKind) ([]*ledger.Account, error) {
	var out []*ledger.Account

	for _, a := range f.accounts {
		if kind == nil || a.Kind == *kind {
			out = append(out, a)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}

func (f *fakeLedger) ListCandidateTransactions(_ context.Context, accountID uuid.UUID, start, end *time.Time) ([]*ledger.Transaction, error) {
	var out []*ledger.Transaction

	for _, tx := range f.txs {
		if len(tx.Postings) != 2 {
			continue
		}

		onAccount := false

		for _, p := range tx.Postings {
			if p.AccountID == accountID {
				onAccount = true
			}
		}

		if !onAccount {
			continue
		}

		if start != nil && tx.Date.Before(*start) {
			continue
		}

		if end != nil && tx.Date.After(*end) {
			continue
		}

		out = append(out, tx)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })

	return out, nil
}

func (f *fakeLedger) GetTransaction(_ context.Context, id uuid.UUID) (*ledger.Transaction, error) {
	tx, ok := f.txs[id]
	if !ok {
		return nil, ledger.ErrNotFound
	}

	return tx, nil
}

func (f *fakeLedger) BeginMerge(_ context.Context, _, _ uuid.UUID) (reconcile.MergeTx, error) {
	return &fakeMergeTx{f: f}, nil
}

// totalSum adds every posting amount across the whole ledger.
func (f *fakeLedger) totalSum() decimal.Decimal {
	sum := decimal.Zero

	for _, tx := range f.txs {
		for _, p := range tx.Postings {
			sum = sum.Add(p.Amount)
		}
	}

	return sum
}

type fakeMergeTx struct {
	f *fakeLedger
}

func (m *fakeMergeTx) GetTransaction(ctx context.Context, id uuid.UUID) (*ledger.Transaction, error) {
	return m.f.GetTransaction(ctx, id)
}

func (m *fakeMergeTx) DeletePosting(_ context.Context, id uuid.UUID) error {
	for _, tx := range m.f.txs {
		for i, p := range tx.Postings {
			if p.ID == id {
				tx.Postings = append(tx.Postings[:i], tx.Postings[i+1:]...)
				return nil
			}
		}
	}

	return ledger.ErrNotFound
}

func (m *fakeMergeTx) UpdatePostingAmount(_ context.Context, id uuid.UUID, amount decimal.Decimal) error {
	for _, tx := range m.f.txs {
		for i := range tx.Postings {
			if tx.Postings[i].ID == id {
				tx.Postings[i].Amount = amount
				return nil
			}
		}
	}

	return ledger.ErrNotFound
}

func (m *fakeMergeTx) CreatePosting(_ context.Context, p *ledger.Posting) error {
	tx, ok := m.f.txs[p.TransactionID]
	if !ok {
		return ledger.ErrNotFound
	}

	p.ID = uuid.New()
	p.Account = m.f.accounts[p.AccountID]
	tx.Postings = append(tx.Postings, *p)

	return nil
}

func (m *fakeMergeTx) UpdateTransaction(_ context.Context, tx *ledger.Transaction) error {
	stored, ok := m.f.txs[tx.ID]
	if !ok {
		return ledger.ErrNotFound
	}

	stored.Date = tx.Date
	stored.Payee = tx.Payee

	return nil
}

func (m *fakeMergeTx) RecordMerge(_ context.Context, rec *ledger.MergeRecord) error {
	m.f.merges[rec.TransactionID] = rec
	return nil
}

func (m *fakeMergeTx) DeleteTransactionPostings(_ context.Context, id uuid.UUID) error {
	tx, ok := m.f.txs[id]
	if !ok {
		return ledger.ErrNotFound
	}

	tx.Postings = nil

	return nil
}

func (m *fakeMergeTx) DeleteTransaction(_ context.Context, id uuid.UUID) error {
	delete(m.f.txs, id)
	return nil
}

func (m *fakeMergeTx) Commit() error   { return nil }
func (m *fakeMergeTx) Rollback() error { return nil }
