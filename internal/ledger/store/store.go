package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/PBSGlenn/ledgerhound/internal/ledger"
	"github.com/PBSGlenn/ledgerhound/internal/reconcile"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanAccount(s scanner) (*ledger.Account, error) {
	var a ledger.Account

	var kindStr string

	if err := s.Scan(&a.ID, &a.Name, &kindStr, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}

	a.Kind = ledger.AccountKind(kindStr)

	return &a, nil
}

func (s *Store) GetAccount(ctx context.Context, id uuid.UUID) (*ledger.Account, error) {
	query := `SELECT id, name, kind, created_at, updated_at FROM accounts WHERE id = $1`

	account, err := scanAccount(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ledger.ErrNotFound
		}

		return nil, fmt.Errorf("getting account: %w", err)
	}

	return account, nil
}

func (s *Store) ListAccounts(ctx context.Context, kind *ledger.AccountKind) ([]*ledger.Account, error) {
	query := `SELECT id, name, kind, created_at, updated_at FROM accounts`

	var args []any

	if kind != nil {
		query += ` WHERE kind = $1`

		args = append(args, *kind)
	}

	query += ` ORDER BY name ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*ledger.Account

	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning account: %w", err)
		}

		accounts = append(accounts, account)
	}

	return accounts, rows.Err()
}

// transactionRows selects transactions with their postings and posting
// accounts joined, plus any merge provenance. Rows arrive ordered by
// transaction date then id so they can be grouped in a single pass.
const transactionRows = `
	SELECT t.id, t.date, t.payee, t.created_at, t.updated_at,
		p.id, p.account_id, p.amount, p.business, p.cleared, p.reconciled,
		a.name, a.kind,
		m.absorbed_id, m.absorbed_payee, m.merged_at, m.version
	FROM transactions t
	JOIN postings p ON p.transaction_id = t.id
	JOIN accounts a ON a.id = p.account_id
	LEFT JOIN transaction_merges m ON m.transaction_id = t.id
`

// collectTransactions groups joined posting rows into transactions,
// preserving row order.
func collectTransactions(rows *sql.Rows) ([]*ledger.Transaction, error) {
	var (
		txs   []*ledger.Transaction
		index = make(map[uuid.UUID]*ledger.Transaction)
	)

	for rows.Next() {
		var (
			txID      uuid.UUID
			date      time.Time
			payee     string
			createdAt time.Time
			updatedAt *time.Time

			posting ledger.Posting
			amount  decimal.Decimal
			name    string
			kindStr string

			absorbedID    *uuid.UUID
			absorbedPayee sql.NullString
			mergedAt      sql.NullTime
			version       sql.NullInt64
		)

		if err := rows.Scan(
			&txID, &date, &payee, &createdAt, &updatedAt,
			&posting.ID, &posting.AccountID, &amount, &posting.Business, &posting.Cleared, &posting.Reconciled,
			&name, &kindStr,
			&absorbedID, &absorbedPayee, &mergedAt, &version,
		); err != nil {
			return nil, fmt.Errorf("scanning transaction row: %w", err)
		}

		tx, ok := index[txID]
		if !ok {
			tx = &ledger.Transaction{
				ID:        txID,
				Date:      date,
				Payee:     payee,
				CreatedAt: createdAt,
				UpdatedAt: updatedAt,
			}

			if absorbedID != nil {
				tx.Merge = &ledger.MergeRecord{
					TransactionID: txID,
					AbsorbedID:    *absorbedID,
					AbsorbedPayee: absorbedPayee.String,
					MergedAt:      mergedAt.Time,
					Version:       int(version.Int64),
				}
			}

			index[txID] = tx
			txs = append(txs, tx)
		}

		posting.TransactionID = txID
		posting.Amount = amount
		posting.Account = &ledger.Account{
			ID:   posting.AccountID,
			Name: name,
			Kind: ledger.AccountKind(kindStr),
		}

		tx.Postings = append(tx.Postings, posting)
	}

	return txs, rows.Err()
}

func (s *Store) GetTransaction(ctx context.Context, id uuid.UUID) (*ledger.Transaction, error) {
	return getTransaction(ctx, s.db, id)
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func getTransaction(ctx context.Context, q querier, id uuid.UUID) (*ledger.Transaction, error) {
	query := transactionRows + ` WHERE t.id = $1`

	rows, err := q.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("getting transaction: %w", err)
	}
	defer rows.Close()

	txs, err := collectTransactions(rows)
	if err != nil {
		return nil, err
	}

	if len(txs) == 0 {
		return nil, ledger.ErrNotFound
	}

	return txs[0], nil
}

func (s *Store) ListCandidateTransactions(ctx context.Context, accountID uuid.UUID, start, end *time.Time) ([]*ledger.Transaction, error) {
	query := transactionRows + `
	WHERE EXISTS (
		SELECT 1 FROM postings x WHERE x.transaction_id = t.id AND x.account_id = $1
	)
	AND (SELECT COUNT(*) FROM postings x WHERE x.transaction_id = t.id) = 2`

	args := []any{accountID}
	argIdx := 2

	if start != nil {
		query += fmt.Sprintf(" AND t.date >= $%d", argIdx)

		args = append(args, *start)
		argIdx++
	}

	if end != nil {
		query += fmt.Sprintf(" AND t.date <= $%d", argIdx)

		args = append(args, *end)
		argIdx++
	}

	query += " ORDER BY t.date ASC, t.id ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing candidate transactions: %w", err)
	}
	defer rows.Close()

	return collectTransactions(rows)
}

type mergeTx struct {
	tx *sql.Tx
}

// BeginMerge opens a store transaction scoped to one pair merge and row-locks
// both transactions so a concurrent edit to either side fails the pair
// instead of corrupting state. Locks are taken in id order to avoid deadlocks
// between pairs processed in parallel.
func (s *Store) BeginMerge(ctx context.Context, keepID, dropID uuid.UUID) (reconcile.MergeTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning merge tx: %w", err)
	}

	first, second := keepID, dropID
	if second.String() < first.String() {
		first, second = second, first
	}

	for _, id := range []uuid.UUID{first, second} {
		if _, err := dbTx.ExecContext(ctx, `SELECT 1 FROM transactions WHERE id = $1 FOR UPDATE`, id); err != nil {
			dbTx.Rollback()
			return nil, fmt.Errorf("locking transaction %s: %w", id, err)
		}
	}

	return &mergeTx{tx: dbTx}, nil
}

func (m *mergeTx) Commit() error   { return m.tx.Commit() }
func (m *mergeTx) Rollback() error { return m.tx.Rollback() }

func (m *mergeTx) GetTransaction(ctx context.Context, id uuid.UUID) (*ledger.Transaction, error) {
	return getTransaction(ctx, m.tx, id)
}

func (m *mergeTx) DeletePosting(ctx context.Context, id uuid.UUID) error {
	if _, err := m.tx.ExecContext(ctx, `DELETE FROM postings WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting posting: %w", err)
	}

	return nil
}

func (m *mergeTx) UpdatePostingAmount(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error {
	if _, err := m.tx.ExecContext(ctx, `UPDATE postings SET amount = $1 WHERE id = $2`, amount, id); err != nil {
		return fmt.Errorf("updating posting amount: %w", err)
	}

	return nil
}

func (m *mergeTx) CreatePosting(ctx context.Context, p *ledger.Posting) error {
	query := `
		INSERT INTO postings (transaction_id, account_id, amount, business, cleared, reconciled)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	if err := m.tx.QueryRowContext(ctx, query,
		p.TransactionID,
		p.AccountID,
		p.Amount,
		p.Business,
		p.Cleared,
		p.Reconciled,
	).Scan(&p.ID); err != nil {
		return fmt.Errorf("creating posting: %w", err)
	}

	return nil
}

func (m *mergeTx) UpdateTransaction(ctx context.Context, tx *ledger.Transaction) error {
	query := `
		UPDATE transactions
		SET date = $1, payee = $2, updated_at = NOW()
		WHERE id = $3
	`

	if _, err := m.tx.ExecContext(ctx, query, tx.Date, tx.Payee, tx.ID); err != nil {
		return fmt.Errorf("updating transaction: %w", err)
	}

	return nil
}

func (m *mergeTx) RecordMerge(ctx context.Context, rec *ledger.MergeRecord) error {
	query := `
		INSERT INTO transaction_merges (transaction_id, absorbed_id, absorbed_payee, merged_at, version)
		VALUES ($1, $2, $3, $4, $5)
	`

	if _, err := m.tx.ExecContext(ctx, query,
		rec.TransactionID,
		rec.AbsorbedID,
		rec.AbsorbedPayee,
		rec.MergedAt,
		rec.Version,
	); err != nil {
		return fmt.Errorf("recording merge: %w", err)
	}

	return nil
}

func (m *mergeTx) DeleteTransactionPostings(ctx context.Context, id uuid.UUID) error {
	if _, err := m.tx.ExecContext(ctx, `DELETE FROM postings WHERE transaction_id = $1`, id); err != nil {
		return fmt.Errorf("deleting transaction postings: %w", err)
	}

	return nil
}

func (m *mergeTx) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	if _, err := m.tx.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting transaction: %w", err)
	}

	return nil
}
