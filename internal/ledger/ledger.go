package ledger

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when a requested account or transaction does not exist.
var ErrNotFound = errors.New("not found")

// Epsilon is the rounding tolerance for balance checks, in currency units.
var Epsilon = decimal.NewFromFloat(0.01)

// AccountKind discriminates real money-holding accounts from bookkeeping categories.
type AccountKind string

const (
	// KindTransfer is a real asset/liability/equity account (e.g. a bank account).
	// Only transfer accounts can be one side of a transfer match.
	KindTransfer AccountKind = "transfer"
	// KindCategory is an income/expense classification account, not a store of value.
	KindCategory AccountKind = "category"
)

func (k AccountKind) Valid() bool {
	return k == KindTransfer || k == KindCategory
}

// Account is a ledger node that postings reference.
type Account struct {
	ID        uuid.UUID
	Name      string
	Kind      AccountKind
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// Posting is one signed leg of a transaction against one account.
type Posting struct {
	ID            uuid.UUID
	TransactionID uuid.UUID
	AccountID     uuid.UUID
	Account       *Account // Loaded via JOIN
	Amount        decimal.Decimal
	Business      bool
	Cleared       bool
	// Reconciled postings belong to a finalized statement period and are
	// locked against further reassignment.
	Reconciled bool
}

// Transaction is an ordered group of postings sharing a date and payee.
// Its postings must sum to zero within Epsilon.
type Transaction struct {
	ID        uuid.UUID
	Date      time.Time
	Payee     string
	Postings  []Posting
	Merge     *MergeRecord // Loaded via JOIN, nil unless previously merged
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// Balanced reports whether the transaction's postings sum to zero within Epsilon.
func (t *Transaction) Balanced() bool {
	sum := decimal.Zero
	for _, p := range t.Postings {
		sum = sum.Add(p.Amount)
	}

	return sum.Abs().LessThan(Epsilon)
}

const mergeRecordVersion = 1

// MergeRecord is the provenance stamp written when two transfer candidates are
// merged into a single transaction. It keeps a typed trail of the absorbed
// transaction for audit and debugging instead of an open-ended metadata blob.
type MergeRecord struct {
	TransactionID uuid.UUID
	AbsorbedID    uuid.UUID
	AbsorbedPayee string
	MergedAt      time.Time
	Version       int
}

// NewMergeRecord stamps a merge of absorbed into keep at the current time.
func NewMergeRecord(keepID, absorbedID uuid.UUID, absorbedPayee string) *MergeRecord {
	return &MergeRecord{
		TransactionID: keepID,
		AbsorbedID:    absorbedID,
		AbsorbedPayee: absorbedPayee,
		MergedAt:      time.Now().UTC(),
		Version:       mergeRecordVersion,
	}
}
