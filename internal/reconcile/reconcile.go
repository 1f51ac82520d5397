// Package reconcile identifies pairs of independently imported ledger entries
// that represent the same real-world transfer and merges them into a single
// balanced double-entry transaction.
package reconcile

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/PBSGlenn/ledgerhound/internal/ledger"
)

var (
	// ErrSelfTransfer is returned when both sides of a pair post to the same
	// real account.
	ErrSelfTransfer = errors.New("self transfer: both postings target the same account")
	// ErrReconciledPosting is returned when a merge would touch a posting that
	// belongs to a finalized statement period.
	ErrReconciledPosting = errors.New("posting is reconciled and cannot be modified")
	// ErrNotTransferShape is returned when a transaction does not have the
	// expected one-real one-category posting pair.
	ErrNotTransferShape = errors.New("transaction does not have transfer candidate shape")
	// ErrNotTransferAccount is returned when a matching run is requested for a
	// category account.
	ErrNotTransferAccount = errors.New("account is not a transfer account")
)

//go:generate mockgen -source=reconcile.go -destination=repository_mock.go -package=reconcile
type Repository interface {
	GetAccount(ctx context.Context, id uuid.UUID) (*ledger.Account, error)
	ListAccounts(ctx context.Context, kind *ledger.AccountKind) ([]*ledger.Account, error)

	// ListCandidateTransactions returns two-posting transactions with one leg
	// on the given account, postings and posting accounts joined, ordered by
	// date ascending and optionally date-bounded.
	ListCandidateTransactions(ctx context.Context, accountID uuid.UUID, start, end *time.Time) ([]*ledger.Transaction, error)

	GetTransaction(ctx context.Context, id uuid.UUID) (*ledger.Transaction, error)

	BeginMerge(ctx context.Context, keepID, dropID uuid.UUID) (MergeTx, error)
}

// MergeTx scopes the mutations of a single pair merge to one atomic store
// transaction. The two transactions involved are row-locked for its duration.
type MergeTx interface {
	GetTransaction(ctx context.Context, id uuid.UUID) (*ledger.Transaction, error)

	DeletePosting(ctx context.Context, id uuid.UUID) error
	UpdatePostingAmount(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error
	CreatePosting(ctx context.Context, p *ledger.Posting) error

	UpdateTransaction(ctx context.Context, tx *ledger.Transaction) error
	RecordMerge(ctx context.Context, rec *ledger.MergeRecord) error

	DeleteTransactionPostings(ctx context.Context, id uuid.UUID) error
	DeleteTransaction(ctx context.Context, id uuid.UUID) error

	Commit() error
	Rollback() error
}

// DateRange is an inclusive date window.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// TransferCandidate is a two-posting transaction suspected to be one side of
// an unresolved inter-account transfer: one leg on a real account, the other
// on a category placeholder. Candidates are derived from live ledger state and
// never persisted.
type TransferCandidate struct {
	Transaction *ledger.Transaction
	Real        ledger.Posting
	Category    ledger.Posting
	Amount      decimal.Decimal
	Date        time.Time
	Payee       string
	// Reconciled candidates are reported but excluded from merge eligibility.
	Reconciled bool
}

// Tier classifies a match by its numeric score.
type Tier string

const (
	TierExact    Tier = "exact"
	TierProbable Tier = "probable"
	TierPossible Tier = "possible"
)

const (
	// DefaultMinScore is the admission threshold below which a solver pairing
	// is treated as no match.
	DefaultMinScore = 40

	tierProbableScore = 60
	tierExactScore    = 80
)

// TierFor maps a score at or above the admission threshold to its tier.
func TierFor(score int) Tier {
	switch {
	case score >= tierExactScore:
		return TierExact
	case score >= tierProbableScore:
		return TierProbable
	default:
		return TierPossible
	}
}

// MatchPair is one proposed pairing between candidates from two accounts.
type MatchPair struct {
	A       TransferCandidate
	B       TransferCandidate
	Score   int
	Tier    Tier
	Reasons []string
}

// Summary counts surviving matches per confidence tier.
type Summary struct {
	Exact    int
	Probable int
	Possible int
}

// MatchPreview is the read-only result of a matching run, for human or
// automated review before commit.
type MatchPreview struct {
	Matches    []MatchPair
	UnmatchedA []TransferCandidate
	UnmatchedB []TransferCandidate
	Summary    Summary
}

// MergePair names the transaction to keep and the one to absorb.
type MergePair struct {
	KeepID uuid.UUID
	DropID uuid.UUID
}

// CommitResult reports the outcome of a commit batch. Failures are local to a
// pair; one bad pair never aborts the rest.
type CommitResult struct {
	Merged  int
	Skipped int
	Errors  []string
}

// Config tunes the matching engine. The zero value uses the default gazetteer
// and admission threshold.
type Config struct {
	// ExtraPhrases are appended to the default transfer-keyword gazetteer.
	ExtraPhrases []string
	// MinScore overrides the admission threshold when positive.
	MinScore int
}

type Service struct {
	repo      Repository
	gazetteer Gazetteer
	minScore  int
}

func NewService(repo Repository, cfg Config) *Service {
	minScore := cfg.MinScore
	if minScore <= 0 {
		minScore = DefaultMinScore
	}

	gazetteer := make(Gazetteer, 0, len(DefaultGazetteer)+len(cfg.ExtraPhrases))
	gazetteer = append(gazetteer, DefaultGazetteer...)
	gazetteer = append(gazetteer, cfg.ExtraPhrases...)

	return &Service{
		repo:      repo,
		gazetteer: gazetteer,
		minScore:  minScore,
	}
}

// Accounts lists ledger accounts, optionally filtered by kind. Used by
// callers to populate account pickers.
func (s *Service) Accounts(ctx context.Context, kind *ledger.AccountKind) ([]*ledger.Account, error) {
	return s.repo.ListAccounts(ctx, kind)
}
