package reconcile

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/PBSGlenn/ledgerhound/internal/ledger"
)

// Commit merges each approved pair into a single balanced transfer
// transaction. Every pair is executed as one atomic store transaction;
// failures are recorded per pair and never abort the rest of the batch, and
// no pair is ever retried automatically. A blind retry can double-merge; a
// stalled pair just waits for manual review.
func (s *Service) Commit(ctx context.Context, pairs []MergePair) CommitResult {
	var result CommitResult

	for _, pair := range pairs {
		if err := s.mergePair(ctx, pair); err != nil {
			slog.Warn("skipping pair", "keep", pair.KeepID, "drop", pair.DropID, "error", err)

			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("merge %s into %s: %v", pair.DropID, pair.KeepID, err))

			continue
		}

		result.Merged++
	}

	return result
}

// mergePair collapses the pair into the kept transaction. The dropped side's
// amount and sign are the source of truth: its posting reflects however its
// own source import recorded the sign convention, and the kept side is
// adjusted to balance against it. Downstream scripts depend on these exact
// sign outcomes, so the convention is deliberate and must not change.
func (s *Service) mergePair(ctx context.Context, pair MergePair) error {
	mtx, err := s.repo.BeginMerge(ctx, pair.KeepID, pair.DropID)
	if err != nil {
		return fmt.Errorf("beginning merge: %w", err)
	}
	defer mtx.Rollback()

	// Re-fetch both transactions fresh under lock; preview data may be stale
	// by the time a human approves it.
	keep, err := mtx.GetTransaction(ctx, pair.KeepID)
	if err != nil {
		return fmt.Errorf("fetching kept transaction: %w", err)
	}

	drop, err := mtx.GetTransaction(ctx, pair.DropID)
	if err != nil {
		return fmt.Errorf("fetching dropped transaction: %w", err)
	}

	// State may have drifted since extraction, so the candidate shape is
	// checked again here.
	keepReal, keepCategory, err := transferShape(keep)
	if err != nil {
		return fmt.Errorf("kept transaction: %w", err)
	}

	dropReal, _, err := transferShape(drop)
	if err != nil {
		return fmt.Errorf("dropped transaction: %w", err)
	}

	if keepReal.AccountID == dropReal.AccountID {
		return ErrSelfTransfer
	}

	if keepReal.Reconciled || dropReal.Reconciled {
		return ErrReconciledPosting
	}

	if err := mtx.DeletePosting(ctx, keepCategory.ID); err != nil {
		return fmt.Errorf("deleting category posting: %w", err)
	}

	if err := mtx.UpdatePostingAmount(ctx, keepReal.ID, dropReal.Amount.Neg()); err != nil {
		return fmt.Errorf("rebalancing kept posting: %w", err)
	}

	if err := mtx.CreatePosting(ctx, &ledger.Posting{
		TransactionID: keep.ID,
		AccountID:     dropReal.AccountID,
		Amount:        dropReal.Amount,
		Business:      dropReal.Business,
		Cleared:       dropReal.Cleared,
	}); err != nil {
		return fmt.Errorf("creating transfer posting: %w", err)
	}

	if keep.Payee == "" {
		keep.Payee = drop.Payee
	}

	// Transfers can appear one calendar day apart across two bank feeds; the
	// earliest date keeps register ordering consistent.
	if drop.Date.Before(keep.Date) {
		keep.Date = drop.Date
	}

	if err := mtx.UpdateTransaction(ctx, keep); err != nil {
		return fmt.Errorf("updating kept transaction: %w", err)
	}

	if err := mtx.RecordMerge(ctx, ledger.NewMergeRecord(keep.ID, drop.ID, drop.Payee)); err != nil {
		return fmt.Errorf("recording merge provenance: %w", err)
	}

	if err := mtx.DeleteTransactionPostings(ctx, drop.ID); err != nil {
		return fmt.Errorf("deleting absorbed postings: %w", err)
	}

	if err := mtx.DeleteTransaction(ctx, drop.ID); err != nil {
		return fmt.Errorf("deleting absorbed transaction: %w", err)
	}

	if err := mtx.Commit(); err != nil {
		return fmt.Errorf("committing merge: %w", err)
	}

	return nil
}
