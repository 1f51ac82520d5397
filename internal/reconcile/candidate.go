package reconcile

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/PBSGlenn/ledgerhound/internal/ledger"
)

// datePadding absorbs timezone-boundary date shifts between two independently
// imported sources.
const datePadding = 24 * time.Hour

// FindCandidates scans the given real account for transactions that look like
// one side of an unresolved transfer. The optional window is padded by one day
// on each end. Pure read, ordered ascending by date.
func (s *Service) FindCandidates(ctx context.Context, accountID uuid.UUID, window *DateRange) ([]TransferCandidate, error) {
	account, err := s.repo.GetAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("fetching account: %w", err)
	}

	if account.Kind != ledger.KindTransfer {
		return nil, fmt.Errorf("account %q: %w", account.Name, ErrNotTransferAccount)
	}

	var start, end *time.Time

	if window != nil {
		from := window.Start.Add(-datePadding)
		to := window.End.Add(datePadding)
		start, end = &from, &to
	}

	txs, err := s.repo.ListCandidateTransactions(ctx, accountID, start, end)
	if err != nil {
		return nil, fmt.Errorf("listing candidate transactions: %w", err)
	}

	var candidates []TransferCandidate

	for _, tx := range txs {
		real, category, err := transferShape(tx)
		if err != nil {
			// Already-resolved transfers and other shapes are simply not
			// candidates.
			continue
		}

		if real.AccountID != accountID {
			continue
		}

		if !s.looksLikeTransfer(tx.Payee, category.Account) {
			continue
		}

		candidates = append(candidates, TransferCandidate{
			Transaction: tx,
			Real:        *real,
			Category:    *category,
			Amount:      real.Amount,
			Date:        tx.Date,
			Payee:       tx.Payee,
			Reconciled:  real.Reconciled,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Date.Before(candidates[j].Date)
	})

	return candidates, nil
}

// transferShape splits a transaction into its real and category legs. It is
// total over AccountKind: any transaction that is not exactly one real leg
// plus one category leg is rejected, including already-resolved transfers
// (two real legs).
func transferShape(tx *ledger.Transaction) (real, category *ledger.Posting, err error) {
	if len(tx.Postings) != 2 {
		return nil, nil, fmt.Errorf("%d postings: %w", len(tx.Postings), ErrNotTransferShape)
	}

	for i := range tx.Postings {
		p := &tx.Postings[i]
		if p.Account == nil || !p.Account.Kind.Valid() {
			return nil, nil, fmt.Errorf("posting %s has no valid account: %w", p.ID, ErrNotTransferShape)
		}

		switch p.Account.Kind {
		case ledger.KindTransfer:
			if real != nil {
				// Both legs real: the transfer is already resolved.
				return nil, nil, fmt.Errorf("both postings are transfer accounts: %w", ErrNotTransferShape)
			}

			real = p
		case ledger.KindCategory:
			if category != nil {
				return nil, nil, fmt.Errorf("both postings are category accounts: %w", ErrNotTransferShape)
			}

			category = p
		}
	}

	return real, category, nil
}

// looksLikeTransfer applies the heuristic gate: either the category side is an
// obvious transfer placeholder, or the payee text carries a transfer phrase.
func (s *Service) looksLikeTransfer(payee string, category *ledger.Account) bool {
	name := strings.ToLower(category.Name)
	if name == "uncategorized" || strings.Contains(name, "transfer") {
		return true
	}

	return s.gazetteer.Match(payee)
}
