package reconcile_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/PBSGlenn/ledgerhound/internal/ledger"
	"github.com/PBSGlenn/ledgerhound/internal/reconcile"
)

func TestService_Commit_MergesPair(t *testing.T) {
	checking := transferAccount("Checking")
	savings := transferAccount("Savings")
	uncategorized := categoryAccount("Uncategorized")

	// The absorbed side carries the authoritative amount, a fee-skewed 500.25.
	keep := twoLegTx("2025-08-21", "Transfer to Savings", checking, -500, uncategorized)
	drop := twoLegTx("2025-08-20", "Transfer from Checking", savings, 500.25, uncategorized)

	repo := newFakeLedger(
		[]*ledger.Account{checking, savings, uncategorized},
		[]*ledger.Transaction{keep, drop},
	)

	svc := reconcile.NewService(repo, reconcile.Config{})
	result := svc.Commit(context.Background(), []reconcile.MergePair{
		{KeepID: keep.ID, DropID: drop.ID},
	})

	assert.Equal(t, reconcile.CommitResult{Merged: 1}, result)

	// The absorbed transaction is gone.
	_, err := repo.GetTransaction(context.Background(), drop.ID)
	assert.ErrorIs(t, err, ledger.ErrNotFound)

	merged, err := repo.GetTransaction(context.Background(), keep.ID)
	require.NoError(t, err)
	require.Len(t, merged.Postings, 2)
	assert.True(t, merged.Balanced())

	byAccount := map[uuid.UUID]decimal.Decimal{}
	for _, p := range merged.Postings {
		byAccount[p.AccountID] = p.Amount
	}

	// The kept leg is rebalanced against the absorbed amount, which is kept
	// verbatim on its own account.
	assert.True(t, byAccount[checking.ID].Equal(decimal.NewFromFloat(-500.25)))
	assert.True(t, byAccount[savings.ID].Equal(decimal.NewFromFloat(500.25)))

	// Earlier date wins, kept payee survives.
	assert.Equal(t, day("2025-08-20"), merged.Date)
	assert.Equal(t, "Transfer to Savings", merged.Payee)

	rec, ok := repo.merges[keep.ID]
	require.True(t, ok)
	assert.Equal(t, drop.ID, rec.AbsorbedID)
	assert.Equal(t, "Transfer from Checking", rec.AbsorbedPayee)
	assert.Equal(t, 1, rec.Version)

	assert.True(t, repo.totalSum().IsZero())
}

func TestService_Commit_EmptyPayeeTakesAbsorbed(t *testing.T) {
	checking := transferAccount("Checking")
	savings := transferAccount("Savings")
	uncategorized := categoryAccount("Uncategorized")

	keep := twoLegTx("2025-08-20", "", checking, -500, uncategorized)
	drop := twoLegTx("2025-08-20", "Transfer from Checking", savings, 500, uncategorized)

	repo := newFakeLedger(
		[]*ledger.Account{checking, savings, uncategorized},
		[]*ledger.Transaction{keep, drop},
	)

	svc := reconcile.NewService(repo, reconcile.Config{})
	result := svc.Commit(context.Background(), []reconcile.MergePair{
		{KeepID: keep.ID, DropID: drop.ID},
	})

	require.Equal(t, 1, result.Merged)

	merged, err := repo.GetTransaction(context.Background(), keep.ID)
	require.NoError(t, err)
	assert.Equal(t, "Transfer from Checking", merged.Payee)
}

func TestService_Commit_Skips(t *testing.T) {
	checking := transferAccount("Checking")
	savings := transferAccount("Savings")
	uncategorized := categoryAccount("Uncategorized")
	groceries := categoryAccount("Groceries")

	type testCase struct {
		name  string
		setup func() (repo *fakeLedger, pair reconcile.MergePair)
	}

	tests := []testCase{
		{
			name: "SelfTransfer",
			setup: func() (*fakeLedger, reconcile.MergePair) {
				keep := twoLegTx("2025-08-20", "Transfer", checking, -500, uncategorized)
				drop := twoLegTx("2025-08-20", "Transfer", checking, 500, uncategorized)
				repo := newFakeLedger(
					[]*ledger.Account{checking, savings, uncategorized},
					[]*ledger.Transaction{keep, drop},
				)
				return repo, reconcile.MergePair{KeepID: keep.ID, DropID: drop.ID}
			},
		},
		{
			name: "ReconciledPosting",
			setup: func() (*fakeLedger, reconcile.MergePair) {
				keep := twoLegTx("2025-08-20", "Transfer", checking, -500, uncategorized)
				drop := twoLegTx("2025-08-20", "Transfer", savings, 500, uncategorized)
				drop.Postings[0].Reconciled = true
				repo := newFakeLedger(
					[]*ledger.Account{checking, savings, uncategorized},
					[]*ledger.Transaction{keep, drop},
				)
				return repo, reconcile.MergePair{KeepID: keep.ID, DropID: drop.ID}
			},
		},
		{
			name: "AbsorbedGone",
			setup: func() (*fakeLedger, reconcile.MergePair) {
				keep := twoLegTx("2025-08-20", "Transfer", checking, -500, uncategorized)
				repo := newFakeLedger(
					[]*ledger.Account{checking, savings, uncategorized},
					[]*ledger.Transaction{keep},
				)
				return repo, reconcile.MergePair{KeepID: keep.ID, DropID: uuid.New()}
			},
		},
		{
			name: "AbsorbedNotTransferShape",
			setup: func() (*fakeLedger, reconcile.MergePair) {
				keep := twoLegTx("2025-08-20", "Transfer", checking, -500, uncategorized)
				drop := twoLegTx("2025-08-20", "Split", savings, 500, uncategorized)
				drop.Postings = append(drop.Postings, ledger.Posting{
					ID:        uuid.New(),
					AccountID: groceries.ID,
					Account:   groceries,
					Amount:    decimal.NewFromInt(25),
				})
				repo := newFakeLedger(
					[]*ledger.Account{checking, savings, uncategorized, groceries},
					[]*ledger.Transaction{keep, drop},
				)
				return repo, reconcile.MergePair{KeepID: keep.ID, DropID: drop.ID}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, pair := tt.setup()
			before := len(repo.txs)

			svc := reconcile.NewService(repo, reconcile.Config{})
			result := svc.Commit(context.Background(), []reconcile.MergePair{pair})

			assert.Equal(t, 0, result.Merged)
			assert.Equal(t, 1, result.Skipped)
			require.Len(t, result.Errors, 1)

			// Nothing was mutated.
			assert.Len(t, repo.txs, before)
			assert.Empty(t, repo.merges)
		})
	}
}

func TestService_Commit_BatchIndependence(t *testing.T) {
	checking := transferAccount("Checking")
	savings := transferAccount("Savings")
	uncategorized := categoryAccount("Uncategorized")

	keep := twoLegTx("2025-08-20", "Transfer to Savings", checking, -500, uncategorized)
	drop := twoLegTx("2025-08-20", "Transfer from Checking", savings, 500, uncategorized)

	repo := newFakeLedger(
		[]*ledger.Account{checking, savings, uncategorized},
		[]*ledger.Transaction{keep, drop},
	)

	svc := reconcile.NewService(repo, reconcile.Config{})
	result := svc.Commit(context.Background(), []reconcile.MergePair{
		{KeepID: uuid.New(), DropID: uuid.New()},
		{KeepID: keep.ID, DropID: drop.ID},
	})

	// The bad pair is reported and the good pair still lands.
	assert.Equal(t, 1, result.Merged)
	assert.Equal(t, 1, result.Skipped)
	assert.Len(t, result.Errors, 1)

	_, err := repo.GetTransaction(context.Background(), drop.ID)
	assert.ErrorIs(t, err, ledger.ErrNotFound)
}

func TestService_Commit_RollsBackOnStoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	checking := transferAccount("Checking")
	savings := transferAccount("Savings")
	uncategorized := categoryAccount("Uncategorized")

	keep := twoLegTx("2025-08-20", "Transfer to Savings", checking, -500, uncategorized)
	drop := twoLegTx("2025-08-20", "Transfer from Checking", savings, 500, uncategorized)

	mtx := reconcile.NewMockMergeTx(ctrl)
	mtx.EXPECT().GetTransaction(gomock.Any(), keep.ID).Return(keep, nil)
	mtx.EXPECT().GetTransaction(gomock.Any(), drop.ID).Return(drop, nil)
	mtx.EXPECT().DeletePosting(gomock.Any(), keep.Postings[1].ID).Return(errors.New("db error"))
	// No Commit expectation: the transaction must only be rolled back.
	mtx.EXPECT().Rollback().Return(nil)

	repo := reconcile.NewMockRepository(ctrl)
	repo.EXPECT().
		BeginMerge(gomock.Any(), keep.ID, drop.ID).
		Return(mtx, nil)

	svc := reconcile.NewService(repo, reconcile.Config{})
	result := svc.Commit(context.Background(), []reconcile.MergePair{
		{KeepID: keep.ID, DropID: drop.ID},
	})

	assert.Equal(t, 0, result.Merged)
	assert.Equal(t, 1, result.Skipped)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "db error")
}
