package reconcile_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/PBSGlenn/ledgerhound/internal/reconcile"
)

func candidate(amount float64, date string, payee string) reconcile.TransferCandidate {
	d, err := time.Parse(time.DateOnly, date)
	if err != nil {
		panic(err)
	}

	return reconcile.TransferCandidate{
		Amount: decimal.NewFromFloat(amount),
		Date:   d,
		Payee:  payee,
	}
}

func TestScore(t *testing.T) {
	svc := reconcile.NewService(nil, reconcile.Config{})

	type testCase struct {
		name      string
		a, b      reconcile.TransferCandidate
		wantScore int
	}

	tests := []testCase{
		{
			name:      "ExactMatch",
			a:         candidate(-500, "2025-08-20", "Savings Transfer"),
			b:         candidate(500, "2025-08-20", "Transfer to Savings"),
			wantScore: 100, // 50 amount + 30 date + 20 keywords
		},
		{
			name:      "OneDaySkewNoKeywords",
			a:         candidate(-500, "2025-08-20", "Payment received"),
			b:         candidate(500, "2025-08-21", "Deposit"),
			wantScore: 75, // 50 + 25 + 0
		},
		{
			name:      "SameSignAmounts",
			a:         candidate(500, "2025-08-20", "Deposit"),
			b:         candidate(500, "2025-08-20", "Payment"),
			wantScore: 60, // 30 + 30 + 0
		},
		{
			name:      "NearMissAmount",
			a:         candidate(-500.50, "2025-08-20", "Deposit"),
			b:         candidate(500, "2025-08-20", "Payment"),
			wantScore: 45, // 15 + 30 + 0
		},
		{
			name:      "ThreeDaysApart",
			a:         candidate(-500, "2025-08-20", "Deposit"),
			b:         candidate(500, "2025-08-23", "Payment"),
			wantScore: 65, // 50 + 15 + 0
		},
		{
			name:      "WeekApart",
			a:         candidate(-500, "2025-08-20", "Deposit"),
			b:         candidate(500, "2025-08-27", "Payment"),
			wantScore: 55, // 50 + 5 + 0
		},
		{
			name:      "OneKeywordOnly",
			a:         candidate(-500, "2025-08-20", "TFR 100231"),
			b:         candidate(500, "2025-08-20", "Deposit"),
			wantScore: 90, // 50 + 30 + 10
		},
		{
			name:      "NoSignals",
			a:         candidate(-500, "2025-08-20", "Groceries"),
			b:         candidate(450, "2025-08-30", "Fuel"),
			wantScore: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, reasons := svc.Score(tt.a, tt.b)

			assert.Equal(t, tt.wantScore, score)

			if tt.wantScore > 0 {
				assert.NotEmpty(t, reasons)
			} else {
				assert.Empty(t, reasons)
			}
		})
	}
}

func TestScore_Symmetric(t *testing.T) {
	svc := reconcile.NewService(nil, reconcile.Config{})

	a := candidate(-500, "2025-08-20", "Savings Transfer")
	b := candidate(500, "2025-08-21", "Deposit")

	scoreAB, _ := svc.Score(a, b)
	scoreBA, _ := svc.Score(b, a)

	assert.Equal(t, scoreAB, scoreBA)
}

func TestScore_ExtraPhrases(t *testing.T) {
	svc := reconcile.NewService(nil, reconcile.Config{ExtraPhrases: []string{"virement"}})

	a := candidate(-500, "2025-08-20", "VIREMENT compte epargne")
	b := candidate(500, "2025-08-20", "Virement recu")

	score, _ := svc.Score(a, b)

	assert.Equal(t, 100, score)
}

func TestGazetteer_Match(t *testing.T) {
	g := reconcile.DefaultGazetteer

	assert.True(t, g.Match("Internal Transfer 882"))
	assert.True(t, g.Match("FROM MACBANK"))
	assert.True(t, g.Match("tfr to joint"))
	assert.False(t, g.Match("Coffee shop"))
	assert.False(t, g.Match(""))
}
