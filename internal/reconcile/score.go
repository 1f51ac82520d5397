package reconcile

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/PBSGlenn/ledgerhound/internal/ledger"
)

// Gazetteer is a set of transfer-indicator phrases matched case-insensitively
// against payee text. It is injected data, not business logic: tune or
// localize it through configuration, not code.
type Gazetteer []string

// DefaultGazetteer covers the phrasings the banks we import from use for
// inter-account transfers.
var DefaultGazetteer = Gazetteer{
	"transfer",
	"tfr",
	"internal transfer",
	"from linked account",
	"from macbank",
	"to macbank",
}

// Match reports whether the text contains any gazetteer phrase.
func (g Gazetteer) Match(text string) bool {
	lowered := strings.ToLower(text)
	for _, phrase := range g {
		if strings.Contains(lowered, phrase) {
			return true
		}
	}

	return false
}

// Scoring weights. The three signals are additive and individually capped so
// no single signal can force an exact classification on its own.
const (
	MaxScore = 100

	scoreAmountOpposite = 50
	scoreAmountSameSign = 30
	scoreAmountNear     = 15

	scoreDateSameDay   = 30
	scoreDateOneDay    = 25
	scoreDateThreeDays = 15
	scoreDateWeek      = 5

	scoreKeywordBoth = 20
	scoreKeywordOne  = 10
)

// nearAmountTolerance flags near-miss amounts worth surfacing at lower
// confidence.
var nearAmountTolerance = decimal.NewFromInt(1)

// Score computes the 0-100 compatibility of two candidates, with a
// human-readable reason per contributing rule.
func (s *Service) Score(a, b TransferCandidate) (int, []string) {
	score := 0

	var reasons []string

	absA := a.Amount.Abs()
	absB := b.Amount.Abs()
	diff := absA.Sub(absB).Abs()
	oppositeSigns := a.Amount.Sign()*b.Amount.Sign() < 0

	switch {
	case oppositeSigns && diff.LessThan(ledger.Epsilon):
		score += scoreAmountOpposite
		reasons = append(reasons, fmt.Sprintf("amounts match with opposite signs (%s / %s)", a.Amount, b.Amount))
	case diff.LessThan(ledger.Epsilon):
		score += scoreAmountSameSign
		reasons = append(reasons, fmt.Sprintf("amounts match but signs agree (%s / %s)", a.Amount, b.Amount))
	case diff.LessThan(nearAmountTolerance):
		score += scoreAmountNear
		reasons = append(reasons, fmt.Sprintf("amounts within %s of each other (%s / %s)", nearAmountTolerance, a.Amount, b.Amount))
	}

	switch days := daysApart(a.Date, b.Date); {
	case days == 0:
		score += scoreDateSameDay
		reasons = append(reasons, "same day")
	case days <= 1:
		score += scoreDateOneDay
		reasons = append(reasons, "1 day apart")
	case days <= 3:
		score += scoreDateThreeDays
		reasons = append(reasons, fmt.Sprintf("%d days apart", days))
	case days <= 7:
		score += scoreDateWeek
		reasons = append(reasons, fmt.Sprintf("%d days apart", days))
	}

	matchA := s.gazetteer.Match(a.Payee)
	matchB := s.gazetteer.Match(b.Payee)

	switch {
	case matchA && matchB:
		score += scoreKeywordBoth
		reasons = append(reasons, "both payees mention a transfer")
	case matchA || matchB:
		score += scoreKeywordOne
		reasons = append(reasons, "one payee mentions a transfer")
	}

	return score, reasons
}

// daysApart measures whole calendar days between two dates, ignoring time of
// day.
func daysApart(a, b time.Time) int {
	da := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	db := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)

	days := int(da.Sub(db).Hours() / 24)
	if days < 0 {
		days = -days
	}

	return days
}
