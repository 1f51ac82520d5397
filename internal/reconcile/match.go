package reconcile

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/PBSGlenn/ledgerhound/internal/reconcile/assign"
)

// MatchAccounts extracts transfer candidates on both accounts, scores every
// cross pair and solves a minimum-cost assignment over the score matrix to
// produce a globally optimal 1:1 pairing. Greedy nearest-score pairing can
// lock in a suboptimal match early and strand a better pair later, which
// matters when many same-amount transfers recur and only date or keyword
// signals disambiguate them.
//
// The operation is a pure read and safe to re-run; candidates may still be
// unmerged after a prior partial commit.
func (s *Service) MatchAccounts(ctx context.Context, accountA, accountB uuid.UUID, window *DateRange) (*MatchPreview, error) {
	candsA, err := s.FindCandidates(ctx, accountA, window)
	if err != nil {
		return nil, fmt.Errorf("extracting candidates for account a: %w", err)
	}

	candsB, err := s.FindCandidates(ctx, accountB, window)
	if err != nil {
		return nil, fmt.Errorf("extracting candidates for account b: %w", err)
	}

	preview := &MatchPreview{}

	if len(candsA) == 0 || len(candsB) == 0 {
		preview.UnmatchedA = candsA
		preview.UnmatchedB = candsB

		return preview, nil
	}

	scores := make([][]int, len(candsA))
	costs := make([][]int, len(candsA))

	for i, a := range candsA {
		scores[i] = make([]int, len(candsB))
		costs[i] = make([]int, len(candsB))

		for j, b := range candsB {
			score, _ := s.Score(a, b)
			scores[i][j] = score
			costs[i][j] = MaxScore - score
		}
	}

	assigned := assign.Solve(costs)
	matchedB := make([]bool, len(candsB))

	for i, j := range assigned {
		// Padded assignments and pairings below the admission threshold are
		// not matches; a forced pairing from matrix padding must never be
		// reported as real.
		if j < 0 || scores[i][j] < s.minScore {
			preview.UnmatchedA = append(preview.UnmatchedA, candsA[i])
			continue
		}

		score, reasons := s.Score(candsA[i], candsB[j])

		preview.Matches = append(preview.Matches, MatchPair{
			A:       candsA[i],
			B:       candsB[j],
			Score:   score,
			Tier:    TierFor(score),
			Reasons: reasons,
		})
		matchedB[j] = true
	}

	for j, matched := range matchedB {
		if !matched {
			preview.UnmatchedB = append(preview.UnmatchedB, candsB[j])
		}
	}

	sort.SliceStable(preview.Matches, func(i, j int) bool {
		return preview.Matches[i].Score > preview.Matches[j].Score
	})

	for _, m := range preview.Matches {
		switch m.Tier {
		case TierExact:
			preview.Summary.Exact++
		case TierProbable:
			preview.Summary.Probable++
		case TierPossible:
			preview.Summary.Possible++
		}
	}

	return preview, nil
}
