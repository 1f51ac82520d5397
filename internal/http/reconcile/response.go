package reconcile

import (
	"time"

	"github.com/google/uuid"

	"github.com/PBSGlenn/ledgerhound/internal/reconcile"
)

type candidateResponse struct {
	TransactionID uuid.UUID `json:"transaction_id"`
	AccountID     uuid.UUID `json:"account_id"`
	Amount        string    `json:"amount"`
	Date          string    `json:"date"`
	Payee         string    `json:"payee"`
	Reconciled    bool      `json:"reconciled"`
}

type matchResponse struct {
	A       candidateResponse `json:"a"`
	B       candidateResponse `json:"b"`
	Score   int               `json:"score"`
	Tier    reconcile.Tier    `json:"tier"`
	Reasons []string          `json:"reasons"`
}

type summaryResponse struct {
	Exact    int `json:"exact"`
	Probable int `json:"probable"`
	Possible int `json:"possible"`
}

type previewResponse struct {
	Matches    []matchResponse     `json:"matches"`
	UnmatchedA []candidateResponse `json:"unmatched_a"`
	UnmatchedB []candidateResponse `json:"unmatched_b"`
	Summary    summaryResponse     `json:"summary"`
}

func toCandidateResponse(c reconcile.TransferCandidate) candidateResponse {
	return candidateResponse{
		TransactionID: c.Transaction.ID,
		AccountID:     c.Real.AccountID,
		Amount:        c.Amount.StringFixed(2),
		Date:          c.Date.Format(time.DateOnly),
		Payee:         c.Payee,
		Reconciled:    c.Reconciled,
	}
}

func toCandidateResponseList(cands []reconcile.TransferCandidate) []candidateResponse {
	resp := make([]candidateResponse, len(cands))
	for i, c := range cands {
		resp[i] = toCandidateResponse(c)
	}

	return resp
}

func toPreviewResponse(p *reconcile.MatchPreview) previewResponse {
	matches := make([]matchResponse, len(p.Matches))
	for i, m := range p.Matches {
		matches[i] = matchResponse{
			A:       toCandidateResponse(m.A),
			B:       toCandidateResponse(m.B),
			Score:   m.Score,
			Tier:    m.Tier,
			Reasons: m.Reasons,
		}
	}

	return previewResponse{
		Matches:    matches,
		UnmatchedA: toCandidateResponseList(p.UnmatchedA),
		UnmatchedB: toCandidateResponseList(p.UnmatchedB),
		Summary: summaryResponse{
			Exact:    p.Summary.Exact,
			Probable: p.Summary.Probable,
			Possible: p.Summary.Possible,
		},
	}
}
