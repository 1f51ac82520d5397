package reconcile

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/PBSGlenn/ledgerhound/internal/ledger"
	"github.com/PBSGlenn/ledgerhound/internal/reconcile"
)

type Handler struct {
	svc *reconcile.Service
}

func NewHandler(svc *reconcile.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/preview", h.preview)
	r.Post("/commit", h.commit)
}

func (h *Handler) preview(w http.ResponseWriter, r *http.Request) {
	accountA, err := uuid.Parse(r.URL.Query().Get("account_a"))
	if err != nil {
		http.Error(w, "invalid account_a", http.StatusBadRequest)
		return
	}

	accountB, err := uuid.Parse(r.URL.Query().Get("account_b"))
	if err != nil {
		http.Error(w, "invalid account_b", http.StatusBadRequest)
		return
	}

	window, err := parseWindow(r.URL.Query().Get("start_date"), r.URL.Query().Get("end_date"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	preview, err := h.svc.MatchAccounts(r.Context(), accountA, accountB, window)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrNotFound):
			http.Error(w, "account not found", http.StatusNotFound)
		case errors.Is(err, reconcile.ErrNotTransferAccount):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toPreviewResponse(preview)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type commitRequest struct {
	Pairs []commitPair `json:"pairs"`
}

type commitPair struct {
	KeepID uuid.UUID `json:"keep_id"`
	DropID uuid.UUID `json:"drop_id"`
}

type commitResponse struct {
	Merged  int      `json:"merged"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors,omitempty"`
}

func (h *Handler) commit(w http.ResponseWriter, r *http.Request) {
	var req commitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if len(req.Pairs) == 0 {
		http.Error(w, "pairs is required", http.StatusBadRequest)
		return
	}

	pairs := make([]reconcile.MergePair, len(req.Pairs))
	for i, p := range req.Pairs {
		pairs[i] = reconcile.MergePair{KeepID: p.KeepID, DropID: p.DropID}
	}

	result := h.svc.Commit(r.Context(), pairs)

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(commitResponse{
		Merged:  result.Merged,
		Skipped: result.Skipped,
		Errors:  result.Errors,
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func parseWindow(startStr, endStr string) (*reconcile.DateRange, error) {
	if startStr == "" && endStr == "" {
		return nil, nil
	}

	start, err := time.Parse(time.DateOnly, startStr)
	if err != nil {
		return nil, errors.New("invalid start_date (YYYY-MM-DD)")
	}

	end, err := time.Parse(time.DateOnly, endStr)
	if err != nil {
		return nil, errors.New("invalid end_date (YYYY-MM-DD)")
	}

	return &reconcile.DateRange{Start: start, End: end}, nil
}
