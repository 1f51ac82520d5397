package account

import (
	"encoding/json"
	"log/slog"
	"net/http"

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
	r.Get("/", h.list)
}

type accountResponse struct {
	ID   uuid.UUID          `json:"id"`
	Name string             `json:"name"`
	Kind ledger.AccountKind `json:"kind"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	var kind *ledger.AccountKind

	if k := r.URL.Query().Get("kind"); k != "" {
		parsed := ledger.AccountKind(k)
		if !parsed.Valid() {
			http.Error(w, "invalid kind", http.StatusBadRequest)
			return
		}

		kind = &parsed
	}

	accounts, err := h.svc.Accounts(r.Context(), kind)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]accountResponse, len(accounts))
	for i, a := range accounts {
		resp[i] = accountResponse{ID: a.ID, Name: a.Name, Kind: a.Kind}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
