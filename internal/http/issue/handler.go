package issue

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jwoodham/bucksbot/internal/bank"
	"github.com/jwoodham/bucksbot/internal/bot"
	"github.com/jwoodham/bucksbot/internal/ledger"
)

type Handler struct {
	svc *bank.Service
}

func NewHandler(svc *bank.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
}

type issueRequest struct {
	Identity string `json:"identity"`
	Amount   int64  `json:"amount"`
}

type issueResponse struct {
	Identity      string `json:"identity"`
	AccountNumber string `json:"account_number"`
	Amount        int64  `json:"amount"`
	Balance       int64  `json:"balance"`
}

// create credits an account. The amount is deliberately not range-checked:
// issuing follows the unguarded credit semantics of the ledger.
func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req issueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	info, err := h.svc.Issue(bot.Normalize(req.Identity), req.Amount)
	if err != nil {
		if errors.Is(err, ledger.ErrAccountNotFound) {
			http.Error(w, "account not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	resp := issueResponse{
		Identity:      info.Identity,
		AccountNumber: info.Number.String(),
		Amount:        req.Amount,
		Balance:       info.Balance,
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
