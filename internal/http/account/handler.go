package account

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jwoodham/bucksbot/internal/bank"
	"github.com/jwoodham/bucksbot/internal/bot"
	"github.com/jwoodham/bucksbot/internal/ledger"
)

const defaultLeaderboardSize = 10

type Handler struct {
	svc *bank.Service
}

func NewHandler(svc *bank.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/{identity}", h.get)
	r.Get("/{identity}/transactions", h.transactions)
}

type createAccountRequest struct {
	Identity string `json:"identity"`
	Nickname string `json:"nickname"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	identity := bot.Normalize(req.Identity)
	if identity == "" {
		http.Error(w, "identity is required", http.StatusBadRequest)
		return
	}

	nickname := req.Nickname
	if nickname == "" {
		nickname = identity
	}

	info, err := h.svc.CreateAccount(identity, nickname)
	if err != nil {
		if errors.Is(err, ledger.ErrAccountExists) {
			http.Error(w, "account already exists", http.StatusConflict)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(info)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	identity := bot.Normalize(chi.URLParam(r, "identity"))

	info, err := h.svc.Account(identity)
	if err != nil {
		if errors.Is(err, ledger.ErrAccountNotFound) {
			http.Error(w, "account not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(info)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) transactions(w http.ResponseWriter, r *http.Request) {
	identity := bot.Normalize(chi.URLParam(r, "identity"))

	history, err := h.svc.History(identity)
	if err != nil {
		if errors.Is(err, ledger.ErrAccountNotFound) {
			http.Error(w, "account not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toTransactionList(history)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Leaderboard serves the top balances, descending. Size defaults to 10 and
// is capped by the number of accounts.
func (h *Handler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	size := defaultLeaderboardSize

	if v := r.URL.Query().Get("n"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			http.Error(w, "invalid n", http.StatusBadRequest)
			return
		}

		size = n
	}

	entries := h.svc.Leaderboard(size)

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toLeaderboard(entries)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
