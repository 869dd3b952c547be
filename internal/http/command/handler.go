package command

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jwoodham/bucksbot/internal/bot"
)

const defaultBoardSize = 10

// Handler is the chat integration surface: the event source posts comments
// here and gets back the reply the bot should leave, if any, and polls the
// rendered leaderboard text it pins.
type Handler struct {
	responder *bot.Responder
}

func NewHandler(responder *bot.Responder) *Handler {
	return &Handler{responder: responder}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/leaderboard", h.leaderboard)
}

type commandRequest struct {
	Author string `json:"author"`
	Body   string `json:"body"`
}

type commandResponse struct {
	Reply   string `json:"reply,omitempty"`
	Handled bool   `json:"handled"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req commandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	reply, handled := h.responder.Respond(req.Author, req.Body)

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(commandResponse{Reply: reply, Handled: handled}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type leaderboardResponse struct {
	Board string `json:"board"`
}

// leaderboard serves the board as the bot renders it in chat, ready to pin.
func (h *Handler) leaderboard(w http.ResponseWriter, r *http.Request) {
	size := defaultBoardSize

	if v := r.URL.Query().Get("n"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			http.Error(w, "invalid n", http.StatusBadRequest)
			return
		}

		size = n
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(leaderboardResponse{Board: h.responder.Leaderboard(size)}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
