package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/jwoodham/bucksbot/internal/auth"
	"github.com/jwoodham/bucksbot/internal/http/account"
	"github.com/jwoodham/bucksbot/internal/http/command"
	"github.com/jwoodham/bucksbot/internal/http/issue"
	"github.com/jwoodham/bucksbot/internal/http/transfer"
	"github.com/jwoodham/bucksbot/internal/metrics"
)

func New(
	accountsV1 *account.Handler,
	transfersV1 *transfer.Handler,
	issueV1 *issue.Handler,
	commandsV1 *command.Handler,
	tokens *auth.TokenManager,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	router.Handle("/metrics", metrics.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/accounts", func(r chi.Router) {
			accountsV1.Routes(r)
		})

		r.Get("/leaderboard", accountsV1.Leaderboard)

		r.Route("/transfers", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			transfersV1.Routes(r)
		})

		r.Route("/issue", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			r.Use(RequireModerator(tokens))
			issueV1.Routes(r)
		})

		r.Route("/commands", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			commandsV1.Routes(r)
		})
	})

	return router
}
