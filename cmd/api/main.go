package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/jwoodham/bucksbot/internal/auth"
	"github.com/jwoodham/bucksbot/internal/bank"
	"github.com/jwoodham/bucksbot/internal/bot"
	"github.com/jwoodham/bucksbot/internal/config"
	bucksHttp "github.com/jwoodham/bucksbot/internal/http"
	accountHandler "github.com/jwoodham/bucksbot/internal/http/account"
	commandHandler "github.com/jwoodham/bucksbot/internal/http/command"
	issueHandler "github.com/jwoodham/bucksbot/internal/http/issue"
	transferHandler "github.com/jwoodham/bucksbot/internal/http/transfer"
	"github.com/jwoodham/bucksbot/internal/ledger"
	"github.com/jwoodham/bucksbot/internal/metrics"
	"github.com/jwoodham/bucksbot/internal/snapshot"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if cfg.App.Env == "prod" {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	}

	store := snapshot.NewStore(cfg.Snapshot.Path)

	l, err := loadLedger(store)
	if err != nil {
		slog.Error("failed to load snapshot", "path", cfg.Snapshot.Path, "error", err)
		os.Exit(1)
	}

	metrics.Init()

	var (
		service   = bank.NewService(l, store)
		responder = bot.NewResponder(service, cfg.Bot.Trigger, cfg.Bot.Name, cfg.Bot.Moderators)
		tokens    = auth.NewTokenManager(cfg.Auth.Secret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)
	)

	var (
		accountH  = accountHandler.NewHandler(service)
		transferH = transferHandler.NewHandler(service)
		issueH    = issueHandler.NewHandler(service)
		commandH  = commandHandler.NewHandler(responder)
	)

	router := bucksHttp.New(accountH, transferH, issueH, commandH, tokens)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go saveLoop(ctx, service, cfg.Snapshot.SaveInterval)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("starting server", "addr", srv.Addr, "accounts", service.AccountCount())

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_ = srv.Shutdown(shutdownCtx)

	if err := service.Save(); err != nil {
		slog.Error("final snapshot failed", "error", err)
		os.Exit(1)
	}
}

// loadLedger hydrates the ledger from the snapshot file, starting empty on
// first boot when no file exists yet.
func loadLedger(store *snapshot.Store) (*ledger.Ledger, error) {
	doc, err := store.Load()
	if errors.Is(err, fs.ErrNotExist) {
		return ledger.New(), nil
	}
	if err != nil {
		return nil, err
	}

	return ledger.FromSnapshot(doc)
}

// saveLoop checkpoints the ledger on a fixed cadence, on top of the
// save-after-mutation policy in the bank service.
func saveLoop(ctx context.Context, svc *bank.Service, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if err := svc.Save(); err != nil {
				slog.Error("periodic snapshot failed", "error", err)
			}
		}
	}
}
