package client

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/okhapkin/go-match-sync/internal/adapter"
	"github.com/okhapkin/go-match-sync/internal/config"
	"github.com/okhapkin/go-match-sync/internal/logger"
	"github.com/okhapkin/go-match-sync/internal/service"
	"github.com/okhapkin/go-match-sync/models"
)

// App is the long-running client process. It authenticates against the remote
// service, performs an initial sync pass, and keeps the local store converged
// with the remote history via the background sync job.
type App struct {
	services *service.ClientServices
	gateway  adapter.RemoteGateway
	workers  config.ClientWorkers
	log      *logger.Logger
}

// NewApp assembles the client runtime from already constructed collaborators.
func NewApp(services *service.ClientServices, gateway adapter.RemoteGateway, workers config.ClientWorkers, log *logger.Logger) (*App, error) {
	if services == nil {
		return nil, fmt.Errorf("client services are nil")
	}
	if gateway == nil {
		return nil, fmt.Errorf("remote gateway is nil")
	}

	return &App{services: services, gateway: gateway, workers: workers, log: log}, nil
}

// Run authenticates, performs the initial sync pass, starts the background
// sync job, and blocks until the process receives SIGINT or SIGTERM.
//
// The initial pull, profile refresh, and push are best effort: a failure
// leaves the client in offline mode with the local store as source of truth,
// and the background job retries on its next tick.
func (a *App) Run() error {
	ctx := a.log.WithContext(context.Background())

	creds := models.Credentials{
		Login:    os.Getenv("MATCH_LOGIN"),
		Password: os.Getenv("MATCH_PASSWORD"),
	}
	if creds.Login == "" || creds.Password == "" {
		return fmt.Errorf("MATCH_LOGIN and MATCH_PASSWORD must be set")
	}

	token, err := a.gateway.Login(ctx, creds)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	a.gateway.SetToken(token.SignedString)
	a.log.Info().Int64("user_id", token.UserID).Msg("authenticated")

	if err = a.services.SyncService.Pull(ctx, token.UserID); err != nil {
		a.log.Warn().Err(err).Msg("initial pull failed, continuing with local data")
	}
	if err = a.services.SyncService.RefreshProfiles(ctx); err != nil {
		a.log.Warn().Err(err).Msg("initial profile refresh failed")
	}
	if report, pushErr := a.services.SyncService.PushAll(ctx); pushErr != nil {
		a.log.Warn().Err(pushErr).Msg("initial push failed")
	} else if report.Pushed > 0 || report.Failed > 0 {
		a.log.Info().Int("pushed", report.Pushed).Int("failed", report.Failed).Msg("initial push finished")
	}

	a.services.SyncJob.Start(ctx, token.UserID, a.workers.SyncInterval)
	defer a.services.SyncJob.Stop()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	a.log.Info().Str("signal", sig.String()).Msg("shutting down")

	return nil
}
