// Package app wires configuration, logging, the shared HTTP client and the
// DealCloud SDK together for the command layer.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/tonimelisma/dealcloud-activity/internal/config"
	"github.com/tonimelisma/dealcloud-activity/internal/logger"
	"github.com/tonimelisma/dealcloud-activity/pkg/dealcloud"
)

// Report stages passed to a StageFunc.
const (
	StageToken    = "Requesting access token..."
	StageActivity = "Fetching user activity..."
)

// StageFunc is told which stage a report run has reached.
type StageFunc func(stage string)

type App struct {
	Config *config.Configuration
	Client *http.Client
	SDK    SDK
	Logger logger.Logger
	RunID  string
}

// NewApp loads the configuration and builds the process-wide HTTP client and
// SDK. The --debug flag, when set, overrides DEALCLOUD_DEBUG.
func NewApp(cmd *cobra.Command) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		cfg.Debug = true
	}

	runID := uuid.NewString()
	log := logger.NewDefaultLogger(cfg.Debug, cfg.LogFormat).With("run_id", runID)
	client := &http.Client{Timeout: cfg.HTTP.Timeout}

	return &App{
		Config: cfg,
		Client: client,
		SDK:    dealcloud.NewClient(cfg.Site, client, log),
		Logger: log,
		RunID:  runID,
	}, nil
}

// AccessToken requests a new access token with the configured credentials.
func (a *App) AccessToken(ctx context.Context) (string, error) {
	if a.Config == nil {
		return "", errors.New("configuration is nil")
	}
	return a.SDK.FetchToken(ctx, a.Config.ClientID, a.Config.ClientSecret)
}

// UserActivity runs one report: a fresh token followed by a single activity
// request. The filter is checked before any network call. onStage may be nil.
// Failures are returned, not logged above debug; the command layer reports them.
func (a *App) UserActivity(ctx context.Context, filter dealcloud.ActivityFilter, page dealcloud.PageRequest, onStage StageFunc) ([]dealcloud.ActivityRow, error) {
	if onStage == nil {
		onStage = func(string) {}
	}
	log := a.logger()
	start := time.Now()

	if _, err := dealcloud.BuildActivityRequest(filter, page); err != nil {
		return nil, err
	}

	onStage(StageToken)
	token, err := a.AccessToken(ctx)
	if err != nil {
		log.Debug("token request failed", "error", err)
		return nil, err
	}

	onStage(StageActivity)
	rows, err := a.SDK.GetUserActivity(ctx, token, filter, page)
	if err != nil {
		log.Debug("activity request failed", "error", err)
		return nil, err
	}

	log.Info("report complete", "rows", len(rows), "duration", time.Since(start))
	return rows, nil
}

func (a *App) logger() logger.Logger {
	if a.Logger == nil {
		return logger.NoopLogger{}
	}
	return a.Logger
}
