package app

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tonimelisma/dealcloud-activity/internal/config"
	"github.com/tonimelisma/dealcloud-activity/internal/logger"
	"github.com/tonimelisma/dealcloud-activity/pkg/dealcloud"
)

type stubSDK struct {
	token       string
	tokenErr    error
	rows        []dealcloud.ActivityRow
	activityErr error

	tokenHit    bool
	gotClientID string
	gotSecret   string
	gotToken    string
	gotFilter   dealcloud.ActivityFilter
	activityHit bool
}

func (s *stubSDK) FetchToken(_ context.Context, clientID, clientSecret string) (string, error) {
	s.tokenHit = true
	s.gotClientID, s.gotSecret = clientID, clientSecret
	return s.token, s.tokenErr
}

func (s *stubSDK) GetUserActivity(_ context.Context, accessToken string, filter dealcloud.ActivityFilter, _ dealcloud.PageRequest) ([]dealcloud.ActivityRow, error) {
	s.activityHit = true
	s.gotToken, s.gotFilter = accessToken, filter
	return s.rows, s.activityErr
}

func testConfig() *config.Configuration {
	return &config.Configuration{
		Site:         "acme.dealcloud.com",
		ClientID:     "client",
		ClientSecret: "secret",
		LogFormat:    "text",
		HTTP:         config.HTTPConfig{Timeout: time.Second},
	}
}

func TestUserActivity(t *testing.T) {
	sdk := &stubSDK{token: "tok", rows: []dealcloud.ActivityRow{{"userId": float64(1)}}}
	a := &App{Config: testConfig(), SDK: sdk}
	filter := dealcloud.ActivityFilter{UserIDs: []int64{1}}

	var stages []string
	rows, err := a.UserActivity(context.Background(), filter, dealcloud.PageRequest{}, func(s string) {
		stages = append(stages, s)
	})
	require.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "client", sdk.gotClientID)
	assert.Equal(t, "secret", sdk.gotSecret)
	assert.Equal(t, "tok", sdk.gotToken)
	assert.Equal(t, filter, sdk.gotFilter)
	assert.Equal(t, []string{StageToken, StageActivity}, stages)
}

func TestUserActivityTokenFailure(t *testing.T) {
	sdk := &stubSDK{tokenErr: dealcloud.ErrAuth}
	a := &App{Config: testConfig(), SDK: sdk}

	_, err := a.UserActivity(context.Background(), dealcloud.ActivityFilter{}, dealcloud.PageRequest{}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, dealcloud.ErrAuth)
	assert.False(t, sdk.activityHit, "no activity request without a token")
}

func TestUserActivityFailureNotLoggedAboveDebug(t *testing.T) {
	var logs bytes.Buffer
	log, err := logger.New(&logs, slog.LevelInfo, logger.FormatJSON)
	require.NoError(t, err)

	for _, sdk := range []*stubSDK{
		{tokenErr: dealcloud.ErrAuth},
		{token: "tok", activityErr: errors.New("boom")},
	} {
		a := &App{Config: testConfig(), SDK: sdk, Logger: log}
		_, err := a.UserActivity(context.Background(), dealcloud.ActivityFilter{}, dealcloud.PageRequest{}, nil)
		require.Error(t, err)
	}
	assert.Empty(t, logs.String())
}

func TestUserActivityRequestFailure(t *testing.T) {
	boom := errors.New("boom")
	a := &App{Config: testConfig(), SDK: &stubSDK{token: "tok", activityErr: boom}}

	_, err := a.UserActivity(context.Background(), dealcloud.ActivityFilter{}, dealcloud.PageRequest{}, nil)
	assert.ErrorIs(t, err, boom)
}

func TestUserActivityInvalidFilter(t *testing.T) {
	sdk := &stubSDK{token: "tok"}
	a := &App{Config: testConfig(), SDK: sdk}
	filter := dealcloud.ActivityFilter{Activity: dealcloud.Int(11)}

	_, err := a.UserActivity(context.Background(), filter, dealcloud.PageRequest{}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, dealcloud.ErrValidation)
	assert.False(t, sdk.tokenHit, "no token is requested for an invalid filter")
	assert.False(t, sdk.activityHit)
}

func TestAccessTokenNilConfig(t *testing.T) {
	a := &App{SDK: &stubSDK{}}
	_, err := a.AccessToken(context.Background())
	assert.Error(t, err)
}

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv(config.ConfigPathEnv, "")
	t.Setenv("DEALCLOUD_SITE", "acme.dealcloud.com")
	t.Setenv("DEALCLOUD_CLIENT_ID", "client")
	t.Setenv("DEALCLOUD_CLIENT_SECRET", "secret")
	t.Setenv("DEALCLOUD_HTTP_TIMEOUT", "5s")
	t.Setenv("DEALCLOUD_DEBUG", "false")
	t.Setenv("DEALCLOUD_LOG_FORMAT", "json")
}

func newDebugCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().Bool("debug", false, "")
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func TestNewApp(t *testing.T) {
	setRequiredEnv(t)

	a, err := NewApp(newDebugCommand(t, "--debug"))
	require.NoError(t, err)

	assert.True(t, a.Config.Debug, "--debug overrides the environment")
	assert.Equal(t, 5*time.Second, a.Client.Timeout)
	assert.NotEmpty(t, a.RunID)
	assert.IsType(t, &dealcloud.Client{}, a.SDK)
}

func TestNewAppMissingCredentials(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DEALCLOUD_CLIENT_SECRET", "")

	_, err := NewApp(newDebugCommand(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrConfig)
}
