package cmd

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"github.com/tonimelisma/dealcloud-activity/internal/app"
	"github.com/tonimelisma/dealcloud-activity/internal/config"
	"github.com/tonimelisma/dealcloud-activity/internal/ui"
	"github.com/tonimelisma/dealcloud-activity/pkg/dealcloud"
)

// MockSDK is a mock implementation of the SDK interface for testing.
type MockSDK struct {
	FetchTokenFunc      func(clientID, clientSecret string) (string, error)
	GetUserActivityFunc func(accessToken string, filter dealcloud.ActivityFilter, page dealcloud.PageRequest) ([]dealcloud.ActivityRow, error)
}

func (m *MockSDK) FetchToken(_ context.Context, clientID, clientSecret string) (string, error) {
	if m.FetchTokenFunc != nil {
		return m.FetchTokenFunc(clientID, clientSecret)
	}
	return "", errors.New("not implemented")
}

func (m *MockSDK) GetUserActivity(_ context.Context, accessToken string, filter dealcloud.ActivityFilter, page dealcloud.PageRequest) ([]dealcloud.ActivityRow, error) {
	if m.GetUserActivityFunc != nil {
		return m.GetUserActivityFunc(accessToken, filter, page)
	}
	return nil, nil
}

// newTestApp creates a new app instance with a mock SDK for testing.
func newTestApp(sdk app.SDK) *app.App {
	return &app.App{
		Config: &config.Configuration{
			Site:         "acme.dealcloud.com",
			ClientID:     "client-id",
			ClientSecret: "client-secret",
			LogFormat:    "text",
			HTTP:         config.HTTPConfig{Timeout: time.Second},
		},
		SDK: sdk,
	}
}

// newActivityTestCommand returns a fresh 'activity' command with parsed
// flags and its standard output captured.
func newActivityTestCommand(t *testing.T, args ...string) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	cmd := &cobra.Command{Use: "activity"}
	ui.AddActivityFlags(cmd)
	addOutputFlags(cmd)
	require.NoError(t, cmd.ParseFlags(args))

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	return cmd, &out
}
