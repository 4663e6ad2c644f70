package cmd

import (
	"bytes"
	"os"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tonimelisma/dealcloud-activity/internal/config"
)

func setConfigEnv(t *testing.T, secret string) {
	t.Helper()
	t.Setenv(config.ConfigPathEnv, "")
	t.Setenv("DEALCLOUD_SITE", "acme.dealcloud.com")
	t.Setenv("DEALCLOUD_CLIENT_ID", "client-id")
	t.Setenv("DEALCLOUD_CLIENT_SECRET", secret)
	t.Setenv("DEALCLOUD_HTTP_TIMEOUT", "45s")
	t.Setenv("DEALCLOUD_LOG_FORMAT", "json")
	t.Setenv("DEALCLOUD_DEBUG", "false")
}

func TestConfigShowLogic(t *testing.T) {
	setConfigEnv(t, "very-secret")

	cmd := &cobra.Command{Use: "show"}
	var out bytes.Buffer
	cmd.SetOut(&out)

	require.NoError(t, configShowLogic(cmd))
	assert.Contains(t, out.String(), "site: acme.dealcloud.com")
	assert.Contains(t, out.String(), "********")
	assert.Contains(t, out.String(), "timeout: 45s")
	assert.NotContains(t, out.String(), "very-secret")
}

func TestConfigShowLogicMissingCredentials(t *testing.T) {
	setConfigEnv(t, "")
	require.NoError(t, os.Unsetenv("DEALCLOUD_CLIENT_SECRET"))

	cmd := &cobra.Command{Use: "show"}
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	err := configShowLogic(cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrConfig)
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "DEALCLOUD_CLIENT_SECRET")
}
