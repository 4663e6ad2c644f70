// Package cmd (auth.go) defines the 'auth' commands, which check that the
// configured client credentials are accepted by the token endpoint.
package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tonimelisma/dealcloud-activity/internal/app"
	"github.com/tonimelisma/dealcloud-activity/internal/ui"
	"github.com/tonimelisma/dealcloud-activity/pkg/dealcloud"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Check DealCloud authentication",
}

var authTokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Request an access token with the configured credentials",
	Long: `Requests a new access token from the site's token endpoint. By default only
success is reported; pass --show to print the token itself.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.NewApp(cmd)
		if err != nil {
			return fmt.Errorf("initializing app for 'auth token': %w", err)
		}
		return authTokenLogic(a, cmd)
	},
}

func authTokenLogic(a *app.App, cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	token, err := a.AccessToken(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if show, _ := cmd.Flags().GetBool("show"); show {
		fmt.Fprintln(out, token)
		return nil
	}
	ui.Success(out, fmt.Sprintf("Access token issued for %s (valid for about %s).", a.Config.Site, dealcloud.TokenLifetime))
	return nil
}

func init() {
	authTokenCmd.Flags().Bool("show", false, "Print the access token")
	authCmd.AddCommand(authTokenCmd)
	rootCmd.AddCommand(authCmd)
}
