// Package cmd (root.go) defines the root command for the dealcloud-activity
// CLI and its global flags.
package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/tonimelisma/dealcloud-activity/internal/ui"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "dealcloud-activity",
	Short: "Fetch user activity reports from DealCloud",
	Long: `dealcloud-activity authenticates against a DealCloud site with OAuth2 client
credentials and retrieves the user activity report, so that log shippers and
scheduled jobs can collect it.

The site and credentials are read from DEALCLOUD_SITE, DEALCLOUD_CLIENT_ID and
DEALCLOUD_CLIENT_SECRET, optionally seeded from a .env file. Run
'dealcloud-activity config show' to see every supported variable.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command. This is called by main.main(). An interrupt
// cancels any request in flight.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		ui.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}
