// Package cmd (activity.go) defines the 'activity' command, which fetches the
// user activity report and delivers the rows to standard output, a file or
// syslog.
package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/tonimelisma/dealcloud-activity/internal/app"
	"github.com/tonimelisma/dealcloud-activity/internal/output"
	"github.com/tonimelisma/dealcloud-activity/internal/ui"
	"github.com/tonimelisma/dealcloud-activity/pkg/dealcloud"
)

// formatTable prints rows as a console table instead of encoding them.
const formatTable = "table"

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Fetch the user activity report",
	Long: `Requests a fresh access token and fetches one page of the user activity report.

Only the filters you pass are sent; the service applies its own defaults for the
rest. Rows go to standard output unless --output-file or --syslog is given.`,
	Example: `  dealcloud-activity activity --since-days 1 --activity 1
  dealcloud-activity activity --user-id 101 --user-id 202 --format table
  dealcloud-activity activity --activity 8 --export-data-type 2 --output-file /var/log/dealcloud/activity.log`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.NewApp(cmd)
		if err != nil {
			return fmt.Errorf("initializing app for 'activity': %w", err)
		}
		return activityLogic(a, cmd, time.Now())
	},
}

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().String("format", output.FormatJSONLines, "Standard output format: jsonl, json, yaml or table (not with --output-file or --syslog)")
	cmd.Flags().String("output-file", "", "Append rows as JSON lines to this file")
	cmd.Flags().Bool("syslog", false, "Forward each row to the local syslog daemon")
	cmd.Flags().String("syslog-tag", output.DefaultSyslogTag, "Tag for syslog messages")
	cmd.Flags().Bool("progress", false, "Show a spinner on standard error while fetching")
}

func activityLogic(a *app.App, cmd *cobra.Command, now time.Time) error {
	filter, page, err := ui.ParseActivityFlags(cmd, now)
	if err != nil {
		return err
	}

	sink, err := buildSink(cmd)
	if err != nil {
		return err
	}
	defer sink.Close()

	var onStage app.StageFunc
	if progress, _ := cmd.Flags().GetBool("progress"); progress {
		bar := ui.NewSpinner(app.StageToken)
		defer bar.Finish()
		onStage = func(stage string) {
			bar.Describe(stage)
			_ = bar.Add(1)
		}
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	rows, err := a.UserActivity(ctx, filter, page, onStage)
	if err != nil {
		return fmt.Errorf("activity report: %w", err)
	}

	if err := sink.Write(rows); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// buildSink opens every destination selected by the flags before any request
// is made, so a bad path or missing syslog daemon fails fast.
func buildSink(cmd *cobra.Command) (output.Sink, error) {
	flags := cmd.Flags()
	format, _ := flags.GetString("format")
	path, _ := flags.GetString("output-file")
	useSyslog, _ := flags.GetBool("syslog")
	tag, _ := flags.GetString("syslog-tag")

	switch format {
	case formatTable, output.FormatJSONLines, output.FormatJSON, output.FormatYAML:
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
	if flags.Changed("format") && (path != "" || useSyslog) {
		return nil, fmt.Errorf("--format applies to standard output only; --output-file and --syslog always write JSON lines")
	}

	var sinks output.MultiSink
	if path != "" {
		fs, err := output.NewFileSink(path)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, fs)
	}
	if useSyslog {
		ss, err := output.DialSyslog(output.SyslogOptions{Tag: tag})
		if err != nil {
			sinks.Close()
			return nil, err
		}
		sinks = append(sinks, ss)
	}
	if len(sinks) > 0 {
		return sinks, nil
	}

	if format == formatTable {
		return tableSink{w: cmd.OutOrStdout()}, nil
	}
	return output.NewWriterSink(cmd.OutOrStdout(), format)
}

type tableSink struct {
	w io.Writer
}

func (s tableSink) Write(rows []dealcloud.ActivityRow) error {
	return ui.DisplayActivityRows(s.w, rows)
}

func (s tableSink) Close() error { return nil }

func init() {
	ui.AddActivityFlags(activityCmd)
	addOutputFlags(activityCmd)
	rootCmd.AddCommand(activityCmd)
}
