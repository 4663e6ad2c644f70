// Package ui (display.go) prints activity rows and status messages to the
// console and provides the spinner shown while a report is fetched.
package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/tonimelisma/dealcloud-activity/pkg/dealcloud"
)

// Success prints a simple success message.
func Success(w io.Writer, msg string) {
	fmt.Fprintln(w, msg)
}

// PrintError reports a failed command, normally on standard error.
func PrintError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}

// DisplayActivityRows prints rows as a table. Columns are the sorted union
// of the keys found in any row; missing values are left blank.
func DisplayActivityRows(w io.Writer, rows []dealcloud.ActivityRow) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "No activity found.")
		return err
	}

	columns := rowColumns(rows)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(columns, "\t"))

	dashes := make([]string, len(columns))
	for i, c := range columns {
		dashes[i] = strings.Repeat("-", len(c))
	}
	fmt.Fprintln(tw, strings.Join(dashes, "\t"))

	cells := make([]string, len(columns))
	for _, row := range rows {
		for i, c := range columns {
			cells[i] = formatCell(row[c])
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n%d row(s)\n", len(rows))
	return err
}

func rowColumns(rows []dealcloud.ActivityRow) []string {
	seen := make(map[string]struct{})
	var columns []string
	for _, row := range rows {
		for k := range row {
			if _, ok := seen[k]; !ok {
				seen[k] = struct{}{}
				columns = append(columns, k)
			}
		}
	}
	sort.Strings(columns)
	return columns
}

// formatCell renders a decoded JSON value on a single line.
func formatCell(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case map[string]any, []any:
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(b)
	default:
		return fmt.Sprint(val)
	}
}

// NewSpinner returns an indeterminate progress indicator on standard error.
// Call Describe to report the current stage and Finish when done.
func NewSpinner(description string) *progressbar.ProgressBar {
	return newSpinner(os.Stderr, description)
}

func newSpinner(w io.Writer, description string) *progressbar.ProgressBar {
	if description == "" {
		description = "Working..."
	}
	return progressbar.NewOptions(
		-1,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(w), // keep stdout clean for report data
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)
}
