package ui

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/tonimelisma/dealcloud-activity/pkg/dealcloud"
)

// AddActivityFlags adds the report filter and paging flags to a command.
func AddActivityFlags(cmd *cobra.Command) {
	cmd.Flags().Int64Slice("user-id", nil, "Restrict the report to these user ids (repeatable)")
	cmd.Flags().String("date-from", "", "Window start, ISO-8601 (e.g. 2024-01-01T00:00:00Z)")
	cmd.Flags().String("date-to", "", "Window end, ISO-8601; must be after --date-from")
	cmd.Flags().Int("since-days", 0, "Set --date-from to this many days before now")
	cmd.Flags().Int("activity", 0, fmt.Sprintf("Activity type code (%d-%d)", dealcloud.MinActivity, dealcloud.MaxActivity))
	cmd.Flags().Int("source", 0, fmt.Sprintf("Source code (%d-%d)", dealcloud.MinSource, dealcloud.MaxSource))
	cmd.Flags().Int("export-data-type", 0, fmt.Sprintf("Export data type (%d-%d), only with --activity %d",
		dealcloud.MinExportDataType, dealcloud.MaxExportDataType, dealcloud.ExportActivity))
	cmd.Flags().Int("page-number", dealcloud.DefaultPageNumber, "Page number, starting at 1")
	cmd.Flags().Int("page-size", dealcloud.DefaultPageSize, "Rows per page")
	cmd.MarkFlagsMutuallyExclusive("since-days", "date-from")
}

// ParseActivityFlags builds the filter and paging request from the flags the
// user actually set. Unset flags stay absent so the service applies its own
// defaults.
func ParseActivityFlags(cmd *cobra.Command, now time.Time) (dealcloud.ActivityFilter, dealcloud.PageRequest, error) {
	var filter dealcloud.ActivityFilter
	var page dealcloud.PageRequest
	flags := cmd.Flags()

	if flags.Changed("user-id") {
		ids, err := flags.GetInt64Slice("user-id")
		if err != nil {
			return filter, page, fmt.Errorf("error parsing user-id flag: %w", err)
		}
		filter.UserIDs = ids
	}

	for _, f := range []struct {
		name string
		dst  **string
	}{
		{"date-from", &filter.DateFrom},
		{"date-to", &filter.DateTo},
	} {
		if !flags.Changed(f.name) {
			continue
		}
		v, err := flags.GetString(f.name)
		if err != nil {
			return filter, page, fmt.Errorf("error parsing %s flag: %w", f.name, err)
		}
		*f.dst = dealcloud.String(v)
	}

	if flags.Changed("since-days") {
		days, err := flags.GetInt("since-days")
		if err != nil {
			return filter, page, fmt.Errorf("error parsing since-days flag: %w", err)
		}
		if days < 0 {
			return filter, page, fmt.Errorf("since-days must not be negative, got %d", days)
		}
		filter.DateFrom = dealcloud.String(dealcloud.DaysAgo(now, days))
	}

	for _, f := range []struct {
		name string
		dst  **int
	}{
		{"activity", &filter.Activity},
		{"source", &filter.Source},
		{"export-data-type", &filter.ExportDataType},
		{"page-number", &page.PageNumber},
		{"page-size", &page.PageSize},
	} {
		if !flags.Changed(f.name) {
			continue
		}
		v, err := flags.GetInt(f.name)
		if err != nil {
			return filter, page, fmt.Errorf("error parsing %s flag: %w", f.name, err)
		}
		*f.dst = dealcloud.Int(v)
	}

	return filter, page, nil
}
