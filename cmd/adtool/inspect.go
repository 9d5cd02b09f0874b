package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"adboard/internal/adapter/jsonfile"
	"adboard/internal/core/domain"
	"adboard/internal/core/pipeline"
)

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <data.json>",
		Short: "Check a data file against the record schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			issues, err := jsonfile.ValidateRecords(data)
			if err != nil {
				return err
			}
			if issues == nil {
				issues = []jsonfile.RecordIssue{}
			}
			if err = printJSON(cmd.OutOrStdout(), map[string]any{"issues": issues}); err != nil {
				return err
			}
			if len(issues) > 0 {
				return fmt.Errorf("%s: %d records do not match the schema", args[0], len(issues))
			}
			return nil
		},
	}
}

func (a *app) viewCmd() *cobra.Command {
	var (
		opts  filterOpts
		page  int
		limit int
	)
	cmd := &cobra.Command{
		Use:   "view <data.json>",
		Short: "List a data file the way the dashboard shows it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := opts.filter()
			if err != nil {
				return err
			}
			records, malformed, err := jsonfile.LoadFile(args[0])
			if err != nil {
				return err
			}
			if malformed > 0 {
				a.logger.Warn("skipped malformed records", slog.Int("count", malformed))
			}

			snap := pipeline.NewSnapshot(records)
			items, pg := snap.Query(f, page, limit, time.Now())
			return renderTable(cmd.OutOrStdout(), items, pg)
		},
	}
	opts.bind(cmd)
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&limit, "limit", 20, "records per page")
	return cmd
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func renderTable(w io.Writer, items []domain.AdRecord, pg domain.Pagination) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("CREATIVE", "ADVERTISER", "FORMAT", "LAST SEEN", "RUNNING", "PLATFORM")
	for i := range items {
		r := &items[i]
		t.Row(
			r.CreativeID(),
			r.AdvertiserName,
			string(r.Format),
			domain.FormatDateDisplay(r.LastSeenDate),
			domain.FormatActiveDuration(r.FirstSeenDate, r.LastSeenDate),
			string(r.SourcePlatform()),
		)
	}
	if _, err := fmt.Fprintln(w, t.Render()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "page %d of %d, %d records\n", pg.CurrentPage, pg.TotalPages, pg.TotalItems)
	return err
}
