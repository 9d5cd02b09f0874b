package main

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"adboard/internal/adapter/remote"
	"adboard/internal/core/feed"
	"adboard/internal/maintenance"
)

type fetchSummary struct {
	Pages     int      `json:"pages"`
	Records   int      `json:"records"`
	HasMore   bool     `json:"hasMore"`
	Companies []string `json:"companies"`
	Out       string   `json:"out,omitempty"`
}

func (a *app) fetchCmd() *cobra.Command {
	var (
		opts     filterOpts
		baseURL  string
		timeout  time.Duration
		pageSize int
		pages    int
		out      string
	)
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Page through a dashboard backend like the infinite-scroll view",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if baseURL == "" {
				return errors.New("--base-url is required")
			}
			f, err := opts.filter()
			if err != nil {
				return err
			}

			client := remote.NewClient(baseURL, timeout, a.logger)
			fd := feed.New(client, feed.WithPageSize(pageSize))
			defer fd.Close()
			fd.SetFilter(f)

			loaded := 0
			for loaded < pages && fd.View().HasMore {
				if err = fd.LoadMore(cmd.Context()); err != nil {
					return fmt.Errorf("page %d: %w", loaded+1, err)
				}
				loaded++
				a.logger.Debug("page loaded", slog.Int("page", loaded), slog.Int("records", len(fd.View().Items)))
			}

			v := fd.View()
			summary := fetchSummary{
				Pages:     loaded,
				Records:   len(v.Items),
				HasMore:   v.HasMore,
				Companies: v.Companies,
			}
			if out != "" {
				if err = maintenance.WriteRecords(out, v.Items); err != nil {
					return fmt.Errorf("write %s: %w", out, err)
				}
				summary.Out = out
			}
			return printJSON(cmd.OutOrStdout(), summary)
		},
	}
	opts.bind(cmd)
	cmd.Flags().StringVar(&baseURL, "base-url", "", "backend base URL, e.g. http://localhost:8080")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "per-request timeout")
	cmd.Flags().IntVar(&pageSize, "limit", feed.DefaultPageSize, "records per page")
	cmd.Flags().IntVar(&pages, "pages", 1, "maximum pages to load")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the loaded records to a data file")
	return cmd
}
