package main

import (
	"github.com/spf13/cobra"

	"adboard/internal/core/domain"
)

// filterOpts binds the dashboard filter dimensions to command flags.
type filterOpts struct {
	format       string
	company      string
	platform     string
	region       string
	search       string
	lastActive   string
	runningSince string
	order        string
}

func (o *filterOpts) bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&o.format, "format", domain.All, "Image, Video or all")
	fs.StringVar(&o.company, "company", domain.All, "exact advertiser name")
	fs.StringVar(&o.platform, "platform", domain.All, "source platform")
	fs.StringVar(&o.region, "region", domain.All, "region code")
	fs.StringVar(&o.search, "search", "", "case-insensitive advertiser substring")
	fs.StringVar(&o.lastActive, "last-active", domain.All, "today, week, month, quarter or all")
	fs.StringVar(&o.runningSince, "running-since", domain.All, "lt7, 7to29, gte30, gte90, gte365 or all")
	fs.StringVar(&o.order, "order", string(domain.SortDesc), "asc or desc by last seen date")
}

// filter returns the validated filter.
func (o *filterOpts) filter() (domain.Filter, error) {
	f := domain.Filter{
		Format:       o.format,
		Company:      o.company,
		Platform:     o.platform,
		Region:       o.region,
		Search:       o.search,
		LastActive:   domain.LastActive(o.lastActive),
		RunningSince: domain.RunningSince(o.runningSince),
		Order:        domain.SortOrder(o.order),
	}
	if err := f.Validate(); err != nil {
		return domain.Filter{}, err
	}
	return f, nil
}
