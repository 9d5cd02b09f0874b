package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"adboard/internal/maintenance"
)

func (a *app) mergeCmd() *cobra.Command {
	var (
		manifest string
		target   string
		meta     []string
	)
	cmd := &cobra.Command{
		Use:   "merge [records.json...]",
		Short: "Merge new ad records into a data file, dropping duplicates",
		Long: `Merge appends records whose creative id is not yet present in the
target file. Inputs come either from a YAML manifest or from --target plus
record files and Meta exports given on the command line.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var m *maintenance.Manifest
			switch {
			case manifest != "":
				if target != "" || len(args) > 0 || len(meta) > 0 {
					return errors.New("--manifest cannot be combined with --target or input files")
				}
				loaded, err := maintenance.LoadManifest(manifest)
				if err != nil {
					return err
				}
				m = loaded
			case target != "":
				m = &maintenance.Manifest{Target: target}
				for _, p := range args {
					m.Sources = append(m.Sources, maintenance.ManifestSource{Path: p, Kind: maintenance.KindRecords})
				}
				for _, p := range meta {
					m.Sources = append(m.Sources, maintenance.ManifestSource{Path: p, Kind: maintenance.KindMeta})
				}
			default:
				return errors.New("either --manifest or --target is required")
			}

			report, err := m.Run(cmd.Context())
			if err != nil {
				return err
			}
			a.logger.Info("merge finished",
				slog.String("target", m.Target),
				slog.Int("added", report.Added),
				slog.Int("duplicates", report.Duplicates),
				slog.Int("skipped", report.Skipped),
			)
			return printJSON(cmd.OutOrStdout(), report)
		},
	}
	cmd.Flags().StringVar(&manifest, "manifest", "", "YAML manifest listing target and sources")
	cmd.Flags().StringVar(&target, "target", "", "data file to merge into")
	cmd.Flags().StringSliceVar(&meta, "meta", nil, "Meta Ad Library export to merge (repeatable)")
	return cmd
}

func (a *app) importMetaCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "import-meta <export.json>",
		Short: "Convert a Meta Ad Library export into ad records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := maintenance.ReadMetaExport(args[0])
			if err != nil {
				return err
			}
			if err = maintenance.WriteRecords(out, records); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			a.logger.Info("meta export imported", slog.String("out", out), slog.Int("records", len(records)))
			return printJSON(cmd.OutOrStdout(), map[string]any{"out": out, "records": len(records)})
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "meta-records.json", "output data file")
	return cmd
}

func (a *app) backfillCmd() *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "backfill <data.json>",
		Short: "Tag records that predate source tagging with their platform",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			entries, err := maintenance.ReadEntries(path)
			if err != nil {
				return err
			}
			updated, report, err := maintenance.Backfill(entries)
			if err != nil {
				return err
			}
			if report.Updated > 0 && !dryRun {
				if err = maintenance.WriteEntries(path, updated); err != nil {
					return fmt.Errorf("write %s: %w", path, err)
				}
			}
			a.logger.Info("backfill finished",
				slog.String("file", path),
				slog.Int("updated", report.Updated),
				slog.Bool("dry_run", dryRun),
			)
			return printJSON(cmd.OutOrStdout(), report)
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report without rewriting the file")
	return cmd
}
