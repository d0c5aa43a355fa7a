package main

import (
	"fmt"
	"log/slog"

	"github.com/sarchlab/mvprune/api"
	"github.com/sarchlab/mvprune/config"
	"github.com/sarchlab/mvprune/report"
	"github.com/spf13/cobra"
)

func newAnalyzeCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze [inputs]",
		Short: "reports PRUNE or NOPRUNE for every clone family",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, cfg, args)
		},
	}
}

func runAnalyze(cmd *cobra.Command, cfg *config.Config, args []string) error {
	units, err := loadUnits(cfg, args)
	if err != nil {
		return err
	}

	b, err := cfg.TrackerBuilder()
	if err != nil {
		return err
	}

	tracker := b.Build("Tracker")
	out := cmd.OutOrStdout()

	if cfg.Dump {
		tracker.AcceptHook(report.NewDumpHook(out))
	}

	summary := &report.Summary{}
	if cfg.Summary {
		tracker.AcceptHook(summary)
	}

	driver := api.DriverBuilder{}.
		WithTracker(tracker).
		Build("Driver")

	dropped, err := api.AnalyzeUnits(driver, units...)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	for _, base := range dropped {
		slog.Info("Clone family has a single variant", "base", base)
	}

	if cfg.Summary {
		summary.WriteTable(out)
	}

	return nil
}
