package main

import (
	"log/slog"

	"github.com/sarchlab/mvprune/config"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cfg := config.Default()

	cmd := &cobra.Command{
		Use:   "mvprune",
		Short: "mvprune finds multiversioned functions whose clones can be dropped.",
		Long: `mvprune groups the target-specific clones of each function, compares
their statements with the baseline clone, and reports PRUNE for clones that
are substantially the same and NOPRUNE for the others.

Inputs are statement dumps (.yaml, .yml), Go files (.go) or Go package
patterns.
`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}

			level, _ := cfg.SlogLevel()
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(),
				&slog.HandlerOptions{Level: level})))

			return nil
		},
	}

	cfg.BindFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		newAnalyzeCmd(&cfg),
		newListCmd(&cfg),
	)

	return cmd
}
