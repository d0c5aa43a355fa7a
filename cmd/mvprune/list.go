package main

import (
	"github.com/sarchlab/mvprune/config"
	"github.com/sarchlab/mvprune/report"
	"github.com/spf13/cobra"
)

func newListCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "list [inputs]",
		Short: "prints the statements of every function with a body",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			units, err := loadUnits(cfg, args)
			if err != nil {
				return err
			}

			for _, u := range units {
				for _, fn := range u.Functions() {
					if fn.External() {
						continue
					}

					report.WriteListing(cmd.OutOrStdout(), fn.Name(), fn.Blocks())
				}
			}

			return nil
		},
	}
}
