package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Load every category of a data pack and report problems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := a.loadPack(cmd.Context())
			if p == nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, f := range p.load.Failures {
				fmt.Fprintf(w, "FAIL %s (%s)\n", f.ID, f.File)
				for _, leaf := range f.Problem.Leaves() {
					fmt.Fprintf(w, "  %s\n", leaf)
				}
			}
			for _, warning := range p.load.Warnings {
				fmt.Fprintf(w, "WARN %s\n", warning)
			}
			for _, c := range p.load.Categories {
				fmt.Fprintf(w, "OK   %s (%d nodes, %d rewards, %d sources)\n",
					c.ID, len(c.Nodes()), c.RewardCount(), len(c.Sources()))
			}
			return err
		},
	}
}
