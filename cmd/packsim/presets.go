package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xtding233/packsim/internal/preset"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the preset catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := preset.NewLoader(cfg.Presets.File).Load()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, p := range cat.All() {
			fmt.Fprintf(out, "%-20s %s\n", p.Name, p.Summary)
		}
		return nil
	},
}
