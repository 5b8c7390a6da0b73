package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pokutuna/dictionary-vcf/internal/dictionary"
)

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories and dictionaries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			writeLibrary(cmd.OutOrStdout(), loadLibrary(cmd.Context(), cfg))
			return nil
		},
	}
}

func writeLibrary(w io.Writer, library *dictionary.Library) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)
	selection := library.Selection()

	for _, category := range library.Categories {
		_, _ = bold.Fprintf(w, "%s (%s)\n", category.Name, category.ID)
		for _, ref := range category.Dictionaries {
			d, ok := selection.Dictionary(ref.Name)
			if !ok {
				continue
			}
			_, _ = fmt.Fprintf(w, "  %-20s %-24s %4d words\n", d.Name, d.DisplayName, len(d.Entries))
			if d.Description != "" {
				_, _ = faint.Fprintf(w, "  %-20s %s\n", "", d.Description)
			}
		}
	}

	stats := selection.Stats()
	_, _ = fmt.Fprintf(w, "\n%d dictionaries, %d words\n", stats.SelectedDictionaries, stats.TotalEntries)
}
