package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/pokutuna/dictionary-vcf/internal/dictionary"
	"github.com/pokutuna/dictionary-vcf/internal/vcf"
)

// stdoutOutput makes export write the document to stdout instead of a file.
const stdoutOutput = "-"

func newExportCommand() *cobra.Command {
	var (
		profilePath string
		output      string
		locale      LocaleFlag
	)
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write the selected words as a VCF file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			selection := loadLibrary(cmd.Context(), cfg).Selection()
			if profilePath != "" {
				profile, err := dictionary.LoadProfile(profilePath)
				if err != nil {
					return fmt.Errorf("dictionary.LoadProfile() > %w", err)
				}
				selection = profile.Apply(selection)
			}

			tag := locale.TagOr(cfg.Export.LocaleTag())
			content := vcf.NewExporter(tag).Export(selection)
			if content == "" {
				slog.Warn("no words are selected, the exported file is empty")
			}

			if output == "" {
				output = cfg.Export.OutputDirectory
			}
			if output == stdoutOutput {
				_, err := io.WriteString(cmd.OutOrStdout(), content)
				return err
			}

			if err := os.MkdirAll(output, 0755); err != nil {
				return fmt.Errorf("os.MkdirAll(%s) > %w", output, err)
			}
			path := filepath.Join(output, vcf.Filename(time.Now()))
			if err := os.WriteFile(path, []byte(content), 0644); err != nil {
				return fmt.Errorf("os.WriteFile(%s) > %w", path, err)
			}
			recordCount := len(vcf.Deduplicate(vcf.SelectedEntries(selection.Dictionaries()), tag))
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %d records to %s\n", recordCount, path)
			return err
		},
	}

	flags := exportCmd.Flags()
	flags.StringVar(&profilePath, "profile", "", "selection profile (YAML) applied to the initial selection")
	flags.StringVarP(&output, "output", "o", "", `output directory, or "-" for stdout. Defaults to export.output_directory`)
	flags.Var(&locale, "locale", "locale used to sort words. Defaults to export.locale")
	return exportCmd
}
