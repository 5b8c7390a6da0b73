package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pokutuna/dictionary-vcf/internal/config"
	"github.com/pokutuna/dictionary-vcf/internal/maintenance"
)

var errNoDirectory = errors.New("no dictionary directory: pass --directory or set dictionaries.directory")

// maintenanceDirectory returns the directory of word lists to work on.
func maintenanceDirectory(flagValue string, cfg *config.Config) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if cfg.Dictionaries.Directory != "" {
		return cfg.Dictionaries.Directory, nil
	}
	return "", errNoDirectory
}

func newCheckDuplicatesCommand() *cobra.Command {
	var directory string
	checkCmd := &cobra.Command{
		Use:   "check-duplicates",
		Short: "Report words that appear more than once in the word lists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			dir, err := maintenanceDirectory(directory, cfg)
			if err != nil {
				return err
			}

			files, err := maintenance.ReadDirectory(dir)
			if err != nil {
				return fmt.Errorf("maintenance.ReadDirectory() > %w", err)
			}
			report := maintenance.NewReport(files, cfg.Export.LocaleTag())
			report.Write(cmd.OutOrStdout())
			if report.HasDuplicates() {
				return errors.New("duplicated words found")
			}
			return nil
		},
	}
	checkCmd.Flags().StringVarP(&directory, "directory", "d", "", "directory of word lists. Defaults to dictionaries.directory")
	return checkCmd
}

func newFormatCommand() *cobra.Command {
	var (
		directory string
		check     bool
	)
	formatCmd := &cobra.Command{
		Use:   "format",
		Short: "Sort word lists and drop invalid lines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			dir, err := maintenanceDirectory(directory, cfg)
			if err != nil {
				return err
			}

			changed, err := maintenance.FormatDirectory(dir, cfg.Export.LocaleTag(), check)
			if err != nil {
				return fmt.Errorf("maintenance.FormatDirectory() > %w", err)
			}
			for _, path := range changed {
				if check {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "needs formatting: %s\n", path)
				} else {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "formatted: %s\n", path)
				}
			}
			if check && len(changed) > 0 {
				return fmt.Errorf("%d files are not formatted", len(changed))
			}
			return nil
		},
	}
	flags := formatCmd.Flags()
	flags.StringVarP(&directory, "directory", "d", "", "directory of word lists. Defaults to dictionaries.directory")
	flags.BoolVar(&check, "check", false, "only report files that need formatting")
	return formatCmd
}
