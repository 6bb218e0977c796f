// Package main provides the folio command line tool: it reads a tabular
// dataset (CSV or XLSX), applies a YAML report configuration, and writes a
// rendered PDF or HTML report.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsawler/folio"
	"github.com/tsawler/folio/dataset"
	"github.com/tsawler/folio/format"
	"github.com/tsawler/folio/model"
	"github.com/tsawler/folio/render"
)

var (
	configPath string
	outputPath string
	outputKind string
	titleFlag  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "folio [dataset file]",
		Short: "Render tabular data into a formatted report",
		Long: `folio reads a dataset from a CSV or XLSX file, applies a report
configuration, and writes a paginated PDF or HTML report.`,
		Args: cobra.ExactArgs(1),
		RunE: run,

		SilenceUsage: true,
	}

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML report configuration file")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "report.pdf", "Output file path")
	rootCmd.Flags().StringVar(&outputKind, "format", "pdf", "Output format: pdf or html")
	rootCmd.Flags().StringVar(&titleFlag, "title", "", "Report title (overrides config)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	ds, err := loadDataset(inputPath)
	if err != nil {
		return err
	}

	cfg, err := loadReportConfig(configPath)
	if err != nil {
		return err
	}
	if titleFlag != "" {
		cfg.Content.ReportTitle = titleFlag
	}
	if len(cfg.Content.SelectedColumns) == 0 {
		cfg.Content.SelectedColumns = ds.Columns
	}

	var opts []folio.Option
	switch outputKind {
	case "pdf":
		// Default renderer.
	case "html":
		opts = append(opts, folio.WithRenderer(render.NewHTML()))
	default:
		return fmt.Errorf("unknown output format %q (want pdf or html)", outputKind)
	}

	result, err := folio.New(opts...).Render(ds, cfg)
	if err != nil {
		return err
	}
	for _, w := range result.Warnings {
		fmt.Fprintln(cmd.ErrOrStderr(), "warning:", w)
	}

	if err := os.WriteFile(outputPath, result.Bytes, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d pages, %d bytes)\n", outputPath, result.Pages, len(result.Bytes))
	return nil
}

func loadDataset(path string) (*model.Dataset, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("dataset file: %w", err)
	}

	switch format.Detect(path) {
	case format.CSV:
		return dataset.OpenCSV(path)
	case format.XLSX:
		return dataset.FromXLSX(path)
	}

	// Extension didn't settle it; sniff the content.
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	detected, err := format.DetectFromReader(f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("detecting format of %s: %w", path, err)
	}
	switch detected {
	case format.CSV:
		return dataset.OpenCSV(path)
	case format.XLSX:
		return dataset.FromXLSX(path)
	}
	return nil, fmt.Errorf("unsupported dataset format: %s", path)
}
