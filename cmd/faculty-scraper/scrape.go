// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/faculty-scraper/internal/export"
	"github.com/pdiddy/faculty-scraper/internal/logging"
	"github.com/pdiddy/faculty-scraper/internal/scrape"
	"github.com/pdiddy/faculty-scraper/pkg/types"
)

const (
	defaultUserAgent = "faculty-scraper/0.1"
	defaultOut       = "faculty.csv"
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape [directory-url]",
	Short: "Scrape a faculty directory and export the records",
	Long: `Scrape fetches the directory page, parses one stub per faculty block,
fetches every profile sub-page concurrently to collect subjects and research
topics, cleans the merged records, and writes them to the output file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScrape,
}

func init() {
	scrapeCmd.Flags().String("out", defaultOut, "output file path")
	scrapeCmd.Flags().String("format", "csv", "output format: csv, yaml, or json")
	scrapeCmd.Flags().Int("workers", 0, "max concurrent profile fetch tasks (default 10)")
	scrapeCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 15s)")
	scrapeCmd.Flags().String("base-url", "", "absolute base URL for profile links (default: derived from the directory URL)")
	scrapeCmd.Flags().String("log-file", "", "diagnostic log file (default scraper.log)")
	scrapeCmd.Flags().Bool("table", false, "print the records as a table")

	rootCmd.AddCommand(scrapeCmd)
}

func runScrape(cmd *cobra.Command, args []string) error {
	dirURL := viper.GetString("scrape.directory_url")
	if len(args) > 0 {
		dirURL = args[0]
	}
	if dirURL == "" {
		return fmt.Errorf("provide a directory URL (argument or scrape.directory_url in config)")
	}

	timeout, _ := cmd.Flags().GetDuration("timeout")
	workers, _ := cmd.Flags().GetInt("workers")
	baseURL, _ := cmd.Flags().GetString("base-url")
	out, _ := cmd.Flags().GetString("out")
	format, _ := cmd.Flags().GetString("format")
	logFile, _ := cmd.Flags().GetString("log-file")
	showTable, _ := cmd.Flags().GetBool("table")

	if baseURL == "" {
		baseURL = viper.GetString("scrape.base_url")
	}
	if logFile == "" {
		logFile = viper.GetString("log.path")
	}
	if !cmd.Flags().Changed("out") && viper.GetString("export.path") != "" {
		out = viper.GetString("export.path")
	}
	if !cmd.Flags().Changed("format") && viper.GetString("export.format") != "" {
		format = viper.GetString("export.format")
	}

	log, closeLog, err := logging.Setup(types.LogConfig{
		Path:  logFile,
		Level: viper.GetString("log.level"),
	})
	if err != nil {
		return err
	}
	defer closeLog()

	scraper, err := scrape.New(types.ScrapeConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: defaultUserAgent,
		},
		DirectoryURL: dirURL,
		BaseURL:      baseURL,
		MaxWorkers:   workers,
	}, log)
	if err != nil {
		return err
	}

	records, err := scraper.Scrape(cmd.Context())
	if err != nil {
		return fmt.Errorf("scraping %s: %w", dirURL, err)
	}

	fmt.Fprintf(os.Stdout, "scraped %d faculty records\n", len(records))
	if showTable {
		export.RenderTable(records, os.Stdout)
	}

	switch types.ExportFormat(format) {
	case types.FormatCSV:
		err = export.WriteCSV(records, out)
	case types.FormatYAML:
		err = export.WriteYAML(records, out)
	case types.FormatJSON:
		err = export.WriteJSON(records, out)
	default:
		return fmt.Errorf("unknown format %q (want csv, yaml, or json)", format)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "wrote %s\n", out)
	return nil
}
