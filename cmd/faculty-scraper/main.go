// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the faculty-scraper CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the faculty-scraper CLI.
var rootCmd = &cobra.Command{
	Use:   "faculty-scraper",
	Short: "Extract faculty records from a university directory",
	Long: `faculty-scraper pulls structured faculty records (name, title, affiliation,
email, taught subjects, research interests, profile link) from a department's
public directory pages. The directory page yields one stub per faculty member;
each profile sub-page is fetched concurrently to fill in subjects and research
topics. Cleaned records are exported as CSV, YAML, or JSON.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./faculty-scraper.yaml or ~/.config/faculty-scraper/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("faculty-scraper")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "faculty-scraper"))
		}
	}

	viper.SetEnvPrefix("FACULTY_SCRAPER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
