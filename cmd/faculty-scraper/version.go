package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of faculty-scraper",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("faculty-scraper %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
