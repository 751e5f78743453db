//go:build mage

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/magefile/mage/mg"
)

// Scrape builds the CLI and runs it against FACULTY_DIRECTORY_URL.
func Scrape() error {
	mg.Deps(Build)

	dirURL := os.Getenv("FACULTY_DIRECTORY_URL")
	if dirURL == "" {
		return fmt.Errorf("set FACULTY_DIRECTORY_URL to the directory page to scrape")
	}

	cmd := exec.Command(filepath.Join(binDir, binName), "scrape", dirURL)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
