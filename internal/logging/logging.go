// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging configures the append-only diagnostic log.
package logging

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/pdiddy/faculty-scraper/pkg/types"
)

// DefaultPath is the diagnostic log file used when none is configured.
const DefaultPath = "scraper.log"

// Setup opens (or creates) the append-only log file and returns a logger
// writing timestamped events to it, plus a close function for the file. The
// default level is warn so alignment flags are recorded alongside errors.
// The log is diagnostic output, not a programmatic interface.
func Setup(cfg types.LogConfig) (zerolog.Logger, func() error, error) {
	if cfg.Path == "" {
		cfg.Path = DefaultPath
	}

	level := zerolog.WarnLevel
	if cfg.Level != "" {
		parsed, err := zerolog.ParseLevel(cfg.Level)
		if err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("parsing log level %q: %w", cfg.Level, err)
		}
		level = parsed
	}

	f, err := os.OpenFile(cfg.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("opening log file %s: %w", cfg.Path, err)
	}

	zerolog.TimeFieldFormat = time.RFC3339
	log := zerolog.New(f).Level(level).With().Timestamp().Logger()
	return log, f.Close, nil
}
