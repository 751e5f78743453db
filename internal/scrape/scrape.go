// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scrape orchestrates the fetch-then-enrich pipeline and cleans the
// resulting records.
package scrape

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/pdiddy/faculty-scraper/internal/directory"
	"github.com/pdiddy/faculty-scraper/internal/fetch"
	"github.com/pdiddy/faculty-scraper/internal/profile"
	"github.com/pdiddy/faculty-scraper/pkg/types"
)

// DefaultTimeout bounds every HTTP request. The client default would hang
// forever on a stalled connection.
const DefaultTimeout = 15 * time.Second

// emailPattern is the anchored full-string email shape: word/dot/dash
// characters, "@", word/dot/dash characters, ".", word characters.
var emailPattern = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w+$`)

// ValidateEmail reports whether s matches the accepted email shape.
func ValidateEmail(s string) bool { return emailPattern.MatchString(s) }

// Scraper runs the two-phase pipeline against one faculty directory.
type Scraper struct {
	cfg    types.ScrapeConfig
	client *resty.Client
	log    zerolog.Logger
}

// New builds a Scraper. One connection-pooled client serves the directory
// fetch and every profile fetch.
func New(cfg types.ScrapeConfig, log zerolog.Logger) (*Scraper, error) {
	if cfg.DirectoryURL == "" {
		return nil, fmt.Errorf("directory URL is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = profile.DefaultMaxWorkers
	}
	if cfg.BaseURL == "" {
		base, err := deriveBase(cfg.DirectoryURL)
		if err != nil {
			return nil, err
		}
		cfg.BaseURL = base
	}
	return &Scraper{cfg: cfg, client: fetch.NewClient(cfg.HTTPConfig), log: log}, nil
}

// deriveBase reduces the directory URL to its scheme and host.
func deriveBase(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("invalid directory URL %q", raw)
	}
	return u.Scheme + "://" + u.Host, nil
}

// Scrape runs the full pipeline: fetch and parse the directory page, enrich
// every stub's profile page concurrently, merge by original index, and clean.
// A directory-page failure is fatal and returned — never swallowed into an
// empty result. Profile-page failures are logged and leave that member's
// Subjects/Research empty. Final record order is the directory order.
func (s *Scraper) Scrape(ctx context.Context) ([]types.FacultyRecord, error) {
	doc, err := fetch.Fetch(ctx, s.client, s.cfg.DirectoryURL)
	if err != nil {
		s.log.Error().Str("url", s.cfg.DirectoryURL).Err(err).Msg("directory fetch failed")
		return nil, err
	}

	dir, err := directory.Parse(doc, s.cfg.DirectoryURL, s.cfg.BaseURL)
	if err != nil {
		s.log.Error().Str("url", s.cfg.DirectoryURL).Err(err).Msg("directory parse failed")
		return nil, err
	}

	if !dir.Aligned() {
		cerr := &types.ConsistencyError{Emails: len(dir.Emails), Blocks: len(dir.Stubs)}
		s.log.Warn().Int("emails", cerr.Emails).Int("blocks", cerr.Blocks).Msg(cerr.Error())
	}

	urls := make([]string, len(dir.Stubs))
	for i, stub := range dir.Stubs {
		urls[i] = stub.Profile
	}
	enriched := profile.Enrich(ctx, s.client, urls, s.cfg.MaxWorkers, s.log)

	records := dir.Stubs
	for i := range records {
		records[i].Subjects = enriched[i].Subjects
		records[i].Research = enriched[i].Research
	}

	return Clean(records), nil
}

// Clean deduplicates and validates records, preserving directory order:
//
//  1. later records whose non-blank Email was already seen are dropped
//     (first occurrence wins); blank-Email records pass through, so a block
//     without a mailto link stays one record with an empty Email
//  2. surviving non-blank emails are validated; a malformed address is
//     blanked and the record kept
//  3. nil Subjects/Research become empty slices
//
// Clean is idempotent: a second application returns the same records.
func Clean(records []types.FacultyRecord) []types.FacultyRecord {
	seen := make(map[string]bool, len(records))
	cleaned := make([]types.FacultyRecord, 0, len(records))
	for _, rec := range records {
		if rec.Email != "" {
			if seen[rec.Email] {
				continue
			}
			seen[rec.Email] = true
			if !ValidateEmail(rec.Email) {
				rec.Email = ""
			}
		}
		if rec.Subjects == nil {
			rec.Subjects = []string{}
		}
		if rec.Research == nil {
			rec.Research = []string{}
		}
		cleaned = append(cleaned, rec)
	}
	return cleaned
}
