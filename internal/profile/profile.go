// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package profile enriches faculty stubs from their teaching sub-pages.
package profile

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/faculty-scraper/internal/fetch"
)

const (
	subjectsBlockSelector = "div.text.parbase.section"
	interestBlockSelector = "div.profileinfo-interest.title"

	// interestHeaderLen is the fixed length of the header text at the start
	// of each interest block; everything past it is the topic list.
	interestHeaderLen = 15

	topicSeparator = "; "

	// DefaultMaxWorkers bounds concurrent enrichment fetch tasks.
	DefaultMaxWorkers = 10
)

// Enrichment carries one faculty member's profile-page payload.
type Enrichment struct {
	Subjects []string
	Research []string
}

// Subjects extracts the taught-course list from a profile page: the first
// content block's first list, one entry per item. An absent block or list
// yields an empty result, never an error.
func Subjects(doc *goquery.Document) []string {
	subjects := []string{}
	doc.Find(subjectsBlockSelector).First().Find("ul").First().Find("li").Each(func(_ int, li *goquery.Selection) {
		subjects = append(subjects, li.Text())
	})
	return subjects
}

// Research extracts research topics from a profile page: every interest
// block's text past the fixed-length header, split on "; " and flattened in
// block order then split order. An absent block yields an empty result,
// never an error.
func Research(doc *goquery.Document) []string {
	topics := []string{}
	doc.Find(interestBlockSelector).Each(func(_ int, div *goquery.Selection) {
		text := div.Text()
		if len(text) <= interestHeaderLen {
			return
		}
		raw := strings.TrimSpace(text[interestHeaderLen:])
		if raw == "" {
			return
		}
		topics = append(topics, strings.Split(raw, topicSeparator)...)
	})
	return topics
}

// Enrich fetches every profile URL and extracts subjects and research topics.
// Subject and research extractions are independent tasks drawn from a bounded
// worker pool; each task carries its origin index and writes its result back
// by that index, so completion order never affects alignment. A failed fetch
// is logged and leaves that member's payload empty — one bad profile page
// never aborts the batch.
func Enrich(ctx context.Context, client *resty.Client, urls []string, maxWorkers int, log zerolog.Logger) []Enrichment {
	if maxWorkers <= 0 {
		maxWorkers = DefaultMaxWorkers
	}

	results := make([]Enrichment, len(urls))
	for i := range results {
		results[i] = Enrichment{Subjects: []string{}, Research: []string{}}
	}

	var g errgroup.Group
	g.SetLimit(maxWorkers)

	for i, url := range urls {
		i, url := i, url
		g.Go(func() error {
			doc, err := fetch.Fetch(ctx, client, url)
			if err != nil {
				log.Error().Str("url", url).Err(err).Msg("subject extraction failed")
				return nil
			}
			results[i].Subjects = Subjects(doc)
			return nil
		})
		g.Go(func() error {
			doc, err := fetch.Fetch(ctx, client, url)
			if err != nil {
				log.Error().Str("url", url).Err(err).Msg("research extraction failed")
				return nil
			}
			results[i].Research = Research(doc)
			return nil
		})
	}

	// Tasks recover their own failures, so Wait never returns an error.
	_ = g.Wait()
	return results
}
