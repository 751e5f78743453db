// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch provides the shared HTTP client used by all pipeline stages.
package fetch

import (
	"bytes"
	"context"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"

	"github.com/pdiddy/faculty-scraper/pkg/types"
)

// NewClient builds the connection-pooled HTTP client shared by the directory
// fetch and all profile-page fetches. resty keeps one underlying transport,
// so the same client is safe for concurrent use by pool workers.
func NewClient(cfg types.HTTPConfig) *resty.Client {
	client := resty.New()
	client.SetTimeout(cfg.Timeout)
	if cfg.UserAgent != "" {
		client.SetHeader("User-Agent", cfg.UserAgent)
	}
	return client
}

// Fetch GETs url and parses the body into a goquery document. A transport
// failure, a non-2xx status, or an unreadable body yields *types.NetworkError;
// the caller decides whether that is fatal. There are no retries — a failed
// fetch is terminal for that request.
func Fetch(ctx context.Context, client *resty.Client, url string) (*goquery.Document, error) {
	res, err := client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, &types.NetworkError{URL: url, Err: err}
	}
	if code := res.StatusCode(); code < 200 || code > 299 {
		return nil, &types.NetworkError{URL: url, Status: code}
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(res.Body()))
	if err != nil {
		return nil, &types.NetworkError{URL: url, Err: err}
	}
	return doc, nil
}
