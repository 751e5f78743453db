// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// NetworkError reports a failed page fetch: a transport error, a non-2xx
// status, or an unreadable body. It is fatal for the directory page and
// local for profile pages.
type NetworkError struct {
	URL    string
	Status int   // HTTP status code, 0 when the request never completed
	Err    error // underlying transport error, nil on a bad status
}

func (e *NetworkError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("fetching %s: HTTP %d", e.URL, e.Status)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ParseError reports markup whose expected structure is absent or malformed,
// such as a faculty block with too few comma-separated parts.
type ParseError struct {
	URL    string
	Detail string
}

func (e *ParseError) Error() string {
	if e.URL == "" {
		return "parse: " + e.Detail
	}
	return fmt.Sprintf("parsing %s: %s", e.URL, e.Detail)
}

// ConsistencyError flags a mismatch between the number of mailto links and
// the number of faculty blocks on the directory page. Per-block parsing keeps
// each email with its own block regardless, so the mismatch is logged, never
// fatal.
type ConsistencyError struct {
	Emails int
	Blocks int
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("directory page has %d mailto links but %d faculty blocks", e.Emails, e.Blocks)
}
