// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package directory parses the faculty directory page into record stubs.
//
// Every field of a stub — name, college, email, profile link — is read from
// the same faculty block, so no cross-list index alignment is ever required.
// A block without a mailto link simply yields an empty Email instead of
// shifting every later record.
package directory

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pdiddy/faculty-scraper/pkg/types"
)

const (
	// blockSelector matches one faculty member's markup unit on the
	// directory page.
	blockSelector = "div.profileinfo-teaser-name"

	// titleAnchorSelector matches the block's profile anchor.
	titleAnchorSelector = "a.title"

	mailtoSelector = `a[href^="mailto:"]`
	mailtoScheme   = "mailto:"

	// doctoralMarker in the block's credential field earns the "Dr. " prefix.
	doctoralMarker = "PhD"

	// profileExtLen is the number of trailing characters stripped from the
	// title anchor's href before the teaching suffix is appended. The site
	// links profiles as "<slug>.html"; dropping the four extension characters
	// and appending the suffix yields "<slug>.teaching.html".
	profileExtLen = 4

	// teachingSuffix is appended to the trimmed href to reach the teaching
	// sub-page.
	teachingSuffix = "teaching.html"
)

// Directory holds the parsed contents of the directory page.
type Directory struct {
	// Stubs are the per-block faculty records in page order, Subjects and
	// Research still empty.
	Stubs []types.FacultyRecord

	// Emails is every mailto target on the page, scheme stripped and
	// deduplicated in first-seen order. It exists for the block/email
	// consistency check; stub emails come from their own blocks.
	Emails []string
}

// Aligned reports whether the page carried exactly one mailto link per
// faculty block. A mismatch is never fatal — per-block parsing keeps each
// email with its own block — but callers should log it.
func (d Directory) Aligned() bool { return len(d.Emails) == len(d.Stubs) }

// Parse extracts faculty stubs from the directory page. baseURL prefixes the
// derived profile links. A malformed block, or a page with no faculty blocks
// at all, yields *types.ParseError.
func Parse(doc *goquery.Document, pageURL, baseURL string) (Directory, error) {
	var dir Directory
	var blockErr error

	doc.Find(blockSelector).EachWithBreak(func(_ int, block *goquery.Selection) bool {
		stub, err := parseBlock(block, baseURL)
		if err != nil {
			blockErr = err
			return false
		}
		dir.Stubs = append(dir.Stubs, stub)
		return true
	})
	if blockErr != nil {
		if perr, ok := blockErr.(*types.ParseError); ok {
			perr.URL = pageURL
		}
		return Directory{}, blockErr
	}
	if len(dir.Stubs) == 0 {
		return Directory{}, &types.ParseError{URL: pageURL, Detail: "no faculty blocks found"}
	}

	dir.Emails = Emails(doc)
	return dir, nil
}

// parseBlock reads one faculty block: visible text of the shape
// "<name>, <credentials>, <college>", an optional mailto anchor, and the
// title anchor's href.
func parseBlock(block *goquery.Selection, baseURL string) (types.FacultyRecord, error) {
	text := strings.TrimSpace(block.Text())
	parts := strings.Split(text, ",")
	if len(parts) < 3 {
		return types.FacultyRecord{}, &types.ParseError{
			Detail: fmt.Sprintf("faculty block %q: want at least 3 comma-separated parts, got %d", text, len(parts)),
		}
	}

	name := strings.TrimSpace(parts[0])
	if strings.Contains(parts[1], doctoralMarker) {
		name = "Dr. " + name
	}

	// A missing mailto means an empty email, not a shifted index.
	email := ""
	if href, ok := block.Find(mailtoSelector).First().Attr("href"); ok {
		email = strings.TrimPrefix(href, mailtoScheme)
	}

	href, ok := block.Find(titleAnchorSelector).First().Attr("href")
	if !ok {
		return types.FacultyRecord{}, &types.ParseError{
			Detail: fmt.Sprintf("faculty block %q: missing title anchor", name),
		}
	}
	link, err := profileLink(href, baseURL)
	if err != nil {
		return types.FacultyRecord{}, err
	}

	return types.FacultyRecord{
		Name:     name,
		College:  strings.TrimSpace(parts[2]),
		Email:    email,
		Subjects: []string{},
		Research: []string{},
		Profile:  link,
	}, nil
}

// profileLink derives the absolute teaching-page URL from a title anchor
// href: strip the fixed-length extension, append the teaching suffix, prefix
// the base URL.
func profileLink(href, baseURL string) (string, error) {
	if len(href) <= profileExtLen {
		return "", &types.ParseError{Detail: fmt.Sprintf("title anchor href %q too short", href)}
	}
	path := href[:len(href)-profileExtLen] + teachingSuffix
	return strings.TrimSuffix(baseURL, "/") + "/" + strings.TrimPrefix(path, "/"), nil
}

// Emails returns every mailto target on the page, scheme stripped and
// deduplicated while preserving first-seen order. Repeating the same link
// still yields a single entry.
func Emails(doc *goquery.Document) []string {
	seen := make(map[string]bool)
	var emails []string
	doc.Find(mailtoSelector).Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		email := strings.TrimPrefix(href, mailtoScheme)
		if email == "" || seen[email] {
			return
		}
		seen[email] = true
		emails = append(emails, email)
	})
	return emails
}
