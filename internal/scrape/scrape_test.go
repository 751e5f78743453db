// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scrape

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/faculty-scraper/pkg/types"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"nasrinak@buffalo.edu", true},
		{"jane.doe-smith@cs.test.edu", true},
		{"invalid-email", false},
		{"", false},
		{"two@signs@test.edu", false},
		{"no-tld@host", false},
		{"spaced out@test.edu", false},
	}
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			if got := ValidateEmail(tt.email); got != tt.want {
				t.Errorf("ValidateEmail(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}

func TestCleanDropsDuplicateEmails(t *testing.T) {
	records := []types.FacultyRecord{
		{Name: "Dr. A", Email: "a@test.edu"},
		{Name: "B", Email: "b@test.edu"},
		{Name: "A again", Email: "a@test.edu"},
	}
	got := Clean(records)
	require.Len(t, got, 2)
	assert.Equal(t, "Dr. A", got[0].Name, "first occurrence wins")
	assert.Equal(t, "B", got[1].Name, "original order preserved")
}

func TestCleanBlanksInvalidEmail(t *testing.T) {
	records := []types.FacultyRecord{
		{Name: "Dr. A", Email: "not-an-email"},
	}
	got := Clean(records)
	require.Len(t, got, 1, "invalid email blanks the field, never drops the record")
	assert.Equal(t, "", got[0].Email)
	assert.Equal(t, "Dr. A", got[0].Name)
}

func TestCleanKeepsBlankEmailRecords(t *testing.T) {
	// A block without a mailto link yields a record with an empty email;
	// it must survive cleaning rather than shift or vanish.
	records := []types.FacultyRecord{
		{Name: "Dr. A", Email: "a@test.edu"},
		{Name: "No Mail"},
		{Name: "B", Email: "b@test.edu"},
	}
	got := Clean(records)
	require.Len(t, got, 3)
	assert.Equal(t, "No Mail", got[1].Name)
	assert.Equal(t, "", got[1].Email)
}

func TestCleanNormalizesNilLists(t *testing.T) {
	got := Clean([]types.FacultyRecord{{Name: "Dr. A", Email: "a@test.edu"}})
	require.Len(t, got, 1)
	assert.NotNil(t, got[0].Subjects)
	assert.NotNil(t, got[0].Research)
	assert.Empty(t, got[0].Subjects)
	assert.Empty(t, got[0].Research)
}

func TestCleanIsIdempotent(t *testing.T) {
	records := []types.FacultyRecord{
		{Name: "Dr. A", Email: "a@test.edu", Subjects: []string{"CSE 101"}},
		{Name: "Bad", Email: "not-an-email"},
		{Name: "Dup", Email: "a@test.edu"},
		{Name: "No Mail"},
	}
	once := Clean(records)
	twice := Clean(once)
	assert.Equal(t, once, twice)
}

const directoryPage = `
<div class="profileinfo-teaser-name">
  <a class="title" href="/profile.html">Jane Doe, PhD, Test University</a>
  <a href="mailto:jane@test.edu"></a>
</div>`

const profilePage = `
<div class="text parbase section"><ul><li>CSE 101</li></ul></div>
<div class="profileinfo-interest title">Research Focus:Topic A; Topic B</div>`

func TestScrapeEndToEnd(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/directory.html", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, directoryPage)
	})
	mux.HandleFunc("/profile.teaching.html", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, profilePage)
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	scraper, err := New(types.ScrapeConfig{
		DirectoryURL: ts.URL + "/directory.html",
	}, zerolog.Nop())
	require.NoError(t, err)

	records, err := scraper.Scrape(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)

	want := types.FacultyRecord{
		Name:     "Dr. Jane Doe",
		College:  "Test University",
		Email:    "jane@test.edu",
		Subjects: []string{"CSE 101"},
		Research: []string{"Topic A", "Topic B"},
		Profile:  ts.URL + "/profile.teaching.html",
	}
	assert.Equal(t, want, records[0])
}

func TestScrapeDirectoryFetchFailureIsFatal(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer ts.Close()

	scraper, err := New(types.ScrapeConfig{DirectoryURL: ts.URL + "/directory.html"}, zerolog.Nop())
	require.NoError(t, err)

	records, err := scraper.Scrape(context.Background())
	require.Error(t, err, "a directory failure must never become an empty success")
	assert.Nil(t, records)

	var nerr *types.NetworkError
	require.ErrorAs(t, err, &nerr)
	assert.Equal(t, http.StatusInternalServerError, nerr.Status)
}

func TestScrapeDirectoryParseFailureIsFatal(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<p>no faculty blocks on this page</p>`)
	}))
	defer ts.Close()

	scraper, err := New(types.ScrapeConfig{DirectoryURL: ts.URL + "/directory.html"}, zerolog.Nop())
	require.NoError(t, err)

	_, err = scraper.Scrape(context.Background())
	var perr *types.ParseError
	require.ErrorAs(t, err, &perr)
}

func TestScrapeProfileFailureIsLocal(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/directory.html", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, directoryPage)
	})
	// No profile handler: every enrichment fetch 404s.
	ts := httptest.NewServer(mux)
	defer ts.Close()

	scraper, err := New(types.ScrapeConfig{DirectoryURL: ts.URL + "/directory.html"}, zerolog.Nop())
	require.NoError(t, err)

	records, err := scraper.Scrape(context.Background())
	require.NoError(t, err, "one bad profile page must not abort the batch")
	require.Len(t, records, 1)
	assert.Empty(t, records[0].Subjects)
	assert.Empty(t, records[0].Research)
	assert.Equal(t, "Dr. Jane Doe", records[0].Name)
}

func TestNewRequiresDirectoryURL(t *testing.T) {
	_, err := New(types.ScrapeConfig{}, zerolog.Nop())
	require.Error(t, err)
}

func TestDeriveBase(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"https directory", "https://engineering.example.edu/cse/people/faculty.html", "https://engineering.example.edu", false},
		{"port preserved", "http://127.0.0.1:8080/dir.html", "http://127.0.0.1:8080", false},
		{"missing scheme", "example.edu/dir.html", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := deriveBase(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("deriveBase(%q) error = nil, want error", tt.raw)
				}
				return
			}
			if err != nil {
				t.Fatalf("deriveBase(%q): %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("deriveBase(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestConsistencyErrorMessage(t *testing.T) {
	err := &types.ConsistencyError{Emails: 3, Blocks: 5}
	assert.Contains(t, err.Error(), "3 mailto links")
	assert.Contains(t, err.Error(), "5 faculty blocks")
	assert.False(t, errors.Is(err, context.Canceled))
}
