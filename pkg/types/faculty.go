// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the faculty-scraper pipeline.
package types

// FacultyRecord is one faculty member's directory entry after enrichment.
//
// A record starts as a stub built from the directory page (Subjects and
// Research empty), is filled in once by profile-page enrichment, and is
// adjusted once more by cleaning. It is not mutated after export.
type FacultyRecord struct {
	// Name is the display name, prefixed "Dr. " when the directory block's
	// credential field carries a doctoral marker.
	Name string `json:"name" yaml:"name"`

	// College is the affiliation from the directory block.
	College string `json:"college" yaml:"college"`

	// Email may be blank: a block without a mailto link, or an address that
	// failed validation, leaves the field empty rather than dropping the
	// record.
	Email string `json:"email" yaml:"email"`

	// Subjects lists taught courses from the profile page, in page order.
	Subjects []string `json:"subjects" yaml:"subjects"`

	// Research lists research topics from the profile page, in block order
	// then split order.
	Research []string `json:"research" yaml:"research"`

	// Profile is the absolute URL of the teaching sub-page.
	Profile string `json:"profile" yaml:"profile"`
}
