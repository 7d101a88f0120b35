// Package domain contains the core data types for the Hobby Tracker application.
// This package has zero external dependencies and is imported by every other
// internal package (repo, service, handler).
package domain

import "time"

// Categories is the fixed catalog the UI offers when creating a hobby.
// Values outside this list are stored as-is; the catalog is advisory,
// not enforced by any backend.
var Categories = []string{
	"Sports",
	"Art & Creative",
	"Music",
	"Reading",
	"Technology",
	"Cooking",
	"Travel",
	"Other",
}

// Priorities is the fixed priority catalog. Same permissive storage
// behaviour as Categories.
var Priorities = []string{"High", "Medium", "Low"}

// Defaults applied when a create payload omits the field.
const (
	DefaultCategory = "Other"
	DefaultPriority = "Medium"
)

// Hobby represents a single tracked activity or goal.
// ID is assigned by the storage backend, never by the caller, and is an
// opaque string: the two backends use different generators, so callers must
// not assume a format or derive ordering from it.
type Hobby struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Priority    string    `json:"priority"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewHobby is the payload for creating a hobby. The backend assigns ID and
// both timestamps; everything else comes from the caller, with zero values
// replaced by defaults in the service layer.
type NewHobby struct {
	Title       string
	Description string
	Category    string
	Priority    string
	Completed   bool
}

// HobbyPatch carries the mutable fields of a hobby for partial updates.
// Nil pointers mean "leave unchanged". The field set is a deliberate
// whitelist: ID and CreatedAt are always re-derived from the stored record,
// so a patch can never move a record to a new identity or rewrite history.
type HobbyPatch struct {
	Title       *string
	Description *string
	Category    *string
	Priority    *string
	Completed   *bool
}

// Apply merges the patch over h and returns the result.
// ID and CreatedAt are taken from h unconditionally; UpdatedAt is set to now.
func (p HobbyPatch) Apply(h Hobby, now time.Time) Hobby {
	if p.Title != nil {
		h.Title = *p.Title
	}
	if p.Description != nil {
		h.Description = *p.Description
	}
	if p.Category != nil {
		h.Category = *p.Category
	}
	if p.Priority != nil {
		h.Priority = *p.Priority
	}
	if p.Completed != nil {
		h.Completed = *p.Completed
	}
	h.UpdatedAt = now
	return h
}
