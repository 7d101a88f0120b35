// Package repo contains the storage backends for hobby records.
// Two implementations of the same contract exist: an in-memory collection
// with a sequential id counter (the load-test mock's store) and a SQLite
// key-value store holding the whole record list as one JSON array (the
// on-device store). No business logic lives here — only persistence and
// id generation.
package repo

import (
	"context"

	"github.com/mkessler/hobby-tracker/internal/domain"
)

// HobbyRepo defines the persistence operations for hobby records.
// The service layer depends on this interface, not on a concrete backend,
// which allows the service to be unit-tested with a mock and lets the server
// front either backend with the same HTTP surface.
//
// Every mutating operation is a single atomic read-modify-write against the
// backing collection: implementations serialize access so id assignment and
// insertion happen inside one critical section, and no operation spans
// multiple records.
type HobbyRepo interface {
	// List returns all hobby records in insertion order.
	// Callers needing a different order sort the returned slice themselves.
	List(ctx context.Context) ([]domain.Hobby, error)

	// GetByID retrieves a single record by id.
	// Returns domain.ErrNotFound if no record with that id exists.
	GetByID(ctx context.Context, id string) (domain.Hobby, error)

	// Create persists a new record, assigning a fresh id and setting
	// CreatedAt = UpdatedAt = now. Any id or timestamps already present on
	// the input are ignored; ids are always generator-assigned and never
	// collide with an existing record.
	Create(ctx context.Context, hobby domain.Hobby) (domain.Hobby, error)

	// Update merges the patch over the stored record with the given id,
	// preserving id and CreatedAt and refreshing UpdatedAt, then persists
	// and returns the merged record.
	// Returns domain.ErrNotFound if no record with that id exists.
	Update(ctx context.Context, id string, patch domain.HobbyPatch) (domain.Hobby, error)

	// Delete physically removes the record with the given id. There is no
	// tombstone; a deleted id never reappears in List.
	// Returns domain.ErrNotFound if no record with that id exists.
	Delete(ctx context.Context, id string) error

	// Reset clears the entire collection and returns the id generator to
	// its initial state. Used for test isolation, not by production callers.
	Reset(ctx context.Context) error
}
