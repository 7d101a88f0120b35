package repo

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/mkessler/hobby-tracker/internal/domain"
)

// MemoryHobbyRepo is the in-memory implementation of HobbyRepo used by the
// load-test mock server. Records live in a slice (preserving insertion
// order) and ids come from a sequential counter starting at 1.
//
// A single mutex guards the counter and the slice together, so concurrent
// HTTP requests from load-test virtual users can never observe duplicate
// ids or a half-applied update.
type MemoryHobbyRepo struct {
	mu      sync.Mutex
	hobbies []domain.Hobby
	nextID  int64
}

// NewMemoryHobbyRepo constructs an empty in-memory repository.
// Each instance owns its own collection and generator — there is no package
// level state, so parallel tests can each hold an isolated instance.
func NewMemoryHobbyRepo() *MemoryHobbyRepo {
	return &MemoryHobbyRepo{nextID: 1}
}

// List returns a copy of all records in insertion order.
func (r *MemoryHobbyRepo) List(ctx context.Context) ([]domain.Hobby, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Hobby, len(r.hobbies))
	copy(out, r.hobbies)
	return out, nil
}

// GetByID returns the record with the given id.
func (r *MemoryHobbyRepo) GetByID(ctx context.Context, id string) (domain.Hobby, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, h := range r.hobbies {
		if h.ID == id {
			return h, nil
		}
	}
	return domain.Hobby{}, fmt.Errorf("repo.MemoryHobbyRepo.GetByID: %w", domain.ErrNotFound)
}

// Create assigns the next counter id, stamps both timestamps, and appends
// the record. Counter increment and append happen under the same lock.
func (r *MemoryHobbyRepo) Create(ctx context.Context, hobby domain.Hobby) (domain.Hobby, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	hobby.ID = strconv.FormatInt(r.nextID, 10)
	hobby.CreatedAt = now
	hobby.UpdatedAt = now
	r.nextID++

	r.hobbies = append(r.hobbies, hobby)
	return hobby, nil
}

// Update merges the patch over the stored record and refreshes UpdatedAt.
func (r *MemoryHobbyRepo) Update(ctx context.Context, id string, patch domain.HobbyPatch) (domain.Hobby, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, h := range r.hobbies {
		if h.ID == id {
			merged := patch.Apply(h, time.Now().UTC())
			r.hobbies[i] = merged
			return merged, nil
		}
	}
	return domain.Hobby{}, fmt.Errorf("repo.MemoryHobbyRepo.Update: %w", domain.ErrNotFound)
}

// Delete removes the record with the given id from the slice.
func (r *MemoryHobbyRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, h := range r.hobbies {
		if h.ID == id {
			r.hobbies = append(r.hobbies[:i], r.hobbies[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("repo.MemoryHobbyRepo.Delete: %w", domain.ErrNotFound)
}

// Reset clears the collection and restarts the id counter at 1.
func (r *MemoryHobbyRepo) Reset(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.hobbies = nil
	r.nextID = 1
	return nil
}
