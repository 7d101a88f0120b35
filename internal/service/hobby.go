// Package service contains the business logic for the Hobby Tracker API.
// The service validates inputs, fills defaults, and orchestrates repo calls.
// No storage access lives here — the service depends on the repo interface,
// not on a concrete backend, so the same rules apply whichever backend the
// server is running against.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/mkessler/hobby-tracker/internal/domain"
	"github.com/mkessler/hobby-tracker/internal/repo"
)

// HobbyService implements the hobby record lifecycle over a HobbyRepo.
type HobbyService struct {
	repo repo.HobbyRepo
}

// NewHobbyService constructs a HobbyService backed by the provided repo.
func NewHobbyService(r repo.HobbyRepo) *HobbyService {
	return &HobbyService{repo: r}
}

// List returns all hobby records in the backend's insertion order.
func (s *HobbyService) List(ctx context.Context) ([]domain.Hobby, error) {
	hobbies, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.HobbyService.List: %w", err)
	}
	return hobbies, nil
}

// Get returns a single hobby by id.
func (s *HobbyService) Get(ctx context.Context, id string) (domain.Hobby, error) {
	hobby, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Hobby{}, fmt.Errorf("service.HobbyService.Get: %w", err)
	}
	return hobby, nil
}

// Create validates the payload, fills defaults, and persists a new hobby.
// The title must be non-empty after trimming whitespace; category and
// priority fall back to their catalog defaults when omitted. The backend
// assigns the id and both timestamps.
func (s *HobbyService) Create(ctx context.Context, in domain.NewHobby) (domain.Hobby, error) {
	if strings.TrimSpace(in.Title) == "" {
		return domain.Hobby{}, fmt.Errorf("service.HobbyService.Create: %w: title is required", domain.ErrValidation)
	}

	hobby := domain.Hobby{
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Priority:    in.Priority,
		Completed:   in.Completed,
	}
	if hobby.Category == "" {
		hobby.Category = domain.DefaultCategory
	}
	if hobby.Priority == "" {
		hobby.Priority = domain.DefaultPriority
	}

	created, err := s.repo.Create(ctx, hobby)
	if err != nil {
		return domain.Hobby{}, fmt.Errorf("service.HobbyService.Create: %w", err)
	}
	return created, nil
}

// Update merges the patch over the stored hobby. A patch that sets the title
// must not blank it out — the same policy Create enforces.
func (s *HobbyService) Update(ctx context.Context, id string, patch domain.HobbyPatch) (domain.Hobby, error) {
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return domain.Hobby{}, fmt.Errorf("service.HobbyService.Update: %w: title is required", domain.ErrValidation)
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return domain.Hobby{}, fmt.Errorf("service.HobbyService.Update: %w", err)
	}
	return updated, nil
}

// Toggle flips the completed flag of the hobby with the given id.
// It is a composition of Get and Update, so it shares their not-found
// behaviour and refreshes UpdatedAt like any other mutation.
func (s *HobbyService) Toggle(ctx context.Context, id string) (domain.Hobby, error) {
	hobby, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Hobby{}, fmt.Errorf("service.HobbyService.Toggle: %w", err)
	}

	flipped := !hobby.Completed
	updated, err := s.repo.Update(ctx, id, domain.HobbyPatch{Completed: &flipped})
	if err != nil {
		return domain.Hobby{}, fmt.Errorf("service.HobbyService.Toggle: %w", err)
	}
	return updated, nil
}

// Delete removes the hobby with the given id.
func (s *HobbyService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.HobbyService.Delete: %w", err)
	}
	return nil
}

// Reset clears the backend's collection and id generator.
func (s *HobbyService) Reset(ctx context.Context) error {
	if err := s.repo.Reset(ctx); err != nil {
		return fmt.Errorf("service.HobbyService.Reset: %w", err)
	}
	return nil
}
