package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mkessler/hobby-tracker/internal/domain"
)

func storedHobby() domain.Hobby {
	created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return domain.Hobby{
		ID:          "1709283600000",
		Title:       "Watercolor Painting",
		Description: "Create a series of landscape paintings",
		Category:    "Art & Creative",
		Priority:    "Medium",
		Completed:   false,
		CreatedAt:   created,
		UpdatedAt:   created,
	}
}

func TestHobbyPatch_Apply_EmptyPatchOnlyTouchesUpdatedAt(t *testing.T) {
	h := storedHobby()
	now := h.UpdatedAt.Add(time.Hour)

	got := domain.HobbyPatch{}.Apply(h, now)

	assert.Equal(t, h.ID, got.ID)
	assert.Equal(t, h.Title, got.Title)
	assert.Equal(t, h.Description, got.Description)
	assert.Equal(t, h.Category, got.Category)
	assert.Equal(t, h.Priority, got.Priority)
	assert.Equal(t, h.Completed, got.Completed)
	assert.Equal(t, h.CreatedAt, got.CreatedAt)
	assert.Equal(t, now, got.UpdatedAt)
}

func TestHobbyPatch_Apply_MergesSetFields(t *testing.T) {
	h := storedHobby()
	now := h.UpdatedAt.Add(time.Hour)

	title := "Oil Painting"
	completed := true
	got := domain.HobbyPatch{Title: &title, Completed: &completed}.Apply(h, now)

	assert.Equal(t, "Oil Painting", got.Title)
	assert.True(t, got.Completed)
	// Untouched fields survive the merge.
	assert.Equal(t, h.Description, got.Description)
	assert.Equal(t, h.Category, got.Category)
	assert.Equal(t, h.Priority, got.Priority)
}

func TestHobbyPatch_Apply_PreservesIdentityFields(t *testing.T) {
	h := storedHobby()

	// A patch has no ID or CreatedAt fields at all, so identity cannot be
	// rewritten no matter what the caller sends over the wire.
	got := domain.HobbyPatch{}.Apply(h, time.Now().UTC())

	assert.Equal(t, h.ID, got.ID)
	assert.Equal(t, h.CreatedAt, got.CreatedAt)
}

func TestHobbyPatch_Apply_CanClearOptionalFields(t *testing.T) {
	h := storedHobby()

	empty := ""
	got := domain.HobbyPatch{Description: &empty}.Apply(h, time.Now().UTC())

	assert.Equal(t, "", got.Description)
}
