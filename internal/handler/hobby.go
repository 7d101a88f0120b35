package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mkessler/hobby-tracker/internal/domain"
)

// createHobbyRequest is the body of POST /api/hobbies.
// Only title is required; the service fills defaults for the rest.
type createHobbyRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Priority    string `json:"priority"`
	Completed   bool   `json:"completed"`
}

// updateHobbyRequest is the body of PUT /api/hobbies/{id}. All fields are
// optional; absent fields leave the stored value unchanged. Any id or
// createdAt in the body is ignored — there is nowhere for it to go.
type updateHobbyRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Priority    *string `json:"priority"`
	Completed   *bool   `json:"completed"`
}

// ListHobbies handles GET /api/hobbies.
// Always responds 200 with a JSON array, empty when no records exist.
func (s *Server) ListHobbies(w http.ResponseWriter, r *http.Request) {
	hobbies, err := s.hobbies.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list hobbies")
		return
	}
	if hobbies == nil {
		hobbies = []domain.Hobby{}
	}
	writeJSON(w, http.StatusOK, hobbies)
}

// GetHobby handles GET /api/hobbies/{id}.
func (s *Server) GetHobby(w http.ResponseWriter, r *http.Request) {
	hobby, err := s.hobbies.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Hobby not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get hobby")
		return
	}
	writeJSON(w, http.StatusOK, hobby)
}

// CreateHobby handles POST /api/hobbies.
func (s *Server) CreateHobby(w http.ResponseWriter, r *http.Request) {
	var req createHobbyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := s.hobbies.Create(r.Context(), domain.NewHobby{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Priority:    req.Priority,
		Completed:   req.Completed,
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeError(w, http.StatusBadRequest, "Title is required")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to create hobby")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// UpdateHobby handles PUT /api/hobbies/{id}.
// The body is a partial record; the stored id always wins over anything the
// caller sends.
func (s *Server) UpdateHobby(w http.ResponseWriter, r *http.Request) {
	var req updateHobbyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	patch := domain.HobbyPatch{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Priority:    req.Priority,
		Completed:   req.Completed,
	}

	updated, err := s.hobbies.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Hobby not found")
			return
		}
		if errors.Is(err, domain.ErrValidation) {
			writeError(w, http.StatusBadRequest, "Title is required")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to update hobby")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// ToggleHobby handles PATCH /api/hobbies/{id}/toggle.
func (s *Server) ToggleHobby(w http.ResponseWriter, r *http.Request) {
	updated, err := s.hobbies.Toggle(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Hobby not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to toggle hobby")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteHobby handles DELETE /api/hobbies/{id}.
func (s *Server) DeleteHobby(w http.ResponseWriter, r *http.Request) {
	if err := s.hobbies.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Hobby not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete hobby")
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Hobby deleted"})
}

// ResetStorage handles POST /api/reset.
// It exists for load-test isolation: the collection is cleared and the id
// generator returns to its initial state.
func (s *Server) ResetStorage(w http.ResponseWriter, r *http.Request) {
	if err := s.hobbies.Reset(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to reset storage")
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Storage reset"})
}
