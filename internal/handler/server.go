// Package handler implements the HTTP handlers for the Hobby Tracker API.
// All handlers are methods on Server. Methods are split into files per
// concern (health.go, hobby.go) but share the same Server struct so they can
// access its dependencies.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mkessler/hobby-tracker/internal/domain"
	"github.com/mkessler/hobby-tracker/spec"
)

// HobbyServicer defines the business operations the handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a stub without touching a repo or the service layer.
type HobbyServicer interface {
	List(ctx context.Context) ([]domain.Hobby, error)
	Get(ctx context.Context, id string) (domain.Hobby, error)
	Create(ctx context.Context, in domain.NewHobby) (domain.Hobby, error)
	Update(ctx context.Context, id string, patch domain.HobbyPatch) (domain.Hobby, error)
	Toggle(ctx context.Context, id string) (domain.Hobby, error)
	Delete(ctx context.Context, id string) error
	Reset(ctx context.Context) error
}

// Server holds the dependencies shared by all API handlers.
type Server struct {
	hobbies HobbyServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(hobbies HobbyServicer) *Server {
	return &Server{hobbies: hobbies}
}

// Routes returns the full API router. The CRUD surface lives under /api;
// the embedded OpenAPI document is served from the root.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.GetHealth)
		r.Post("/reset", s.ResetStorage)

		r.Route("/hobbies", func(r chi.Router) {
			r.Get("/", s.ListHobbies)
			r.Post("/", s.CreateHobby)
			r.Get("/{id}", s.GetHobby)
			r.Put("/{id}", s.UpdateHobby)
			r.Patch("/{id}/toggle", s.ToggleHobby)
			r.Delete("/{id}", s.DeleteHobby)
		})
	})

	r.Get("/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		w.Write(spec.OpenAPI)
	})

	return r
}
