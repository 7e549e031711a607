package workouts

import (
	"errors"
	"strings"

	"github.com/ronaldodno2-cmyk/Academymanagementapp/internal/domain/models"
	"github.com/ronaldodno2-cmyk/Academymanagementapp/internal/store"
)

// ErrWorkoutNotFound indicates the requested template does not exist.
var ErrWorkoutNotFound = errors.New("workout not found")

// Service exposes the read-only training template catalog.
type Service struct {
	store *store.Store
}

// NewService wires a workouts service instance.
func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

// List returns the templates, optionally filtered by a case-insensitive
// title substring.
func (s *Service) List(query string) []models.Workout {
	all := s.store.Workouts()
	if query == "" {
		return all
	}

	needle := strings.ToLower(query)
	filtered := all[:0]
	for _, w := range all {
		if strings.Contains(strings.ToLower(w.Title), needle) {
			filtered = append(filtered, w)
		}
	}
	return filtered
}

// Get fetches one template by ID.
func (s *Service) Get(id string) (models.Workout, error) {
	w, ok := s.store.FindWorkout(id)
	if !ok {
		return models.Workout{}, ErrWorkoutNotFound
	}
	return w, nil
}
