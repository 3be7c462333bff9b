package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/tward/kennel/internal/auth"
	"github.com/tward/kennel/internal/services"
)

// DogHandler handles HTTP requests for dog records. All routes sit behind the
// auth middleware, so an authenticated user is always present in the context.
type DogHandler struct {
	service  services.DogServiceProvider
	validate *validator.Validate
}

// NewDogHandler creates a new DogHandler.
func NewDogHandler(service services.DogServiceProvider) *DogHandler {
	return &DogHandler{
		service:  service,
		validate: validator.New(),
	}
}

// DogPayload defines the structure for create and update requests.
type DogPayload struct {
	Roast string `json:"roast" validate:"required"`
	Dog   string `json:"dog" validate:"required"`
}

// Create handles creating a dog record owned by the caller.
func (h *DogHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		log.Error().Msg("Could not retrieve user from context")
		http.Error(w, "Could not retrieve user from token", http.StatusInternalServerError)
		return
	}

	var payload DogPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	dog, err := h.service.CreateDog(r.Context(), user.ID, payload.Roast, payload.Dog)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to create dog")
		http.Error(w, "Failed to create dog", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dog)
}

// GetAll handles listing the caller's dog records.
func (h *DogHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		log.Error().Msg("Could not retrieve user from context")
		http.Error(w, "Could not retrieve user from token", http.StatusInternalServerError)
		return
	}

	dogs, err := h.service.ListDogs(r.Context(), user.ID)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to list dogs")
		http.Error(w, "Failed to list dogs", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dogs)
}

// Get handles retrieving a single dog record by ID.
func (h *DogHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		log.Error().Msg("Could not retrieve user from context")
		http.Error(w, "Could not retrieve user from token", http.StatusInternalServerError)
		return
	}

	id := chi.URLParam(r, "id")
	dog, err := h.service.GetDog(r.Context(), user.ID, id)
	if err != nil {
		if errors.Is(err, services.ErrDogNotFound) {
			http.Error(w, "Dog not found", http.StatusNotFound)
			return
		}
		log.Error().Err(err).Str("dog_id", id).Msg("Failed to get dog")
		http.Error(w, "Failed to get dog", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dog)
}

// Update handles updating a dog record by ID.
func (h *DogHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		log.Error().Msg("Could not retrieve user from context")
		http.Error(w, "Could not retrieve user from token", http.StatusInternalServerError)
		return
	}

	var payload DogPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	id := chi.URLParam(r, "id")
	dog, err := h.service.UpdateDog(r.Context(), user.ID, id, payload.Roast, payload.Dog)
	if err != nil {
		if errors.Is(err, services.ErrDogNotFound) {
			http.Error(w, "Dog not found", http.StatusNotFound)
			return
		}
		log.Error().Err(err).Str("dog_id", id).Msg("Failed to update dog")
		http.Error(w, "Failed to update dog", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dog)
}
