package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/medloop/doctor-directory/internal/adapters/urlstate"
	"github.com/medloop/doctor-directory/internal/application/services"
	"github.com/medloop/doctor-directory/internal/domain/entities"
)

// DirectoryHandler exposes the directory core over HTTP. The query string
// of the search endpoint is exactly the shareable address-state format, so
// every request round-trips through the codec.
type DirectoryHandler struct {
	directory *services.DirectoryService
}

// NewDirectoryHandler creates a new directory handler
func NewDirectoryHandler(directory *services.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{
		directory: directory,
	}
}

type searchResponse struct {
	Doctors []entities.Doctor `json:"doctors"`
	Total   int               `json:"total"`
	Filters entities.Filters  `json:"filters"`
	Address string            `json:"address"`
}

// SearchDoctors handles GET /api/v1/doctors
func (h *DirectoryHandler) SearchDoctors(w http.ResponseWriter, r *http.Request) {
	if !h.ensureReady(w) {
		return
	}

	filters := urlstate.Decode(r.URL.RawQuery).MergeInto(entities.DefaultFilters())
	results := h.directory.Derive(filters)

	respondWithJSON(w, http.StatusOK, searchResponse{
		Doctors: results,
		Total:   len(results),
		Filters: filters,
		Address: urlstate.Encode(filters),
	})
}

// SuggestDoctors handles GET /api/v1/doctors/suggest
func (h *DirectoryHandler) SuggestDoctors(w http.ResponseWriter, r *http.Request) {
	if !h.ensureReady(w) {
		return
	}

	suggestions := h.directory.Suggest(r.URL.Query().Get("q"))
	if suggestions == nil {
		suggestions = []entities.Suggestion{}
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"suggestions": suggestions,
		"total":       len(suggestions),
	})
}

// GetState handles GET /api/v1/state
func (h *DirectoryHandler) GetState(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"state":   h.directory.State(),
		"filters": h.directory.Filters(),
		"total":   len(h.directory.Results()),
		"error":   h.directory.ErrorMessage(),
	})
}

// HealthCheck handles GET /health
func (h *DirectoryHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ensureReady rejects requests while the directory is loading or in the
// error state. The error state carries its retry-suggesting message.
func (h *DirectoryHandler) ensureReady(w http.ResponseWriter) bool {
	switch h.directory.State() {
	case services.StateReady:
		return true
	case services.StateError:
		respondWithError(w, http.StatusServiceUnavailable, h.directory.ErrorMessage())
		return false
	default:
		respondWithError(w, http.StatusServiceUnavailable, "directory is still loading")
		return false
	}
}

func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{
		"error": message,
	})
}
