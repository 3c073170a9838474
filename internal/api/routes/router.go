package routes

import (
	"net/http"

	"github.com/medloop/doctor-directory/internal/api/handlers"
	"github.com/medloop/doctor-directory/internal/api/middleware"
	"github.com/medloop/doctor-directory/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	directoryHandler *handlers.DirectoryHandler

	cacheMiddleware *middleware.CacheMiddleware
	metrics         *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	directoryHandler *handlers.DirectoryHandler,
	cacheMiddleware *middleware.CacheMiddleware,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux:              http.NewServeMux(),
		directoryHandler: directoryHandler,
		cacheMiddleware:  cacheMiddleware,
		metrics:          metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	r.mux.HandleFunc("GET /health", r.directoryHandler.HealthCheck)

	// Directory endpoints
	r.mux.HandleFunc("GET /api/v1/doctors", r.directoryHandler.SearchDoctors)
	r.mux.HandleFunc("GET /api/v1/doctors/suggest", r.directoryHandler.SuggestDoctors)
	r.mux.HandleFunc("GET /api/v1/state", r.directoryHandler.GetState)

	// Apply middleware in reverse order (last middleware wraps first)
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)

	if r.cacheMiddleware != nil {
		handler = r.cacheMiddleware.Middleware(handler)
	}

	if r.metrics != nil {
		handler = middleware.ObservabilityMiddleware(r.metrics)(handler)
	}

	// CORS wraps everything so headers are set even on cache HITs
	handler = middleware.CORSMiddleware(handler)

	return handler
}
