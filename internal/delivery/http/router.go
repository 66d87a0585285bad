package http

import (
	"net/http"

	"turnos-web/internal/delivery/http/handler"
	"turnos-web/internal/delivery/http/middleware"
	"turnos-web/pkg/response"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	healthHandler      *handler.HealthHandler
	appointmentHandler *handler.AppointmentHandler
	themeHandler       *handler.ThemeHandler
	componentHandler   *handler.ComponentHandler
	progressHandler    *handler.ProgressHandler
	spaHandler         *handler.SPAHandler
	loggingMiddleware  *middleware.LoggingMiddleware
	corsMiddleware     *middleware.CORSMiddleware
	rateLimiter        func(http.Handler) http.Handler
}

func NewRouter(
	healthHandler *handler.HealthHandler,
	appointmentHandler *handler.AppointmentHandler,
	themeHandler *handler.ThemeHandler,
	componentHandler *handler.ComponentHandler,
	progressHandler *handler.ProgressHandler,
	spaHandler *handler.SPAHandler,
	loggingMiddleware *middleware.LoggingMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	rateLimiter func(http.Handler) http.Handler,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		healthHandler:      healthHandler,
		appointmentHandler: appointmentHandler,
		themeHandler:       themeHandler,
		componentHandler:   componentHandler,
		progressHandler:    progressHandler,
		spaHandler:         spaHandler,
		loggingMiddleware:  loggingMiddleware,
		corsMiddleware:     corsMiddleware,
		rateLimiter:        rateLimiter,
	}
}

func (r *Router) Setup() *mux.Router {
	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(middleware.ClientIdentity)

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()
	api.Use(r.corsMiddleware.Handle)
	api.Use(r.rateLimiter)
	api.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		response.NotFound(w, "")
	})

	// Health check
	api.HandleFunc("/health", r.healthHandler.Check).Methods(http.MethodGet)

	// Theme
	api.HandleFunc("/theme", r.themeHandler.GetTokens).Methods(http.MethodGet)
	api.HandleFunc("/preferences/theme", r.themeHandler.GetPreference).Methods(http.MethodGet)
	api.HandleFunc("/preferences/theme", r.themeHandler.UpdatePreference).Methods(http.MethodPut, http.MethodOptions)

	// Components
	components := api.PathPrefix("/components").Subrouter()
	components.HandleFunc("/appointment-card", r.appointmentHandler.RenderCard).Methods(http.MethodPost, http.MethodOptions)
	components.HandleFunc("/header", r.componentHandler.RenderHeader).Methods(http.MethodGet)
	components.HandleFunc("/spinner", r.componentHandler.RenderSpinner).Methods(http.MethodGet)

	// Progress stream
	api.HandleFunc("/progress", r.progressHandler.Stream).Methods(http.MethodGet)

	// Everything else is the single-page app; registered last so API routes win.
	// SPAHandler answers non-GET methods itself.
	r.router.PathPrefix("/").Handler(r.spaHandler)

	return r.router
}
