package routes

import (
	"net/http"
	"time"

	"github.com/Adwait10-prog/Rian-Audio-Editor2/app"
	"github.com/Adwait10-prog/Rian-Audio-Editor2/handlers"
	"github.com/Adwait10-prog/Rian-Audio-Editor2/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// SetupRoutes configures all application routes and middleware
func SetupRoutes(deps *app.Dependencies) http.Handler {
	r := chi.NewRouter()

	// Core middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// The editor frontend is served from a separate origin; the original
	// service allowed any origin.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		MaxAge:         3600,
	}))

	audioHandler := handlers.NewAudioHandler(deps.Processor, deps.Logger)

	r.Get("/health", handlers.HandleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/import", audioHandler.HandleImport)
		r.Get("/waveform/{cacheKey}", audioHandler.HandleWaveform)
		r.Get("/peaks/{cacheKey}", audioHandler.HandlePeaks)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		_ = utils.WriteNotFound(w, "route not found")
	})

	return r
}
