package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/tward/kennel/internal/api/handlers"
	"github.com/tward/kennel/internal/auth"
	"github.com/tward/kennel/internal/services"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(authService services.AuthServiceProvider, dogService services.DogServiceProvider, tokens auth.TokenVerifier, users auth.UserResolver) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS configuration for development
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"}, // Adjust for your frontend URL
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	dogHandler := handlers.NewDogHandler(dogService)

	// Public authentication endpoints
	r.Post("/signup", authHandler.Signup)
	r.Get("/signin", authHandler.Signin)

	// Protected resource endpoints. The auth middleware runs before any
	// handler, so 401 takes precedence over 400 and 404.
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/dog", func(r chi.Router) {
			r.Use(auth.Middleware(tokens, users))
			r.Get("/", dogHandler.GetAll)
			r.Post("/", dogHandler.Create)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", dogHandler.Get)
				r.Put("/", dogHandler.Update)
			})
		})
	})

	return r
}
