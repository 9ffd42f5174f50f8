package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/merchops/sku-dash-be/internal/api/handlers"
	"github.com/merchops/sku-dash-be/internal/auth"
	"github.com/merchops/sku-dash-be/internal/config"
	"github.com/merchops/sku-dash-be/internal/services"
	"github.com/merchops/sku-dash-be/internal/store"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(
	cfg *config.Config,
	users *store.Users,
	userService services.UserServiceProvider,
	skuService services.SKUServiceProvider,
	noteService services.NoteServiceProvider,
) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS for the dashboard dev origins
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, cfg.JWTSecret, cfg.TokenTTL)
	skuHandler := handlers.NewSKUHandler(skuService)
	noteHandler := handlers.NewNoteHandler(noteService)

	r.Get("/health", handlers.Health)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
	})

	// Everything below requires a valid bearer token
	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware(cfg.JWTSecret, users))

		r.Route("/skus", func(r chi.Router) {
			r.Get("/", skuHandler.List)
			r.Get("/{sku_id}", skuHandler.Get)
			r.Get("/{sku_id}/notes", noteHandler.ListForSKU)
		})

		r.Route("/notes", func(r chi.Router) {
			r.Post("/", noteHandler.Create)
			r.Put("/{note_id}", noteHandler.Update)
			r.Delete("/{note_id}", noteHandler.Delete)
		})
	})

	return r
}
