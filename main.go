package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/merchops/sku-dash-be/internal/api"
	"github.com/merchops/sku-dash-be/internal/config"
	"github.com/merchops/sku-dash-be/internal/logger"
	"github.com/merchops/sku-dash-be/internal/seed"
	"github.com/merchops/sku-dash-be/internal/services"
	"github.com/merchops/sku-dash-be/internal/store"
	"github.com/rs/zerolog/log"
)

func main() {
	logger.Init()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Set up the in-memory stores
	users := store.NewUsers()
	skus := store.NewSKUs()
	notes := store.NewNotes()

	// Seed users and SKUs; a missing seed file is fatal
	if err := seed.Users(cfg.UsersFile(), users); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed users")
	}
	if err := seed.SKUs(cfg.SKUsFile(), skus); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed SKUs")
	}
	log.Info().Int("users", users.Len()).Msg("Seed data loaded")

	// Set up services
	userService := services.NewUserService(users)
	skuService := services.NewSKUService(skus)
	noteService := services.NewNoteService(notes)

	// Set up router
	router := api.NewRouter(cfg, users, userService, skuService, noteService)

	// Set up server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Int("port", cfg.ServerPort).Msg("Server starting")
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("ListenAndServe()")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}
