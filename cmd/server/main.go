package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kevink520/exercisetracker/internal/api"
	"github.com/kevink520/exercisetracker/internal/config"
	"github.com/kevink520/exercisetracker/internal/repository"
	"github.com/kevink520/exercisetracker/internal/repository/mongo"
	"github.com/kevink520/exercisetracker/internal/service"

	"github.com/gin-gonic/gin"
)

func main() {
	log.Println("Starting Exercise Tracker Server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Printf("Configuration loaded (storage model: %s).", cfg.Storage.Model)

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
	}
	defer func() {
		log.Println("Disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Println("Database connection established.")

	// --- Ensure Indexes ---
	log.Println("Ensuring database indexes...")
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		switch cfg.Storage.Model {
		case config.StorageModelNormalized:
			mongo.EnsureUserIndexes(ctx, appDB.Collection("users"))
			mongo.EnsureExerciseIndexes(ctx, appDB.Collection("exercises"))
		case config.StorageModelDenormalized:
			mongo.EnsureUserLogIndexes(ctx, appDB.Collection("user_logs"))
		}
		log.Println("Index creation process completed.")
	}()

	// --- Initialize Store ---
	log.Println("Initializing log store...")
	var store repository.LogStore
	switch cfg.Storage.Model {
	case config.StorageModelDenormalized:
		store = repository.NewDenormalizedStore(mongo.NewMongoUserLogRepository(appDB))
	default:
		userRepo := mongo.NewMongoUserRepository(appDB)
		exerciseRepo := mongo.NewMongoExerciseRepository(appDB)
		store = repository.NewNormalizedStore(userRepo, exerciseRepo)
	}

	// --- Initialize Services ---
	log.Println("Initializing services...")
	trackerService := service.NewTrackerService(store, time.Now, cfg.Dates.Strict)

	// --- Initialize Gin Engine ---
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Setup Routes ---
	log.Println("Setting up API routes...")
	api.SetupRoutes(router, trackerService, cfg.Assets.PublicDir, cfg.Assets.ViewsDir)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
