package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/eventease/eventease/internal/logging"
	"github.com/eventease/eventease/internal/server"
	"github.com/eventease/eventease/internal/storage"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	logger := logging.Setup(os.Getenv("EVENTEASE_LOG_LEVEL"))

	port := os.Getenv("EVENTEASE_PORT")
	if port == "" {
		port = "8080"
	}

	cfg := server.Config{
		BackendURL: os.Getenv("EVENTEASE_BACKEND_URL"),
		APIKey:     os.Getenv("EVENTEASE_API_KEY"),
		JWTSecret:  os.Getenv("EVENTEASE_JWT_SECRET"),
		Storage: storage.Config{
			Endpoint:      os.Getenv("EVENTEASE_STORAGE_ENDPOINT"),
			Bucket:        os.Getenv("EVENTEASE_STORAGE_BUCKET"),
			Region:        os.Getenv("EVENTEASE_STORAGE_REGION"),
			AccessKey:     os.Getenv("EVENTEASE_STORAGE_ACCESS_KEY"),
			SecretKey:     os.Getenv("EVENTEASE_STORAGE_SECRET_KEY"),
			PublicBaseURL: os.Getenv("EVENTEASE_STORAGE_PUBLIC_URL"),
		},
	}
	if cfg.BackendURL == "" {
		log.Fatal("EVENTEASE_BACKEND_URL is required")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("EVENTEASE_JWT_SECRET is required")
	}

	srv := server.New(cfg, logger)

	// Drop stale rate limiter windows so the map doesn't grow unbounded.
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			srv.RateLimiter().Cleanup()
		}
	}()

	httpServer := &http.Server{
		Addr:         ":" + port,
		Handler:      srv.Router(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		fmt.Printf("EventEase running at http://localhost:%s\n", port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\nShutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown error: %v", err)
	}
}
