package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"promptlink/internal/config"
	"promptlink/internal/kvstore"
	"promptlink/internal/metrics"
	"promptlink/internal/server"
)

func main() {
	cfg := config.Load()

	// Initialize the share store. A nil store is a supported degraded mode:
	// the share endpoints answer 503 until credentials are provided.
	store := kvstore.New(cfg)
	if store != nil {
		defer store.Close()
	}

	metrics.Init()

	srv := server.New(cfg)
	srv.RegisterRoutes(store)

	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("Server started on %s", cfg.ServerAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
