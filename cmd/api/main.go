package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"impactlink-service/internal/app"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("[MAIN] No .env file found, relying on system env vars")
	}
	srv := app.NewServer()

	// Run server in a separate goroutine so we can listen for shutdown signals
	go func() {
		if err := srv.Start(); err != nil {
			log.Fatalf("server failed to start: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
}
