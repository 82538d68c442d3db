package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/shiftsync/shiftsync_backend/config"
	"github.com/shiftsync/shiftsync_backend/internal/routes"
)

func main() {
	cfg := config.NewConfig()

	redisClient := config.NewRedisClient()
	defer redisClient.Close()

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("❌ Redis connection failed: %v", err)
	}

	router := routes.Setup(cfg, redisClient)

	serverAddress := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("🚀 Server starting on %s", serverAddress)
	log.Fatal(http.ListenAndServe(serverAddress, router))
}
