package main

import (
	_ "antenna_ops/docs"
	"antenna_ops/internal/adapter/http/routes"
	"antenna_ops/internal/app"
	"antenna_ops/internal/config"
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Antenna Operations API
// @version         1.0
// @description     Local operations dashboard: orders, contacts, trainings, letters, tasks and the product catalog.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /v1

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	a, err := app.New(ctx, cfg, app.Options{Live: true})
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
	defer a.Close()

	if err := routes.Run(ctx, a); err != nil {
		log.Printf("Server stopped with error: %v", err)
	}
}
