package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/ironboundtech/TheDrinkDistrict/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, err := app.NewApp(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := application.Run(ctx); err != nil {
		log.Fatalf("Failed to run application: %v", err)
	}
}
