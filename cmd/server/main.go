package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/BrianKhong-BK/vercel-fsaAPI/internal/app"
	"github.com/BrianKhong-BK/vercel-fsaAPI/internal/config"
	"github.com/BrianKhong-BK/vercel-fsaAPI/internal/queue"
)

func main() {
	// .env is a development convenience; deployed environments set real vars.
	_ = godotenv.Load()

	cfg := config.Load()
	a, err := app.New(cfg)
	if err != nil {
		log.Fatalf("startup: %v", err)
	}
	defer a.Close()

	// The booking.created consumer only runs in the long-lived shape; the
	// on-demand function shape has no place for a background loop.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := a.Echo().Start(addr); err != nil {
		log.Fatal(err)
	}
}
