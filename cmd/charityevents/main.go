package main

import (
	"log"

	"github.com/XXQ0321/charity-events/internal/app"
	"github.com/XXQ0321/charity-events/internal/config"
)

func main() {
	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}

	if err = application.Run(); err != nil {
		log.Fatalf("app run: %v", err)
	}
}
