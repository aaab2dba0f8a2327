package main

import (
	"log"

	"github.com/mainra/showcase/internal/app"
)

func main() {
	a, err := app.New()
	if err != nil {
		log.Fatalf("❌ showcase failed to start: %v", err)
	}
	if err := a.Run(); err != nil {
		log.Fatalf("❌ showcase stopped with an error: %v", err)
	}
}
