package main

import (
	"log"

	"github.com/banjomaryam17/socialmediaAPP/internal/transport/http"
)

func main() {
	if err := http.Run(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
