// cmd/ctrlplayd/main.go
package main

import (
	"log"
	"os"

	"ctrlplay/internal/api"
)

const defaultListenAddr = ":8080"

func main() {
	addr := os.Getenv("CTRLPLAYD_LISTEN_ADDR")
	if addr == "" {
		addr = defaultListenAddr
	}

	router := api.NewRouter()
	log.Printf("ctrlplayd listening on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
