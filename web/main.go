package main

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/ejharv/boxtracer/web/server"
)

func main() {
	// Parse command line flags
	port := flag.Int("port", 8080, "Port to serve on")
	flag.Parse()

	// Optional .env for S3 publishing configuration
	_ = godotenv.Load()

	webServer, err := server.NewServer(*port)
	if err != nil {
		log.Printf("Error creating server: %v", err)
		os.Exit(1)
	}

	log.Printf("Box Tracer Web Server")
	log.Printf("Rendering at http://localhost:%d/api/render", *port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
