package main

import (
	"flag"
	"log"
	"net/http"
	"time"

	"smartdict/a2a"
	"smartdict/config"
	"smartdict/dictionary"
	"smartdict/server"
)

func main() {
	// Structured timestamps for all logs
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	configPath := flag.String("config", "", "path to TOML config file")
	port := flag.Int("port", 0, "listening port (overrides config file and PORT env)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *port > 0 {
		cfg.Server.Port = *port
	}

	client := dictionary.NewClient(
		dictionary.WithBaseURL(cfg.Dictionary.BaseURL),
		dictionary.WithHTTPClient(&http.Client{
			Timeout: time.Duration(cfg.Dictionary.TimeoutSeconds) * time.Second,
		}),
	)
	agent := dictionary.NewAgent(
		dictionary.WithName(cfg.Agent.Name),
		dictionary.WithClient(client),
	)
	handler := a2a.NewHandler(agent)

	log.Printf("[Main] %s initialized (A2A protocol)", agent.Name())

	srv := server.New(cfg, agent, handler)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
