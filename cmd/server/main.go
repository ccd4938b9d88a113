package main

import (
	"log"
	"os"

	"github.com/alkime/pillars/internal/config"
	"github.com/alkime/pillars/internal/content"
	"github.com/alkime/pillars/internal/logger"
	"github.com/alkime/pillars/internal/pillars"
	"github.com/alkime/pillars/internal/server"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Setup structured logging
	slogger := logger.SetupLogger(cfg)

	// Resolve the completion backend. A missing API key blocks startup with a
	// clear message instead of failing on the first generation request.
	var completer content.Completer

	switch cfg.Provider {
	case config.ProviderAnthropic:
		apiKey := os.Getenv("ANTHROPIC_API_KEY")
		if apiKey == "" {
			log.Fatal("Missing Anthropic API key: set ANTHROPIC_API_KEY")
		}

		completer = content.NewAnthropicCompleter(apiKey, cfg.Model)

	default:
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			log.Fatal("Missing OpenAI API key: set OPENAI_API_KEY")
		}

		completer = content.NewOpenAICompleter(apiKey, cfg.Model)
	}

	// Load the content configuration documents
	schedule, err := pillars.LoadSchedule(cfg.PillarsFile)
	if err != nil {
		log.Fatalf("Failed to load pillar schedule: %v", err)
	}

	profile, err := pillars.LoadVoiceProfile(cfg.VoiceProfileFile)
	if err != nil {
		log.Fatalf("Failed to load voice profile: %v", err)
	}

	generator := content.NewGenerator(completer, schedule, profile).WithTemperature(cfg.Temperature)

	slogger.Info("Starting Pillars server",
		"env", cfg.Env,
		"port", cfg.Port,
		"provider", cfg.Provider,
	)

	srv := server.New(cfg, slogger, generator, schedule)
	if err := server.Run(srv); err != nil {
		slogger.Error("Failed to start server", "error", err)
		log.Fatalf("Fatal: %v", err)
	}
}
