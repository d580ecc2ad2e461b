package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/segmentio/kafka-go"

	"github.com/folioforge/folioforge/adapters/event"
	"github.com/folioforge/folioforge/adapters/persistence"
	portfolioUC "github.com/folioforge/folioforge/internal/application/usecase/portfolio"
	"github.com/folioforge/folioforge/internal/config"
	"github.com/folioforge/folioforge/pkg/logger"
)

func main() {
	fmt.Println("Starting FolioForge Worker...")

	// Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	// Database
	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: cannot connect Postgres: %v", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("FATAL: cannot connect Redis: %v", err)
	}
	defer redisClient.Close()

	// Repositories and cache
	publicRepo := persistence.NewPostgresPublicRepo(dbPool, appLogger)
	renderCache := persistence.NewRedisRenderCache(redisClient)

	// Worker Use Case
	processEventUC := portfolioUC.NewProcessPortfolioEventUseCase(publicRepo, renderCache, appLogger)

	// Kafka Consumer
	consumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicPortfolioEvents,
		GroupID:  "portfolio-processor-group",
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer consumer.Close()

	log.Printf("Worker listening on topic '%s'...", event.TopicPortfolioEvents)

	ctx := context.Background()
	for {
		msg, err := consumer.ReadMessage(ctx)
		if err != nil {
			log.Printf("ERROR: Failed to read message from Kafka: %v", err)
			continue
		}

		var payload event.PortfolioEventPayload
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			log.Printf("ERROR: Failed to unmarshal event: %v. Skipping.", err)
			commitMessage(consumer, msg)
			continue
		}

		log.Printf("Processing event: [%s] for PortfolioID: %s", payload.EventType, payload.PortfolioID)

		if err := processEventUC.Execute(ctx, payload); err != nil {
			log.Printf("ERROR: Failed to process event for PortfolioID %s: %v", payload.PortfolioID, err)
			continue
		}

		commitMessage(consumer, msg)
	}
}

func commitMessage(consumer *kafka.Reader, msg kafka.Message) {
	if err := consumer.CommitMessages(context.Background(), msg); err != nil {
		log.Printf("ERROR: Failed to commit message: %v", err)
	}
}
