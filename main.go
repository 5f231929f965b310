package main

import (
	"context"
	"log"

	api "discal-backend/cmd/api"
	authUsecase "discal-backend/internal/auth/usecase"
	calendarRepo "discal-backend/internal/calendar/repository"
	calendarUsecase "discal-backend/internal/calendar/usecase"
	searchRepo "discal-backend/internal/search/repository"
	searchUsecase "discal-backend/internal/search/usecase"
	userRepo "discal-backend/internal/user/repository"
	userUsecase "discal-backend/internal/user/usecase"
	webhookRepo "discal-backend/internal/webhook/repository"
	webhookUsecase "discal-backend/internal/webhook/usecase"
	"discal-backend/pkg/chroma"
	"discal-backend/pkg/config"
	"discal-backend/pkg/database"
	"discal-backend/pkg/discord"
	"discal-backend/pkg/google"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	ctx := context.Background()
	client, db, err := database.NewMongoConnection(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("Failed to disconnect from database: %v", err)
		}
	}()

	if err := database.EnsureIndexes(ctx, db); err != nil {
		log.Fatal("Failed to ensure indexes:", err)
	}

	// Initialize repositories (dependency injection)
	userRepository := userRepo.NewUserRepository(db)
	eventRepository := calendarRepo.NewEventRepository(db)
	vectorRepository := searchRepo.NewVectorRecordRepository(db)
	messageRepository := webhookRepo.NewMessageLogRepository(db)

	// Initialize external adapters
	oauthService := google.NewOAuthService(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURI)
	calendarService := google.NewCalendarService(cfg.GoogleClientID, cfg.GoogleClientSecret)
	notifier := discord.NewNotifier(cfg.DiscordWebhookURL)

	// Vector search degrades to empty results when Chroma is unreachable
	var vectorIndex searchUsecase.VectorIndex
	chromaClient, err := chroma.NewClient(cfg)
	if err != nil {
		log.Printf("Warning: Failed to initialize Chroma client: %v. Vector search will not be available.", err)
	} else {
		vectorIndex = chromaClient
		log.Println("Chroma client initialized successfully")
	}

	// Initialize use cases (dependency injection)
	userUsecaseInstance := userUsecase.NewUserUsecase(userRepository)
	calendarUsecaseInstance := calendarUsecase.NewCalendarUsecase(eventRepository, calendarService)
	authUsecaseInstance := authUsecase.NewAuthUsecase(oauthService, userRepository)
	searchUsecaseInstance := searchUsecase.NewSearchUsecase(vectorIndex, vectorRepository)
	webhookUsecaseInstance := webhookUsecase.NewWebhookUsecase(messageRepository)

	// Sync the calendar right after a successful OAuth callback
	authUsecaseInstance.SetCalendarSyncCallback(calendarUsecaseInstance.SyncFromGoogle)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, userUsecaseInstance, searchUsecaseInstance, webhookUsecaseInstance, notifier, cfg)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
