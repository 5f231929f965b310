package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	AppName string
	Port    string
	Debug   bool

	// MongoDB
	MongoURL     string
	DatabaseName string

	// Chroma vector store
	ChromaURL        string
	ChromaCollection string
	GeminiAPIKey     string
	EmbeddingModel   string

	// Google OAuth
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURI  string

	// External APIs
	GoogleCalendarAPIKey string
	DiscordWebhookURL    string

	// CORS
	AllowedOrigins []string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	origins := []string{"*"}
	if raw := os.Getenv("ALLOWED_ORIGINS"); raw != "" {
		origins = origins[:0]
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	return &Config{
		AppName: getEnv("APP_NAME", "Backend API"),
		Port:    getEnv("PORT", "8000"),
		Debug:   getEnv("DEBUG", "false") == "true",

		MongoURL:     mongoURL(),
		DatabaseName: getEnv("DATABASE_NAME", "backend_db"),

		ChromaURL:        getEnv("CHROMA_URL", "http://localhost:8000"),
		ChromaCollection: getEnv("CHROMA_COLLECTION", "documents"),
		GeminiAPIKey:     getEnv("GEMINI_API_KEY", ""),
		EmbeddingModel:   getEnv("EMBEDDING_MODEL", "text-embedding-004"),

		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		GoogleRedirectURI:  getEnv("GOOGLE_OAUTH_REDIRECT_URI", ""),

		GoogleCalendarAPIKey: getEnv("GOOGLE_CALENDAR_API_KEY", ""),
		DiscordWebhookURL:    getEnv("DISCORD_WEBHOOK_URL", ""),

		AllowedOrigins: origins,
	}
}

// mongoURL resolves the connection string. An explicit MONGODB_URL wins over
// host/port/credential pieces, which win over the localhost default.
func mongoURL() string {
	if url := os.Getenv("MONGODB_URL"); url != "" {
		return url
	}

	host := os.Getenv("MONGO_HOST")
	if host == "" {
		return "mongodb://localhost:27017"
	}

	port := getEnv("MONGO_PORT", "27017")
	user := os.Getenv("MONGO_USER")
	password := os.Getenv("MONGO_PASSWORD")

	if user != "" {
		return fmt.Sprintf("mongodb://%s:%s@%s:%s", user, password, host, port)
	}
	return fmt.Sprintf("mongodb://%s:%s", host, port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
