package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	MongoURI        string
	JWTSecret       string
	OpenAIKey       string
	CloudinaryURL   string
	VAPIDPublicKey  string
	VAPIDPrivateKey string
	PushSubscriber  string
}

// Load reads .env when present, then the environment. JWT_SECRET and
// MONGODB_URI are required; everything else degrades a feature rather than
// the whole server.
func Load() Config {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	cfg := Config{
		Port:            getenv("PORT", "8080"),
		MongoURI:        os.Getenv("MONGODB_URI"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		OpenAIKey:       os.Getenv("OPENAI_API_KEY"),
		CloudinaryURL:   os.Getenv("CLOUDINARY_URL"),
		VAPIDPublicKey:  os.Getenv("VAPID_PUBLIC_KEY"),
		VAPIDPrivateKey: os.Getenv("VAPID_PRIVATE_KEY"),
		PushSubscriber:  getenv("PUSH_SUBSCRIBER", "mailto:admin@vibespace.app"),
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
