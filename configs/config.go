package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource           string
	Port               string
	JWTSecret          string
	GooglePlacesAPIKey string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, reading environment directly")
	}

	return &Config{
		DBSource:           getEnv("DB_SOURCE", "dinner.db"),
		Port:               getEnv("PORT", "8000"),
		JWTSecret:          getEnv("JWT_SECRET", "changeme"),
		GooglePlacesAPIKey: MustGetEnv("GOOGLE_PLACES_API_KEY"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func MustGetEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok {
		log.Fatalf("missing env: %s", key)
	}
	return v
}
