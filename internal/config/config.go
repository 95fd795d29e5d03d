package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL string
	Port        string
	// CurrentUserID is the identity favorite operations run under when
	// no bearer token is presented. A real auth layer replaces this by
	// signing tokens with JWTSecret.
	CurrentUserID int64
	JWTSecret     string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		DatabaseURL:   getEnv("DATABASE_URL", "starcatalog.db"),
		Port:          getEnv("PORT", "3000"),
		CurrentUserID: parseInt64Env("CURRENT_USER_ID", 1),
		JWTSecret:     strings.TrimSpace(os.Getenv("JWT_SECRET")),
	}
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

func parseInt64Env(name string, fallback int64) int64 {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return fallback
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil || id <= 0 {
		log.Printf("invalid %s value %q, using %d", name, v, fallback)
		return fallback
	}
	return id
}
