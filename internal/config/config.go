package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Addr        string
	DatabaseURL string // empty means the local sqlite store
	SQLitePath  string

	// Fallback admin password used only when the AppConfig row has none.
	AdminPasswordFallback string

	GroqAPIKey string

	WeatherLat float64
	WeatherLon float64

	Timezone string
}

// Load reads .env (when present) and environment variables.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file, using system environment variables")
	}

	return &Config{
		Addr:                  getEnv("ADDR", ":8080"),
		DatabaseURL:           getEnv("DATABASE_URL", ""),
		SQLitePath:            getEnv("SQLITE_PATH", "studio.db"),
		AdminPasswordFallback: getEnv("ADMIN_PASSWORD", "admin123"),
		GroqAPIKey:            getEnv("GROQ_API_KEY", ""),
		WeatherLat:            getEnvFloat("WEATHER_LAT", 32.0853), // Tel Aviv
		WeatherLon:            getEnvFloat("WEATHER_LON", 34.7818),
		Timezone:              getEnv("TZ_NAME", "Asia/Jerusalem"),
	}
}

// RemoteStore reports whether remote database credentials are configured.
func (c *Config) RemoteStore() bool {
	return c.DatabaseURL != ""
}

// Location resolves the configured timezone, falling back to UTC.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}
