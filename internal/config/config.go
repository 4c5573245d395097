package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// DefaultLowStockThreshold is the quantity cutoff below which a product
// is flagged in the low-stock alert view.
const DefaultLowStockThreshold = 10

type Config struct {
	DBHost            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBPort            string
	AppEnv            string
	LowStockThreshold int
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:            os.Getenv("DB_HOST"),
		DBUser:            os.Getenv("DB_USER"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBName:            os.Getenv("DB_NAME"),
		DBPort:            os.Getenv("DB_PORT"),
		AppEnv:            os.Getenv("APP_ENV"),
		LowStockThreshold: DefaultLowStockThreshold,
	}

	if raw := os.Getenv("LOW_STOCK_THRESHOLD"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			log.Fatalf("invalid LOW_STOCK_THRESHOLD: %q", raw)
		}
		cfg.LowStockThreshold = n
	}

	if cfg.DBHost == "" {
		log.Fatal("Environment variables not loaded properly")
	}

	return cfg
}
