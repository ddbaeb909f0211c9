package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	RedisAddr     string
	RedisPassword string

	AppPort string
	AppEnv  string

	JWTSecret string

	// External pricing service used by checkout. Optional: checkout
	// falls back to local calculation when unset or unreachable.
	PricingServiceURL string

	// Directory invoices are written into.
	InvoiceDir string

	ShopName    string
	ShopAddress string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     os.Getenv("DB_PORT"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		AppPort: getEnv("APP_PORT", "8080"),
		AppEnv:  getEnv("APP_ENV", "development"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		PricingServiceURL: os.Getenv("PRICING_SERVICE_URL"),

		InvoiceDir: getEnv("INVOICE_DIR", "./invoices"),

		ShopName:    getEnv("SHOP_NAME", "Craft Việt"),
		ShopAddress: getEnv("SHOP_ADDRESS", "12 Hàng Gai, Hoàn Kiếm, Hà Nội"),
	}

	if cfg.DBHost == "" {
		log.Fatal("Environment variables not loaded properly")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
