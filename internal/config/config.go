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
	AppPort    string
	AppEnv     string

	JWTSecret string

	// Payment gateway (server-to-server)
	GatewayBaseURL   string
	GatewayServerKey string

	// External reference-data providers
	RegionBaseURL  string
	CourierBaseURL string
	CourierAPIKey  string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     os.Getenv("DB_PORT"),
		AppPort:    os.Getenv("APP_PORT"),
		AppEnv:     os.Getenv("APP_ENV"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		GatewayBaseURL:   os.Getenv("PAYMENT_BASE_URL"),
		GatewayServerKey: os.Getenv("PAYMENT_SERVER_KEY"),

		RegionBaseURL:  os.Getenv("REGION_BASE_URL"),
		CourierBaseURL: os.Getenv("COURIER_BASE_URL"),
		CourierAPIKey:  os.Getenv("COURIER_API_KEY"),
	}

	if cfg.DBHost == "" {
		log.Fatal("Environment variables not loaded properly")
	}

	if cfg.AppPort == "" {
		cfg.AppPort = "8080"
	}

	return cfg
}
