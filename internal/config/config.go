package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBPort        string
	AppPort       string
	AppEnv        string
	PublicBaseURL string
	JWTSecret     string
	VismaPayLang  string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:        os.Getenv("DB_HOST"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        os.Getenv("DB_NAME"),
		DBPort:        os.Getenv("DB_PORT"),
		AppPort:       os.Getenv("APP_PORT"),
		AppEnv:        os.Getenv("APP_ENV"),
		PublicBaseURL: os.Getenv("PUBLIC_BASE_URL"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		VismaPayLang:  os.Getenv("VISMA_PAY_LANG"),
	}

	if cfg.VismaPayLang == "" {
		cfg.VismaPayLang = "en"
	}

	if cfg.DBHost == "" || cfg.PublicBaseURL == "" {
		log.Fatal("Environment variables not loaded properly")
	}

	return cfg
}
