package config

import (
	"log"
	"os"

	"github.com/creasty/defaults"
	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort        string `default:":3000"`
	BaseURL           string `default:"http://localhost:3000"`
	DatabaseDSN       string
	AccessSecret      string `default:"secret-key"`
	AdminUsername     string
	AdminPasswordHash string
	CloudinaryUrl     string
	KafkaBroker       string
	KafkaTopic        string `default:"registration-events"`
	KafkaUsername     string
	KafkaPassword     string
}

func LoadConfig() Config {
	if os.Getenv("ENV") != "prod" {
		if err := godotenv.Overload(); err != nil {
			log.Println("Warning: env file not found or could not be loaded:", err)
		}
	}

	cfg := Config{
		ServerPort:        os.Getenv("SERVER_PORT"),
		BaseURL:           os.Getenv("BASE_URL"),
		DatabaseDSN:       os.Getenv("DATABASE_DSN"),
		AccessSecret:      os.Getenv("JWT_SECRET"),
		AdminUsername:     os.Getenv("ADMIN_USERNAME"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		CloudinaryUrl:     os.Getenv("CLOUDINARY_URL"),
		KafkaBroker:       os.Getenv("KAFKA_BROKER"),
		KafkaTopic:        os.Getenv("KAFKA_TOPIC"),
		KafkaUsername:     os.Getenv("KAFKA_USERNAME"),
		KafkaPassword:     os.Getenv("KAFKA_PASSWORD"),
	}

	if err := defaults.Set(&cfg); err != nil {
		log.Fatalf("config defaults error: %v", err)
	}

	return cfg
}
