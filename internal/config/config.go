package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config collects the shop settings read from the environment.
type Config struct {
	Port          string
	RedisAddr     string
	ShopName      string
	PromptPayID   string
	OwnerPasscode string
	UploadDir     string
}

// Load reads .env (if present) and the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	return &Config{
		Port:          getenv("PORT", "3000"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		ShopName:      getenv("SHOP_NAME", "My Shop"),
		PromptPayID:   os.Getenv("PROMPTPAY_ID"),
		OwnerPasscode: getenv("OWNER_PASSCODE", "123456"),
		UploadDir:     getenv("UPLOAD_DIR", "./uploads"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
