package config

import (
	"os"

	"github.com/joho/godotenv"
)

func Load() App {
	// .env is optional; deployments set the environment directly
	_ = godotenv.Load()

	cfg := App{
		Port:      getenv("APP_PORT", "8080"),
		DataDir:   getenv("DATA_DIR", "./data"),
		JWTSecret: getenv("JWT_SECRET", "local_dev_secret"),
		Env:       getenv("APP_ENV", "dev"),
	}
	return cfg
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
