package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv reads .env (or ENV_FILE when set) into the process environment.
// Variables that are already set win over the file.
func LoadEnv() {
	file := GetEnv("ENV_FILE", ".env")
	if err := godotenv.Load(file); err != nil {
		log.Printf("env: %s not loaded, using process environment", file)
		return
	}
	log.Printf("env: loaded %s", file)
}

// GetEnv returns the value of key, or def when it is unset or empty.
func GetEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
