package confs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadConfig loads environment variables from a .env file if present.
// Settings used by the server: DB_URL (or DB_HOST/DB_PORT/DB_USER/
// DB_PASSWORD/DB_NAME), JWT_SECRET, PORT.
func LoadConfig() error {
	// A missing .env is fine; env vars may come from the environment
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("warning: could not load .env: %v", err)
		}
	}
	return nil
}
