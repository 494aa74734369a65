package config

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads .env.local then .env. godotenv never overwrites
// variables that are already set, so real OS env vars win over both
// files and .env.local wins over .env. Returns the files found.
func LoadDotEnv() []string {
	var loaded []string
	for _, f := range []string{".env.local", ".env"} {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err == nil {
			loaded = append(loaded, f)
		}
	}
	return loaded
}
