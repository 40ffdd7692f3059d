package util

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv loads a .env file from the working directory when one is
// present; configuration through real environment variables alone is
// also fine.
func LoadEnv() error {
	if err := godotenv.Load(); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return nil
}
