package utils

import (
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const ENV_FILENAME = ".env"

// InitEnvironmentVariables loads a .env file into the process environment so
// the APCA_* variables can be resolved by properties loading. A missing file
// is not an error: deployed environments provide real environment variables.
func InitEnvironmentVariables() error {
	envFile := os.Getenv("ALPACA_ENV_FILE")
	if envFile == "" {
		envFile = ENV_FILENAME
	}

	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		log.Debugf("no %s file found, using process environment", envFile)
		return nil
	}

	if err := godotenv.Load(envFile); err != nil {
		return err
	}

	log.Debugf("loaded environment variables from %s", envFile)

	return nil
}
