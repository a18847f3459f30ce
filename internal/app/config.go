package app

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"sealbox/internal/crypto"
)

// keyEnvVar names the environment variable holding the default key,
// standard base64 encoded.
const keyEnvVar = "SEALBOX_KEY"

// Config holds runtime wiring options for building the app.
type Config struct {
	// DefaultKey is the service-lifetime default key. Nil means no default
	// was configured anywhere.
	DefaultKey []byte
}

// LoadConfig reads configuration from a .env file (if present) and the
// environment. keyB64 overrides the environment when non-empty, so a CLI
// flag can take precedence.
func LoadConfig(keyB64 string) (Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	if keyB64 == "" {
		keyB64 = os.Getenv(keyEnvVar)
	}
	if keyB64 == "" {
		return Config{}, nil
	}

	key, err := crypto.FromB64(keyB64)
	if err != nil {
		return Config{}, fmt.Errorf("decode key: %w", err)
	}
	return Config{DefaultKey: key}, nil
}
