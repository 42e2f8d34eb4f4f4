package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"time"
)

// InsecureDefaultSecret signs tokens when no TOKEN_SECRET is configured.
// It is public knowledge and must never be relied on in production.
const InsecureDefaultSecret = "retroboard-dev-secret-do-not-use"

type Config struct {
	Port         int
	DataFile     string
	DatabaseURL  string
	DatabaseType string
	TokenSecret  string
	TokenTTL     time.Duration
}

// UsingDefaultSecret reports whether the insecure built-in secret is active.
func (c Config) UsingDefaultSecret() bool {
	return c.TokenSecret == InsecureDefaultSecret
}

// ParseFlags validates flags, applying env-variable fallbacks
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var ttlHours int

	fs := flag.NewFlagSet("retroboard", flag.ContinueOnError)

	// Network and storage config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DataFile, "f", "", "Snapshot file path (file backend)")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL (sql backend)")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.TokenSecret, "token-secret", "", "Token signing secret (prefer env)")
	fs.IntVar(&ttlHours, "token-ttl", 0, "Token time-to-live in hours")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 4410 // default
		}
	}

	if cfg.DataFile == "" {
		cfg.DataFile = os.Getenv("DATA_FILE")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}

	// Exactly one storage mode; the file backend is the default
	if cfg.DataFile == "" && cfg.DatabaseURL == "" {
		cfg.DataFile = "retroboard.json"
	}
	if cfg.DataFile != "" && cfg.DatabaseURL != "" {
		return Config{}, errors.New("configure either DATA_FILE or DATABASE_URL, not both")
	}

	if cfg.TokenSecret == "" {
		cfg.TokenSecret = os.Getenv("TOKEN_SECRET")
	}
	if cfg.TokenSecret == "" {
		cfg.TokenSecret = InsecureDefaultSecret
	}

	if ttlHours == 0 {
		if ttlStr := os.Getenv("TOKEN_TTL_HOURS"); ttlStr != "" {
			hours, err := strconv.Atoi(ttlStr)
			if err != nil {
				return Config{}, errors.New("invalid TOKEN_TTL_HOURS env variable")
			}
			ttlHours = hours
		}
	}
	if ttlHours < 0 {
		return Config{}, errors.New("token TTL must be positive")
	}
	cfg.TokenTTL = time.Duration(ttlHours) * time.Hour

	return cfg, nil
}
