package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Run modes.
const (
	ModeServe  = "serve"
	ModeBrowse = "browse"
)

type Config struct {
	Mode         string
	Port         int
	DatabaseURL  string
	DatabaseType string
	SeedFile     string
	APIURL       string
}

// ParseFlags validates flags and selects the run mode. The first non-flag
// argument, if any, is the mode (serve or browse); serve is the default.
func ParseFlags(args []string) (Config, error) {
	cfg := Config{Mode: ModeServe}

	// Values from a .env file fill in unset environment variables.
	_ = godotenv.Load()

	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		cfg.Mode = args[0]
		args = args[1:]
	}
	if cfg.Mode != ModeServe && cfg.Mode != ModeBrowse {
		return Config{}, fmt.Errorf("unknown mode %q (expected serve or browse)", cfg.Mode)
	}

	fs := flag.NewFlagSet("activities", flag.ContinueOnError)

	// Server config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL or file path")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.SeedFile, "seed", "", "YAML seed file (defaults to built-in catalog)")

	// Browse config
	fs.StringVar(&cfg.APIURL, "a", "", "Activities API base URL (browse mode)")

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
			cfg.Port = 8000 // default
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("unknown database type %q (expected sqlite or postgres)", cfg.DatabaseType)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == "postgres" {
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = "activities.db"
	}

	if cfg.SeedFile == "" {
		cfg.SeedFile = os.Getenv("SEED_FILE")
	}

	if cfg.APIURL == "" {
		cfg.APIURL = os.Getenv("API_URL")
	}
	if cfg.APIURL == "" {
		cfg.APIURL = fmt.Sprintf("http://localhost:%d", cfg.Port)
	}

	return cfg, nil
}
