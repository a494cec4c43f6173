package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port      string        `env:"PORT" envDefault:"3000"`
	DgraphURL string        `env:"DGRAPH_URL" envDefault:"http://localhost:8080/graphql"`
	JWTSecret string        `env:"JWT_SECRET,required,notEmpty"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"1h"`
	// SubmitPolicy decides what a second score submission for the same
	// (team, round, judge) does: append, reject or overwrite.
	SubmitPolicy string `env:"SUBMIT_POLICY" envDefault:"append"`
}

// Load reads .env if present, then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	switch cfg.SubmitPolicy {
	case "append", "reject", "overwrite":
	default:
		return Config{}, fmt.Errorf("config: unknown SUBMIT_POLICY %q", cfg.SubmitPolicy)
	}
	return cfg, nil
}
