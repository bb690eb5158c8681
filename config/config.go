package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is built once at startup and handed to every component that needs it.
type Config struct {
	DBDriver string `envconfig:"DB_DRIVER" default:"sqlite"`
	DBURL    string `envconfig:"DB_URL"`
	DBName   string `envconfig:"DB_NAME" default:"kostify.db"`

	JWTSecret string        `envconfig:"JWT_SECRET" required:"true"`
	JWTTTL    time.Duration `envconfig:"JWT_TTL" default:"168h"`

	CORSOrigins string `envconfig:"CORS_ORIGINS" default:"*"`

	Port    string `envconfig:"PORT" default:"8080"`
	GinMode string `envconfig:"GIN_MODE"`

	RateLimitRPS   float64 `envconfig:"RATE_LIMIT_RPS" default:"20"`
	RateLimitBurst int     `envconfig:"RATE_LIMIT_BURST" default:"40"`
}

// Load reads .env files (if any) and then the process environment.
func Load(envFiles ...string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load(envFiles...)

	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// AllowedOrigins splits CORS_ORIGINS. A single "*" allows everything.
func (c *Config) AllowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
