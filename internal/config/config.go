package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr          string        `yaml:"addr"`
	JWTSecret     string        `yaml:"jwt_secret"`
	APITimeout    time.Duration `yaml:"timeout"`
	DatabasePath  string        `yaml:"database_path"`
	TokenDuration time.Duration `yaml:"token_duration"`
}

// LoadConfig builds a Config from environment variables, then overlays the
// optional YAML file at path. There is no default JWT secret: login refuses
// to issue tokens until one is configured.
func LoadConfig(path string) (*Config, error) {
	apiTimeout := 15 * time.Second
	tokenDuration := 7 * 24 * time.Hour

	cfg := &Config{
		Addr:          getEnv("AGENCY_ADDR", ":8080"),
		JWTSecret:     getEnv("AGENCY_JWT_SECRET", ""),
		APITimeout:    apiTimeout,
		DatabasePath:  getEnv("AGENCY_DATABASE_PATH", "agency.db"),
		TokenDuration: tokenDuration,
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}
