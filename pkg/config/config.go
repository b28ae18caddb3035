package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Settings holds everything the app reads from the environment.
// Postgres variables are required; the rest have defaults.
type Settings struct {
	Debug bool
	Port  string

	PostgresUsername string
	PostgresPassword string
	PostgresHost     string
	PostgresPort     string
	PostgresDB       string
}

func Load() (*Settings, error) {
	debug := strings.ToLower(os.Getenv("DEBUG")) != "false"

	envFile := ".env.prod"
	if debug {
		envFile = ".env.dev"
	}
	// Missing env file is fine, real env vars may already be set.
	_ = godotenv.Load(envFile)

	s := &Settings{
		Debug: debug,
		Port:  os.Getenv("PORT"),
	}
	if s.Port == "" {
		s.Port = "8001"
	}

	required := map[string]*string{
		"POSTGRES_USERNAME": &s.PostgresUsername,
		"POSTGRES_PASSWORD": &s.PostgresPassword,
		"POSTGRES_HOST":     &s.PostgresHost,
		"POSTGRES_PORT":     &s.PostgresPort,
		"POSTGRES_DB":       &s.PostgresDB,
	}
	for name, dst := range required {
		value := os.Getenv(name)
		if value == "" {
			return nil, fmt.Errorf("missing required environment variable: %s", name)
		}
		*dst = value
	}
	if _, err := strconv.Atoi(s.PostgresPort); err != nil {
		return nil, fmt.Errorf("POSTGRES_PORT must be numeric: %w", err)
	}

	return s, nil
}

func (s *Settings) DatabaseURL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s",
		s.PostgresUsername,
		s.PostgresPassword,
		s.PostgresHost,
		s.PostgresPort,
		s.PostgresDB,
	)
}
