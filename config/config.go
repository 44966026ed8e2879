package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Client configures the SDK side: gateway address resolution, request
// timeout, and logging.
type Client struct {
	BaseURL   string        `env:"SMARTSAAS_BASE_URL"`
	Hostname  string        `env:"SMARTSAAS_HOSTNAME"`
	Timeout   time.Duration `env:"SMARTSAAS_TIMEOUT" envDefault:"30s"`
	TokenFile string        `env:"SMARTSAAS_TOKEN_FILE"`
	LogLevel  string        `env:"SMARTSAAS_LOG_LEVEL" envDefault:"info"`
	Env       string        `env:"SMARTSAAS_ENV" envDefault:"development"`
}

// Stub configures the local stub backend.
type Stub struct {
	Addr      string `env:"STUB_ADDR" envDefault:":8000"`
	JWTSecret string `env:"STUB_JWT_SECRET" envDefault:"smartsaas-dev-secret"`
	LogLevel  string `env:"STUB_LOG_LEVEL" envDefault:"info"`
	Env       string `env:"STUB_ENV" envDefault:"development"`
}

func ParseClient() (*Client, error) {
	cfg := &Client{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse client env: %w", err)
	}
	return cfg, nil
}

func ParseStub() (*Stub, error) {
	cfg := &Stub{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse stub env: %w", err)
	}
	return cfg, nil
}
