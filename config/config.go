package config

import "github.com/caarlos0/env/v6"

type Config struct {
	// Server configuration
	Server struct {
		// Port the API listens on
		Port string `env:"PORT" envDefault:"5280"`
	}

	// Database configuration
	Database struct {
		// Path to the sqlite database file
		Path string `env:"DB_PATH" envDefault:"database/ladrillo.db"`
	}

	// Rates provider configuration
	Rates struct {
		// Base URL of the economic indicator API
		BaseURL string `env:"RATES_BASE_URL" envDefault:"https://mindicador.cl/api"`

		// Request timeout in seconds
		TimeoutSeconds int `env:"RATES_TIMEOUT" envDefault:"10"`

		// Snapshot cache validity in minutes
		CacheTTLMinutes int `env:"RATES_CACHE_TTL" envDefault:"60"`

		// Fallback indicator values used when the provider is unreachable
		// and no snapshot has been stored yet
		FallbackUFCLP  float64 `env:"FALLBACK_UF_CLP" envDefault:"38500"`
		FallbackEURCLP float64 `env:"FALLBACK_EUR_CLP" envDefault:"1020"`
		FallbackUSDCLP float64 `env:"FALLBACK_USD_CLP" envDefault:"980"`
	}

	// Market reference configuration
	Market struct {
		// Optional JSON file overriding the built-in commune reference
		// prices
		ReferenceOverridePath string `env:"MARKET_REFERENCE_PATH" envDefault:""`
	}
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
