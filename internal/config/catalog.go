package config

import "time"

const defaultCatalogTimeout = 10 * time.Second

// CatalogConfig controls how we talk to the external product catalog.
type CatalogConfig struct {
	BaseURL string        `env:"CATALOG_BASE_URL" envDefault:"https://dummyjson.com"`
	Timeout time.Duration `env:"CATALOG_TIMEOUT" envDefault:"10s"`
	// RatePerSecond throttles outbound calls; zero disables the limiter.
	RatePerSecond float64 `env:"CATALOG_RATE_PER_SECOND" envDefault:"0"`
	Burst         int     `env:"CATALOG_BURST" envDefault:"1"`
}
