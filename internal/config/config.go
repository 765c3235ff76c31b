package config

// Config holds runtime configuration for the server.
type Config struct {
	Port        string `env:"PORT" envDefault:"3000"`
	AccessToken string `env:"ACCESS_TOKEN" envDefault:"12345"`
	Games       GamesConfig
	Catalog     CatalogConfig
	Products    ProductsConfig
	CORS        CORSConfig
	Metrics     MetricsConfig
	Log         LogConfig
}

// GamesConfig controls the games store.
type GamesConfig struct {
	// Storage is "file" or "memory"; memory never touches disk.
	Storage    string `env:"GAMES_STORAGE" envDefault:"file"`
	File       string `env:"GAMES_FILE" envDefault:"data/games.json"`
	PolicyYear int    `env:"GAMES_POLICY_YEAR" envDefault:"2025"`
}

// ProductsConfig controls the product mock source.
type ProductsConfig struct {
	MockCount int `env:"PRODUCTS_MOCK_COUNT" envDefault:"10"`
}

// CORSConfig lists origins allowed to call the API from a browser.
type CORSConfig struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
}

// LogConfig selects log level and output format.
type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"`
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (Config, error) {
	var cfg Config
	if err := parseEnv(&cfg); err != nil {
		return Config{}, err
	}
	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	if c.Port == "" {
		c.Port = defaultPort
	}
	if c.Games.Storage != StorageMemory {
		c.Games.Storage = StorageFile
	}
	if c.Games.File == "" {
		c.Games.File = defaultGamesFile
	}
	if c.Games.PolicyYear <= 0 {
		c.Games.PolicyYear = defaultPolicyYear
	}
	if c.Products.MockCount <= 0 {
		c.Products.MockCount = defaultMockCount
	}
	if c.Catalog.BaseURL == "" {
		c.Catalog.BaseURL = defaultCatalogURL
	}
	if c.Catalog.Timeout <= 0 {
		c.Catalog.Timeout = defaultCatalogTimeout
	}
	if c.Catalog.Burst <= 0 {
		c.Catalog.Burst = 1
	}
	if c.Metrics.Port == "" {
		c.Metrics.Port = defaultMetricsPort
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = defaultServiceName
	}
}
