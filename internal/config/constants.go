package config

// Games storage backends.
const (
	StorageFile   = "file"
	StorageMemory = "memory"
)

const (
	defaultPort        = "3000"
	defaultAccessToken = "12345"
	defaultGamesFile   = "data/games.json"
	defaultPolicyYear  = 2025
	defaultCatalogURL  = "https://dummyjson.com"
	defaultMockCount   = 10
	defaultMetricsPort = "9090"
	defaultServiceName = "games-api"
)
