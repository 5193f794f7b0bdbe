package config

import (
	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds everything the API reads from the environment. It is loaded
// once at startup and treated as immutable afterwards.
type Config struct {
	MongoURI      string `env:"MONGO_URI" env-default:"mongodb://localhost:27017"`
	MongoDatabase string `env:"MONGO_DATABASE" env-default:"vaxicare"`
	APIPort       string `env:"API_PORT" env-default:"8080"`
	JWTSecret     string `env:"JWT_SECRET"`
	// PublicBaseURL prefixes resolved image download URLs, e.g.
	// https://api.vaxicare.example. Empty means relative URLs.
	PublicBaseURL string `env:"PUBLIC_BASE_URL"`
	CORSOrigin    string `env:"CORS_ORIGIN" env-default:"http://localhost:5173"`
}

// Load reads the configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
