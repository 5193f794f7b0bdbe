package config

import (
	"os"
	"testing"
)

func unset(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "") // register cleanup
	os.Unsetenv(key)
}

func TestLoadDefaults(t *testing.T) {
	unset(t, "MONGO_URI")
	unset(t, "MONGO_DATABASE")
	unset(t, "API_PORT")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MongoURI != "mongodb://localhost:27017" {
		t.Errorf("MongoURI = %q, want default", cfg.MongoURI)
	}
	if cfg.MongoDatabase != "vaxicare" {
		t.Errorf("MongoDatabase = %q, want vaxicare", cfg.MongoDatabase)
	}
	if cfg.APIPort != "8080" {
		t.Errorf("APIPort = %q, want 8080", cfg.APIPort)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("MONGO_DATABASE", "clinic")
	t.Setenv("API_PORT", "9090")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("PUBLIC_BASE_URL", "https://api.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MongoURI != "mongodb://db:27017" {
		t.Errorf("MongoURI = %q", cfg.MongoURI)
	}
	if cfg.MongoDatabase != "clinic" {
		t.Errorf("MongoDatabase = %q", cfg.MongoDatabase)
	}
	if cfg.APIPort != "9090" {
		t.Errorf("APIPort = %q", cfg.APIPort)
	}
	if cfg.JWTSecret != "s3cret" {
		t.Errorf("JWTSecret = %q", cfg.JWTSecret)
	}
	if cfg.PublicBaseURL != "https://api.example.com" {
		t.Errorf("PublicBaseURL = %q", cfg.PublicBaseURL)
	}
}
