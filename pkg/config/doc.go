// Package config loads typed configuration from environment variables.
//
// Each package that needs settings declares a Config struct with
// github.com/caarlos0/env tags and defaults; this package parses it, reads
// .env files through github.com/joho/godotenv and caches the result per
// type:
//
//	var sc sanitizer.Config
//	config.MustLoad(&sc)
//	engine := sanitizer.New(sanitizer.WithConfig(sc))
//
// Load reads ./.env once on first use. LoadEnv loads explicit files and
// clears the cache. Reload re-parses a single type.
package config
