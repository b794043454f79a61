// Package config loads typed configuration from environment variables using
// struct tags (github.com/caarlos0/env/v11), with optional dotenv files
// (github.com/joho/godotenv).
//
// Load caches one parsed value per config type for the life of the process;
// Parse always reads the environment again. AppConfig groups the settings of
// the validkit binary and validates them with a schema of its own.
package config
