// Package config handles loading and parsing application configuration.
// It supports three sources (in priority order):
//  1. An environment variable:  CONFIG_PATH=/path/to/config.yaml
//  2. A command-line flag:      --config=/path/to/config.yaml
//  3. Environment variables alone, falling back to the tag defaults
//
// Source 3 means the binary runs with no arguments, flags, or files at
// all — every field carries a usable default. A .env file in the
// working directory is loaded best-effort before the environment is
// read, so local overrides don't need to be exported by hand.
package config

import (
	"flag"
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config is the root configuration structure.
// Every field maps to a key in the YAML file AND can be overridden
// by the corresponding environment variable (env:"...").
//
// env-default supplies the value used when neither a config file nor
// the environment sets one.
type Config struct {
	// Env controls log format and verbosity.
	// Valid values: "dev", "staging", "prod"
	Env string `yaml:"env" env:"ENV" env-default:"dev"`

	// StoragePath is the SQLite data source name for the roster store.
	// The default ":memory:" keeps the roster entirely in-process —
	// nothing is persisted across runs.
	StoragePath string `yaml:"storage_path" env:"STORAGE_PATH" env-default:":memory:"`
}

// MustLoad reads, validates, and returns the application config.
//
// The name "MustLoad" follows a Go convention: functions prefixed with
// "Must" are allowed to panic/fatal on failure. Callers do not need to
// check a returned error — if this function returns, the config is valid.
func MustLoad() *Config {
	// Best-effort .env load. A missing file is fine — in containers the
	// environment is usually populated directly.
	_ = godotenv.Load()

	var configPath string

	// ── Source 1: environment variable ───────────────────────────────
	configPath = os.Getenv("CONFIG_PATH")

	// ── Source 2: command-line flag ───────────────────────────────────
	//   go run ./cmd/student-registry --config=config/local.yaml
	if configPath == "" {
		flags := flag.String("config", "", "Path to the configuration YAML file")
		flag.Parse()
		configPath = *flags
	}

	var cfg Config

	// ── Source 3: environment + defaults ─────────────────────────────
	// No path from either source: read from the environment alone.
	// Every field has an env-default, so this cannot fail on absence.
	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			log.Fatalf("cannot read config from environment: %s", err.Error())
		}
		return &cfg
	}

	// A path was supplied — it must exist and parse.
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err.Error())
	}

	return &cfg
}
