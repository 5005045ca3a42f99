// Package config handles loading and parsing application configuration.
// It supports three sources (in priority order):
//  1. An environment variable:  CONFIG_PATH=/path/to/config.yaml
//  2. A command-line flag:      --config=/path/to/config.yaml
//  3. Environment variables only, when no file is given.
//
// A .env file in the working directory, if present, is loaded into the
// process environment before any of the above are read.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config is the root configuration structure.
// Every field maps to a key in the YAML file AND can be overridden
// by the corresponding environment variable (env:"...").
type Config struct {
	// Env controls log format and verbosity.
	// Valid values: "dev", "staging", "prod"
	Env string `yaml:"env" env:"ENV" env-default:"dev" validate:"oneof=dev staging prod"`

	Storage Storage `yaml:"storage"`
	Console Console `yaml:"console"`
	Catalog Catalog `yaml:"catalog"`
}

// Storage selects where the roster keeps its students.
type Storage struct {
	// Driver is "sqlite" (persistent) or "memory" (lost on exit).
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"sqlite" validate:"oneof=sqlite memory"`

	// Path is the filesystem path to the SQLite .db file.
	Path string `yaml:"path" env:"STORAGE_PATH" env-default:"storage/roster.db" validate:"required_if=Driver sqlite"`
}

// Console holds settings for the terminal host.
type Console struct {
	// Output is "text" for tables or "json" for machine-readable views.
	Output string `yaml:"output" env:"CONSOLE_OUTPUT" env-default:"text" validate:"oneof=text json"`
}

// Catalog holds the closed lists offered by the form's select inputs.
type Catalog struct {
	// Belts is ordered from the lowest rank to the highest.
	Belts      []string `yaml:"belts" env:"CATALOG_BELTS" env-separator:"," env-default:"Branca,Amarela,Verde,Azul,Vermelha,Preta" validate:"min=1,dive,required"`
	BloodTypes []string `yaml:"blood_types" env:"CATALOG_BLOOD_TYPES" env-separator:"," env-default:"A+,A-,B+,B-,AB+,AB-,O+,O-" validate:"min=1,dive,required"`
}

// Load reads the config from path, or from the environment alone when
// path is empty, and validates the result.
func Load(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config.Load: read env: %w", err)
		}
	} else {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config.Load: %w", err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config.Load: read %s: %w", path, err)
		}
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config.Load: validate: %w", err)
	}

	return &cfg, nil
}

// MustLoad reads, validates, and returns the application config.
// It exits the process if the config cannot be loaded.
func MustLoad() *Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("cannot read .env: %s", err.Error())
	}

	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {
		flags := flag.String("config", "", "Path to the configuration YAML file")
		flag.Parse()
		configPath = *flags
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot load config: %s", err.Error())
	}

	return cfg
}
