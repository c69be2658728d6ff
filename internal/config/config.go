package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config contains runtime settings for the vacancy-atlas server
type Config struct {
	LogLevel string `yaml:"log_level"`
	Host     string `yaml:"host"` // default 0.0.0.0
	Port     string `yaml:"port"` // default PORT env or 8080

	API struct {
		BaseURL string `yaml:"base_url"`
	} `yaml:"api"` // municipal vacancy REST API

	Catalog struct {
		Source string `yaml:"source"` // api or static
	} `yaml:"catalog"`

	Map struct {
		BoundariesSource string `yaml:"boundaries_source"` // file path or http(s) URL
		Strategy         string `yaml:"strategy"`          // choropleth or markers
	} `yaml:"map"`

	Sheets struct {
		CredentialsPath string `yaml:"credentials_path"`
		SpreadsheetID   string `yaml:"spreadsheet_id"` // default target of sheets_export
	} `yaml:"sheets"`
}

func defaults() Config {
	cfg := Config{
		LogLevel: "info",
		Host:     "0.0.0.0",
		Port:     "8080",
	}
	cfg.API.BaseURL = "http://localhost:8000"
	cfg.Catalog.Source = "api"
	cfg.Map.BoundariesSource = "data/gemeentekaart.geojson"
	cfg.Map.Strategy = "choropleth"
	return cfg
}

// Load populates config from an optional YAML file (CONFIG_FILE) and then
// environment variables, which take precedence
func Load() (Config, error) {
	cfg := defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadYAML(path, &cfg); err != nil {
			return cfg, err
		}
	}

	overrideFromEnv(&cfg)

	var missingVars []string

	if strings.TrimSpace(cfg.API.BaseURL) == "" {
		missingVars = append(missingVars, "VACANCY_API_URL")
	}

	if strings.TrimSpace(cfg.Map.BoundariesSource) == "" {
		missingVars = append(missingVars, "BOUNDARIES_SOURCE")
	}

	if len(missingVars) > 0 {
		return cfg, fmt.Errorf("missing required settings: %s", strings.Join(missingVars, ", "))
	}

	switch strings.ToLower(cfg.Map.Strategy) {
	case "choropleth", "markers":
	default:
		return cfg, fmt.Errorf("MAP_STRATEGY must be choropleth or markers, got %q", cfg.Map.Strategy)
	}

	switch strings.ToLower(cfg.Catalog.Source) {
	case "api", "static":
	default:
		return cfg, fmt.Errorf("CATALOG_SOURCE must be api or static, got %q", cfg.Catalog.Source)
	}

	return cfg, nil
}

// loadYAML overlays the file onto cfg. A missing file is not an error.
func loadYAML(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func overrideFromEnv(cfg *Config) {
	set := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	set(&cfg.LogLevel, "LOG_LEVEL")
	set(&cfg.Host, "MCP_HOST")
	set(&cfg.Port, "PORT")
	set(&cfg.API.BaseURL, "VACANCY_API_URL")
	set(&cfg.Catalog.Source, "CATALOG_SOURCE")
	set(&cfg.Map.BoundariesSource, "BOUNDARIES_SOURCE")
	set(&cfg.Map.Strategy, "MAP_STRATEGY")
	set(&cfg.Sheets.CredentialsPath, "GOOGLE_SHEETS_CREDENTIALS_PATH")
	set(&cfg.Sheets.SpreadsheetID, "GOOGLE_SHEETS_SPREADSHEET_ID")
}
