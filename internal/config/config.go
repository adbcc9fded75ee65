// Package config loads the hw configuration from ~/.hw/config.yaml with
// environment-variable overrides for secrets.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the hw CLI configuration.
type Config struct {
	Search SearchConfig `yaml:"search"`
	Cart   CartConfig   `yaml:"cart"`
	Log    LogConfig    `yaml:"log"`
}

// SearchConfig holds part-search settings.
type SearchConfig struct {
	OEMSecretsAPIKey string   `yaml:"oem_secrets_api_key"` // OEM Secrets distributor-search key
	MinStock         int      `yaml:"min_stock"`           // Stock floor; below it a part is never selected
	MaxCandidates    int      `yaml:"max_candidates"`      // Ranked candidates retained per BOM line
	Concurrency      int      `yaml:"concurrency"`         // Concurrent searches per plan run
	Vendors          []string `yaml:"vendors"`             // Distributor allow-list (empty = all)
	CacheTTLHours    int      `yaml:"cache_ttl_hours"`     // Search response cache lifetime
}

// CartConfig holds distributor cart settings.
type CartConfig struct {
	MouserAPIKey string `yaml:"mouser_api_key"` // Needed for Mouser cart automation
	CountryCode  string `yaml:"country_code"`
	CurrencyCode string `yaml:"currency_code"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Log file path (overrides default)
}

// Default returns the configuration defaults.
func Default() *Config {
	return &Config{
		Search: SearchConfig{
			MinStock:      10,
			MaxCandidates: 3,
			Concurrency:   5,
			CacheTTLHours: 24,
		},
		Cart: CartConfig{
			CountryCode:  "US",
			CurrencyCode: "USD",
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads the config file (if present), then applies environment
// overrides. Precedence, highest first:
//
//  1. environment (OEM_SECRETS_API_KEY, MOUSER_API_KEY, HW_DEBUG)
//  2. ~/.hw/config.yaml
//  3. defaults
//
// A .env file in the working directory is honored before the environment
// is read. A missing config file is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	path := File()
	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	applyEnv(cfg)
	normalize(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("OEM_SECRETS_API_KEY"); v != "" {
		cfg.Search.OEMSecretsAPIKey = v
	}
	if v := os.Getenv("MOUSER_API_KEY"); v != "" {
		cfg.Cart.MouserAPIKey = v
	}
	if os.Getenv("HW_DEBUG") == "1" {
		cfg.Log.Level = "debug"
	}
}

// normalize clamps nonsensical values back to defaults.
func normalize(cfg *Config) {
	def := Default()
	if cfg.Search.MinStock <= 0 {
		cfg.Search.MinStock = def.Search.MinStock
	}
	if cfg.Search.MaxCandidates <= 0 {
		cfg.Search.MaxCandidates = def.Search.MaxCandidates
	}
	if cfg.Search.Concurrency <= 0 {
		cfg.Search.Concurrency = def.Search.Concurrency
	}
	if cfg.Search.CacheTTLHours <= 0 {
		cfg.Search.CacheTTLHours = def.Search.CacheTTLHours
	}
	if cfg.Cart.CountryCode == "" {
		cfg.Cart.CountryCode = def.Cart.CountryCode
	}
	if cfg.Cart.CurrencyCode == "" {
		cfg.Cart.CurrencyCode = def.Cart.CurrencyCode
	}
}

// RequireSearchKey returns the OEM Secrets API key or an actionable error.
func (c *Config) RequireSearchKey() (string, error) {
	if c.Search.OEMSecretsAPIKey != "" {
		return c.Search.OEMSecretsAPIKey, nil
	}
	return "", fmt.Errorf(
		"no OEM Secrets API key found: set OEM_SECRETS_API_KEY or add search.oem_secrets_api_key to %s",
		File())
}

const defaultFileContents = `# hw configuration
search:
  # OEM Secrets API key (https://oemsecretsapi.com). The OEM_SECRETS_API_KEY
  # environment variable takes precedence.
  oem_secrets_api_key: ""
  min_stock: 10
  max_candidates: 3
  concurrency: 5
  # Restrict candidates to these distributors (substring match, empty = all).
  vendors: []
  cache_ttl_hours: 24

cart:
  # Mouser API key, only needed for 'hw cart mouser'.
  mouser_api_key: ""
  country_code: US
  currency_code: USD

log:
  level: info
`

// Init writes a commented default config file. It refuses to overwrite an
// existing one.
func Init() (string, error) {
	path := File()
	if _, err := os.Stat(path); err == nil {
		return path, fmt.Errorf("config file already exists: %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return path, err
	}
	if err := os.WriteFile(path, []byte(defaultFileContents), 0o600); err != nil {
		return path, err
	}
	return path, nil
}
