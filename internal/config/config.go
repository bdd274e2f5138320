// Package config loads BookSage settings from an optional YAML file plus
// the environment. Missing keys keep their defaults, which reproduce the
// stock search behavior.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/booksage/booksage/internal/books"
	"github.com/booksage/booksage/internal/search"
)

// DefaultPath is consulted when no --config flag is given.
const DefaultPath = "booksage.yaml"

// RelatedGenre is one directional related-genre rule in the config file.
type RelatedGenre struct {
	Category string `yaml:"category"`
	Term     string `yaml:"term"`
}

// Config holds all runtime settings.
type Config struct {
	APIURL        string         `yaml:"api_url"`
	APIKey        string         `yaml:"api_key"`
	MaxResults    int            `yaml:"max_results"`
	MatchCap      int            `yaml:"match_cap"`
	RequestRate   float64        `yaml:"request_rate"`
	RelatedGenres []RelatedGenre `yaml:"related_genres"`
}

// Default returns the stock configuration.
func Default() *Config {
	related := make([]RelatedGenre, 0, len(search.DefaultGenreRules))
	for _, rule := range search.DefaultGenreRules {
		related = append(related, RelatedGenre{Category: rule.Category, Term: rule.Term})
	}
	return &Config{
		APIURL:        books.DefaultAPIURL,
		MaxResults:    20,
		MatchCap:      5,
		RequestRate:   1,
		RelatedGenres: related,
	}
}

// Load reads the config file at path, or DefaultPath if path is empty and
// the file exists. The GOOGLE_BOOKS_API_KEY environment variable overrides
// api_key so the key can live in .env instead of the config file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		if _, err := os.Stat(DefaultPath); err == nil {
			path = DefaultPath
		}
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if key := os.Getenv("GOOGLE_BOOKS_API_KEY"); key != "" {
		cfg.APIKey = key
	}

	// Zeroed-out values fall back to defaults rather than disabling the search
	if cfg.APIURL == "" {
		cfg.APIURL = books.DefaultAPIURL
	}
	if cfg.MaxResults < 1 {
		cfg.MaxResults = 20
	}
	if cfg.MatchCap < 1 {
		cfg.MatchCap = 5
	}
	if cfg.RequestRate <= 0 {
		cfg.RequestRate = 1
	}

	return cfg, nil
}

// GenreRules converts the configured related-genre table for the matcher.
func (c *Config) GenreRules() []search.GenreRule {
	rules := make([]search.GenreRule, 0, len(c.RelatedGenres))
	for _, rg := range c.RelatedGenres {
		rules = append(rules, search.GenreRule{Category: rg.Category, Term: rg.Term})
	}
	return rules
}
