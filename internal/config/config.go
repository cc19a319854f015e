package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cran/noah/pkg/ark"
)

// WordsConfig represents a top-level word-list configuration file. It
// replaces the built-in adjective × animal space with caller-supplied
// categories.
type WordsConfig struct {
	Version    string           `yaml:"version"`
	Categories []CategoryConfig `yaml:"categories"`
}

// CategoryConfig is one ordered name-part category.
type CategoryConfig struct {
	Name  string   `yaml:"name"`
	Words []string `yaml:"words"`
}

// Load reads and validates a word-list configuration file.
func Load(path string) (*WordsConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg WordsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate performs strict validation on the configuration.
func (c *WordsConfig) Validate() error {
	// Required: version
	if c.Version != "1.0" {
		return fmt.Errorf("unsupported version: %s (expected: 1.0)", c.Version)
	}

	// Required: at least one category
	if len(c.Categories) == 0 {
		return fmt.Errorf("no categories defined")
	}

	namesSeen := make(map[string]bool)
	for i, cat := range c.Categories {
		if err := cat.Validate(i); err != nil {
			return err
		}
		if namesSeen[cat.Name] {
			return fmt.Errorf("duplicate category name '%s': category names must be unique", cat.Name)
		}
		namesSeen[cat.Name] = true
	}
	return nil
}

// Validate checks a single category; position is the category's index in the
// file, used when the category has no name.
func (c *CategoryConfig) Validate(position int) error {
	if c.Name == "" {
		return fmt.Errorf("category %d has no name", position+1)
	}
	if len(c.Words) == 0 {
		return fmt.Errorf("category '%s' has no words", c.Name)
	}
	wordsSeen := make(map[string]bool, len(c.Words))
	for _, w := range c.Words {
		if w == "" {
			return fmt.Errorf("category '%s' contains an empty word", c.Name)
		}
		if wordsSeen[w] {
			return fmt.Errorf("duplicate word '%s' in category '%s'", w, c.Name)
		}
		wordsSeen[w] = true
	}
	return nil
}

// ToCategories converts the configuration into the library's category form,
// preserving file order.
func (c *WordsConfig) ToCategories() []ark.Category {
	categories := make([]ark.Category, len(c.Categories))
	for i, cat := range c.Categories {
		categories[i] = ark.Category{Name: cat.Name, Words: cat.Words}
	}
	return categories
}
