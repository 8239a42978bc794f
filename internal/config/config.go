// Package config loads the YAML places file read by the geoutil command.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/tzneal/geoutil"

	"gopkg.in/yaml.v3"
)

// Config represents the root of a places file.
type Config struct {
	// Precision is the number of decimal places in text output. A negative
	// value selects the library default.
	Precision int     `yaml:"precision"`
	Format    string  `yaml:"format,omitempty"`
	Places    []Place `yaml:"places"`
}

// Place is a named coordinate.
type Place struct {
	Name      string   `yaml:"name"`
	Latitude  float64  `yaml:"lat"`
	Longitude float64  `yaml:"lon"`
	Elevation *float64 `yaml:"elevation,omitempty"` // meters
}

// Load reads and parses the YAML places file from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Config{Precision: -1}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Format {
	case "", "text", "json", "yaml":
	default:
		return fmt.Errorf("unknown format %q", c.Format)
	}

	seen := make(map[string]bool, len(c.Places))
	for i, p := range c.Places {
		if p.Name == "" {
			return fmt.Errorf("place %d has no name", i)
		}
		key := strings.ToLower(p.Name)
		if seen[key] {
			return fmt.Errorf("duplicate place %q", p.Name)
		}
		seen[key] = true
		if p.Latitude < geoutil.MinLatitudeDegrees || p.Latitude > geoutil.MaxLatitudeDegrees {
			return fmt.Errorf("place %q: latitude %g out of range", p.Name, p.Latitude)
		}
	}
	return nil
}

// Lookup finds a place by name, ignoring case. It is safe to call on a nil
// Config.
func (c *Config) Lookup(name string) (Place, bool) {
	if c == nil {
		return Place{}, false
	}
	for _, p := range c.Places {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Place{}, false
}

// Coordinate returns the place as an elevated coordinate. A missing
// elevation is zero.
func (p Place) Coordinate() geoutil.ElevatedCoordinate {
	c := geoutil.NewElevatedCoordinate(p.Latitude, p.Longitude, 0)
	if p.Elevation != nil {
		c.Elevation = *p.Elevation
	}
	return c
}
