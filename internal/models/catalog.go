package models

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyCatalog   = errors.New("catalog has no scenes")
	ErrInvalidCatalog = errors.New("invalid catalog")
)

// ParseCatalog decodes and validates a YAML story catalog.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadCatalog reads a catalog from a YAML file.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return ParseCatalog(data)
}

// Validate checks the structural rules the engine relies on.
func (c *Catalog) Validate() error {
	if len(c.Scenes) == 0 {
		return ErrEmptyCatalog
	}
	for i, scene := range c.Scenes {
		if len(scene.Choices) == 0 {
			return fmt.Errorf("%w: scene %d (%q) has no choices", ErrInvalidCatalog, i, scene.Title)
		}
		for j, choice := range scene.Choices {
			if err := choice.Consequence.validate(); err != nil {
				return fmt.Errorf("%w: scene %d choice %d: %v", ErrInvalidCatalog, i, j, err)
			}
		}
	}
	for i, fact := range c.Facts {
		if fact.Text == "" {
			return fmt.Errorf("%w: fact %d is empty", ErrInvalidCatalog, i)
		}
	}
	return nil
}

func (c Consequence) validate() error {
	switch {
	case c.Simple != nil && c.RiskBased != nil:
		return errors.New("consequence sets both simple and risk_based")
	case c.Simple != nil:
		return c.Simple.Modifier.validate()
	case c.RiskBased != nil:
		p := c.RiskBased.SuccessProbability
		if p < 0 || p > 1 {
			return fmt.Errorf("success probability %v outside [0,1]", p)
		}
		if err := c.RiskBased.Success.Modifier.validate(); err != nil {
			return fmt.Errorf("success: %w", err)
		}
		if err := c.RiskBased.Failure.Modifier.validate(); err != nil {
			return fmt.Errorf("failure: %w", err)
		}
		return nil
	default:
		return errors.New("consequence sets neither simple nor risk_based")
	}
}

// Counters only ever grow.
func (m Modifier) validate() error {
	if m.Delivered < 0 || m.Evacuated < 0 {
		return fmt.Errorf("negative counter delta (delivered %d, evacuated %d)", m.Delivered, m.Evacuated)
	}
	return nil
}
