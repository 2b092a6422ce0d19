// File: validation.go
// Title: Configuration Validation Implementation
// Description: Implements rule based validation of configuration values:
//              required keys, types, numeric bounds and string choices.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation of validation

package config

import (
	"fmt"
	"sort"
	"strings"

	alccerr "github.com/msto63/alcc/foundation/core/error"
)

// ValidationRule defines validation criteria for a configuration value
type ValidationRule struct {
	Required bool     // Whether the key must be present
	Type     string   // Expected type: "string", "int" or "bool"
	Min      *int     // Inclusive lower bound for ints
	Max      *int     // Inclusive upper bound for ints
	OneOf    []string // Allowed values for strings (case-insensitive)
}

// ValidationRules maps configuration keys to their validation rules
type ValidationRules map[string]ValidationRule

// ValidationResult contains the results of configuration validation
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Err converts a failed result into a structured error, nil when valid
func (r *ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	return alccerr.New("invalid configuration: "+strings.Join(r.Errors, "; ")).
		WithCode(alccerr.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("errors", r.Errors)
}

// IntPtr returns a pointer to v, for use in Min and Max
func IntPtr(v int) *int {
	return &v
}

// Validate checks the configuration against rules. Keys are checked in sorted
// order so the error list is stable. Environment overrides are validated as
// the getters would see them.
func (c *Config) Validate(rules ValidationRules) *ValidationResult {
	result := &ValidationResult{Valid: true}

	keys := make([]string, 0, len(rules))
	for key := range rules {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := c.validateField(key, rules[key]); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, err.Error())
		}
	}

	return result
}

func (c *Config) validateField(key string, rule ValidationRule) error {
	if !c.Has(key) {
		if rule.Required {
			return fmt.Errorf("required field '%s' is missing", key)
		}
		return nil
	}

	switch rule.Type {
	case "int":
		c.mu.RLock()
		raw := c.getValue(key)
		envValue := c.getEnvValue(key)
		c.mu.RUnlock()
		if envValue != "" {
			raw = envValue
		}
		value, ok := toInt(raw)
		if !ok {
			return fmt.Errorf("field '%s' must be an integer, got %v", key, raw)
		}
		if rule.Min != nil && value < *rule.Min {
			return fmt.Errorf("field '%s' must be at least %d, got %d", key, *rule.Min, value)
		}
		if rule.Max != nil && value > *rule.Max {
			return fmt.Errorf("field '%s' must be at most %d, got %d", key, *rule.Max, value)
		}

	case "bool":
		c.mu.RLock()
		raw := c.getValue(key)
		envValue := c.getEnvValue(key)
		c.mu.RUnlock()
		if envValue != "" {
			raw = envValue
		}
		switch v := raw.(type) {
		case bool:
		case string:
			if v != "true" && v != "false" {
				return fmt.Errorf("field '%s' must be a boolean, got %q", key, v)
			}
		default:
			return fmt.Errorf("field '%s' must be a boolean, got %v", key, raw)
		}

	case "string", "":
		if len(rule.OneOf) == 0 {
			return nil
		}
		value := strings.ToLower(c.GetString(key))
		for _, allowed := range rule.OneOf {
			if value == strings.ToLower(allowed) {
				return nil
			}
		}
		return fmt.Errorf("field '%s' must be one of %s, got %q", key, strings.Join(rule.OneOf, ", "), value)

	default:
		return fmt.Errorf("field '%s' has unknown rule type %q", key, rule.Type)
	}

	return nil
}
