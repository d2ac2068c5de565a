// config_keys.go maps dotted string keys like "highlight.prefix" onto the
// Config struct for the CLI config command and the MCP config tools.
// config.go owns the YAML shapes; this file owns the key enumeration and the
// typed get/set conversions.
//
// Optional fields are pointers so an unset key (nil) can be told apart from
// one explicitly set to its zero value; defaults apply only to unset keys.

package config

import (
	"fmt"
	"slices"
	"strconv"
)

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	return []string{
		"author.name", "author.email",
		"highlight.prefix", "highlight.suffix",
		"search.limit",
		"limits.max_content",
	}
}

// IsValidKey returns true if the key is a valid configuration key.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// Get returns the value of a configuration key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "author.name":
		return c.Author.Name, nil
	case "author.email":
		return c.Author.Email, nil
	case "highlight.prefix":
		return c.HighlightPrefix(), nil
	case "highlight.suffix":
		return c.HighlightSuffix(), nil
	case "search.limit":
		return strconv.Itoa(c.SearchLimit()), nil
	case "limits.max_content":
		return strconv.FormatInt(c.MaxContent(), 10), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "author.name":
		c.Author.Name = value
	case "author.email":
		c.Author.Email = value
	case "highlight.prefix":
		// Markers are inserted verbatim, so any string is legal -
		// including the empty string.
		c.Highlight.Prefix = &value
	case "highlight.suffix":
		c.Highlight.Suffix = &value
	case "search.limit":
		n, err := strconv.Atoi(value)
		if err != nil || n < MinSearchLimit || n > MaxSearchLimit {
			return fmt.Errorf("%w: search.limit must be an integer between %d and %d", ErrInvalidValue, MinSearchLimit, MaxSearchLimit)
		}
		c.Search.Limit = &n
	case "limits.max_content":
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil || n <= 0 {
			return fmt.Errorf("%w: limits.max_content must be a positive integer", ErrInvalidValue)
		}
		c.Limits.MaxContent = &n
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

// All returns all configuration values as a map.
func (c *Config) All() map[string]string {
	return map[string]string{
		"author.name":        c.Author.Name,
		"author.email":       c.Author.Email,
		"highlight.prefix":   c.HighlightPrefix(),
		"highlight.suffix":   c.HighlightSuffix(),
		"search.limit":       strconv.Itoa(c.SearchLimit()),
		"limits.max_content": strconv.FormatInt(c.MaxContent(), 10),
	}
}

// IsSet returns true if the key has an explicit value (not just defaults).
func (c *Config) IsSet(key string) bool {
	switch key {
	case "author.name":
		return c.Author.Name != ""
	case "author.email":
		return c.Author.Email != ""
	case "highlight.prefix":
		return c.Highlight.Prefix != nil
	case "highlight.suffix":
		return c.Highlight.Suffix != nil
	case "search.limit":
		return c.Search.Limit != nil
	case "limits.max_content":
		return c.Limits.MaxContent != nil
	default:
		return false
	}
}
